// Package render defines the rendering contract every template must satisfy
// and the registry that maps template ids to their renderer pairs.
//
// The contract, binding on both surfaces of every template:
//  1. Never mutate the resume snapshot.
//  2. Render a section only if its backing collection is non-empty; for the
//     profile, only the sub-fields that are present.
//  3. Use the format package exclusively for dates, addresses, and links.
//  4. Preserve collection order — never re-sort.
//  5. Degrade gracefully on missing data: an absent profile renders a
//     placeholder shell (screen) or a single notice line (print), never a crash.
//  6. Be surface-faithful: both surfaces of one template id emit the same
//     section set in the same order.
package render

import (
	"sort"
	"sync"

	"github.com/jonathan/resume-renderer/internal/render/print"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Capabilities describes template-specific features callers may query before
// selecting a template.
type Capabilities struct {
	Photo   bool   `json:"photo"`   // screen renders the profile photo when present; print draws an initials badge
	Columns int    `json:"columns"` // layout columns (1 for single-flow)
	Accent  string `json:"accent"`  // primary accent color, hex
}

// Template is one named visual design able to render any valid resume
// snapshot on both output surfaces.
type Template interface {
	ID() string
	Name() string
	Capabilities() Capabilities

	// RenderScreen produces a self-contained, A4-proportioned HTML document
	// for the interactive preview surface.
	RenderScreen(data *types.ResumeData) (string, error)

	// RenderPrint produces the complete print document description for the
	// same snapshot, ready for direct rasterization.
	RenderPrint(data *types.ResumeData) (*print.Document, error)
}

// Registry maps template ids to registered templates. Safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	templates map[string]Template
}

// NewRegistry creates an empty template registry.
func NewRegistry() *Registry {
	return &Registry{templates: make(map[string]Template)}
}

// Register adds a template under its id, replacing any previous registration
// with the same id.
func (r *Registry) Register(t Template) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.templates[t.ID()] = t
}

// Lookup resolves a template id. Unknown ids fail fast with
// *UnknownTemplateError; they are never silently substituted with a default.
func (r *Registry) Lookup(id string) (Template, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.templates[id]
	if !ok {
		return nil, &UnknownTemplateError{ID: id, Known: r.idsLocked()}
	}
	return t, nil
}

// IDs returns the registered template ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.idsLocked()
}

// All returns the registered templates ordered by id.
func (r *Registry) All() []Template {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Template, 0, len(r.templates))
	for _, id := range r.idsLocked() {
		out = append(out, r.templates[id])
	}
	return out
}

func (r *Registry) idsLocked() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
