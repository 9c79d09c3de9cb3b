// Package export turns a rendered resume into PDF bytes. Rendering itself is
// synchronous and stateless; any cancellation or timeout policy lives here in
// the export orchestration, never inside a renderer.
package export

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/render/print"
	"github.com/jonathan/resume-renderer/internal/types"
)

// Engine produces PDF bytes for one resume snapshot and template.
type Engine interface {
	Name() string
	Export(ctx context.Context, data *types.ResumeData, tmpl render.Template) ([]byte, error)
}

// PDFEngine is the default engine: the template's print document is
// rasterized directly, with no browser in the loop. The same snapshot and
// template always produce the same document and the same page content
// streams; the PDF writer does not guarantee byte-for-byte stable output
// because it orders its font dictionary objects arbitrarily.
type PDFEngine struct{}

// NewPDFEngine creates the print-surface engine.
func NewPDFEngine() *PDFEngine { return &PDFEngine{} }

func (e *PDFEngine) Name() string { return "pdf" }

func (e *PDFEngine) Export(ctx context.Context, data *types.ResumeData, tmpl render.Template) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	doc, err := tmpl.RenderPrint(data)
	if err != nil {
		return nil, fmt.Errorf("print render failed: %w", err)
	}
	return print.Rasterize(doc)
}

// ErrUnknownEngine indicates an engine name that is not available.
type ErrUnknownEngine struct {
	Name string
}

func (e *ErrUnknownEngine) Error() string {
	return fmt.Sprintf("unknown export engine %q: available engines are pdf, chrome", e.Name)
}

// ByName resolves an engine. The empty name selects the pdf engine.
func ByName(name, chromePath string) (Engine, error) {
	switch name {
	case "", "pdf":
		return NewPDFEngine(), nil
	case "chrome":
		return NewChromeEngine(chromePath), nil
	default:
		return nil, &ErrUnknownEngine{Name: name}
	}
}
