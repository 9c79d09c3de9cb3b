package templates

import "github.com/jonathan/resume-renderer/internal/render"

// RegisterAll adds every built-in template to a registry. New templates are
// added by implementing the rendering contract and listing them here, not by
// cloning an existing file.
func RegisterAll(r *render.Registry) {
	r.Register(NewATS())
	r.Register(NewModern())
	r.Register(NewClassic())
}

// DefaultRegistry returns a registry pre-populated with the built-ins.
func DefaultRegistry() *render.Registry {
	r := render.NewRegistry()
	RegisterAll(r)
	return r
}
