package templates

import (
	"embed"
	"html/template"
	"strings"

	"github.com/jonathan/resume-renderer/internal/render"
)

//go:embed assets/*.gohtml
var assetFS embed.FS

// screenTemplates holds every parsed screen asset. Parsing happens once at
// package load; a malformed asset is a programmer error and fails fast.
var screenTemplates = template.Must(template.New("screen").ParseFS(assetFS, "assets/*.gohtml"))

// renderScreen executes one embedded screen asset against a formatted view.
func renderScreen(templateID, asset string, view any) (string, error) {
	var sb strings.Builder
	if err := screenTemplates.ExecuteTemplate(&sb, asset, view); err != nil {
		return "", &render.SurfaceError{TemplateID: templateID, Surface: "screen", Cause: err}
	}
	return sb.String(), nil
}
