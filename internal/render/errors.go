package render

import (
	"fmt"
	"strings"
)

// UnknownTemplateError indicates a template id that is not registered. It is
// raised at the registry lookup boundary before any rendering begins — the
// only legitimate failure in the rendering core that is caused by the caller.
type UnknownTemplateError struct {
	ID    string
	Known []string
}

func (e *UnknownTemplateError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown template %q: no templates registered", e.ID)
	}
	return fmt.Sprintf("unknown template %q: known templates are %s", e.ID, strings.Join(e.Known, ", "))
}

// SurfaceError indicates a failure executing one surface of a template. It
// wraps template-execution problems (programmer error in a template asset),
// never data-shape conditions: missing data degrades gracefully by contract.
type SurfaceError struct {
	TemplateID string
	Surface    string // "screen" or "print"
	Cause      error
}

func (e *SurfaceError) Error() string {
	return fmt.Sprintf("template %q: %s surface: %v", e.TemplateID, e.Surface, e.Cause)
}

func (e *SurfaceError) Unwrap() error {
	return e.Cause
}
