package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-renderer/internal/export"
	"github.com/jonathan/resume-renderer/internal/render"
	"github.com/jonathan/resume-renderer/internal/schemas"
)

// ErrResumeNotFound indicates the requested resume does not exist
type ErrResumeNotFound struct {
	ResumeID uuid.UUID
}

func (e *ErrResumeNotFound) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound        *ErrResumeNotFound
		unknownTemplate *render.UnknownTemplateError
		unknownEngine   *export.ErrUnknownEngine
		validation      *ErrValidation
		payload         *schemas.ValidationError
	)
	switch {
	case errors.As(err, &notFound), errors.As(err, &unknownTemplate):
		return http.StatusNotFound
	case errors.As(err, &unknownEngine), errors.As(err, &validation), errors.As(err, &payload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
