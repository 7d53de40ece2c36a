package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/resume-fitment/internal/extraction"
	"github.com/jonathan/resume-fitment/internal/store"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return "validation error: " + e.Field + " - " + e.Message
}

// HTTPStatus maps the error taxonomy to response codes: bad uploads and
// payloads are the client's fault, missing resumes are 404, everything else
// is a server fault.
func HTTPStatus(err error) int {
	var unsupported *extraction.UnsupportedFileTypeError
	var validation *ErrValidation
	switch {
	case errors.As(err, &unsupported), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
