package response

import (
	"errors"
	"net/http"

	"github.com/stafftrack/staffing-backend-go/internal/domain/report"
	"github.com/stafftrack/staffing-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Report domain errors
	switch {
	case errors.Is(err, report.ErrUnknownReport):
		BadRequest(w, "Unknown report kind", nil)
	case errors.Is(err, report.ErrNoWorkHours):
		BadRequest(w, "The requested range has no work hours", nil)
	case errors.Is(err, report.ErrInconsistentTotals):
		InternalServerError(w, "Report values cannot be reconciled with their total")
	case errors.Is(err, report.ErrUnsupportedDocument):
		InternalServerError(w, "Unsupported document kind")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
