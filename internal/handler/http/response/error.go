package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/leave-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/leave-calendar-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	case errors.Is(err, leave.ErrInvalidMonth):
		BadRequest(w, "Invalid month", nil)
	case errors.Is(err, leave.ErrApproverNotFound):
		NotFound(w, "Approver not found")
	case errors.Is(err, leave.ErrSnapshotUnavailable):
		InternalServerError(w, "Leave snapshot unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
