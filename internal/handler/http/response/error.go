package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/attendance-portal-go/internal/domain/schedule"
	"github.com/cmlabs-hris/attendance-portal-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap(), validationErrs.Messages())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrDayRecordNotFound):
		NotFound(w, "Day record not found")
	case errors.Is(err, attendance.ErrDuplicateDay):
		Conflict(w, "A day record for this date already exists")

	// Schedule domain errors
	case errors.Is(err, schedule.ErrWorkShiftNotFound):
		NotFound(w, "Work shift not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyProcessed):
		Conflict(w, "Leave request already processed")
	case errors.Is(err, leave.ErrNotCancellable):
		Conflict(w, "Leave request is not cancellable")
	case errors.Is(err, leave.ErrInvalidLeaveType):
		BadRequest(w, "Invalid leave type", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
