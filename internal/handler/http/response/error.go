package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/attendance"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/auth"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/payslip"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/domain/project"
	"github.com/cmlabs-hris/bizadmin-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationMessage(validationErrs), validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired session")
	case errors.Is(err, auth.ErrTokenRevoked):
		Unauthorized(w, "Session has been logged out")
	case errors.Is(err, auth.ErrSessionRequired):
		Unauthorized(w, "Login required")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, attendance.ErrAttendanceAlreadyRecorded):
		Conflict(w, "Attendance already recorded for this staff and date")

	// Payslip domain errors
	case errors.Is(err, payslip.ErrPayslipNotFound):
		NotFound(w, "Payslip not found")
	case errors.Is(err, payslip.ErrPayslipAlreadyExists):
		Conflict(w, "Payslip already exists for this employee and month")

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrUnknownRole):
		BadRequest(w, "Unknown team member role", nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}

// validationMessage surfaces the first failure as the human message
func validationMessage(errs validator.ValidationErrors) string {
	if len(errs) == 0 {
		return "Validation failed"
	}
	return errs[0].Message
}
