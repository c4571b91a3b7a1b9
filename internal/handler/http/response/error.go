package response

import (
	"errors"
	"net/http"

	"github.com/absensi-app/absensi-backend-go/internal/domain/attendance"
	"github.com/absensi-app/absensi-backend-go/internal/domain/auth"
	"github.com/absensi-app/absensi-backend-go/internal/domain/employee"
	"github.com/absensi-app/absensi-backend-go/internal/domain/role"
	"github.com/absensi-app/absensi-backend-go/internal/pkg/validator"
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
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		BadRequest(w, "You have already checked in today", nil)
	case errors.Is(err, attendance.ErrNoOpenCheckIn):
		BadRequest(w, "You have not checked in today", nil)
	case errors.Is(err, attendance.ErrCheckOutBeforeCheckIn):
		BadRequest(w, "Check-out time cannot be earlier than check-in time", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrAdminRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Role domain errors
	case errors.Is(err, role.ErrRoleNotFound):
		NotFound(w, "Role not found")
	case errors.Is(err, role.ErrRoleNameExists):
		Conflict(w, "Role name already exists")
	case errors.Is(err, role.ErrRoleHasEmployees):
		BadRequest(w, "Role is still assigned to employees", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
