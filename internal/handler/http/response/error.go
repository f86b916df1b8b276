package response

import (
	"errors"
	"net/http"

	"github.com/storelinehq/admin-gateway-go/internal/domain/attendance"
	"github.com/storelinehq/admin-gateway-go/internal/domain/auth"
	"github.com/storelinehq/admin-gateway-go/internal/domain/leave"
	"github.com/storelinehq/admin-gateway-go/internal/domain/user"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/upstream"
	"github.com/storelinehq/admin-gateway-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// A failed HR API call surfaces as a gateway error with the upstream
	// message attached.
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		BadGateway(w, apiErr.Message)
		return
	}

	switch {
	// Auth errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")

	// Role errors
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrUnknownRole):
		Forbidden(w, "Unknown role")

	// Attendance errors
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found in the current roster")
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee has already checked in")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Employee has not checked in yet")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Employee has already checked out")
	case errors.Is(err, attendance.ErrRosterUnavailable):
		BadGateway(w, "Roster could not be fetched from the HR API")

	// Leave errors
	case errors.Is(err, leave.ErrRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrNoLeaveForDay):
		NotFound(w, "No leave record for the requested day")
	case errors.Is(err, leave.ErrReviewSessionNotFound):
		NotFound(w, "Review session not found")
	case errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, "Status must be approved or rejected", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
