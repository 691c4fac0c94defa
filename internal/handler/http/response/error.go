package response

import (
	"errors"
	"net/http"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/employee"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/request"
	"github.com/stafflyhq/hrops-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Duplicate-guard conflicts carry the blocking request id so the UI can
	// let the user view or withdraw the prior request.
	var conflictErr *request.ConflictError
	if errors.As(err, &conflictErr) {
		Conflict(w, conflictErr.Reason, map[string]string{
			"conflicting_request_id": conflictErr.ConflictingRequestID,
		})
		return
	}

	var balanceErr *leave.InsufficientBalanceError
	if errors.As(err, &balanceErr) {
		BadRequest(w, balanceErr.Error(), nil)
		return
	}

	switch {
	// Request domain errors
	case errors.Is(err, request.ErrRequestNotFound):
		NotFound(w, "Request not found")
	case errors.Is(err, request.ErrRequestAlreadyProcessed):
		Conflict(w, "This request was already decided", nil)
	case errors.Is(err, request.ErrDuplicateRequest):
		Conflict(w, "An active request already exists for this date", nil)
	case errors.Is(err, request.ErrNotAuthorized):
		Forbidden(w, "You are not authorized to decide this request")
	case errors.Is(err, request.ErrNotRequestOwner):
		Forbidden(w, "Only the requester may cancel a request")
	case errors.Is(err, request.ErrReasonRequired):
		BadRequest(w, "A reason is required", nil)
	case errors.Is(err, request.ErrInvalidDateRange):
		BadRequest(w, "End date must not be before start date", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveTypeNotFound):
		NotFound(w, "Leave type not found")
	case errors.Is(err, leave.ErrInsufficientBalance):
		BadRequest(w, "Insufficient leave balance", nil)
	case errors.Is(err, leave.ErrReferenceDateRequired):
		BadRequest(w, "Reference date is required for this leave type", nil)
	case errors.Is(err, leave.ErrOutsideUsageWindow):
		BadRequest(w, "Requested date is outside the usage window", nil)
	case errors.Is(err, leave.ErrAttachmentRequired):
		BadRequest(w, "Attachment is required for this leave type", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
