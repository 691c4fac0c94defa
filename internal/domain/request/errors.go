package request

import (
	"errors"
	"fmt"
)

var (
	ErrRequestNotFound = errors.New("Request not found")

	// ErrRequestAlreadyProcessed guards every transition out of a terminal
	// status. Hitting it means the caller holds a stale view of the request.
	ErrRequestAlreadyProcessed = errors.New("Request already processed")

	ErrDuplicateRequest = errors.New("An active request already exists for this date")
	ErrNotAuthorized    = errors.New("Actor is not authorized to decide this request")
	ErrNotRequestOwner  = errors.New("Only the requester may cancel a request")
	ErrReasonRequired   = errors.New("A reason is required")
	ErrInvalidDateRange = errors.New("End date must not be before start date")
)

// ConflictError reports a duplicate-guard rejection together with the id of
// the blocking request so the UI can let the user view or withdraw it.
type ConflictError struct {
	ConflictingRequestID string
	Reason               string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("duplicate request: %s (conflicts with %s)", e.Reason, e.ConflictingRequestID)
}

func (e *ConflictError) Unwrap() error {
	return ErrDuplicateRequest
}
