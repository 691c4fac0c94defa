package leave

import (
	"errors"
	"fmt"
)

var (
	ErrLeaveTypeNotFound     = errors.New("Leave type not found")
	ErrInsufficientBalance   = errors.New("Insufficient leave balance")
	ErrReferenceDateRequired = errors.New("Reference date is required for this leave type")
	ErrOutsideUsageWindow    = errors.New("Requested date is outside the usage window")
	ErrAttachmentRequired    = errors.New("Attachment is required for this leave type")
)

// InsufficientBalanceError carries the shortage details so the caller can
// render a field-level message.
type InsufficientBalanceError struct {
	TypeCode       TypeCode
	RequestedHours float64
	RemainingHours float64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient %s balance: requested %.1f hours, %.1f remaining",
		e.TypeCode, e.RequestedHours, e.RemainingHours)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}
