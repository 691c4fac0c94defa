package leave

import (
	"context"
	"time"
)

// UsageRepository - approved-hours aggregation over leave_requests. The
// entitlement engine reads consumption from approved history only; pending
// and rejected requests never consume balance.
type UsageRepository interface {
	// ApprovedHoursForYear sums approved hours of one annual-reset leave type
	// within a calendar year.
	ApprovedHoursForYear(ctx context.Context, employeeID string, code TypeCode, year int) (float64, error)

	// ApprovedHoursForReference sums approved hours of one event-anchored
	// leave type sharing the given reference date. Requests against a
	// different reference date are a separate bucket.
	ApprovedHoursForReference(ctx context.Context, employeeID string, code TypeCode, referenceDate time.Time) (float64, error)
}
