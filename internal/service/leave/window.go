package leave

import (
	"time"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
)

// WithinWindow reports whether requestDate falls inside the usage window of
// an event-anchored leave type: [referenceDate - monthsBefore,
// referenceDate + monthsAfter], both bounds inclusive.
func WithinWindow(requestDate, referenceDate time.Time, monthsBefore, monthsAfter int) bool {
	rd := truncateToDay(requestDate)
	lower := truncateToDay(referenceDate).AddDate(0, -monthsBefore, 0)
	upper := truncateToDay(referenceDate).AddDate(0, monthsAfter, 0)
	return !rd.Before(lower) && !rd.After(upper)
}

// WithinPolicyWindow applies WithinWindow with the window configured on the
// policy. Annual-reset types have no window and always pass.
func WithinPolicyWindow(policy leave.TypePolicy, requestDate, referenceDate time.Time) bool {
	if !policy.RequiresReferenceDate {
		return true
	}
	return WithinWindow(requestDate, referenceDate, policy.WindowMonthsBefore, policy.WindowMonthsAfter)
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
