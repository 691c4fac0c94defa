package request

import (
	"time"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/request"
)

// Verdict is the duplicate-guard decision for a submission attempt.
type Verdict struct {
	Allowed              bool
	Reason               string
	ConflictingRequestID string
}

// DuplicateGuard enforces the one-active-request rule: at most one pending or
// approved request may exist per (employee, date, kind, subtype) at a time.
// Rejected and cancelled requests stay in history and never block a
// resubmission.
type DuplicateGuard struct{}

func NewDuplicateGuard() *DuplicateGuard {
	return &DuplicateGuard{}
}

// CanSubmit evaluates a snapshot of existing requests. Only the most recent
// matching request counts (ties broken by latest CreatedAt): earlier rejected
// attempts for the same key do not block even if several exist.
func (g *DuplicateGuard) CanSubmit(employeeID string, date time.Time, kind request.Kind, subtype string, existing []request.Request) Verdict {
	var latest *request.Request
	for i := range existing {
		r := &existing[i]
		if r.EmployeeID != employeeID || r.Kind != kind || r.Subtype != subtype {
			continue
		}
		if !sameDay(r.Date, date) {
			continue
		}
		if latest == nil || r.CreatedAt.After(latest.CreatedAt) {
			latest = r
		}
	}

	if latest == nil {
		return Verdict{Allowed: true}
	}

	switch latest.Status {
	case request.StatusPending:
		return Verdict{
			Reason:               "awaiting prior decision",
			ConflictingRequestID: latest.ID,
		}
	case request.StatusApproved:
		return Verdict{
			Reason:               "already approved, cannot resubmit",
			ConflictingRequestID: latest.ID,
		}
	default:
		// rejected or cancelled: resubmission creates a new request, the old
		// record remains as history.
		return Verdict{Allowed: true}
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
