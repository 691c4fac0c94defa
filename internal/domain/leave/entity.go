package leave

import "time"

// HoursPerWorkDay is the hour/day conversion applied uniformly. Callers may
// present either unit; the balance ledger is always kept in hours so partial
// days never accumulate rounding drift.
const HoursPerWorkDay = 8.0

// Balance is derived, never stored as ground truth: it is recomputed on
// demand from policy + hire date + approved-request history.
type Balance struct {
	EmployeeID string   `json:"employee_id"`
	TypeCode   TypeCode `json:"type_code"`
	Year       int      `json:"year"`

	// ReferenceDate is set for event-anchored types only: each distinct
	// reference date is its own entitlement bucket.
	ReferenceDate *time.Time `json:"reference_date,omitempty"`

	SeniorityYears int `json:"seniority_years"`

	TotalHours     float64 `json:"total_hours"`
	UsedHours      float64 `json:"used_hours"`
	RemainingHours float64 `json:"remaining_hours"`
}
