package leave

import (
	"fmt"
	"time"
)

const (
	daysPerYear  = 365
	halfYearDays = 183
)

// Seniority is the elapsed tenure of an employee at a point in time.
type Seniority struct {
	// Set is false when the hire date is missing; Years and Months are zero
	// and no allotment can be granted.
	Set    bool
	Years  int
	Months int
}

// Label renders tenure for display, e.g. "3 years 2 months".
func (s Seniority) Label() string {
	if !s.Set {
		return "not set"
	}
	return fmt.Sprintf("%d years %d months", s.Years, s.Months)
}

// SeniorityCalculator converts a hire date into elapsed tenure and the
// statutory annual-leave allotment.
//
// Tenure is whole elapsed days divided by 365 and floored, with no leap-year
// adjustment. A tier boundary day already belongs to the higher tier: an
// employee hired exactly 365 days ago is in their second year.
type SeniorityCalculator struct{}

func NewSeniorityCalculator() *SeniorityCalculator {
	return &SeniorityCalculator{}
}

// Tenure computes elapsed tenure as of asOf.
func (c *SeniorityCalculator) Tenure(hireDate *time.Time, asOf time.Time) Seniority {
	if hireDate == nil {
		return Seniority{}
	}

	days := elapsedDays(*hireDate, asOf)
	if days < 0 {
		days = 0
	}

	months := (days % daysPerYear) / 30
	if months > 11 {
		months = 11
	}

	return Seniority{
		Set:    true,
		Years:  days / daysPerYear,
		Months: months,
	}
}

// AnnualLeaveDays returns the statutory annual-leave day allotment for the
// tenure as of asOf. Missing hire date yields zero.
func (c *SeniorityCalculator) AnnualLeaveDays(hireDate *time.Time, asOf time.Time) int {
	if hireDate == nil {
		return 0
	}

	days := elapsedDays(*hireDate, asOf)
	if days < halfYearDays {
		return 0
	}

	years := days / daysPerYear
	switch {
	case years < 1:
		return 3
	case years < 2:
		return 7
	case years < 3:
		return 10
	case years < 5:
		return 14
	case years < 10:
		return 15
	default:
		allotment := 15 + (years - 10)
		if allotment > 30 {
			allotment = 30
		}
		return allotment
	}
}

func elapsedDays(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
