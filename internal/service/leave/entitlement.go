package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/employee"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/leave"
)

// EntitlementCalculator combines policy, seniority and approved-usage history
// into a balance. Balances are derived on demand and never stored; the only
// ground truth is the approved-request history.
type EntitlementCalculator struct {
	registry  *leave.PolicyRegistry
	usage     leave.UsageRepository
	seniority *SeniorityCalculator

	// now is swappable for deterministic tests.
	now func() time.Time
}

func NewEntitlementCalculator(registry *leave.PolicyRegistry, usage leave.UsageRepository, seniority *SeniorityCalculator) *EntitlementCalculator {
	return &EntitlementCalculator{
		registry:  registry,
		usage:     usage,
		seniority: seniority,
		now:       time.Now,
	}
}

// ComputeBalance returns the hour-granularity balance of one leave type.
//
// Annual-reset types are bucketed by calendar year: ANNUAL gets the statutory
// seniority allotment, every other annual-reset type gets the policy cap.
// Event-anchored types are bucketed by (employee, type, referenceDate): each
// distinct reference date opens a fresh allotment, so an employee can draw a
// full bereavement allowance per qualifying event.
func (c *EntitlementCalculator) ComputeBalance(ctx context.Context, emp employee.Employee, code leave.TypeCode, year int, referenceDate *time.Time) (leave.Balance, error) {
	policy, err := c.registry.PolicyFor(code)
	if err != nil {
		return leave.Balance{}, err
	}

	tenure := c.seniority.Tenure(emp.HireDate, c.now())
	balance := leave.Balance{
		EmployeeID:     emp.ID,
		TypeCode:       code,
		Year:           year,
		SeniorityYears: tenure.Years,
	}

	if policy.AnnualReset {
		totalDays := policy.MaxDaysPerYear
		if code == leave.TypeAnnual {
			totalDays = c.seniority.AnnualLeaveDays(emp.HireDate, c.now())
		}
		balance.TotalHours = float64(totalDays) * leave.HoursPerWorkDay

		used, err := c.usage.ApprovedHoursForYear(ctx, emp.ID, code, year)
		if err != nil {
			return leave.Balance{}, fmt.Errorf("failed to fetch approved usage: %w", err)
		}
		balance.UsedHours = used
	} else {
		if referenceDate == nil {
			return leave.Balance{}, leave.ErrReferenceDateRequired
		}
		balance.ReferenceDate = referenceDate
		balance.TotalHours = float64(policy.MaxDaysPerYear) * leave.HoursPerWorkDay

		used, err := c.usage.ApprovedHoursForReference(ctx, emp.ID, code, *referenceDate)
		if err != nil {
			return leave.Balance{}, fmt.Errorf("failed to fetch approved usage: %w", err)
		}
		balance.UsedHours = used
	}

	balance.RemainingHours = balance.TotalHours - balance.UsedHours
	if balance.RemainingHours < 0 {
		balance.RemainingHours = 0
	}

	return balance, nil
}

// EnsureAvailable verifies at submission time that hours fit the remaining
// balance. Rejected requests never consumed balance, so approval needs no
// re-check.
func (c *EntitlementCalculator) EnsureAvailable(ctx context.Context, emp employee.Employee, code leave.TypeCode, year int, referenceDate *time.Time, hours float64) error {
	balance, err := c.ComputeBalance(ctx, emp, code, year, referenceDate)
	if err != nil {
		return err
	}

	if hours > balance.RemainingHours {
		return &leave.InsufficientBalanceError{
			TypeCode:       code,
			RequestedHours: hours,
			RemainingHours: balance.RemainingHours,
		}
	}
	return nil
}

// BalancesForYear computes the balance of every annual-reset type, for the
// "my balances" screen. Event-anchored types are excluded: they have no
// meaning without a concrete reference date.
func (c *EntitlementCalculator) BalancesForYear(ctx context.Context, emp employee.Employee, year int) ([]leave.Balance, error) {
	var balances []leave.Balance
	for _, policy := range c.registry.All() {
		if !policy.AnnualReset {
			continue
		}
		b, err := c.ComputeBalance(ctx, emp, policy.Code, year, nil)
		if err != nil {
			return nil, err
		}
		balances = append(balances, b)
	}
	return balances, nil
}
