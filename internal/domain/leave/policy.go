package leave

// TypeCode identifies a leave category with its own policy.
type TypeCode string

const (
	TypeAnnual      TypeCode = "ANNUAL"
	TypeSick        TypeCode = "SICK"
	TypePersonal    TypeCode = "PERSONAL"
	TypeMarriage    TypeCode = "MARRIAGE"
	TypeBereavement TypeCode = "BEREAVEMENT"
	TypeMaternity   TypeCode = "MATERNITY"
	TypePaternity   TypeCode = "PATERNITY"
)

type PaidType string

const (
	PaidTypeUnpaid PaidType = "unpaid"
	PaidTypeHalf   PaidType = "half"
	PaidTypePaid   PaidType = "paid"
)

// TypePolicy is the ruleset for one leave category. Policies are defined at
// configuration time and treated as immutable while requests are in flight.
type TypePolicy struct {
	Code     TypeCode `json:"code"`
	Name     string   `json:"name"`
	PaidType PaidType `json:"paid_type"`

	// AnnualReset: the allotment is recalculated and zeroed every calendar
	// year. When false the type is event-anchored: a fixed allotment is
	// granted once per qualifying event, tracked against a reference date.
	AnnualReset bool `json:"annual_reset"`

	// MaxDaysPerYear caps the allotment in days. Zero means the allotment is
	// derived elsewhere (ANNUAL uses the statutory seniority tiers).
	MaxDaysPerYear int `json:"max_days_per_year"`

	RequiresAttachment bool `json:"requires_attachment"`

	// Event-anchored types require a reference date on every request and a
	// usage window around it, in whole months.
	RequiresReferenceDate bool `json:"requires_reference_date"`
	WindowMonthsBefore    int  `json:"window_months_before"`
	WindowMonthsAfter     int  `json:"window_months_after"`
}

// PolicyRegistry is a read-only lookup of leave-type policies. Safe for
// concurrent use once built.
type PolicyRegistry struct {
	policies map[TypeCode]TypePolicy
}

func NewPolicyRegistry(policies []TypePolicy) *PolicyRegistry {
	m := make(map[TypeCode]TypePolicy, len(policies))
	for _, p := range policies {
		m[p.Code] = p
	}
	return &PolicyRegistry{policies: m}
}

// NewDefaultPolicyRegistry builds the statutory policy table. Window lengths
// for event-anchored types are business configuration, not law, and should be
// adjusted per deployment.
func NewDefaultPolicyRegistry() *PolicyRegistry {
	return NewPolicyRegistry([]TypePolicy{
		{
			Code:        TypeAnnual,
			Name:        "Annual Leave",
			PaidType:    PaidTypePaid,
			AnnualReset: true,
			// MaxDaysPerYear 0: allotment comes from the seniority tiers.
		},
		{
			Code:               TypeSick,
			Name:               "Sick Leave",
			PaidType:           PaidTypeHalf,
			AnnualReset:        true,
			MaxDaysPerYear:     30,
			RequiresAttachment: true,
		},
		{
			Code:           TypePersonal,
			Name:           "Personal Leave",
			PaidType:       PaidTypeUnpaid,
			AnnualReset:    true,
			MaxDaysPerYear: 14,
		},
		{
			Code:                  TypeMarriage,
			Name:                  "Marriage Leave",
			PaidType:              PaidTypePaid,
			MaxDaysPerYear:        14,
			RequiresReferenceDate: true,
			WindowMonthsBefore:    3,
			WindowMonthsAfter:     3,
		},
		{
			Code:                  TypeBereavement,
			Name:                  "Bereavement Leave",
			PaidType:              PaidTypePaid,
			MaxDaysPerYear:        8,
			RequiresReferenceDate: true,
			WindowMonthsAfter:     3,
		},
		{
			Code:                  TypeMaternity,
			Name:                  "Maternity Leave",
			PaidType:              PaidTypeHalf,
			MaxDaysPerYear:        56,
			RequiresAttachment:    true,
			RequiresReferenceDate: true,
			WindowMonthsBefore:    1,
			WindowMonthsAfter:     12,
		},
		{
			Code:                  TypePaternity,
			Name:                  "Paternity Leave",
			PaidType:              PaidTypePaid,
			MaxDaysPerYear:        7,
			RequiresAttachment:    true,
			RequiresReferenceDate: true,
			WindowMonthsAfter:     3,
		},
	})
}

// PolicyFor returns the policy for a code or ErrLeaveTypeNotFound.
func (r *PolicyRegistry) PolicyFor(code TypeCode) (TypePolicy, error) {
	p, ok := r.policies[code]
	if !ok {
		return TypePolicy{}, ErrLeaveTypeNotFound
	}
	return p, nil
}

// All returns every registered policy.
func (r *PolicyRegistry) All() []TypePolicy {
	out := make([]TypePolicy, 0, len(r.policies))
	for _, p := range r.policies {
		out = append(out, p)
	}
	return out
}
