package employee

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleSupervisor Role = "supervisor"
	RoleEmployee   Role = "employee"
)

// Employee entity. The org chart is kept as a flat arena keyed by id with a
// SupervisorID pointer only, never an embedded record, so supervisor chains
// cannot form reference cycles.
type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`

	// HireDate is nullable: entitlement cannot be computed without it.
	HireDate     *time.Time `json:"hire_date,omitempty"`
	SupervisorID *string    `json:"supervisor_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
