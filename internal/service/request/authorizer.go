package request

import (
	"context"
	"fmt"

	"github.com/stafflyhq/hrops-backend-go/internal/domain/employee"
	"github.com/stafflyhq/hrops-backend-go/internal/domain/request"
)

// Authorizer decides whether an actor may approve or reject a request. The
// lifecycle manager only records actor identity; who holds the capability is
// this collaborator's concern.
type Authorizer interface {
	CanDecide(ctx context.Context, actorID string, req request.Request) (bool, error)
}

// maxChainDepth bounds the supervisor walk in case of bad org data.
const maxChainDepth = 10

// SupervisorAuthorizer grants the capability to admins and to anyone in the
// requester's supervisor chain. The chain is walked through SupervisorID
// pointers over the employee arena, never through embedded records.
type SupervisorAuthorizer struct {
	employees employee.EmployeeRepository
}

func NewSupervisorAuthorizer(employees employee.EmployeeRepository) *SupervisorAuthorizer {
	return &SupervisorAuthorizer{employees: employees}
}

func (a *SupervisorAuthorizer) CanDecide(ctx context.Context, actorID string, req request.Request) (bool, error) {
	actor, err := a.employees.GetByID(ctx, actorID)
	if err != nil {
		return false, fmt.Errorf("failed to get actor: %w", err)
	}
	if actor.Role == employee.RoleAdmin {
		return true, nil
	}

	// Requesters never decide their own requests.
	if actorID == req.EmployeeID {
		return false, nil
	}

	current, err := a.employees.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return false, fmt.Errorf("failed to get requester: %w", err)
	}

	seen := map[string]struct{}{current.ID: {}}
	for depth := 0; depth < maxChainDepth; depth++ {
		if current.SupervisorID == nil {
			return false, nil
		}
		if *current.SupervisorID == actorID {
			return true, nil
		}
		if _, dup := seen[*current.SupervisorID]; dup {
			return false, nil
		}
		seen[*current.SupervisorID] = struct{}{}

		current, err = a.employees.GetByID(ctx, *current.SupervisorID)
		if err != nil {
			return false, fmt.Errorf("failed to walk supervisor chain: %w", err)
		}
	}
	return false, nil
}
