package approval

import (
	"context"
	"errors"
	"fmt"

	"github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/domain/delegation"
	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/clock"
)

// Resolver picks the employee who should act on a new approval request.
// Read-only; every lookup goes against current store data.
type Resolver struct {
	employees   employee.Repository
	delegations delegation.Repository
	clock       clock.Clock
}

func NewResolver(employees employee.Repository, delegations delegation.Repository, clk clock.Clock) *Resolver {
	return &Resolver{
		employees:   employees,
		delegations: delegations,
		clock:       clk,
	}
}

// Resolve applies the routing rules in strict priority order, short-circuiting
// on the first match:
//  1. active temporary delegation (most specific scope, then most recent)
//  2. the requester's direct manager, if that manager holds approval authority
//  3. role-based fallback: property_hr when a scope is given, regional_admin
//     otherwise, oldest active holder first
//
// A missing requester propagates employee.ErrEmployeeNotFound; no candidate at
// all yields approval.ErrNoApprover. Both are normal outcomes for the caller
// to handle, not failures.
func (r *Resolver) Resolve(ctx context.Context, requesterID string, scopeID *string) (employee.Employee, error) {
	active, err := r.delegations.ActiveMatching(ctx, scopeID, r.clock.Now())
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to look up active delegations: %w", err)
	}
	if chosen := pickDelegation(active); chosen != nil {
		delegate, err := r.employees.GetByID(ctx, chosen.DelegateID)
		if err != nil {
			return employee.Employee{}, fmt.Errorf("failed to load delegate %s: %w", chosen.DelegateID, err)
		}
		return delegate, nil
	}

	requester, err := r.employees.GetByID(ctx, requesterID)
	if err != nil {
		return employee.Employee{}, err
	}

	if requester.ReportingTo != nil {
		manager, err := r.employees.GetByID(ctx, *requester.ReportingTo)
		switch {
		case errors.Is(err, employee.ErrEmployeeNotFound):
			// Dangling manager reference; fall through to the role fallback.
		case err != nil:
			return employee.Employee{}, fmt.Errorf("failed to load manager %s: %w", *requester.ReportingTo, err)
		case manager.IsActive && manager.Role != nil && manager.Role.CanApprove():
			return manager, nil
		}
	}

	fallbackRole := employee.RoleRegionalAdmin
	if scopeID != nil {
		fallbackRole = employee.RolePropertyHR
	}
	fallback, err := r.employees.FirstActiveWithRole(ctx, fallbackRole, scopeID)
	if errors.Is(err, employee.ErrEmployeeNotFound) {
		return employee.Employee{}, approval.ErrNoApprover
	}
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to look up %s fallback: %w", fallbackRole, err)
	}

	return fallback, nil
}

// pickDelegation chooses among overlapping active delegations: narrowest scope
// wins, recency breaks ties. The store already orders its results this way,
// but deciding here keeps the rule in one place.
func pickDelegation(active []delegation.TemporaryDelegation) *delegation.TemporaryDelegation {
	var best *delegation.TemporaryDelegation
	for i := range active {
		d := &active[i]
		if best == nil {
			best = d
			continue
		}
		if d.ScopeType.MoreSpecificThan(best.ScopeType) {
			best = d
			continue
		}
		if d.ScopeType == best.ScopeType && d.CreatedAt.After(best.CreatedAt) {
			best = d
		}
	}
	return best
}
