package delegation

import (
	"context"
	"fmt"

	"github.com/hotelops/hotelops-backend-go/internal/domain/delegation"
	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
)

// Service administers temporary delegations. The resolver is the only
// consumer of the records it creates.
type Service struct {
	delegations delegation.Repository
	employees   employee.Repository
}

func NewDelegationService(delegations delegation.Repository, employees employee.Repository) *Service {
	return &Service{
		delegations: delegations,
		employees:   employees,
	}
}

// Create validates both parties exist and are active, then persists the grant.
func (s *Service) Create(ctx context.Context, req delegation.CreateDelegationRequest) (delegation.TemporaryDelegation, error) {
	if err := req.Validate(); err != nil {
		return delegation.TemporaryDelegation{}, err
	}

	for _, id := range []string{req.DelegatorID, req.DelegateID} {
		emp, err := s.employees.GetByID(ctx, id)
		if err != nil {
			return delegation.TemporaryDelegation{}, fmt.Errorf("failed to load employee %s: %w", id, err)
		}
		if !emp.IsActive {
			return delegation.TemporaryDelegation{}, fmt.Errorf("employee %s: %w", id, employee.ErrEmployeeNotFound)
		}
	}

	created, err := s.delegations.Create(ctx, req.ToEntity())
	if err != nil {
		return delegation.TemporaryDelegation{}, fmt.Errorf("failed to create delegation: %w", err)
	}

	return created, nil
}

// ListByDelegator returns every delegation an employee has granted.
func (s *Service) ListByDelegator(ctx context.Context, delegatorID string) ([]delegation.TemporaryDelegation, error) {
	return s.delegations.ListByDelegator(ctx, delegatorID)
}
