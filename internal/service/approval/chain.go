package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
)

// ChainBuilder walks the reporting hierarchy upward from an employee.
type ChainBuilder struct {
	employees employee.Repository
}

func NewChainBuilder(employees employee.Repository) *ChainBuilder {
	return &ChainBuilder{employees: employees}
}

// Chain returns the ordered managers above employeeID, nearest first, never
// including employeeID itself. The walk keeps a seen-set keyed by id: a
// revisited manager means the stored hierarchy has a cycle, which is a data
// problem, not a reason to fail, so the chain built so far is returned. A
// dangling manager reference likewise ends the chain.
func (b *ChainBuilder) Chain(ctx context.Context, employeeID string) ([]employee.Employee, error) {
	current, err := b.employees.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee %s: %w", employeeID, err)
	}

	seen := map[string]bool{employeeID: true}
	var chain []employee.Employee

	for current.ReportingTo != nil {
		nextID := *current.ReportingTo
		if seen[nextID] {
			slog.Warn("reporting hierarchy contains a cycle",
				"employee_id", employeeID,
				"revisited_id", nextID,
				"chain_length", len(chain),
			)
			break
		}

		manager, err := b.employees.GetByID(ctx, nextID)
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to load manager %s: %w", nextID, err)
		}

		seen[nextID] = true
		chain = append(chain, manager)
		current = manager
	}

	return chain, nil
}
