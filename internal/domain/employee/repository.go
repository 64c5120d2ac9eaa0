package employee

import "context"

// Repository is the organization graph accessor: employees, their manager
// references and role assignments. Read-only from this service's point of view.
type Repository interface {
	GetByID(ctx context.Context, id string) (Employee, error)
	// FirstActiveWithRole returns the oldest active employee holding role,
	// optionally narrowed to a property. Creation-time order keeps the
	// role-based fallback deterministic.
	FirstActiveWithRole(ctx context.Context, role Role, propertyID *string) (Employee, error)
	GetActiveByProperty(ctx context.Context, propertyID string) ([]Employee, error)
}
