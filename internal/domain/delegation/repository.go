package delegation

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d TemporaryDelegation) (TemporaryDelegation, error)
	GetByID(ctx context.Context, id string) (TemporaryDelegation, error)
	// ActiveMatching returns delegations active at now whose scope covers the
	// given property (property-scoped matches plus all-scoped ones; only
	// all-scoped when propertyID is nil), ordered by scope specificity then
	// recency so the first element is the one the resolver should use.
	ActiveMatching(ctx context.Context, propertyID *string, now time.Time) ([]TemporaryDelegation, error)
	ListByDelegator(ctx context.Context, delegatorID string) ([]TemporaryDelegation, error)
}
