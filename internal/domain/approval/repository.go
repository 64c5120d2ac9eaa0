package approval

import (
	"context"
	"time"

	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
)

type Repository interface {
	// Create inserts a new pending request. The store enforces the
	// one-pending-per-entity rule atomically; a second pending request for
	// the same (entity_type, entity_id) fails with ErrPendingRequestExists.
	Create(ctx context.Context, req ApprovalRequest) (ApprovalRequest, error)
	GetByID(ctx context.Context, id string) (ApprovalRequest, error)
	// MarkDecided flips a request out of pending, conditioned on it still
	// being pending. Exactly one of two concurrent callers wins; the loser
	// gets ErrAlreadyDecided.
	MarkDecided(ctx context.Context, id string, status Status, actorID string, decidedAt time.Time) error
	// Reassign points a still-pending request at a new approver and appends
	// the previous one to the tried list.
	Reassign(ctx context.Context, id string, approverID string) error
	ListByApprover(ctx context.Context, approverID string, pendingOnly bool) ([]ApprovalRequest, error)
	ListByEntity(ctx context.Context, entityType workflow.EntityType, entityID string) ([]ApprovalRequest, error)
	// PendingOlderThan returns pending requests created before the cutoff,
	// for the escalation sweep.
	PendingOlderThan(ctx context.Context, cutoff time.Time) ([]ApprovalRequest, error)
}
