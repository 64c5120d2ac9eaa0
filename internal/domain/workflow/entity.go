package workflow

import "context"

// EntityType identifies a kind of stateful entity whose status changes are
// gated by approval.
type EntityType string

const (
	EntityTask              EntityType = "task"
	EntityMaintenanceTicket EntityType = "maintenance_ticket"
	EntityLeaveRequest      EntityType = "leave_request"
	EntityJobPosting        EntityType = "job_posting"
	EntityDocument          EntityType = "document"
)

// AllEntityTypes returns every entity kind with a transition table.
func AllEntityTypes() []EntityType {
	return []EntityType{
		EntityTask,
		EntityMaintenanceTicket,
		EntityLeaveRequest,
		EntityJobPosting,
		EntityDocument,
	}
}

func (t EntityType) IsValid() bool {
	_, ok := transitions[t]
	return ok
}

// Status is a state in an entity kind's lifecycle.
type Status string

// EntityStatusRepository reads and writes the status column of the stateful
// entities the approvals gate. SetStatus must only be called after the
// transition has been validated.
type EntityStatusRepository interface {
	GetStatus(ctx context.Context, entityType EntityType, entityID string) (Status, error)
	SetStatus(ctx context.Context, entityType EntityType, entityID string, status Status) error
}
