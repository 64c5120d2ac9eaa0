package approval

import (
	"time"

	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Decision is the verdict an approver hands down on a pending request.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// ApprovalRequest is the audit record gating a status change on a stateful
// entity. At most one pending request exists per (entity_type, entity_id);
// once decided it is never mutated again, and never deleted.
type ApprovalRequest struct {
	ID                string
	EntityType        workflow.EntityType
	EntityID          string
	RequesterID       string
	CurrentApproverID *string
	// TriedApproverIDs records every approver the request has been routed
	// to, so escalation never hands it back to someone who already had it.
	TriedApproverIDs []string
	Status           Status
	DecidedBy        *string
	DecidedAt        *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Tried reports whether the request has already been routed to employeeID.
func (r ApprovalRequest) Tried(employeeID string) bool {
	for _, id := range r.TriedApproverIDs {
		if id == employeeID {
			return true
		}
	}
	return false
}

// decisionOutcomes maps an approver's verdict to the status the gated entity
// moves to. Which transition an approval "unlocks" is fixed per kind: tasks
// and tickets start work on approval, job postings go live, leave requests
// and documents carry the verdict directly.
var decisionOutcomes = map[workflow.EntityType]map[Decision]workflow.Status{
	workflow.EntityTask: {
		DecisionApproved: "in_progress",
		DecisionRejected: "cancelled",
	},
	workflow.EntityMaintenanceTicket: {
		DecisionApproved: "in_progress",
		DecisionRejected: "cancelled",
	},
	workflow.EntityLeaveRequest: {
		DecisionApproved: "approved",
		DecisionRejected: "rejected",
	},
	workflow.EntityJobPosting: {
		DecisionApproved: "open",
		DecisionRejected: "cancelled",
	},
	workflow.EntityDocument: {
		DecisionApproved: "published",
		DecisionRejected: "draft",
	},
}

// OutcomeStatus returns the entity status a decision drives the gated entity
// to. The second return is false for unknown kinds.
func OutcomeStatus(entityType workflow.EntityType, decision Decision) (workflow.Status, bool) {
	status, ok := decisionOutcomes[entityType][decision]
	return status, ok
}
