package notification

import (
	"context"
	"fmt"

	"github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/domain/notification"
)

// Service writes notification records for the people an approval touches.
// It is invoked by the callers of the approval core (handlers, the escalation
// sweep), never by the core itself.
type Service struct {
	repo notification.Repository
}

func NewNotificationService(repo notification.Repository) *Service {
	return &Service{repo: repo}
}

// NotifyOpened informs the chosen approver that a request landed in their
// inbox. An unassigned request produces no record; the open path already logs
// it for operators.
func (s *Service) NotifyOpened(ctx context.Context, req approval.ApprovalRequest) error {
	if req.CurrentApproverID == nil {
		return nil
	}

	n := &notification.Notification{
		RecipientID: *req.CurrentApproverID,
		SenderID:    &req.RequesterID,
		Type:        notification.TypeApprovalRequested,
		Title:       "Approval needed",
		Message:     fmt.Sprintf("A %s is waiting for your approval", req.EntityType),
		Data: map[string]interface{}{
			"request_id":  req.ID,
			"entity_type": string(req.EntityType),
			"entity_id":   req.EntityID,
		},
	}

	return s.repo.Create(ctx, n)
}

// NotifyDecision informs the requester of the verdict.
func (s *Service) NotifyDecision(ctx context.Context, result approval.DecisionResult) error {
	req := result.Request

	notifType := notification.TypeApprovalApproved
	title := "Request approved"
	if req.Status == approval.StatusRejected {
		notifType = notification.TypeApprovalRejected
		title = "Request rejected"
	}

	n := &notification.Notification{
		RecipientID: req.RequesterID,
		SenderID:    req.DecidedBy,
		Type:        notifType,
		Title:       title,
		Message:     fmt.Sprintf("Your %s request is %s", req.EntityType, req.Status),
		Data: map[string]interface{}{
			"request_id":    req.ID,
			"entity_type":   string(req.EntityType),
			"entity_id":     req.EntityID,
			"entity_status": string(result.EntityStatus),
		},
	}

	return s.repo.Create(ctx, n)
}

// NotifyEscalated informs the newly assigned approver.
func (s *Service) NotifyEscalated(ctx context.Context, req approval.ApprovalRequest) error {
	if req.CurrentApproverID == nil {
		return nil
	}

	n := &notification.Notification{
		RecipientID: *req.CurrentApproverID,
		SenderID:    &req.RequesterID,
		Type:        notification.TypeApprovalEscalated,
		Title:       "Approval escalated to you",
		Message:     fmt.Sprintf("A %s approval was escalated to you", req.EntityType),
		Data: map[string]interface{}{
			"request_id":  req.ID,
			"entity_type": string(req.EntityType),
			"entity_id":   req.EntityID,
		},
	}

	return s.repo.Create(ctx, n)
}

// List returns a recipient's notifications, newest first.
func (s *Service) List(ctx context.Context, recipientID string, unreadOnly bool) ([]*notification.Notification, error) {
	return s.repo.GetByRecipient(ctx, recipientID, unreadOnly)
}

// MarkRead marks the given notifications read for the recipient.
func (s *Service) MarkRead(ctx context.Context, recipientID string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.repo.MarkAsRead(ctx, ids, recipientID)
}
