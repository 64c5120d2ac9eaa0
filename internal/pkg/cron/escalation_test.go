package cron

import (
	"context"
	"testing"
	"time"

	"github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/domain/delegation"
	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
	"github.com/hotelops/hotelops-backend-go/internal/domain/notification"
	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/clock"
	approvalService "github.com/hotelops/hotelops-backend-go/internal/service/approval"
	notificationService "github.com/hotelops/hotelops-backend-go/internal/service/notification"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Minimal in-memory stores, just enough to drive the sweep end to end.

type sweepEmployees map[string]employee.Employee

func (s sweepEmployees) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := s[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (s sweepEmployees) FirstActiveWithRole(context.Context, employee.Role, *string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s sweepEmployees) GetActiveByProperty(context.Context, string) ([]employee.Employee, error) {
	return nil, nil
}

type sweepDelegations struct{}

func (sweepDelegations) Create(_ context.Context, d delegation.TemporaryDelegation) (delegation.TemporaryDelegation, error) {
	return d, nil
}

func (sweepDelegations) GetByID(context.Context, string) (delegation.TemporaryDelegation, error) {
	return delegation.TemporaryDelegation{}, delegation.ErrDelegationNotFound
}

func (sweepDelegations) ActiveMatching(context.Context, *string, time.Time) ([]delegation.TemporaryDelegation, error) {
	return nil, nil
}

func (sweepDelegations) ListByDelegator(context.Context, string) ([]delegation.TemporaryDelegation, error) {
	return nil, nil
}

type sweepRequests struct {
	requests map[string]approval.ApprovalRequest
}

func (r *sweepRequests) Create(_ context.Context, req approval.ApprovalRequest) (approval.ApprovalRequest, error) {
	r.requests[req.ID] = req
	return req, nil
}

func (r *sweepRequests) GetByID(_ context.Context, id string) (approval.ApprovalRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return approval.ApprovalRequest{}, approval.ErrRequestNotFound
	}
	return req, nil
}

func (r *sweepRequests) MarkDecided(_ context.Context, id string, status approval.Status, actorID string, decidedAt time.Time) error {
	req := r.requests[id]
	req.Status = status
	req.DecidedBy = &actorID
	req.DecidedAt = &decidedAt
	r.requests[id] = req
	return nil
}

func (r *sweepRequests) Reassign(_ context.Context, id string, approverID string) error {
	req := r.requests[id]
	req.CurrentApproverID = &approverID
	req.TriedApproverIDs = append(req.TriedApproverIDs, approverID)
	r.requests[id] = req
	return nil
}

func (r *sweepRequests) ListByApprover(context.Context, string, bool) ([]approval.ApprovalRequest, error) {
	return nil, nil
}

func (r *sweepRequests) ListByEntity(context.Context, workflow.EntityType, string) ([]approval.ApprovalRequest, error) {
	return nil, nil
}

func (r *sweepRequests) PendingOlderThan(_ context.Context, cutoff time.Time) ([]approval.ApprovalRequest, error) {
	var out []approval.ApprovalRequest
	for _, req := range r.requests {
		if req.Status == approval.StatusPending && req.CreatedAt.Before(cutoff) {
			out = append(out, req)
		}
	}
	return out, nil
}

type sweepStatuses map[string]workflow.Status

func (s sweepStatuses) GetStatus(_ context.Context, entityType workflow.EntityType, entityID string) (workflow.Status, error) {
	status, ok := s[string(entityType)+"/"+entityID]
	if !ok {
		return "", workflow.ErrEntityNotFound
	}
	return status, nil
}

func (s sweepStatuses) SetStatus(_ context.Context, entityType workflow.EntityType, entityID string, status workflow.Status) error {
	s[string(entityType)+"/"+entityID] = status
	return nil
}

type sweepNotifications struct {
	created []*notification.Notification
}

func (r *sweepNotifications) Create(_ context.Context, n *notification.Notification) error {
	r.created = append(r.created, n)
	return nil
}

func (r *sweepNotifications) GetByRecipient(context.Context, string, bool) ([]*notification.Notification, error) {
	return nil, nil
}

func (r *sweepNotifications) MarkAsRead(context.Context, []string, string) error {
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func strPtr(s string) *string { return &s }

func rolePtr(r employee.Role) *employee.Role { return &r }

func TestEscalateStaleApprovals(t *testing.T) {
	now := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	clk := clock.Fixed{Time: now}

	employees := sweepEmployees{
		"staff-1": {ID: "staff-1", ReportingTo: strPtr("head-1"), Role: rolePtr(employee.RoleStaff), IsActive: true},
		"head-1":  {ID: "head-1", ReportingTo: strPtr("mgr-1"), Role: rolePtr(employee.RoleDepartmentHead), IsActive: true},
		"mgr-1":   {ID: "mgr-1", Role: rolePtr(employee.RolePropertyManager), IsActive: true},
	}

	requests := &sweepRequests{requests: map[string]approval.ApprovalRequest{
		// Stale: pending with head-1 for three days.
		"req-stale": {
			ID:                "req-stale",
			EntityType:        workflow.EntityTask,
			EntityID:          "task-1",
			RequesterID:       "staff-1",
			CurrentApproverID: strPtr("head-1"),
			TriedApproverIDs:  []string{"head-1"},
			Status:            approval.StatusPending,
			CreatedAt:         now.AddDate(0, 0, -3),
		},
		// Fresh: opened an hour ago, must be left alone.
		"req-fresh": {
			ID:                "req-fresh",
			EntityType:        workflow.EntityTask,
			EntityID:          "task-2",
			RequesterID:       "staff-1",
			CurrentApproverID: strPtr("head-1"),
			TriedApproverIDs:  []string{"head-1"},
			Status:            approval.StatusPending,
			CreatedAt:         now.Add(-time.Hour),
		},
		// Stale but already at the top of its chain: mgr-1 has no manager,
		// so the sweep logs exhaustion and moves on.
		"req-stuck": {
			ID:                "req-stuck",
			EntityType:        workflow.EntityTask,
			EntityID:          "task-3",
			RequesterID:       "staff-1",
			CurrentApproverID: strPtr("mgr-1"),
			TriedApproverIDs:  []string{"head-1", "mgr-1"},
			Status:            approval.StatusPending,
			CreatedAt:         now.AddDate(0, 0, -5),
		},
	}}

	delegations := sweepDelegations{}
	approvalSvc := approvalService.NewService(
		passthroughTx{},
		requests,
		sweepStatuses{},
		approvalService.NewResolver(employees, delegations, clk),
		approvalService.NewChainBuilder(employees),
		clk,
	)
	notifications := &sweepNotifications{}
	notificationSvc := notificationService.NewNotificationService(notifications)

	jobs := NewEscalationJobs(requests, approvalSvc, notificationSvc, clk, 48*time.Hour, time.Minute)

	scheduler := NewScheduler()
	jobs.RegisterJobs(scheduler)
	scheduler.RunOnce(context.Background())

	stale := requests.requests["req-stale"]
	require.NotNil(t, stale.CurrentApproverID)
	assert.Equal(t, "mgr-1", *stale.CurrentApproverID, "stale request climbs to head-1's manager")
	assert.Equal(t, []string{"head-1", "mgr-1"}, stale.TriedApproverIDs)

	fresh := requests.requests["req-fresh"]
	assert.Equal(t, "head-1", *fresh.CurrentApproverID)

	stuck := requests.requests["req-stuck"]
	assert.Equal(t, "mgr-1", *stuck.CurrentApproverID, "exhausted chain leaves the last approver in place")
	assert.Equal(t, approval.StatusPending, stuck.Status)

	// Only the successfully escalated request produced a notification.
	require.Len(t, notifications.created, 1)
	assert.Equal(t, "mgr-1", notifications.created[0].RecipientID)
	assert.Equal(t, notification.TypeApprovalEscalated, notifications.created[0].Type)
}
