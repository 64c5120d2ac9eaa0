package approval

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/domain/delegation"
	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
)

// In-memory stand-ins for the postgresql repositories, enforcing the same
// contracts (one pending request per entity, decide-once) so the service can
// be exercised without a database.

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo(emps ...employee.Employee) *fakeEmployeeRepo {
	r := &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
	for _, e := range emps {
		r.employees[e.ID] = e
	}
	return r
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) FirstActiveWithRole(_ context.Context, role employee.Role, propertyID *string) (employee.Employee, error) {
	var matches []employee.Employee
	for _, e := range r.employees {
		if !e.IsActive || !e.HasRole(role) {
			continue
		}
		if propertyID != nil && (e.PropertyID == nil || *e.PropertyID != *propertyID) {
			continue
		}
		matches = append(matches, e)
	}
	if len(matches) == 0 {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].CreatedAt.Before(matches[j].CreatedAt)
	})
	return matches[0], nil
}

func (r *fakeEmployeeRepo) GetActiveByProperty(_ context.Context, propertyID string) ([]employee.Employee, error) {
	var out []employee.Employee
	for _, e := range r.employees {
		if e.IsActive && e.PropertyID != nil && *e.PropertyID == propertyID {
			out = append(out, e)
		}
	}
	return out, nil
}

type fakeDelegationRepo struct {
	delegations []delegation.TemporaryDelegation
}

func (r *fakeDelegationRepo) Create(_ context.Context, d delegation.TemporaryDelegation) (delegation.TemporaryDelegation, error) {
	r.delegations = append(r.delegations, d)
	return d, nil
}

func (r *fakeDelegationRepo) GetByID(_ context.Context, id string) (delegation.TemporaryDelegation, error) {
	for _, d := range r.delegations {
		if d.ID == id {
			return d, nil
		}
	}
	return delegation.TemporaryDelegation{}, delegation.ErrDelegationNotFound
}

func (r *fakeDelegationRepo) ActiveMatching(_ context.Context, propertyID *string, now time.Time) ([]delegation.TemporaryDelegation, error) {
	var out []delegation.TemporaryDelegation
	for _, d := range r.delegations {
		if !d.ActiveAt(now) {
			continue
		}
		switch {
		case d.ScopeType == delegation.ScopeAll:
			out = append(out, d)
		case propertyID != nil && d.ScopeID != nil && *d.ScopeID == *propertyID:
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *fakeDelegationRepo) ListByDelegator(_ context.Context, delegatorID string) ([]delegation.TemporaryDelegation, error) {
	var out []delegation.TemporaryDelegation
	for _, d := range r.delegations {
		if d.DelegatorID == delegatorID {
			out = append(out, d)
		}
	}
	return out, nil
}

type fakeApprovalRepo struct {
	requests map[string]approval.ApprovalRequest
	nextID   int
}

func newFakeApprovalRepo() *fakeApprovalRepo {
	return &fakeApprovalRepo{requests: make(map[string]approval.ApprovalRequest)}
}

func (r *fakeApprovalRepo) Create(_ context.Context, req approval.ApprovalRequest) (approval.ApprovalRequest, error) {
	for _, existing := range r.requests {
		if existing.EntityType == req.EntityType &&
			existing.EntityID == req.EntityID &&
			existing.Status == approval.StatusPending {
			return approval.ApprovalRequest{}, approval.ErrPendingRequestExists
		}
	}
	r.nextID++
	req.ID = fmt.Sprintf("req-%d", r.nextID)
	r.requests[req.ID] = req
	return req, nil
}

func (r *fakeApprovalRepo) GetByID(_ context.Context, id string) (approval.ApprovalRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return approval.ApprovalRequest{}, approval.ErrRequestNotFound
	}
	return req, nil
}

func (r *fakeApprovalRepo) MarkDecided(_ context.Context, id string, status approval.Status, actorID string, decidedAt time.Time) error {
	req, ok := r.requests[id]
	if !ok {
		return approval.ErrRequestNotFound
	}
	if req.Status != approval.StatusPending {
		return approval.ErrAlreadyDecided
	}
	req.Status = status
	req.DecidedBy = &actorID
	req.DecidedAt = &decidedAt
	r.requests[id] = req
	return nil
}

func (r *fakeApprovalRepo) Reassign(_ context.Context, id string, approverID string) error {
	req, ok := r.requests[id]
	if !ok {
		return approval.ErrRequestNotFound
	}
	if req.Status != approval.StatusPending {
		return approval.ErrAlreadyDecided
	}
	req.CurrentApproverID = &approverID
	req.TriedApproverIDs = append(req.TriedApproverIDs, approverID)
	r.requests[id] = req
	return nil
}

func (r *fakeApprovalRepo) ListByApprover(_ context.Context, approverID string, pendingOnly bool) ([]approval.ApprovalRequest, error) {
	var out []approval.ApprovalRequest
	for _, req := range r.requests {
		if req.CurrentApproverID == nil || *req.CurrentApproverID != approverID {
			continue
		}
		if pendingOnly && req.Status != approval.StatusPending {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (r *fakeApprovalRepo) ListByEntity(_ context.Context, entityType workflow.EntityType, entityID string) ([]approval.ApprovalRequest, error) {
	var out []approval.ApprovalRequest
	for _, req := range r.requests {
		if req.EntityType == entityType && req.EntityID == entityID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (r *fakeApprovalRepo) PendingOlderThan(_ context.Context, cutoff time.Time) ([]approval.ApprovalRequest, error) {
	var out []approval.ApprovalRequest
	for _, req := range r.requests {
		if req.Status == approval.StatusPending && req.CreatedAt.Before(cutoff) {
			out = append(out, req)
		}
	}
	return out, nil
}

type fakeEntityStatusRepo struct {
	statuses map[string]workflow.Status
}

func newFakeEntityStatusRepo() *fakeEntityStatusRepo {
	return &fakeEntityStatusRepo{statuses: make(map[string]workflow.Status)}
}

func statusKey(entityType workflow.EntityType, entityID string) string {
	return string(entityType) + "/" + entityID
}

func (r *fakeEntityStatusRepo) GetStatus(_ context.Context, entityType workflow.EntityType, entityID string) (workflow.Status, error) {
	status, ok := r.statuses[statusKey(entityType, entityID)]
	if !ok {
		return "", workflow.ErrEntityNotFound
	}
	return status, nil
}

func (r *fakeEntityStatusRepo) SetStatus(_ context.Context, entityType workflow.EntityType, entityID string, status workflow.Status) error {
	r.statuses[statusKey(entityType, entityID)] = status
	return nil
}

// passthroughTx runs the function directly; the fakes above apply writes
// immediately so there is nothing to commit or roll back.
type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
