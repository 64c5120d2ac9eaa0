package approval

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/domain/employee"
	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/clock"
)

// TxRunner executes fn inside a single store transaction. The postgresql
// package provides the production implementation.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service orchestrates approval requests: opening them with a resolved
// approver, deciding them together with the gated entity's transition, and
// escalating them along the reporting chain.
type Service struct {
	tx       TxRunner
	requests approval.Repository
	entities workflow.EntityStatusRepository
	resolver *Resolver
	chains   *ChainBuilder
	clock    clock.Clock
}

func NewService(
	tx TxRunner,
	requests approval.Repository,
	entities workflow.EntityStatusRepository,
	resolver *Resolver,
	chains *ChainBuilder,
	clk clock.Clock,
) *Service {
	return &Service{
		tx:       tx,
		requests: requests,
		entities: entities,
		resolver: resolver,
		chains:   chains,
		clock:    clk,
	}
}

// Open creates a pending approval request for an entity. The store rejects a
// second pending request for the same entity with ErrPendingRequestExists.
// When no approver can be resolved the request is still created, unassigned,
// and logged for operator attention; dropping it silently would strand the
// entity.
func (s *Service) Open(ctx context.Context, req approval.OpenApprovalRequest) (approval.ApprovalRequest, error) {
	record := approval.ApprovalRequest{
		EntityType:  workflow.EntityType(req.EntityType),
		EntityID:    req.EntityID,
		RequesterID: req.RequesterID,
		Status:      approval.StatusPending,
	}

	approver, err := s.resolver.Resolve(ctx, req.RequesterID, req.ScopeID)
	switch {
	case errors.Is(err, approval.ErrNoApprover) || errors.Is(err, employee.ErrEmployeeNotFound):
		slog.Warn("approval request opened without an approver",
			"entity_type", req.EntityType,
			"entity_id", req.EntityID,
			"requester_id", req.RequesterID,
		)
	case err != nil:
		return approval.ApprovalRequest{}, fmt.Errorf("failed to resolve approver: %w", err)
	default:
		record.CurrentApproverID = &approver.ID
		record.TriedApproverIDs = []string{approver.ID}
	}

	created, err := s.requests.Create(ctx, record)
	if err != nil {
		return approval.ApprovalRequest{}, err
	}

	return created, nil
}

// Decide resolves a pending request and applies the corresponding status
// transition on the gated entity. Both writes happen in one transaction:
// either the request is decided and the entity moves, or neither changes.
// A request that already left pending yields ErrAlreadyDecided, which is how
// the loser of a concurrent decide finds out.
func (s *Service) Decide(ctx context.Context, requestID string, decision approval.Decision, actorID string) (approval.DecisionResult, error) {
	if !decision.IsValid() {
		return approval.DecisionResult{}, approval.ErrInvalidDecision
	}

	var result approval.DecisionResult
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		request, err := s.requests.GetByID(ctx, requestID)
		if err != nil {
			return err
		}
		if request.Status != approval.StatusPending {
			return approval.ErrAlreadyDecided
		}

		target, ok := approval.OutcomeStatus(request.EntityType, decision)
		if !ok {
			slog.Error("no decision outcome configured", "entity_type", request.EntityType)
			return fmt.Errorf("%w: %s", workflow.ErrUnknownState, request.EntityType)
		}

		current, err := s.entities.GetStatus(ctx, request.EntityType, request.EntityID)
		if err != nil {
			return fmt.Errorf("failed to load %s %s: %w", request.EntityType, request.EntityID, err)
		}
		if err := workflow.Validate(request.EntityType, current, target); err != nil {
			return err
		}

		now := s.clock.Now()
		if err := s.requests.MarkDecided(ctx, requestID, approval.Status(decision), actorID, now); err != nil {
			return err
		}
		if err := s.entities.SetStatus(ctx, request.EntityType, request.EntityID, target); err != nil {
			return fmt.Errorf("failed to apply %s transition: %w", request.EntityType, err)
		}

		request.Status = approval.Status(decision)
		request.DecidedBy = &actorID
		request.DecidedAt = &now
		request.UpdatedAt = now
		result = approval.DecisionResult{Request: request, EntityStatus: target}
		return nil
	})
	if err != nil {
		return approval.DecisionResult{}, err
	}

	return result, nil
}

// Escalate reassigns a pending request to the next untried candidate in the
// chain above its current approver (above the requester when the request was
// opened unassigned). ErrChainExhausted leaves the request pending with its
// last approver; getting it unstuck from there is a human's job.
func (s *Service) Escalate(ctx context.Context, requestID string) (approval.ApprovalRequest, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return approval.ApprovalRequest{}, err
	}
	if request.Status != approval.StatusPending {
		return approval.ApprovalRequest{}, approval.ErrAlreadyDecided
	}

	anchor := request.RequesterID
	if request.CurrentApproverID != nil {
		anchor = *request.CurrentApproverID
	}

	chain, err := s.chains.Chain(ctx, anchor)
	if err != nil {
		return approval.ApprovalRequest{}, fmt.Errorf("failed to build escalation chain: %w", err)
	}

	for _, candidate := range chain {
		if !candidate.IsActive || request.Tried(candidate.ID) {
			continue
		}
		if err := s.requests.Reassign(ctx, requestID, candidate.ID); err != nil {
			return approval.ApprovalRequest{}, err
		}
		slog.Info("approval request escalated",
			"request_id", requestID,
			"from", anchor,
			"to", candidate.ID,
		)
		id := candidate.ID
		request.CurrentApproverID = &id
		request.TriedApproverIDs = append(request.TriedApproverIDs, id)
		return request, nil
	}

	return approval.ApprovalRequest{}, approval.ErrChainExhausted
}

// Get returns a single approval request.
func (s *Service) Get(ctx context.Context, requestID string) (approval.ApprovalRequest, error) {
	return s.requests.GetByID(ctx, requestID)
}

// Inbox lists the requests currently assigned to an approver.
func (s *Service) Inbox(ctx context.Context, approverID string, pendingOnly bool) ([]approval.ApprovalRequest, error) {
	return s.requests.ListByApprover(ctx, approverID, pendingOnly)
}

// History lists every request ever opened for an entity, newest first.
func (s *Service) History(ctx context.Context, entityType workflow.EntityType, entityID string) ([]approval.ApprovalRequest, error) {
	if !entityType.IsValid() {
		return nil, fmt.Errorf("%w: %s", workflow.ErrUnknownState, entityType)
	}
	return s.requests.ListByEntity(ctx, entityType, entityID)
}

// Chain exposes the escalation chain for an employee.
func (s *Service) Chain(ctx context.Context, employeeID string) ([]employee.Employee, error) {
	return s.chains.Chain(ctx, employeeID)
}
