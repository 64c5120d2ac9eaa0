package cron

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	domainApproval "github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/clock"
	approvalService "github.com/hotelops/hotelops-backend-go/internal/service/approval"
	notificationService "github.com/hotelops/hotelops-backend-go/internal/service/notification"
)

// EscalationJobs drives time-based escalation. The approval core itself has
// no timers; this sweep is the external scheduler collaborator that notices
// stale pending requests and calls Escalate on them.
type EscalationJobs struct {
	requests        domainApproval.Repository
	approvalSvc     *approvalService.Service
	notificationSvc *notificationService.Service
	clock           clock.Clock
	pendingTimeout  time.Duration
	sweepInterval   time.Duration
}

func NewEscalationJobs(
	requests domainApproval.Repository,
	approvalSvc *approvalService.Service,
	notificationSvc *notificationService.Service,
	clk clock.Clock,
	pendingTimeout time.Duration,
	sweepInterval time.Duration,
) *EscalationJobs {
	return &EscalationJobs{
		requests:        requests,
		approvalSvc:     approvalSvc,
		notificationSvc: notificationSvc,
		clock:           clk,
		pendingTimeout:  pendingTimeout,
		sweepInterval:   sweepInterval,
	}
}

func (j *EscalationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("escalate_stale_approvals", j.sweepInterval, j.EscalateStaleApprovals)
}

// EscalateStaleApprovals escalates every pending request older than the
// configured timeout. An exhausted chain is expected for requests already at
// the top; it is logged and the request stays with its last approver.
func (j *EscalationJobs) EscalateStaleApprovals(ctx context.Context) error {
	cutoff := j.clock.Now().Add(-j.pendingTimeout)

	stale, err := j.requests.PendingOlderThan(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("failed to list stale approval requests: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	slog.Info("Cron: escalating stale approval requests", "count", len(stale))

	escalated := 0
	for _, req := range stale {
		updated, err := j.approvalSvc.Escalate(ctx, req.ID)
		switch {
		case errors.Is(err, domainApproval.ErrChainExhausted):
			slog.Warn("escalation chain exhausted, manual intervention needed",
				"request_id", req.ID,
				"entity_type", req.EntityType,
				"entity_id", req.EntityID,
			)
			continue
		case errors.Is(err, domainApproval.ErrAlreadyDecided):
			// Decided between the sweep query and the escalate call.
			continue
		case err != nil:
			slog.Error("failed to escalate approval request", "request_id", req.ID, "error", err)
			continue
		}

		escalated++
		if err := j.notificationSvc.NotifyEscalated(ctx, updated); err != nil {
			slog.Error("failed to notify escalated approver", "request_id", req.ID, "error", err)
		}
	}

	slog.Info("Cron: stale approval sweep done", "stale", len(stale), "escalated", escalated)
	return nil
}
