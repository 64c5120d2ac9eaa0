package postgresql

import (
	"context"
	"errors"
	"time"

	"github.com/hotelops/hotelops-backend-go/internal/domain/approval"
	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolation is the SQLSTATE raised by the partial unique index
// enforcing one pending request per (entity_type, entity_id).
const uniqueViolation = "23505"

type approvalRequestRepositoryImpl struct {
	db *database.DB
}

func NewApprovalRequestRepository(db *database.DB) approval.Repository {
	return &approvalRequestRepositoryImpl{db: db}
}

func (r *approvalRequestRepositoryImpl) Create(ctx context.Context, req approval.ApprovalRequest) (approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.TriedApproverIDs == nil {
		req.TriedApproverIDs = []string{}
	}

	query := `
		INSERT INTO approval_requests (
			id, entity_type, entity_id, requester_id,
			current_approver_id, tried_approver_ids, status,
			created_at, updated_at
		) VALUES (
			uuidv7(), $1, $2, $3,
			$4, $5, $6,
			NOW(), NOW()
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		string(req.EntityType), req.EntityID, req.RequesterID,
		req.CurrentApproverID, req.TriedApproverIDs, string(req.Status),
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return approval.ApprovalRequest{}, approval.ErrPendingRequestExists
		}
		return approval.ApprovalRequest{}, err
	}

	return req, nil
}

const approvalRequestColumns = `
	id, entity_type, entity_id, requester_id,
	current_approver_id, tried_approver_ids, status,
	decided_by, decided_at, created_at, updated_at
`

func scanApprovalRequest(row pgx.Row) (approval.ApprovalRequest, error) {
	var req approval.ApprovalRequest
	err := row.Scan(
		&req.ID, &req.EntityType, &req.EntityID, &req.RequesterID,
		&req.CurrentApproverID, &req.TriedApproverIDs, &req.Status,
		&req.DecidedBy, &req.DecidedAt, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return approval.ApprovalRequest{}, err
	}
	return req, nil
}

func (r *approvalRequestRepositoryImpl) GetByID(ctx context.Context, id string) (approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalRequestColumns + `
		FROM approval_requests
		WHERE id = $1
	`

	req, err := scanApprovalRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return approval.ApprovalRequest{}, approval.ErrRequestNotFound
		}
		return approval.ApprovalRequest{}, err
	}

	return req, nil
}

// MarkDecided conditions the update on the request still being pending, so
// exactly one of two concurrent decisions wins.
func (r *approvalRequestRepositoryImpl) MarkDecided(ctx context.Context, id string, status approval.Status, actorID string, decidedAt time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE approval_requests
		SET status = $2, decided_by = $3, decided_at = $4, updated_at = $4
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, string(status), actorID, decidedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return approval.ErrAlreadyDecided
	}

	return nil
}

func (r *approvalRequestRepositoryImpl) Reassign(ctx context.Context, id string, approverID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE approval_requests
		SET current_approver_id = $2,
		    tried_approver_ids = array_append(tried_approver_ids, $2),
		    updated_at = NOW()
		WHERE id = $1 AND status = 'pending'
	`

	tag, err := q.Exec(ctx, query, id, approverID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return approval.ErrAlreadyDecided
	}

	return nil
}

func (r *approvalRequestRepositoryImpl) ListByApprover(ctx context.Context, approverID string, pendingOnly bool) ([]approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalRequestColumns + `
		FROM approval_requests
		WHERE current_approver_id = $1
		  AND ($2 = false OR status = 'pending')
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, approverID, pendingOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApprovalRequests(rows)
}

func (r *approvalRequestRepositoryImpl) ListByEntity(ctx context.Context, entityType workflow.EntityType, entityID string) ([]approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalRequestColumns + `
		FROM approval_requests
		WHERE entity_type = $1 AND entity_id = $2
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, string(entityType), entityID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApprovalRequests(rows)
}

func (r *approvalRequestRepositoryImpl) PendingOlderThan(ctx context.Context, cutoff time.Time) ([]approval.ApprovalRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + approvalRequestColumns + `
		FROM approval_requests
		WHERE status = 'pending' AND created_at < $1
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, cutoff)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectApprovalRequests(rows)
}

func collectApprovalRequests(rows pgx.Rows) ([]approval.ApprovalRequest, error) {
	var requests []approval.ApprovalRequest
	for rows.Next() {
		req, err := scanApprovalRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
