package postgresql

import (
	"context"
	"time"

	"github.com/hotelops/hotelops-backend-go/internal/domain/delegation"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type delegationRepositoryImpl struct {
	db *database.DB
}

func NewDelegationRepository(db *database.DB) delegation.Repository {
	return &delegationRepositoryImpl{db: db}
}

func (r *delegationRepositoryImpl) Create(ctx context.Context, d delegation.TemporaryDelegation) (delegation.TemporaryDelegation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO temporary_delegations (
			id, delegator_id, delegate_id, scope_type, scope_id,
			start_at, end_at, created_at
		) VALUES (
			uuidv7(), $1, $2, $3, $4,
			$5, $6, NOW()
		) RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		d.DelegatorID, d.DelegateID, string(d.ScopeType), d.ScopeID,
		d.StartAt, d.EndAt,
	).Scan(&d.ID, &d.CreatedAt)
	if err != nil {
		return delegation.TemporaryDelegation{}, err
	}

	return d, nil
}

func (r *delegationRepositoryImpl) GetByID(ctx context.Context, id string) (delegation.TemporaryDelegation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, delegator_id, delegate_id, scope_type, scope_id,
		       start_at, end_at, created_at
		FROM temporary_delegations
		WHERE id = $1
	`

	var d delegation.TemporaryDelegation
	err := q.QueryRow(ctx, query, id).Scan(
		&d.ID, &d.DelegatorID, &d.DelegateID, &d.ScopeType, &d.ScopeID,
		&d.StartAt, &d.EndAt, &d.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return delegation.TemporaryDelegation{}, delegation.ErrDelegationNotFound
		}
		return delegation.TemporaryDelegation{}, err
	}

	return d, nil
}

// ActiveMatching orders property-scoped matches before all-scoped ones, newest
// first within a scope, so the first row is the resolver's pick.
func (r *delegationRepositoryImpl) ActiveMatching(ctx context.Context, propertyID *string, now time.Time) ([]delegation.TemporaryDelegation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, delegator_id, delegate_id, scope_type, scope_id,
		       start_at, end_at, created_at
		FROM temporary_delegations
		WHERE start_at <= $1 AND end_at >= $1
		  AND (
			scope_type = 'all'
			OR ($2::text IS NOT NULL AND scope_type = 'property' AND scope_id = $2)
		  )
		ORDER BY
			CASE scope_type
				WHEN 'property' THEN 0
				WHEN 'department' THEN 1
				ELSE 2
			END,
			created_at DESC
	`

	rows, err := q.Query(ctx, query, now, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDelegations(rows)
}

func (r *delegationRepositoryImpl) ListByDelegator(ctx context.Context, delegatorID string) ([]delegation.TemporaryDelegation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, delegator_id, delegate_id, scope_type, scope_id,
		       start_at, end_at, created_at
		FROM temporary_delegations
		WHERE delegator_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, delegatorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanDelegations(rows)
}

func scanDelegations(rows pgx.Rows) ([]delegation.TemporaryDelegation, error) {
	var delegations []delegation.TemporaryDelegation
	for rows.Next() {
		var d delegation.TemporaryDelegation
		err := rows.Scan(
			&d.ID, &d.DelegatorID, &d.DelegateID, &d.ScopeType, &d.ScopeID,
			&d.StartAt, &d.EndAt, &d.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		delegations = append(delegations, d)
	}
	return delegations, rows.Err()
}
