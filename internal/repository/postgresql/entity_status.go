package postgresql

import (
	"context"
	"fmt"

	"github.com/hotelops/hotelops-backend-go/internal/domain/workflow"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// entityTables maps an entity kind to the table owning its status column.
// Table names come from this map only, never from request input.
var entityTables = map[workflow.EntityType]string{
	workflow.EntityTask:              "tasks",
	workflow.EntityMaintenanceTicket: "maintenance_tickets",
	workflow.EntityLeaveRequest:      "leave_requests",
	workflow.EntityJobPosting:        "job_postings",
	workflow.EntityDocument:          "documents",
}

type entityStatusRepositoryImpl struct {
	db *database.DB
}

func NewEntityStatusRepository(db *database.DB) workflow.EntityStatusRepository {
	return &entityStatusRepositoryImpl{db: db}
}

func (r *entityStatusRepositoryImpl) GetStatus(ctx context.Context, entityType workflow.EntityType, entityID string) (workflow.Status, error) {
	table, ok := entityTables[entityType]
	if !ok {
		return "", fmt.Errorf("%w: %s", workflow.ErrUnknownState, entityType)
	}

	q := GetQuerier(ctx, r.db)

	var status workflow.Status
	query := fmt.Sprintf(`SELECT status FROM %s WHERE id = $1`, table)
	err := q.QueryRow(ctx, query, entityID).Scan(&status)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", fmt.Errorf("%w: %s %s", workflow.ErrEntityNotFound, entityType, entityID)
		}
		return "", err
	}

	return status, nil
}

func (r *entityStatusRepositoryImpl) SetStatus(ctx context.Context, entityType workflow.EntityType, entityID string, status workflow.Status) error {
	table, ok := entityTables[entityType]
	if !ok {
		return fmt.Errorf("%w: %s", workflow.ErrUnknownState, entityType)
	}

	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`UPDATE %s SET status = $2, updated_at = NOW() WHERE id = $1`, table)
	tag, err := q.Exec(ctx, query, entityID, string(status))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s %s", workflow.ErrEntityNotFound, entityType, entityID)
	}

	return nil
}
