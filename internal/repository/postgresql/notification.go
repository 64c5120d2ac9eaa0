package postgresql

import (
	"context"

	"github.com/google/uuid"

	"github.com/hotelops/hotelops-backend-go/internal/domain/notification"
	"github.com/hotelops/hotelops-backend-go/internal/pkg/database"
)

type notificationRepositoryImpl struct {
	db *database.DB
}

func NewNotificationRepository(db *database.DB) notification.Repository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) Create(ctx context.Context, n *notification.Notification) error {
	q := GetQuerier(ctx, r.db)

	if n.ID == "" {
		n.ID = uuid.New().String()
	}

	query := `
		INSERT INTO notifications (
			id, recipient_id, sender_id, type, title, message, data,
			is_read, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7,
			false, NOW()
		) RETURNING created_at
	`

	return q.QueryRow(ctx, query,
		n.ID, n.RecipientID, n.SenderID, string(n.Type), n.Title, n.Message, n.Data,
	).Scan(&n.CreatedAt)
}

func (r *notificationRepositoryImpl) GetByRecipient(ctx context.Context, recipientID string, unreadOnly bool) ([]*notification.Notification, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, recipient_id, sender_id, type, title, message, data,
		       is_read, read_at, created_at
		FROM notifications
		WHERE recipient_id = $1
		  AND ($2 = false OR is_read = false)
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, recipientID, unreadOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*notification.Notification
	for rows.Next() {
		var n notification.Notification
		err := rows.Scan(
			&n.ID, &n.RecipientID, &n.SenderID, &n.Type, &n.Title, &n.Message, &n.Data,
			&n.IsRead, &n.ReadAt, &n.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		notifications = append(notifications, &n)
	}

	return notifications, rows.Err()
}

func (r *notificationRepositoryImpl) MarkAsRead(ctx context.Context, ids []string, recipientID string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notifications
		SET is_read = true, read_at = NOW()
		WHERE id = ANY($1) AND recipient_id = $2
	`

	_, err := q.Exec(ctx, query, ids, recipientID)
	return err
}
