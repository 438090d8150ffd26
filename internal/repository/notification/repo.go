package notification

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Repository provides methods to interact with the in-app notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// MarkEmailSent flags the notification as delivered by email.
func (r *Repository) MarkEmailSent(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE notifications
		SET email_sent = true
		WHERE id = $1;
    `

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to update notification: %w", err)
	}

	rows, _ := res.RowsAffected()

	if rows == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// ListByUser retrieves a user's in-app notifications, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.Notification, error) {
	query := `
		SELECT id, user_id, type, title, message, notification_type, read, email_sent, metadata, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]model.Notification, 0)
	for rows.Next() {
		var (
			n    model.Notification
			mode string
		)

		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &mode, &n.Read, &n.EmailSent, &n.Metadata, &n.CreatedAt,
		); err != nil {
			return nil, err
		}

		n.NotificationType = model.DeliveryMode(mode)
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}
