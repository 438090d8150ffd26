package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

var ErrPreferenceNotFound = errors.New("notification preference not found")

// Repository reads per-user notification preferences.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new preference repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetByUserID returns the preference row of a user, or ErrPreferenceNotFound.
func (r *Repository) GetByUserID(ctx context.Context, userID uuid.UUID) (model.NotificationPreference, error) {
	query := `
		SELECT email_notifications, notification_types, reminder_days_before
		FROM notification_preferences
		WHERE user_id = $1;
    `

	p := model.NotificationPreference{UserID: userID}

	err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(
		&p.EmailNotifications,
		pq.Array(&p.NotificationTypes),
		pq.Array(&p.ReminderDaysBefore),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.NotificationPreference{}, ErrPreferenceNotFound
		}

		return model.NotificationPreference{}, fmt.Errorf("failed to get notification preference: %w", err)
	}

	return p, nil
}
