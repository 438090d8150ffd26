package scheduled

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

var (
	ErrScheduledNotFound = errors.New("scheduled notification not found")
	ErrNotCancellable    = errors.New("scheduled notification is not pending")
)

const columns = `id, user_id, entity_id, notification_type, title, message, scheduled_for,
	status, processed, processed_at, retry_count, max_retries, error_message, metadata, created_at`

// Repository provides methods to interact with the scheduled_notifications table.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new scheduled notification repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanScheduled(s scanner) (model.ScheduledNotification, error) {
	var (
		n        model.ScheduledNotification
		entityID uuid.NullUUID
		status   string
	)

	err := s.Scan(
		&n.ID, &n.UserID, &entityID, &n.NotificationType, &n.Title, &n.Message, &n.ScheduledFor,
		&status, &n.Processed, &n.ProcessedAt, &n.RetryCount, &n.MaxRetries, &n.ErrorMessage, &n.Metadata, &n.CreatedAt,
	)
	if err != nil {
		return model.ScheduledNotification{}, err
	}

	if entityID.Valid {
		n.EntityID = &entityID.UUID
	}
	n.Status = model.ScheduleStatus(status)

	return n, nil
}

// Create inserts a pending scheduled notification and returns its ID.
func (r *Repository) Create(ctx context.Context, n model.ScheduledNotification) (uuid.UUID, error) {
	query := `
		INSERT INTO scheduled_notifications (
		    user_id, entity_id, notification_type, title, message, scheduled_for, max_retries, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
    `

	meta, err := n.Metadata.JSON()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	var entityID uuid.NullUUID
	if n.EntityID != nil {
		entityID = uuid.NullUUID{UUID: *n.EntityID, Valid: true}
	}

	err = r.db.Master.QueryRowContext(
		ctx, query, n.UserID, entityID, n.NotificationType, n.Title, n.Message, n.ScheduledFor, n.MaxRetries, string(meta),
	).Scan(&n.ID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create scheduled notification: %w", err)
	}

	return n.ID, nil
}

// Claim atomically moves up to limit due rows to the claimed state and returns them
// oldest first. Rows claimed before staleBefore are considered abandoned and are
// claimed again. Rows with retry_count >= max_retries are never selected.
func (r *Repository) Claim(ctx context.Context, now, staleBefore time.Time, limit int) ([]model.ScheduledNotification, error) {
	query := `
		UPDATE scheduled_notifications
		SET status = 'claimed', claimed_at = $1
		WHERE id IN (
		    SELECT id FROM scheduled_notifications
		    WHERE (status = 'pending' OR (status = 'claimed' AND claimed_at < $2))
		      AND processed = false
		      AND scheduled_for <= $1
		      AND retry_count < max_retries
		    ORDER BY scheduled_for ASC
		    LIMIT $3
		    FOR UPDATE SKIP LOCKED
		)
		RETURNING ` + columns + `;
    `

	rows, err := r.db.QueryContext(ctx, query, now, staleBefore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to claim scheduled notifications: %w", err)
	}
	defer rows.Close()

	var claimed []model.ScheduledNotification
	for rows.Next() {
		n, err := scanScheduled(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled notification: %w", err)
		}

		claimed = append(claimed, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate scheduled notifications: %w", err)
	}

	// UPDATE ... RETURNING gives no order guarantee.
	sortByScheduledFor(claimed)

	return claimed, nil
}

// Complete inserts the in-app notification and marks the claimed row done in a
// single transaction. It returns the new notification ID.
func (r *Repository) Complete(
	ctx context.Context,
	id uuid.UUID,
	notification model.Notification,
	processedAt time.Time,
) (uuid.UUID, error) {
	insert := `
		INSERT INTO notifications (
		    user_id, type, title, message, notification_type, read, email_sent, metadata
		) VALUES ($1, $2, $3, $4, $5, false, false, $6)
		RETURNING id;
    `

	markDone := `
		UPDATE scheduled_notifications
		SET status = 'done', processed = true, processed_at = $2, error_message = NULL
		WHERE id = $1 AND status = 'claimed';
    `

	meta, err := notification.Metadata.JSON()
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to encode metadata: %w", err)
	}

	tx, err := r.db.Master.BeginTx(ctx, nil)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var notificationID uuid.UUID
	err = tx.QueryRowContext(
		ctx, insert,
		notification.UserID, notification.Type, notification.Title, notification.Message,
		string(notification.NotificationType), string(meta),
	).Scan(&notificationID)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert notification: %w", err)
	}

	res, err := tx.ExecContext(ctx, markDone, id, processedAt)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to mark scheduled notification processed: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows == 0 {
		return uuid.Nil, ErrScheduledNotFound
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit: %w", err)
	}

	return notificationID, nil
}

// Fail records a failed attempt: retry_count is incremented, the error stored, and
// the row returns to pending, or becomes failed once retries are exhausted.
func (r *Repository) Fail(ctx context.Context, id uuid.UUID, message string) (model.RetryState, error) {
	query := `
		UPDATE scheduled_notifications
		SET retry_count = retry_count + 1,
		    error_message = $2,
		    status = CASE WHEN retry_count + 1 >= max_retries THEN 'failed' ELSE 'pending' END
		WHERE id = $1 AND status = 'claimed'
		RETURNING retry_count, max_retries, status;
    `

	var (
		state  model.RetryState
		status string
	)

	err := r.db.Master.QueryRowContext(ctx, query, id, message).Scan(&state.RetryCount, &state.MaxRetries, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.RetryState{}, ErrScheduledNotFound
		}

		return model.RetryState{}, fmt.Errorf("failed to record failure: %w", err)
	}

	state.Status = model.ScheduleStatus(status)

	return state, nil
}

// GetByID retrieves a scheduled notification by its ID.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (model.ScheduledNotification, error) {
	query := `SELECT ` + columns + ` FROM scheduled_notifications WHERE id = $1;`

	n, err := scanScheduled(r.db.Master.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ScheduledNotification{}, ErrScheduledNotFound
		}

		return model.ScheduledNotification{}, fmt.Errorf("failed to get scheduled notification: %w", err)
	}

	return n, nil
}

// ListByUser returns a user's scheduled notifications, newest schedule first.
func (r *Repository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.ScheduledNotification, error) {
	query := `
		SELECT ` + columns + `
		FROM scheduled_notifications
		WHERE user_id = $1
		ORDER BY scheduled_for DESC
		LIMIT $2 OFFSET $3;
    `

	rows, err := r.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled notifications: %w", err)
	}
	defer rows.Close()

	list := make([]model.ScheduledNotification, 0)
	for rows.Next() {
		n, err := scanScheduled(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan scheduled notification: %w", err)
		}

		list = append(list, n)
	}

	return list, rows.Err()
}

// Cancel moves a pending row owned by userID to cancelled.
func (r *Repository) Cancel(ctx context.Context, id, userID uuid.UUID) error {
	query := `
		UPDATE scheduled_notifications
		SET status = 'cancelled'
		WHERE id = $1 AND user_id = $2 AND status = 'pending';
    `

	res, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to cancel scheduled notification: %w", err)
	}

	if rows, _ := res.RowsAffected(); rows > 0 {
		return nil
	}

	n, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if n.UserID != userID {
		return ErrScheduledNotFound
	}

	return ErrNotCancellable
}

// PurgeProcessed deletes done rows processed before the given time.
func (r *Repository) PurgeProcessed(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM scheduled_notifications
		WHERE status = 'done' AND processed_at < $1;
    `

	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge processed notifications: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}

// PurgeFailed deletes failed and cancelled rows created before the given time.
func (r *Repository) PurgeFailed(ctx context.Context, before time.Time) (int64, error) {
	query := `
		DELETE FROM scheduled_notifications
		WHERE status IN ('failed', 'cancelled') AND created_at < $1;
    `

	res, err := r.db.ExecContext(ctx, query, before)
	if err != nil {
		return 0, fmt.Errorf("failed to purge failed notifications: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows, nil
}
