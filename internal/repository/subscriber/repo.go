package subscriber

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

// Repository reads trial subscribers and owns the per-tier reminder flags.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new subscriber repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// flagColumn maps a tier onto its "already sent" column.
func flagColumn(tier model.TrialTier) (string, error) {
	switch tier {
	case model.TrialTierThreeDays:
		return "trial_reminder_3_days_sent", nil
	case model.TrialTierOneDay:
		return "trial_reminder_1_day_sent", nil
	default:
		return "", fmt.Errorf("unknown trial tier %q", tier.Name)
	}
}

// ListTrialCandidates returns trialing subscribers whose trial started in
// (startAfter, startUntil] and who have not received the tier's reminder.
func (r *Repository) ListTrialCandidates(
	ctx context.Context,
	tier model.TrialTier,
	startAfter, startUntil time.Time,
) ([]model.Subscriber, error) {
	column, err := flagColumn(tier)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, user_id, email, COALESCE(full_name, ''), trial_start
		FROM subscribers
		WHERE subscription_status = 'trialing'
		  AND trial_start > $1
		  AND trial_start <= $2
		  AND ` + column + ` = false
		ORDER BY trial_start ASC;
    `

	rows, err := r.db.QueryContext(ctx, query, startAfter, startUntil)
	if err != nil {
		return nil, fmt.Errorf("failed to list trial subscribers: %w", err)
	}
	defer rows.Close()

	var list []model.Subscriber
	for rows.Next() {
		var s model.Subscriber
		if err := rows.Scan(&s.ID, &s.UserID, &s.Email, &s.FullName, &s.TrialStart); err != nil {
			return nil, fmt.Errorf("failed to scan subscriber: %w", err)
		}

		list = append(list, s)
	}

	return list, rows.Err()
}

// ClaimReminder sets the tier flag if it is still unset. It reports whether this
// caller won the claim; a false result means another run already owns it.
func (r *Repository) ClaimReminder(ctx context.Context, id uuid.UUID, tier model.TrialTier) (bool, error) {
	column, err := flagColumn(tier)
	if err != nil {
		return false, err
	}

	query := `UPDATE subscribers SET ` + column + ` = true, updated_at = now() WHERE id = $1 AND ` + column + ` = false;`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to claim trial reminder: %w", err)
	}

	rows, _ := res.RowsAffected()
	return rows == 1, nil
}

// ReleaseReminder clears the tier flag so a failed send is retried next run.
func (r *Repository) ReleaseReminder(ctx context.Context, id uuid.UUID, tier model.TrialTier) error {
	column, err := flagColumn(tier)
	if err != nil {
		return err
	}

	query := `UPDATE subscribers SET ` + column + ` = false, updated_at = now() WHERE id = $1;`

	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("failed to release trial reminder: %w", err)
	}

	return nil
}
