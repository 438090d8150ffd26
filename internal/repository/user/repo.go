package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/dbpg"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUserNotFound    = errors.New("auth user not found")
)

// Repository looks up application profiles and hosted-auth accounts.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new user repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// GetProfile returns the application profile of a user.
func (r *Repository) GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error) {
	query := `
		SELECT id, COALESCE(full_name, ''), COALESCE(company_name, '')
		FROM profiles
		WHERE user_id = $1;
    `

	var p model.Profile
	err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(&p.ID, &p.FullName, &p.CompanyName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Profile{}, ErrProfileNotFound
		}

		return model.Profile{}, fmt.Errorf("failed to get profile: %w", err)
	}

	return p, nil
}

// GetAuthEmail returns the e-mail address the auth provider holds for a user.
func (r *Repository) GetAuthEmail(ctx context.Context, userID uuid.UUID) (string, error) {
	query := `SELECT email FROM auth.users WHERE id = $1;`

	var email sql.NullString
	err := r.db.Master.QueryRowContext(ctx, query, userID).Scan(&email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}

		return "", fmt.Errorf("failed to get auth user: %w", err)
	}

	if !email.Valid || email.String == "" {
		return "", ErrUserNotFound
	}

	return email.String, nil
}
