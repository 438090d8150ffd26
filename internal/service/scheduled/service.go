package scheduled

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/scheduled"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/scheduled/mock.go -package=mocks

type scheduledRepository interface {
	Create(ctx context.Context, n model.ScheduledNotification) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (model.ScheduledNotification, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.ScheduledNotification, error)
	Cancel(ctx context.Context, id, userID uuid.UUID) error
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	FillWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

// Service manages a user's own scheduled notifications.
type Service struct {
	repo              scheduledRepository
	cache             cache
	defaultMaxRetries int
	now               func() time.Time
}

func NewService(repo scheduledRepository, cache cache, defaultMaxRetries int) *Service {
	return &Service{repo: repo, cache: cache, defaultMaxRetries: defaultMaxRetries, now: time.Now}
}

// Create enqueues a pending notification. A zero MaxRetries gets the default.
func (s *Service) Create(ctx context.Context, strategy retry.Strategy, n model.ScheduledNotification) (uuid.UUID, error) {
	if n.MaxRetries == 0 {
		n.MaxRetries = s.defaultMaxRetries
	}
	if n.ScheduledFor.IsZero() {
		n.ScheduledFor = s.now().UTC()
	}
	n.Status = model.StatusPending

	id, err := s.repo.Create(ctx, n)
	if err != nil {
		return uuid.Nil, fmt.Errorf("create scheduled notification: %w", err)
	}

	s.setStatus(ctx, strategy, n.UserID, id, model.StatusPending)

	return id, nil
}

// Get returns the row if it belongs to userID.
func (s *Service) Get(ctx context.Context, userID, id uuid.UUID) (model.ScheduledNotification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.ScheduledNotification{}, fmt.Errorf("get scheduled notification: %w", err)
	}

	if n.UserID != userID {
		return model.ScheduledNotification{}, fmt.Errorf("get scheduled notification: %w", scheduled.ErrScheduledNotFound)
	}

	return n, nil
}

// GetStatus looks the status up in the cache first and falls back to the database.
func (s *Service) GetStatus(ctx context.Context, strategy retry.Strategy, userID, id uuid.UUID) (model.ScheduleStatus, error) {
	key := model.StatusCacheKey(userID, id)

	status, err := s.cache.GetWithRetry(ctx, strategy, key)
	if err == nil {
		return model.ScheduleStatus(status), nil
	}

	if !errors.Is(err, redis.Nil) {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to get status from cache")
	}

	n, err := s.Get(ctx, userID, id)
	if err != nil {
		return "", err
	}

	if err := s.cache.FillWithRetry(ctx, strategy, key, string(n.Status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache status")
	}

	return n.Status, nil
}

// List returns the user's scheduled notifications, newest first.
func (s *Service) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]model.ScheduledNotification, error) {
	list, err := s.repo.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list scheduled notifications: %w", err)
	}

	return list, nil
}

// Cancel withdraws a pending notification owned by userID.
func (s *Service) Cancel(ctx context.Context, strategy retry.Strategy, userID, id uuid.UUID) error {
	if err := s.repo.Cancel(ctx, id, userID); err != nil {
		return fmt.Errorf("cancel scheduled notification: %w", err)
	}

	s.setStatus(ctx, strategy, userID, id, model.StatusCancelled)

	return nil
}

func (s *Service) setStatus(ctx context.Context, strategy retry.Strategy, userID, id uuid.UUID, status model.ScheduleStatus) {
	if err := s.cache.SetWithRetry(ctx, strategy, model.StatusCacheKey(userID, id), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", id.String()).Msg("failed to cache status")
	}
}
