package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/preference"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/scheduled"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/dispatch/mock.go -package=mocks

type scheduledRepository interface {
	Claim(ctx context.Context, now, staleBefore time.Time, limit int) ([]model.ScheduledNotification, error)
	Complete(ctx context.Context, id uuid.UUID, notification model.Notification, processedAt time.Time) (uuid.UUID, error)
	Fail(ctx context.Context, id uuid.UUID, message string) (model.RetryState, error)
}

type userRepository interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (model.Profile, error)
	GetAuthEmail(ctx context.Context, userID uuid.UUID) (string, error)
}

type preferenceRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (model.NotificationPreference, error)
}

type renderer interface {
	Notification(data model.NotificationEmail) (model.EmailMessage, error)
}

type emailSender interface {
	Send(ctx context.Context, msg model.EmailMessage) error
}

type alerter interface {
	Alert(ctx context.Context, text string) error
}

type statusCache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
}

// Options tunes a dispatcher run.
type Options struct {
	BatchSize int
	ClaimTTL  time.Duration
	Retry     retry.Strategy
}

// Service is the scheduled notification dispatcher.
type Service struct {
	scheduled   scheduledRepository
	users       userRepository
	preferences preferenceRepository
	renderer    renderer
	sender      emailSender
	alerter     alerter
	cache       statusCache
	opts        Options
	now         func() time.Time
}

func NewService(
	scheduled scheduledRepository,
	users userRepository,
	preferences preferenceRepository,
	renderer renderer,
	sender emailSender,
	alerter alerter,
	cache statusCache,
	opts Options,
) *Service {
	return &Service{
		scheduled:   scheduled,
		users:       users,
		preferences: preferences,
		renderer:    renderer,
		sender:      sender,
		alerter:     alerter,
		cache:       cache,
		opts:        opts,
		now:         time.Now,
	}
}

// Run claims due notifications and delivers them one by one.
//
// A row that fails is released back to pending with its retry count
// incremented, or moved to failed once its retries are exhausted. Only a
// failure to claim the batch is returned as an error.
func (s *Service) Run(ctx context.Context) (model.DispatchSummary, error) {
	var summary model.DispatchSummary

	now := s.now().UTC()

	rows, err := s.scheduled.Claim(ctx, now, now.Add(-s.opts.ClaimTTL), s.opts.BatchSize)
	if err != nil {
		return summary, fmt.Errorf("claim due notifications: %w", err)
	}

	summary.Total = len(rows)

	for _, row := range rows {
		if err := s.deliver(ctx, row, now); err != nil {
			zlog.Logger.Error().Err(err).Str("id", row.ID.String()).Msg("failed to process scheduled notification")

			summary.Errored++
			summary.Errors = append(summary.Errors, fmt.Sprintf("%s: %v", row.ID, err))

			if s.fail(ctx, row, err) {
				summary.Exhausted++
			}
			continue
		}

		summary.Processed++
		s.cacheStatus(ctx, row, model.StatusDone)
	}

	if summary.Exhausted > 0 {
		text := fmt.Sprintf("%d scheduled notification(s) exhausted their retries and were moved to failed", summary.Exhausted)
		if err := s.alerter.Alert(ctx, text); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to send exhaustion alert")
		}
	}

	zlog.Logger.Info().
		Int("total", summary.Total).
		Int("processed", summary.Processed).
		Int("errors", summary.Errored).
		Msg("dispatch run finished")

	return summary, nil
}

func (s *Service) deliver(ctx context.Context, row model.ScheduledNotification, now time.Time) error {
	profile, err := s.users.GetProfile(ctx, row.UserID)
	if err != nil {
		return fmt.Errorf("get profile: %w", err)
	}

	to, err := s.users.GetAuthEmail(ctx, row.UserID)
	if err != nil {
		return fmt.Errorf("get auth email: %w", err)
	}

	pref, err := s.preferences.GetByUserID(ctx, row.UserID)
	if errors.Is(err, preference.ErrPreferenceNotFound) {
		pref = model.DefaultPreference(row.UserID)
	} else if err != nil {
		return fmt.Errorf("get preferences: %w", err)
	}

	inApp := model.Notification{
		UserID:           row.UserID,
		Type:             row.NotificationType,
		Title:            row.Title,
		Message:          row.Message,
		NotificationType: pref.DeliveryMode(),
		Metadata:         row.Metadata,
	}

	notificationID, err := s.scheduled.Complete(ctx, row.ID, inApp, now)
	if err != nil {
		return fmt.Errorf("complete: %w", err)
	}

	if pref.EmailNotifications && pref.Subscribed(row.NotificationType) {
		s.email(ctx, row, notificationID, to, profile)
	}

	return nil
}

// email failures never fail the row; the in-app notification already exists.
func (s *Service) email(ctx context.Context, row model.ScheduledNotification, notificationID uuid.UUID, to string, profile model.Profile) {
	name := profile.FullName
	if name == "" {
		name = profile.CompanyName
	}

	msg, err := s.renderer.Notification(model.NotificationEmail{
		NotificationID: notificationID,
		To:             to,
		RecipientName:  name,
		Title:          row.Title,
		Message:        row.Message,
		Type:           row.NotificationType,
		EntityName:     row.Metadata.String("entity_name"),
		DueDate:        row.Metadata.String("due_date"),
		Amount:         row.Metadata.String("amount"),
	})
	if err != nil {
		zlog.Logger.Warn().Err(err).Str("id", row.ID.String()).Msg("failed to render notification email")
		return
	}

	if err := s.sender.Send(ctx, msg); err != nil {
		zlog.Logger.Warn().Err(err).Str("id", row.ID.String()).Msg("failed to send notification email")
	}
}

// fail records the error on the row and reports whether its retries are now exhausted.
func (s *Service) fail(ctx context.Context, row model.ScheduledNotification, cause error) bool {
	state, err := s.scheduled.Fail(ctx, row.ID, cause.Error())
	if err != nil {
		if errors.Is(err, scheduled.ErrScheduledNotFound) {
			zlog.Logger.Warn().Str("id", row.ID.String()).Msg("scheduled notification no longer claimed, skipping retry bookkeeping")
		} else {
			zlog.Logger.Error().Err(err).Str("id", row.ID.String()).Msg("failed to record retry")
		}
		return false
	}

	s.cacheStatus(ctx, row, state.Status)

	if state.Exhausted() {
		zlog.Logger.Warn().
			Str("id", row.ID.String()).
			Int("retry_count", state.RetryCount).
			Msg("scheduled notification exhausted its retries")
		return true
	}

	return false
}

func (s *Service) cacheStatus(ctx context.Context, row model.ScheduledNotification, status model.ScheduleStatus) {
	if err := s.cache.SetWithRetry(ctx, s.opts.Retry, model.StatusCacheKey(row.UserID, row.ID), string(status)); err != nil {
		zlog.Logger.Error().Err(err).Str("id", row.ID.String()).Msg("failed to cache status")
	}
}
