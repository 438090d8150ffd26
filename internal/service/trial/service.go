package trial

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/trial/mock.go -package=mocks

type subscriberRepository interface {
	ListTrialCandidates(ctx context.Context, tier model.TrialTier, startAfter, startUntil time.Time) ([]model.Subscriber, error)
	ClaimReminder(ctx context.Context, id uuid.UUID, tier model.TrialTier) (bool, error)
	ReleaseReminder(ctx context.Context, id uuid.UUID, tier model.TrialTier) error
}

type renderer interface {
	TrialReminder(sub model.Subscriber, tier model.TrialTier, trialEnd time.Time) (model.EmailMessage, error)
}

type emailSender interface {
	Send(ctx context.Context, msg model.EmailMessage) error
}

const day = 24 * time.Hour

// Service sends reminders to subscribers whose trial is about to end.
type Service struct {
	subscribers subscriberRepository
	renderer    renderer
	sender      emailSender
	trialLength time.Duration
	now         func() time.Time
}

func NewService(subscribers subscriberRepository, renderer renderer, sender emailSender, lengthDays int) *Service {
	return &Service{
		subscribers: subscribers,
		renderer:    renderer,
		sender:      sender,
		trialLength: time.Duration(lengthDays) * day,
		now:         time.Now,
	}
}

// Run sends every reminder that is due.
//
// Each tier covers the trials ending between the previous tier's deadline and
// its own, so the 1-day tier covers (now, now+1d] and the 3-day tier covers
// (now+1d, now+3d]. Windows are computed fresh on every run and a subscriber
// skipped by a missed run is picked up by the next one.
func (s *Service) Run(ctx context.Context) (model.TrialSummary, error) {
	var summary model.TrialSummary

	now := s.now().UTC()
	lower := time.Duration(0)

	for _, tier := range model.TrialTiers {
		upper := time.Duration(tier.DaysLeft) * day

		// trial_end = trial_start + trialLength, so bound trial_start instead.
		startAfter := now.Add(lower - s.trialLength)
		startUntil := now.Add(upper - s.trialLength)
		lower = upper

		candidates, err := s.subscribers.ListTrialCandidates(ctx, tier, startAfter, startUntil)
		if err != nil {
			return summary, fmt.Errorf("list %s trial candidates: %w", tier.Name, err)
		}

		for _, sub := range candidates {
			sent, err := s.remind(ctx, sub, tier)
			if err != nil {
				zlog.Logger.Error().Err(err).Str("subscriber_id", sub.ID.String()).Str("tier", tier.Name).Msg("failed to send trial reminder")
				summary.Errors = append(summary.Errors, fmt.Sprintf("%s (%s): %v", sub.ID, tier.Name, err))
				continue
			}

			if !sent {
				continue
			}

			switch tier {
			case model.TrialTierOneDay:
				summary.OneDaySent++
			case model.TrialTierThreeDays:
				summary.ThreeDaySent++
			}
		}
	}

	zlog.Logger.Info().
		Int("three_day_sent", summary.ThreeDaySent).
		Int("one_day_sent", summary.OneDaySent).
		Int("errors", len(summary.Errors)).
		Msg("trial reminder run finished")

	return summary, nil
}

// remind claims the tier flag, then sends. The flag is released when the send
// fails so the next run retries. It reports false when another run owns the flag.
func (s *Service) remind(ctx context.Context, sub model.Subscriber, tier model.TrialTier) (bool, error) {
	claimed, err := s.subscribers.ClaimReminder(ctx, sub.ID, tier)
	if err != nil {
		return false, fmt.Errorf("claim reminder: %w", err)
	}

	if !claimed {
		return false, nil
	}

	msg, err := s.renderer.TrialReminder(sub, tier, sub.TrialStart.Add(s.trialLength))
	if err == nil {
		err = s.sender.Send(ctx, msg)
	}

	if err != nil {
		if releaseErr := s.subscribers.ReleaseReminder(ctx, sub.ID, tier); releaseErr != nil {
			zlog.Logger.Error().Err(releaseErr).Str("subscriber_id", sub.ID.String()).Msg("failed to release trial reminder flag")
		}
		return false, err
	}

	return true, nil
}
