package retention

import (
	"context"
	"fmt"
	"time"

	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/retention/mock.go -package=mocks

type scheduledRepository interface {
	PurgeProcessed(ctx context.Context, before time.Time) (int64, error)
	PurgeFailed(ctx context.Context, before time.Time) (int64, error)
}

// Service deletes finished scheduled notifications past their retention period.
type Service struct {
	repo          scheduledRepository
	processedDays int
	failedDays    int
	now           func() time.Time
}

func NewService(repo scheduledRepository, processedDays, failedDays int) *Service {
	return &Service{
		repo:          repo,
		processedDays: processedDays,
		failedDays:    failedDays,
		now:           time.Now,
	}
}

// Run purges done rows older than processedDays and failed or cancelled rows
// older than failedDays. A non-positive period keeps those rows forever.
func (s *Service) Run(ctx context.Context) (model.PurgeSummary, error) {
	var summary model.PurgeSummary

	now := s.now().UTC()

	if s.processedDays > 0 {
		n, err := s.repo.PurgeProcessed(ctx, now.AddDate(0, 0, -s.processedDays))
		if err != nil {
			return summary, fmt.Errorf("purge processed: %w", err)
		}
		summary.ProcessedDeleted = n
	}

	if s.failedDays > 0 {
		n, err := s.repo.PurgeFailed(ctx, now.AddDate(0, 0, -s.failedDays))
		if err != nil {
			return summary, fmt.Errorf("purge failed: %w", err)
		}
		summary.FailedDeleted = n
	}

	zlog.Logger.Info().
		Int64("processed_deleted", summary.ProcessedDeleted).
		Int64("failed_deleted", summary.FailedDeleted).
		Msg("retention run finished")

	return summary, nil
}
