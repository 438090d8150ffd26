// Package scheduler runs the periodic jobs in-process on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/wb-go/wbf/zlog"
)

// Job is one unit of periodic work. The returned value is logged as the run's result.
type Job func(ctx context.Context) (any, error)

// Entry binds a job to its cron spec.
type Entry struct {
	Name    string
	Spec    string
	Job     Job
	Timeout time.Duration
}

// Scheduler runs entries on their schedules, never overlapping two runs of the same job.
type Scheduler struct {
	cron *cron.Cron
	ctx  context.Context
}

// New creates a scheduler whose jobs run under ctx.
func New(ctx context.Context) *Scheduler {
	logger := cronLogger{}

	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
		),
		ctx: ctx,
	}
}

// Add registers entries. It fails on the first invalid spec.
func (s *Scheduler) Add(entries ...Entry) error {
	for _, e := range entries {
		if _, err := s.cron.AddFunc(e.Spec, func() { s.run(e) }); err != nil {
			return fmt.Errorf("schedule %s (%q): %w", e.Name, e.Spec, err)
		}

		zlog.Logger.Info().Str("job", e.Name).Str("spec", e.Spec).Msg("job scheduled")
	}

	return nil
}

func (s *Scheduler) run(e Entry) {
	ctx := s.ctx
	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	started := time.Now()

	result, err := e.Job(ctx)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("job", e.Name).Msg("scheduled job failed")
		return
	}

	zlog.Logger.Info().
		Str("job", e.Name).
		Dur("took", time.Since(started)).
		Interface("result", result).
		Msg("scheduled job finished")
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		zlog.Logger.Warn().Msg("scheduler stop timed out with jobs still running")
	}
}

// cronLogger adapts zlog to cron.Logger.
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	zlog.Logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	zlog.Logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
