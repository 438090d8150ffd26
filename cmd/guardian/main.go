package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/redis"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/handlers/jobs"
	notifhandler "github.com/Nardo758/entity-guardian-pro-sub003/internal/api/handlers/notification"
	schedhandler "github.com/Nardo758/entity-guardian-pro-sub003/internal/api/handlers/scheduled"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/router"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/api/server"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/cache"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/config"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/mailer"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
	emailmsg "github.com/Nardo758/entity-guardian-pro-sub003/internal/rabbitmq/handlers/email"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/rabbitmq/queue"
	notifrepo "github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/notification"
	prefrepo "github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/preference"
	schedrepo "github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/scheduled"
	subrepo "github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/subscriber"
	userrepo "github.com/Nardo758/entity-guardian-pro-sub003/internal/repository/user"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/scheduler"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/service/dispatch"
	notifsvc "github.com/Nardo758/entity-guardian-pro-sub003/internal/service/notification"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/service/retention"
	schedsvc "github.com/Nardo758/entity-guardian-pro-sub003/internal/service/scheduled"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/service/trial"
	"github.com/Nardo758/entity-guardian-pro-sub003/internal/worker"
	"github.com/Nardo758/entity-guardian-pro-sub003/pkg/email"
	"github.com/Nardo758/entity-guardian-pro-sub003/pkg/telegram"
)

type emailSender interface {
	Send(ctx context.Context, msg model.EmailMessage) error
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	zlog.Init()
	cfg := config.Must()
	val := validator.New()

	opts := &dbpg.Options{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	slaveDSNs := make([]string, 0, len(cfg.Database.Slaves))
	for _, s := range cfg.Database.Slaves {
		slaveDSNs = append(slaveDSNs, s.DSN())
	}

	db, err := dbpg.New(cfg.Database.Master.DSN(), slaveDSNs, opts)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	rdb := redis.New(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.Database)
	if err = rdb.Ping(ctx).Err(); err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to connect to redis")
	}
	statusCache := cache.NewStatusCache(rdb, cfg.Redis.StatusTTL)

	scheduledRepo := schedrepo.NewRepository(db)
	notificationRepo := notifrepo.NewRepository(db)
	preferenceRepo := prefrepo.NewRepository(db)
	userRepo := userrepo.NewRepository(db)
	subscriberRepo := subrepo.NewRepository(db)

	renderer, err := mailer.NewRenderer(cfg.Email.AppURL)
	if err != nil {
		zlog.Logger.Fatal().Err(err).Msg("failed to parse email templates")
	}

	emailClient := email.NewClient(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.Username,
		cfg.Email.Password,
		cfg.Email.From,
	)
	smtpSender := mailer.NewSender(emailClient, notificationRepo)
	alerts := telegram.NewClient(cfg.Telegram.Token, cfg.Telegram.ChatID)

	var sender emailSender = smtpSender

	closeQueue := func() {}
	mailerDone := make(chan struct{})

	if cfg.Email.Mode == config.EmailModeQueue {
		q, closeFn, err := openEmailQueue(cfg)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to set up email queue")
		}
		closeQueue = closeFn

		sender = mailer.NewQueuedSender(q, cfg.Retry)

		pool := worker.NewMailer(q, emailmsg.NewHandler(smtpSender, alerts))
		go func() {
			pool.Run(ctx, cfg.Retry, cfg.Workers.Count)
			close(mailerDone)
		}()
	} else {
		close(mailerDone)
	}

	dispatcher := dispatch.NewService(
		scheduledRepo,
		userRepo,
		preferenceRepo,
		renderer,
		sender,
		alerts,
		statusCache,
		dispatch.Options{
			BatchSize: cfg.Dispatch.BatchSize,
			ClaimTTL:  cfg.Dispatch.ClaimTTL,
			Retry:     cfg.Retry,
		},
	)
	trialJob := trial.NewService(subscriberRepo, renderer, sender, cfg.Trial.LengthDays)
	purger := retention.NewService(scheduledRepo, cfg.Retention.ProcessedDays, cfg.Retention.FailedDays)

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		sched = scheduler.New(ctx)

		err = sched.Add(
			scheduler.Entry{Name: "process-notifications", Spec: cfg.Scheduler.Dispatch, Timeout: cfg.Dispatch.JobTimeout,
				Job: func(ctx context.Context) (any, error) { return dispatcher.Run(ctx) }},
			scheduler.Entry{Name: "trial-reminders", Spec: cfg.Scheduler.TrialReminders, Timeout: cfg.Dispatch.JobTimeout,
				Job: func(ctx context.Context) (any, error) { return trialJob.Run(ctx) }},
			scheduler.Entry{Name: "purge", Spec: cfg.Scheduler.Purge, Timeout: cfg.Dispatch.JobTimeout,
				Job: func(ctx context.Context) (any, error) { return purger.Run(ctx) }},
		)
		if err != nil {
			zlog.Logger.Fatal().Err(err).Msg("failed to schedule jobs")
		}

		sched.Start()
	}

	r := router.New(
		jobs.NewHandler(dispatcher, trialJob, purger, cfg.Dispatch.JobTimeout),
		schedhandler.NewHandler(schedsvc.NewService(scheduledRepo, statusCache, cfg.Dispatch.DefaultMaxRetries), val, cfg),
		notifhandler.NewHandler(notifsvc.NewService(notificationRepo), val),
		cfg.Auth,
	)
	s := server.New(cfg.Server.HTTPPort, r)

	go func() {
		zlog.Logger.Info().Str("addr", cfg.Server.HTTPPort).Str("email_mode", cfg.Email.Mode).Msg("starting server")
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	<-ctx.Done()
	zlog.Logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	zlog.Logger.Info().Msg("shutting down server")
	if err := s.Shutdown(shutdownCtx); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to shutdown server")
	}

	if sched != nil {
		sched.Stop(shutdownCtx)
	}

	select {
	case <-mailerDone:
	case <-shutdownCtx.Done():
	}

	if errors.Is(shutdownCtx.Err(), context.DeadlineExceeded) {
		zlog.Logger.Info().Msg("timeout exceeded, forcing shutdown")
	}

	closeQueue()

	if err := db.Master.Close(); err != nil {
		zlog.Logger.Error().Err(err).Msg("failed to close master DB")
	}

	for i, slave := range db.Slaves {
		if err := slave.Close(); err != nil {
			zlog.Logger.Error().Err(err).Int("slave", i).Msg("failed to close slave DB")
		}
	}
}

// openEmailQueue connects to RabbitMQ and declares the email topology. The
// returned func closes the channel and the connection.
func openEmailQueue(cfg *config.Config) (*queue.EmailQueue, func(), error) {
	conn, err := rabbitmq.Connect(cfg.RabbitMQ.URL(), cfg.RabbitMQ.Retries, cfg.RabbitMQ.Pause)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, nil, fmt.Errorf("open channel: %w", err)
	}

	q, err := queue.NewEmailQueue(ch)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, nil, fmt.Errorf("create email queue: %w", err)
	}

	closeFn := func() {
		if err := ch.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ channel")
		}

		if err := conn.Close(); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to close RabbitMQ connection")
		}
	}

	return q, closeFn, nil
}
