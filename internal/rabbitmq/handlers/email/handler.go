package email

import (
	"context"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

//go:generate mockgen -source=handler.go -destination=../../../mocks/rabbitmq/handlers/email/mock.go -package=mocks

type emailSender interface {
	Send(ctx context.Context, msg model.EmailMessage) error
}

type alerter interface {
	Alert(ctx context.Context, text string) error
}

// Handler delivers emails consumed from the queue.
type Handler struct {
	sender  emailSender
	alerter alerter
}

func NewHandler(sender emailSender, alerter alerter) *Handler {
	return &Handler{
		sender:  sender,
		alerter: alerter,
	}
}

func (h *Handler) HandleMessage(ctx context.Context, msg model.EmailMessage, strategy retry.Strategy) {
	err := retry.Do(func() error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return h.sender.Send(ctx, msg)
		}
	}, strategy)

	if err != nil {
		zlog.Logger.Error().Err(err).
			Str("notification_id", msg.NotificationID.String()).
			Str("subject", msg.Subject).
			Msg("email delivery failed after retries")

		if alertErr := h.alerter.Alert(ctx, "queued email delivery failed: "+msg.Subject+": "+err.Error()); alertErr != nil {
			zlog.Logger.Error().Err(alertErr).Msg("failed to send delivery alert")
		}
		return
	}

	zlog.Logger.Info().Str("notification_id", msg.NotificationID.String()).Msg("queued email delivered")
}
