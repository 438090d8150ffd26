package mailer

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

//go:generate mockgen -source=sender.go -destination=../mocks/mailer/mock.go -package=mocks

type smtpClient interface {
	Send(to, subject, html string) error
}

type emailRecorder interface {
	MarkEmailSent(ctx context.Context, id uuid.UUID) error
}

type publisher interface {
	Publish(msg model.EmailMessage, strategy retry.Strategy) error
}

// Sender delivers rendered emails over SMTP.
type Sender struct {
	client   smtpClient
	recorder emailRecorder
}

func NewSender(client smtpClient, recorder emailRecorder) *Sender {
	return &Sender{client: client, recorder: recorder}
}

// Send delivers msg and, when it belongs to an in-app notification, flags
// that notification as emailed. A failed flag update is logged, not returned,
// so a delivered email is never retried.
func (s *Sender) Send(ctx context.Context, msg model.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := s.client.Send(msg.To, msg.Subject, msg.HTML); err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	if msg.NotificationID == uuid.Nil {
		return nil
	}

	if err := s.recorder.MarkEmailSent(ctx, msg.NotificationID); err != nil {
		zlog.Logger.Warn().Err(err).Str("notification_id", msg.NotificationID.String()).Msg("failed to mark email as sent")
	}

	return nil
}

// QueuedSender hands emails to the message broker instead of sending them inline.
type QueuedSender struct {
	queue    publisher
	strategy retry.Strategy
}

func NewQueuedSender(queue publisher, strategy retry.Strategy) *QueuedSender {
	return &QueuedSender{queue: queue, strategy: strategy}
}

// Send publishes msg. Success means the broker accepted it, not that it was delivered.
func (q *QueuedSender) Send(ctx context.Context, msg model.EmailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := q.queue.Publish(msg, q.strategy); err != nil {
		return fmt.Errorf("publish email: %w", err)
	}

	return nil
}
