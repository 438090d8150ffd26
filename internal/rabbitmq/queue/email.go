package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

const (
	ExchangeName  = "email-exchange"
	MainQueueName = "email-queue"
	DLQName       = "email-dlq"
	RoutingKey    = "email"
)

// EmailQueue carries rendered emails from the jobs to the delivery workers.
type EmailQueue struct {
	Publisher *rabbitmq.Publisher
	ch        *rabbitmq.Channel
}

// NewEmailQueue declares the exchange, the main queue and its dead letter queue.
func NewEmailQueue(ch *rabbitmq.Channel) (*EmailQueue, error) {
	exchange := rabbitmq.NewExchange(ExchangeName, "direct")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(DLQName, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := map[string]interface{}{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": DLQName,
	}

	mainQ, err := qm.DeclareQueue(MainQueueName, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	if err := ch.QueueBind(mainQ.Name, RoutingKey, exchange.Name(), false, nil); err != nil {
		return nil, fmt.Errorf("failed to bind the exchange to the main queue: %w", err)
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())

	return &EmailQueue{Publisher: pub, ch: ch}, nil
}

// Publish sends msg to the main queue.
func (q *EmailQueue) Publish(msg model.EmailMessage, strategy retry.Strategy) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, RoutingKey, "application/json", strategy)
}

// Consume decodes deliveries into out until ctx is done or the broker closes
// the delivery channel. A delivery is acked once a worker has taken it.
// Undecodable deliveries are rejected into the dead letter queue and the one
// in hand at shutdown is requeued.
func (q *EmailQueue) Consume(ctx context.Context, out chan<- model.EmailMessage, strategy retry.Strategy) error {
	var deliveries <-chan amqp091.Delivery

	err := retry.Do(func() error {
		var err error
		deliveries, err = q.ch.Consume(MainQueueName, "", false, false, false, false, nil)
		return err
	}, strategy)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", MainQueueName, err)
	}

	forward(ctx, deliveries, out)

	return nil
}

func forward(ctx context.Context, deliveries <-chan amqp091.Delivery, out chan<- model.EmailMessage) {
	for {
		var (
			d  amqp091.Delivery
			ok bool
		)

		select {
		case <-ctx.Done():
			return
		case d, ok = <-deliveries:
			if !ok {
				return
			}
		}

		msg, err := Decode(d.Body)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to unmarshal message, moving it to the dead letter queue")
			if err := d.Reject(false); err != nil {
				zlog.Logger.Error().Err(err).Msg("failed to reject message")
			}
			continue
		}

		select {
		case out <- msg:
			if err := d.Ack(false); err != nil {
				zlog.Logger.Error().Err(err).Str("to", msg.To).Msg("failed to ack message")
			}
		case <-ctx.Done():
			if err := d.Nack(false, true); err != nil {
				zlog.Logger.Error().Err(err).Str("to", msg.To).Msg("failed to requeue message")
			}
			return
		}
	}
}

// Decode parses a queue delivery body.
func Decode(body []byte) (model.EmailMessage, error) {
	var msg model.EmailMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return model.EmailMessage{}, err
	}

	if msg.To == "" {
		return model.EmailMessage{}, fmt.Errorf("message has no recipient")
	}

	return msg, nil
}
