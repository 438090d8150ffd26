package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/Nardo758/entity-guardian-pro-sub003/internal/model"
)

//go:generate mockgen -source=mailer.go -destination=../mocks/worker/mock.go -package=mocks

type emailConsumer interface {
	Consume(ctx context.Context, out chan<- model.EmailMessage, strategy retry.Strategy) error
}

type messageHandler interface {
	HandleMessage(ctx context.Context, msg model.EmailMessage, strategy retry.Strategy)
}

// Mailer is the pool of goroutines delivering queued emails.
type Mailer struct {
	queue   emailConsumer
	handler messageHandler
}

func NewMailer(q emailConsumer, h messageHandler) *Mailer {
	return &Mailer{
		queue:   q,
		handler: h,
	}
}

// Run starts workerCount workers and blocks until ctx is done and every
// worker has finished its current message.
func (m *Mailer) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	msgChan := make(chan model.EmailMessage)

	go func() {
		if err := m.queue.Consume(ctx, msgChan, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume email messages")
		}
	}()

	var wg sync.WaitGroup

	for i := 0; i < workerCount; i++ {
		wg.Add(1)

		go func(id int) {
			defer wg.Done()
			zlog.Logger.Printf("mailer-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("mailer-%d shutting down", id)
					return
				case msg := <-msgChan:
					m.handler.HandleMessage(ctx, msg, strategy)
				}
			}
		}(i)
	}

	wg.Wait()
	zlog.Logger.Print("mailer stopped")
}
