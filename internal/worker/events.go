package worker

import (
	"context"
	"sync"

	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/model"
)

//go:generate mockgen -source=events.go -destination=../mocks/worker/events_mock.go -package=mocks

type eventQueue interface {
	Consume(ctx context.Context, out chan<- model.ChangeEvent, strategy retry.Strategy) error
}

type eventHandler interface {
	HandleEvent(ctx context.Context, ev model.ChangeEvent)
}

// EventWorker fans change events out to a pool of goroutines.
type EventWorker struct {
	queue   eventQueue
	handler eventHandler
}

func NewEventWorker(q eventQueue, h eventHandler) *EventWorker {
	return &EventWorker{
		queue:   q,
		handler: h,
	}
}

// Run consumes events until ctx is done. Each event is handled independently.
func (w *EventWorker) Run(ctx context.Context, strategy retry.Strategy, workerCount int) {
	if workerCount < 1 {
		workerCount = 1
	}

	var wg sync.WaitGroup
	events := make(chan model.ChangeEvent, workerCount*10)

	go func() {
		if err := w.queue.Consume(ctx, events, strategy); err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to consume events")
		}
	}()

	wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go func(id int) {
			defer wg.Done()

			zlog.Logger.Printf("worker-%d started", id)

			for {
				select {
				case <-ctx.Done():
					zlog.Logger.Printf("worker-%d shutting down", id)
					return
				case ev, ok := <-events:
					if !ok {
						zlog.Logger.Printf("worker-%d channel closed, shutting down", id)
						return
					}

					w.handler.HandleEvent(ctx, ev)
				}
			}
		}(i)
	}

	<-ctx.Done()
	wg.Wait()
	zlog.Logger.Print("event worker stopped")
}
