package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/wb-go/wbf/rabbitmq"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/rental-notifier/internal/config"
	"github.com/aliskhannn/rental-notifier/internal/model"
)

// Topics the notifier subscribes to.
var Topics = []string{
	model.CollectionUsers + "." + model.KindUpdated,
	model.CollectionBookings + "." + model.KindUpdated,
	model.CollectionReviews + "." + model.KindCreated,
	model.CollectionMessages + "." + model.KindCreated,
}

// EventQueue publishes and consumes document change events.
type EventQueue struct {
	Publisher *rabbitmq.Publisher
	Consumer  *rabbitmq.Consumer
}

// NewEventQueue declares the topic exchange, the dead-letter queue and the main queue
// bound to every notifier topic.
func NewEventQueue(ch *rabbitmq.Channel, cfg config.RabbitMQ) (*EventQueue, error) {
	exchange := rabbitmq.NewExchange(cfg.Exchange, "topic")
	if err := exchange.BindToChannel(ch); err != nil {
		return nil, fmt.Errorf("failed to bind to exchange: %w", err)
	}

	qm := rabbitmq.NewQueueManager(ch)

	_, err := qm.DeclareQueue(cfg.DLQ, rabbitmq.QueueConfig{Durable: true})
	if err != nil {
		return nil, fmt.Errorf("failed to declare DLQ queue: %w", err)
	}

	mainArgs := amqp.Table{
		"x-dead-letter-exchange":    "",
		"x-dead-letter-routing-key": cfg.DLQ,
	}

	mainQ, err := qm.DeclareQueue(cfg.Queue, rabbitmq.QueueConfig{
		Durable: true,
		Args:    mainArgs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to declare main queue: %w", err)
	}

	for _, topic := range Topics {
		if err := ch.QueueBind(mainQ.Name, topic, exchange.Name(), false, nil); err != nil {
			return nil, fmt.Errorf("failed to bind %s to the main queue: %w", topic, err)
		}
	}

	pub := rabbitmq.NewPublisher(ch, exchange.Name())
	cons := rabbitmq.NewConsumer(ch, rabbitmq.NewConsumerConfig(mainQ.Name))

	return &EventQueue{Publisher: pub, Consumer: cons}, nil
}

// Publish sends ev to the exchange under its topic.
func (q *EventQueue) Publish(ev model.ChangeEvent, strategy retry.Strategy) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	return q.Publisher.PublishWithRetry(body, ev.Topic(), "application/json", strategy)
}

// Consume decodes incoming events into out until the consumer stops.
// Once ctx is done, deliveries are drained and dropped so the consumer never blocks.
func (q *EventQueue) Consume(ctx context.Context, out chan<- model.ChangeEvent, strategy retry.Strategy) error {
	msgChan := make(chan []byte)

	go forward(ctx, msgChan, out)

	return q.Consumer.ConsumeWithRetry(msgChan, strategy)
}

func forward(ctx context.Context, in <-chan []byte, out chan<- model.ChangeEvent) {
	for m := range in {
		if ctx.Err() != nil {
			continue
		}

		ev, err := Decode(m)
		if err != nil {
			zlog.Logger.Error().Err(err).Msg("failed to decode change event")
			continue
		}

		select {
		case out <- ev:
		case <-ctx.Done():
		}
	}
}

// Decode parses a change event body.
func Decode(body []byte) (model.ChangeEvent, error) {
	var ev model.ChangeEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return model.ChangeEvent{}, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if ev.Collection == "" || ev.Kind == "" {
		return model.ChangeEvent{}, fmt.Errorf("event %s has no topic", ev.ID)
	}

	return ev, nil
}
