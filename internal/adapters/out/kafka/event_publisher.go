package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/pkg/ddd"
)

// EventPublisher sends committed delivery events to one topic, keyed by the
// aggregate id.
type EventPublisher struct {
	producer *Producer
	topic    string
}

func NewEventPublisher(producer *Producer, topic string) *EventPublisher {
	return &EventPublisher{producer: producer, topic: topic}
}

// Publish stops at the first failure; events after it are not sent.
func (p *EventPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	for _, event := range events {
		body, err := encodeEvent(event)
		if err != nil {
			return err
		}
		if err = p.producer.send(ctx, p.topic, event.AggregateID(), body); err != nil {
			return fmt.Errorf("publish %s %s: %w", event.EventName(), event.EventID(), err)
		}
	}
	return nil
}

func encodeEvent(event ddd.DomainEvent) ([]byte, error) {
	switch e := event.(type) {
	case delivery.StatusChanged:
		return json.Marshal(newStatusChangedMessage(e))
	default:
		return nil, fmt.Errorf("unsupported domain event %q", event.EventName())
	}
}
