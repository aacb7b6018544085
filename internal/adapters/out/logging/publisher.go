// Package logging holds stand-ins for the message broker adapters, used when
// no broker is configured. They write what would have been sent to the log.
package logging

import (
	"context"
	"log/slog"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/ddd"
)

type EventPublisher struct {
	logger *slog.Logger
}

func NewEventPublisher(logger *slog.Logger) *EventPublisher {
	return &EventPublisher{logger: logger.With("component", "event_publisher")}
}

func (p *EventPublisher) Publish(ctx context.Context, events ...ddd.DomainEvent) error {
	for _, e := range events {
		p.logger.InfoContext(ctx, "domain event",
			"event", e.EventName(),
			"event_id", e.EventID().String(),
			"aggregate_id", e.AggregateID(),
			"occurred_at", e.OccurredAt(),
		)
	}
	return nil
}

type PresenceBroadcaster struct {
	logger *slog.Logger
}

func NewPresenceBroadcaster(logger *slog.Logger) *PresenceBroadcaster {
	return &PresenceBroadcaster{logger: logger.With("component", "presence_broadcaster")}
}

func (b *PresenceBroadcaster) BroadcastStatusChange(ctx context.Context, userID kernel.UUID, online bool) error {
	b.logger.InfoContext(ctx, "presence changed", "user_id", userID.String(), "online", online)
	return nil
}

func (b *PresenceBroadcaster) BroadcastOnlineUsers(ctx context.Context, userIDs []kernel.UUID) error {
	b.logger.DebugContext(ctx, "online users", "count", len(userIDs))
	return nil
}
