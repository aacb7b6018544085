package kafka

import (
	"context"
	"encoding/json"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/ports"
)

// PresenceBroadcaster publishes presence changes for the realtime gateway,
// which fans them out to connected clients.
type PresenceBroadcaster struct {
	producer *Producer
	topic    string
	clock    ports.Clock
}

func NewPresenceBroadcaster(producer *Producer, topic string, clock ports.Clock) *PresenceBroadcaster {
	return &PresenceBroadcaster{producer: producer, topic: topic, clock: clock}
}

func (b *PresenceBroadcaster) BroadcastStatusChange(ctx context.Context, userID kernel.UUID, online bool) error {
	return b.send(ctx, userID.String(), PresenceMessage{
		Type:   PresenceStatusChanged,
		UserID: userID.String(),
		Online: &online,
		SentAt: b.clock.Now().UTC(),
	})
}

func (b *PresenceBroadcaster) BroadcastOnlineUsers(ctx context.Context, userIDs []kernel.UUID) error {
	users := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		users = append(users, id.String())
	}

	return b.send(ctx, PresenceOnlineUsers, PresenceMessage{
		Type:   PresenceOnlineUsers,
		Users:  users,
		SentAt: b.clock.Now().UTC(),
	})
}

func (b *PresenceBroadcaster) send(ctx context.Context, key string, msg PresenceMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return b.producer.send(ctx, b.topic, key, body)
}
