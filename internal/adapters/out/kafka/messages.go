package kafka

import (
	"time"

	"courierhub/internal/core/domain/model/delivery"
)

// DeliveryEventMessage is the JSON body of a delivery event.
// OrderID is empty for placeholder records.
type DeliveryEventMessage struct {
	EventID    string    `json:"eventId"`
	EventName  string    `json:"eventName"`
	DeliveryID string    `json:"deliveryId"`
	OrderID    string    `json:"orderId,omitempty"`
	CourierID  string    `json:"courierId"`
	From       string    `json:"from"`
	To         string    `json:"to"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newStatusChangedMessage(e delivery.StatusChanged) DeliveryEventMessage {
	msg := DeliveryEventMessage{
		EventID:    e.EventID().String(),
		EventName:  e.EventName(),
		DeliveryID: e.DeliveryID().String(),
		CourierID:  e.CourierID().String(),
		From:       e.From().String(),
		To:         e.To().String(),
		OccurredAt: e.OccurredAt().UTC(),
	}
	if orderID := e.OrderID(); orderID != nil {
		msg.OrderID = orderID.String()
	}
	return msg
}

const (
	PresenceStatusChanged = "presence.status_changed"
	PresenceOnlineUsers   = "presence.online_users"
)

// PresenceMessage carries either one user's change (UserID and Online) or
// the whole online set (Users).
type PresenceMessage struct {
	Type   string    `json:"type"`
	UserID string    `json:"userId,omitempty"`
	Online *bool     `json:"online,omitempty"`
	Users  []string  `json:"users,omitempty"`
	SentAt time.Time `json:"sentAt"`
}
