package delivery

import (
	"time"

	"courierhub/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

const StatusChangedEventName = "delivery.status_changed"

// StatusChanged is recorded on every successful status transition.
type StatusChanged struct {
	id         uuid.UUID
	deliveryID kernel.UUID
	orderID    *kernel.UUID
	courierID  kernel.UUID
	from       Status
	to         Status
	occurredAt time.Time
}

func newStatusChanged(d *Delivery, from, to Status, at time.Time) StatusChanged {
	return StatusChanged{
		id:         uuid.New(),
		deliveryID: d.id,
		orderID:    d.Order(),
		courierID:  d.courierID,
		from:       from,
		to:         to,
		occurredAt: at,
	}
}

func (e StatusChanged) EventID() uuid.UUID      { return e.id }
func (e StatusChanged) EventName() string       { return StatusChangedEventName }
func (e StatusChanged) AggregateID() string     { return e.deliveryID.String() }
func (e StatusChanged) OccurredAt() time.Time   { return e.occurredAt }
func (e StatusChanged) DeliveryID() kernel.UUID { return e.deliveryID }
func (e StatusChanged) CourierID() kernel.UUID  { return e.courierID }
func (e StatusChanged) From() Status            { return e.from }
func (e StatusChanged) To() Status              { return e.to }

// OrderID is nil for placeholder records.
func (e StatusChanged) OrderID() *kernel.UUID {
	return e.orderID
}
