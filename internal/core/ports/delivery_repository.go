// Package ports declares what the courier core needs from the outside world:
// persistence of deliveries and of the collaborator entities, a clock, and
// the outbound channels for domain events and presence.
package ports

import (
	"context"
	"time"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
)

// DeliveryRepository persists Delivery aggregates.
type DeliveryRepository interface {
	// Add inserts a new record. A second active record for the same order
	// fails with errs.ErrConflict.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update saves every mutable field of an existing record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// UpdateLocation saves only the tracked location, its history and
	// updatedAt. Location reports use it so that they never revert a status
	// change made concurrently.
	UpdateLocation(ctx context.Context, aggregate *delivery.Delivery) error

	// Delete removes the record. Unknown ids fail with errs.ErrObjectNotFound.
	Delete(ctx context.Context, id kernel.UUID) error

	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetForUpdate loads the record and locks it for the rest of the
	// transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// GetActiveByOrder returns the pending, picked up or delivering record
	// bound to the order, or errs.ErrObjectNotFound.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error)

	// GetActiveByCourier returns every active record of the courier,
	// placeholders included, oldest first. The slice is empty when there are none.
	GetActiveByCourier(ctx context.Context, courierID kernel.UUID) ([]*delivery.Delivery, error)

	// DeleteStalePlaceholders removes pending records without an order whose
	// last reported location is older than before, and reports how many were
	// removed. Placeholders that never reported a location are kept.
	DeleteStalePlaceholders(ctx context.Context, before time.Time) (int64, error)
}
