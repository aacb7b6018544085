package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
)

// OrderRepository reads orders and writes back the courier and status.
// Add exists for seeding and tests: orders are created by the ordering service.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error
	Update(ctx context.Context, aggregate *order.Order) error
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
