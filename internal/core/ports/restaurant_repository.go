package ports

import (
	"context"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/restaurant"
)

type RestaurantRepository interface {
	Add(ctx context.Context, r *restaurant.Restaurant) error
	Get(ctx context.Context, id kernel.UUID) (*restaurant.Restaurant, error)
}
