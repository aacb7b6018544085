package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained after
// Begin share its transaction. Domain events of the aggregates saved through
// them are published once Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active, which makes it
	// safe to defer after a successful Commit.
	Rollback(ctx context.Context) error

	DeliveryRepository() DeliveryRepository
	OrderRepository() OrderRepository
	UserRepository() UserRepository
	RestaurantRepository() RestaurantRepository
}
