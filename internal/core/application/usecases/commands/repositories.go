// Package commands contains the write side of the courier core: every
// operation that creates, changes or removes delivery records and the order
// fields the core owns. Each handler validates its command, opens one unit of
// work, applies the change through the aggregates and commits.
package commands

import (
	"context"

	"courierhub/internal/core/ports"
)

type (
	// TxManager handles the transaction lifecycle of a unit of work.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	// DeliveryUoW is used by commands that touch a single delivery record.
	DeliveryUoW interface {
		TxManager
		DeliveryRepoFactory
	}

	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// CourierUoW is used by commands that may create a record for a courier
	// and therefore need to read the courier's account.
	CourierUoW interface {
		TxManager
		DeliveryRepoFactory
		UserRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// UoW spans deliveries and their orders, for commands that must keep
	// both sides consistent.
	//
	//	uow := factory.Create()
	//	if err := uow.Begin(ctx); err != nil {
	//	    return err
	//	}
	//	defer func() { _ = uow.Rollback(ctx) }()
	//
	//	// ... uow.DeliveryRepository(), uow.OrderRepository()
	//
	//	return uow.Commit(ctx)
	UoW interface {
		TxManager
		DeliveryRepoFactory
		OrderRepoFactory
		UserRepoFactory
		RestaurantRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
