package commands

import (
	"context"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/ports"
)

// AcceptOrderCommandHandler moves the order to InDelivery and its active
// delivery record to picked up. Only the assigned courier may accept.
type AcceptOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewAcceptOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = o.Accept(cmd.CourierID()); err != nil {
		return err
	}

	d, err := deliveryRepo.GetActiveByOrder(ctx, o.ID())
	if err != nil {
		return err
	}
	if err = d.EnsureOwnedBy(cmd.CourierID()); err != nil {
		return err
	}
	if err = d.TransitionTo(delivery.PickedUp, h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
