package commands

import (
	"context"

	"courierhub/internal/core/ports"
)

// UpdateDeliveryLocationCommandHandler updates the tracked location of a
// single record owned by the reporting courier.
type UpdateDeliveryLocationCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

func NewUpdateDeliveryLocationCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) UpdateDeliveryLocationCommandHandler {
	return UpdateDeliveryLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateDeliveryLocationCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryLocationCommand) error {
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

	d, err := deliveryRepo.GetForUpdate(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}
	if err = d.EnsureOwnedBy(cmd.CourierID()); err != nil {
		return err
	}
	if err = d.UpdateLocation(cmd.Coordinates(), cmd.Address(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.UpdateLocation(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
