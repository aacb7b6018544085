package commands

import (
	"context"

	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// RateDeliveryCommandHandler stores the rating given by the delivery's client.
type RateDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	clock      ports.Clock
}

func NewRateDeliveryCommandHandler(uowFactory DeliveryUoWFactory, clock ports.Clock) RateDeliveryCommandHandler {
	return RateDeliveryCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h RateDeliveryCommandHandler) Handle(ctx context.Context, cmd RateDeliveryCommand) error {
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

	d, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	client := d.Client()
	if client == nil || !client.IsEqual(cmd.ClientID()) {
		return errs.NewForbiddenError(cmd.ClientID().String(), "delivery", d.ID().String())
	}

	if err = d.Rate(cmd.Rating(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
