package commands

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order on behalf of its client and
// cancels the active delivery record bound to it, if there is one.
// Completed and cancelled orders cannot be cancelled.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory, clock ports.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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
	if !o.IsPlacedBy(cmd.ClientID()) {
		return errs.NewForbiddenError(cmd.ClientID().String(), "order", o.ID().String())
	}
	if err = o.Cancel(); err != nil {
		return err
	}

	d, err := deliveryRepo.GetActiveByOrder(ctx, o.ID())
	switch {
	case err == nil:
		if err = d.TransitionTo(delivery.Cancelled, h.clock.Now()); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, d); err != nil {
			return err
		}
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
