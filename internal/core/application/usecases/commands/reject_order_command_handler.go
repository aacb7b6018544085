package commands

import (
	"context"
	"errors"

	"courierhub/internal/pkg/errs"
)

// RejectOrderCommandHandler returns the order to the pending pool. The
// delivery record created for the assignment is removed rather than
// cancelled, so the order can be assigned again.
type RejectOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewRejectOrderCommandHandler(uowFactory UoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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
	if err = o.Reject(cmd.CourierID()); err != nil {
		return err
	}

	d, err := deliveryRepo.GetActiveByOrder(ctx, o.ID())
	switch {
	case err == nil:
		if err = d.EnsureOwnedBy(cmd.CourierID()); err != nil {
			return err
		}
		if err = deliveryRepo.Delete(ctx, d.ID()); err != nil {
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
