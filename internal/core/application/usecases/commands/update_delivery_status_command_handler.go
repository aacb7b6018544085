package commands

import (
	"context"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/ports"
)

// UpdateDeliveryStatusCommandHandler applies a courier's status change and
// mirrors it onto the bound order in the same transaction:
//
//	picked_up  -> order accepted, when it was still awaiting the courier
//	delivered  -> order completed
//	cancelled  -> order cancelled, unless it already reached a final state
//
// Placeholders have no order and only change themselves.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewUpdateDeliveryStatusCommandHandler(uowFactory UoWFactory, clock ports.Clock) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

func (h UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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
	if err = d.EnsureOwnedBy(cmd.CourierID()); err != nil {
		return err
	}
	if err = d.TransitionTo(cmd.Status(), h.clock.Now()); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, d); err != nil {
		return err
	}

	if orderID := d.Order(); orderID != nil {
		orderRepo := uow.OrderRepository()

		o, getErr := orderRepo.Get(ctx, *orderID)
		if getErr != nil {
			return getErr
		}

		changed, mirrorErr := mirrorOrderStatus(o, d)
		if mirrorErr != nil {
			return mirrorErr
		}

		if changed {
			if err = orderRepo.Update(ctx, o); err != nil {
				return err
			}
		}
	}

	return uow.Commit(ctx)
}

// mirrorOrderStatus reports whether the order was changed.
func mirrorOrderStatus(o *order.Order, d *delivery.Delivery) (bool, error) {
	switch d.Status() {
	case delivery.PickedUp:
		if o.Status() != order.AwaitingCourier {
			return false, nil
		}
		return true, o.Accept(d.Courier())

	case delivery.Delivered:
		if o.Status() == order.AwaitingCourier {
			if err := o.Accept(d.Courier()); err != nil {
				return false, err
			}
		}
		return true, o.Complete()

	case delivery.Cancelled:
		if o.Status().IsFinal() {
			return false, nil
		}
		return true, o.Cancel()

	case delivery.Unknown, delivery.Pending, delivery.Delivering:
	}
	return false, nil
}
