package commands

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/ports"
	"courierhub/internal/pkg/errs"
)

// AssignCourierCommandHandler creates the delivery record for an order and
// marks the order as waiting for the courier to accept.
//
// The order, the courier and the order's restaurant must exist, the user
// must be a courier, and the order must not already have an active record.
// The check runs in the same transaction as the insert; the storage layer
// rejects the race that slips past it, and both surface as errs.ErrConflict.
type AssignCourierCommandHandler struct {
	uowFactory UoWFactory
	clock      ports.Clock
}

func NewAssignCourierCommandHandler(uowFactory UoWFactory, clock ports.Clock) AssignCourierCommandHandler {
	return AssignCourierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the id of the new delivery record.
func (h AssignCourierCommandHandler) Handle(ctx context.Context, cmd AssignCourierCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	// An accepted order is no longer assignable, but the caller must see the
	// live record as a conflict rather than a status error.
	_, err = deliveryRepo.GetActiveByOrder(ctx, o.ID())
	switch {
	case err == nil:
		return kernel.UUID{}, errs.NewConflictError("active delivery for order", o.ID().String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return kernel.UUID{}, err
	}

	if err = o.ValidateAssign(); err != nil {
		return kernel.UUID{}, err
	}

	courier, err := uow.UserRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if err = courier.ValidateCourier(); err != nil {
		return kernel.UUID{}, err
	}

	r, err := uow.RestaurantRepository().Get(ctx, o.RestaurantID())
	if err != nil {
		return kernel.UUID{}, err
	}

	d, err := delivery.NewDelivery(
		kernel.NewUUID(),
		courier,
		o,
		delivery.NewRestaurantSnapshot(r.Name(), r.Address(), r.Coordinates()),
		h.clock.Now(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = o.AssignCourier(courier.ID()); err != nil {
		return kernel.UUID{}, err
	}

	if err = deliveryRepo.Add(ctx, d); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return d.ID(), nil
}
