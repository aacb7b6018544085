package commands

import (
	"context"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/ports"
)

// RegisterCourierCommandHandler creates an empty pending record, with no
// order and no location, for a user with the courier role.
type RegisterCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	clock      ports.Clock
}

func NewRegisterCourierCommandHandler(uowFactory CourierUoWFactory, clock ports.Clock) RegisterCourierCommandHandler {
	return RegisterCourierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle returns the id of the created record.
func (h RegisterCourierCommandHandler) Handle(ctx context.Context, cmd RegisterCourierCommand) (kernel.UUID, error) {
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

	courier, err := uow.UserRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return kernel.UUID{}, err
	}

	d, err := delivery.NewPlaceholder(kernel.NewUUID(), courier, nil, h.clock.Now())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.DeliveryRepository().Add(ctx, d); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return d.ID(), nil
}
