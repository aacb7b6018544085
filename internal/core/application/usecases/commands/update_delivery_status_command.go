package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand is sent by a courier to move one of their
// deliveries along its lifecycle. The status arrives as its wire name and is
// parsed here, so unknown values never reach the handler.
//
//	cmd, err := NewUpdateDeliveryStatusCommand(deliveryID, courierID, "picked_up")
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	courierID  kernel.UUID
	status     delivery.Status

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryStatusCommand(deliveryID, courierID kernel.UUID, status string) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCourierID(courierID),
		cmd.setStatus(status),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateDeliveryStatusCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateDeliveryStatusCommand) Status() delivery.Status {
	return c.status
}

func (c *UpdateDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery id", err)
	}
	c.deliveryID = id
	return nil
}

func (c *UpdateDeliveryStatusCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	c.courierID = id
	return nil
}

func (c *UpdateDeliveryStatusCommand) setStatus(raw string) error {
	status, err := delivery.ParseStatus(raw)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}
