package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrUpdateDeliveryLocationCommandIsNotConstructed = errors.New(
	"UpdateDeliveryLocationCommand must be created via NewUpdateDeliveryLocationCommand constructor",
)

// UpdateDeliveryLocationCommand reports a courier position for one delivery.
type UpdateDeliveryLocationCommand struct { //nolint:recvcheck //using for validation
	deliveryID  kernel.UUID
	courierID   kernel.UUID
	coordinates kernel.Coordinates
	address     string

	guard guard.ConstructorGuard
}

func NewUpdateDeliveryLocationCommand(
	deliveryID, courierID kernel.UUID,
	latitude, longitude float64,
	address string,
) (UpdateDeliveryLocationCommand, error) {
	cmd := UpdateDeliveryLocationCommand{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	coordinates, coordErr := kernel.NewCoordinates(latitude, longitude)
	cmd.coordinates = coordinates

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCourierID(courierID),
		coordErr,
	); err != nil {
		return UpdateDeliveryLocationCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDeliveryLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryLocationCommandIsNotConstructed)
}

func (c UpdateDeliveryLocationCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c UpdateDeliveryLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateDeliveryLocationCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}

func (c UpdateDeliveryLocationCommand) Address() string {
	return c.address
}

func (c *UpdateDeliveryLocationCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery id", err)
	}
	c.deliveryID = id
	return nil
}

func (c *UpdateDeliveryLocationCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	c.courierID = id
	return nil
}
