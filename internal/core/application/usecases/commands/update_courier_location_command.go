package commands

import (
	"errors"
	"strings"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrUpdateCourierLocationCommandIsNotConstructed = errors.New(
	"UpdateCourierLocationCommand must be created via NewUpdateCourierLocationCommand constructor",
)

// UpdateCourierLocationCommand is a position report from a courier's device.
// The address is optional; an empty one keeps whatever was known before.
//
//	cmd, err := NewUpdateCourierLocationCommand(courierID, 36.8065, 10.1815, "")
//	if errs.IsValidation(err) {
//	    // coordinates out of range
//	}
type UpdateCourierLocationCommand struct { //nolint:recvcheck //using for validation
	courierID   kernel.UUID
	coordinates kernel.Coordinates
	address     string

	guard guard.ConstructorGuard
}

func NewUpdateCourierLocationCommand(
	courierID kernel.UUID,
	latitude, longitude float64,
	address string,
) (UpdateCourierLocationCommand, error) {
	cmd := UpdateCourierLocationCommand{
		address: strings.TrimSpace(address),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCourierID(courierID),
		cmd.setCoordinates(latitude, longitude),
	); err != nil {
		return UpdateCourierLocationCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierLocationCommandIsNotConstructed)
}

func (c UpdateCourierLocationCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c UpdateCourierLocationCommand) Coordinates() kernel.Coordinates {
	return c.coordinates
}

func (c UpdateCourierLocationCommand) Address() string {
	return c.address
}

func (c *UpdateCourierLocationCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	c.courierID = id
	return nil
}

func (c *UpdateCourierLocationCommand) setCoordinates(latitude, longitude float64) error {
	coordinates, err := kernel.NewCoordinates(latitude, longitude)
	if err != nil {
		return err
	}
	c.coordinates = coordinates
	return nil
}
