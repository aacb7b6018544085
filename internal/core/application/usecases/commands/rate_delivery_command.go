package commands

import (
	"errors"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrRateDeliveryCommandIsNotConstructed = errors.New(
	"RateDeliveryCommand must be created via NewRateDeliveryCommand constructor",
)

// RateDeliveryCommand carries a client's 1 to 5 rating of a delivery.
type RateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	clientID   kernel.UUID
	rating     int

	guard guard.ConstructorGuard
}

func NewRateDeliveryCommand(deliveryID, clientID kernel.UUID, rating int) (RateDeliveryCommand, error) {
	cmd := RateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setClientID(clientID),
		cmd.setRating(rating),
	); err != nil {
		return RateDeliveryCommand{}, err
	}

	return cmd, nil
}

func (c RateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrRateDeliveryCommandIsNotConstructed)
}

func (c RateDeliveryCommand) DeliveryID() kernel.UUID {
	return c.deliveryID
}

func (c RateDeliveryCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c RateDeliveryCommand) Rating() int {
	return c.rating
}

func (c *RateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery id", err)
	}
	c.deliveryID = id
	return nil
}

func (c *RateDeliveryCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	c.clientID = id
	return nil
}

func (c *RateDeliveryCommand) setRating(rating int) error {
	if rating < delivery.MinRating || rating > delivery.MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, delivery.MinRating, delivery.MaxRating)
	}
	c.rating = rating
	return nil
}
