package queries

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

type GetDeliveryQuery struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, errs.NewValueIsRequiredErrorWithCause("delivery id", err)
	}
	return GetDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}

// DeliveryResponse is one record with its order's drop-off address.
// CurrentLocation is nil until the courier reports a position.
type DeliveryResponse struct {
	ID                kernel.UUID
	OrderID           *kernel.UUID
	CourierID         kernel.UUID
	ClientID          *kernel.UUID
	Status            delivery.Status
	RestaurantName    string
	RestaurantAddress string
	DeliveryAddress   string
	DeliveryFee       float64
	Rating            *int
	CurrentLocation   *CourierLocationResponse
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeliveredAt       *time.Time
}

// IsVisibleTo reports whether userID is the record's courier or client.
func (r DeliveryResponse) IsVisibleTo(userID kernel.UUID) bool {
	if r.CourierID.IsEqual(userID) {
		return true
	}
	return r.ClientID != nil && r.ClientID.IsEqual(userID)
}
