package queries

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrGetCourierDeliveriesQueryIsNotConstructed = errors.New(
	"GetCourierDeliveriesQuery must be created via NewGetCourierDeliveriesQuery constructor",
)

// GetCourierDeliveriesQuery lists a courier's records, newest first,
// optionally narrowed to one status.
type GetCourierDeliveriesQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	status    *delivery.Status

	guard guard.ConstructorGuard
}

// NewGetCourierDeliveriesQuery accepts an empty status for "all statuses".
func NewGetCourierDeliveriesQuery(courierID kernel.UUID, status string) (GetCourierDeliveriesQuery, error) {
	q := GetCourierDeliveriesQuery{guard: guard.NewConstructorGuard()}

	if err := courierID.Validate(); err != nil {
		return GetCourierDeliveriesQuery{}, errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	q.courierID = courierID

	if status != "" {
		s, err := delivery.ParseStatus(status)
		if err != nil {
			return GetCourierDeliveriesQuery{}, err
		}
		q.status = &s
	}

	return q, nil
}

func (q GetCourierDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierDeliveriesQueryIsNotConstructed)
}

func (q GetCourierDeliveriesQuery) CourierID() kernel.UUID {
	return q.courierID
}

// Status is nil when every status is requested.
func (q GetCourierDeliveriesQuery) Status() *delivery.Status {
	return q.status
}

// CourierDeliveryResponse is one row of the courier's delivery list.
// Order fields are empty for placeholders.
type CourierDeliveryResponse struct {
	ID              kernel.UUID
	OrderID         *kernel.UUID
	Status          delivery.Status
	RestaurantName  string
	DeliveryAddress string
	OrderTotal      float64
	DeliveryFee     float64
	Rating          *int
	CreatedAt       time.Time
	DeliveredAt     *time.Time
}
