package queries

import (
	"errors"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrGetLatestCourierLocationQueryIsNotConstructed = errors.New(
	"GetLatestCourierLocationQuery must be created via NewGetLatestCourierLocationQuery constructor",
)

// GetLatestCourierLocationQuery asks for the most recent position a courier
// reported, across all of the courier's records.
type GetLatestCourierLocationQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetLatestCourierLocationQuery(courierID kernel.UUID) (GetLatestCourierLocationQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetLatestCourierLocationQuery{}, errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	return GetLatestCourierLocationQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetLatestCourierLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetLatestCourierLocationQueryIsNotConstructed)
}

func (q GetLatestCourierLocationQuery) CourierID() kernel.UUID {
	return q.courierID
}

// CourierLocationResponse is a courier position read from a delivery record.
type CourierLocationResponse struct {
	CourierID  kernel.UUID
	DeliveryID kernel.UUID
	Location   kernel.Coordinates
	Address    string
	UpdatedAt  time.Time
}
