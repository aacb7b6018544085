package queries

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrGetCourierStatsQueryIsNotConstructed = errors.New(
	"GetCourierStatsQuery must be created via NewGetCourierStatsQuery constructor",
)

// GetCourierStatsQuery asks for a courier's dashboard figures.
type GetCourierStatsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetCourierStatsQuery(courierID kernel.UUID) (GetCourierStatsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierStatsQuery{}, errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}
	return GetCourierStatsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetCourierStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierStatsQueryIsNotConstructed)
}

func (q GetCourierStatsQuery) CourierID() kernel.UUID {
	return q.courierID
}
