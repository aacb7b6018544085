package queries

import (
	"errors"

	"courierhub/internal/pkg/guard"
)

var ErrGetActiveCourierLocationsQueryIsNotConstructed = errors.New(
	"GetActiveCourierLocationsQuery must be created via NewGetActiveCourierLocationsQuery constructor",
)

// GetActiveCourierLocationsQuery lists one position per courier that has
// active work, for the admin map.
type GetActiveCourierLocationsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetActiveCourierLocationsQuery() GetActiveCourierLocationsQuery {
	return GetActiveCourierLocationsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetActiveCourierLocationsQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveCourierLocationsQueryIsNotConstructed)
}

type ActiveCourierLocationResponse struct {
	CourierLocationResponse
	CourierName string
}
