package queries

import (
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var ErrGetOptimizedRouteQueryIsNotConstructed = errors.New(
	"GetOptimizedRouteQuery must be created via NewGetOptimizedRouteQuery constructor",
)

// GetOptimizedRouteQuery asks for the order in which a courier should visit
// the restaurants and customers of the open deliveries.
//
//	q, err := NewGetOptimizedRouteQuery(courierID, nil) // start from the last stored position
type GetOptimizedRouteQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	start     *kernel.Coordinates

	guard guard.ConstructorGuard
}

// NewGetOptimizedRouteQuery takes an optional starting point.
func NewGetOptimizedRouteQuery(courierID kernel.UUID, start *kernel.Coordinates) (GetOptimizedRouteQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetOptimizedRouteQuery{}, errs.NewValueIsRequiredErrorWithCause("courier id", err)
	}

	q := GetOptimizedRouteQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}

	if start != nil {
		if err := start.Validate(); err != nil {
			return GetOptimizedRouteQuery{}, errs.NewValueIsInvalidErrorWithCause("start", err)
		}
		s := *start
		q.start = &s
	}

	return q, nil
}

func (q GetOptimizedRouteQuery) Validate() error {
	return q.guard.Validate(ErrGetOptimizedRouteQueryIsNotConstructed)
}

func (q GetOptimizedRouteQuery) CourierID() kernel.UUID {
	return q.courierID
}

func (q GetOptimizedRouteQuery) Start() *kernel.Coordinates {
	if q.start == nil {
		return nil
	}
	s := *q.start
	return &s
}

type GetOptimizedRouteQueryResponse struct {
	Route   services.OptimizedRoute
	Message string
}

func routeMessage(route services.OptimizedRoute) string {
	return fmt.Sprintf("Optimized route with %d stops", route.Stops())
}
