package queries

import (
	"context"
	"errors"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrStartLocationIsRequired is returned when no starting point was sent and
// the courier never reported a location.
var ErrStartLocationIsRequired = errs.NewValueIsRequiredError(
	"start location (send one or update your location first)")

type GetOptimizedRouteQueryHandler struct {
	db        *gorm.DB
	optimizer services.RouteOptimizer
}

func NewGetOptimizedRouteQueryHandler(db *gorm.DB) GetOptimizedRouteQueryHandler {
	return GetOptimizedRouteQueryHandler{
		db:        db,
		optimizer: services.NewRouteOptimizer(),
	}
}

// Handle reads the courier's pending and picked up deliveries with their
// orders and customer names, and sequences them from the starting point.
// Without open deliveries it returns services.ErrNoActiveDeliveries.
func (h GetOptimizedRouteQueryHandler) Handle(
	ctx context.Context,
	query GetOptimizedRouteQuery,
) (GetOptimizedRouteQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	start, err := h.resolveStart(ctx, query)
	if err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	candidates, err := h.loadCandidates(ctx, query.CourierID())
	if err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	route, err := h.optimizer.Optimize(start, candidates)
	if err != nil {
		return GetOptimizedRouteQueryResponse{}, err
	}

	return GetOptimizedRouteQueryResponse{
		Route:   route,
		Message: routeMessage(route),
	}, nil
}

func (h GetOptimizedRouteQueryHandler) resolveStart(ctx context.Context, query GetOptimizedRouteQuery) (kernel.Coordinates, error) {
	if start := query.Start(); start != nil {
		return *start, nil
	}

	latest, err := latestCourierLocation(ctx, h.db, query.CourierID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.Coordinates{}, ErrStartLocationIsRequired
		}
		return kernel.Coordinates{}, err
	}
	return latest.Location, nil
}

func (h GetOptimizedRouteQueryHandler) loadCandidates(ctx context.Context, courierID kernel.UUID) ([]services.RouteCandidate, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.status,
			d.restaurant_name,
			d.restaurant_address,
			d.restaurant_latitude,
			d.restaurant_longitude,
			d.created_at,
			d.updated_at,
			o.id,
			o.client_id,
			o.restaurant_id,
			o.delivery_address,
			o.destination_latitude,
			o.destination_longitude,
			o.courier_id,
			o.status,
			o.total_price,
			o.delivery_fee,
			o.payment_status,
			COALESCE(u.name, '')
		FROM deliveries d
		LEFT JOIN orders o ON o.id = d.order_id
		LEFT JOIN users u ON u.id = o.client_id
		WHERE d.courier_id = ? AND d.status IN ?
		ORDER BY d.created_at, d.id
	`, courierID.Bytes(), statusValues([]delivery.Status{delivery.Pending, delivery.PickedUp})).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	candidates := make([]services.RouteCandidate, 0)
	for rows.Next() {
		var r routeRow
		err = rows.Scan(
			&r.deliveryID,
			&r.deliveryStatus,
			&r.restaurantName,
			&r.restaurantAddress,
			&r.restaurantLat,
			&r.restaurantLon,
			&r.createdAt,
			&r.updatedAt,
			&r.orderID,
			&r.clientID,
			&r.restaurantID,
			&r.deliveryAddress,
			&r.destinationLat,
			&r.destinationLon,
			&r.orderCourierID,
			&r.orderStatus,
			&r.totalPrice,
			&r.deliveryFee,
			&r.paymentStatus,
			&r.customerName,
		)
		if err != nil {
			return nil, err
		}

		candidate, mapErr := r.toCandidate(courierID)
		if mapErr != nil {
			return nil, mapErr
		}
		candidates = append(candidates, candidate)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return candidates, nil
}
