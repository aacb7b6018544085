package queries

import (
	"time"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/services"

	"github.com/google/uuid"
)

// routeRow is one delivery joined to its order and the order's client.
// Every order column is null for placeholders.
type routeRow struct {
	deliveryID        uuid.UUID
	deliveryStatus    int
	restaurantName    *string
	restaurantAddress *string
	restaurantLat     *float64
	restaurantLon     *float64
	createdAt         time.Time
	updatedAt         time.Time

	orderID         *uuid.UUID
	clientID        *uuid.UUID
	restaurantID    *uuid.UUID
	deliveryAddress *string
	destinationLat  *float64
	destinationLon  *float64
	orderCourierID  *uuid.UUID
	orderStatus     *int
	totalPrice      *float64
	deliveryFee     *float64
	paymentStatus   *int
	customerName    string
}

func (r routeRow) toCandidate(courierID kernel.UUID) (services.RouteCandidate, error) {
	d, err := r.delivery(courierID)
	if err != nil {
		return services.RouteCandidate{}, err
	}

	o, err := r.order()
	if err != nil {
		return services.RouteCandidate{}, err
	}

	return services.RouteCandidate{
		Delivery:     d,
		Order:        o,
		CustomerName: r.customerName,
	}, nil
}

func (r routeRow) delivery(courierID kernel.UUID) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(r.deliveryID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := optionalUUID(r.orderID)
	if err != nil {
		return nil, err
	}

	var snapshot *delivery.RestaurantSnapshot
	if r.restaurantName != nil {
		coordinates, coordErr := optionalCoordinates(r.restaurantLat, r.restaurantLon)
		if coordErr != nil {
			return nil, coordErr
		}
		s := delivery.NewRestaurantSnapshot(*r.restaurantName, deref(r.restaurantAddress), coordinates)
		snapshot = &s
	}

	return delivery.RestoreDelivery(delivery.State{
		ID:         id,
		OrderID:    orderID,
		CourierID:  courierID,
		Status:     delivery.Status(r.deliveryStatus),
		Restaurant: snapshot,
		CreatedAt:  r.createdAt,
		UpdatedAt:  r.updatedAt,
	})
}

// order returns nil when the record has no order or the order row is gone.
func (r routeRow) order() (*order.Order, error) {
	if r.orderID == nil || r.clientID == nil || r.restaurantID == nil || r.orderStatus == nil {
		return nil, nil
	}

	id, err := kernel.UUIDFromBytes(r.orderID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(r.clientID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(r.restaurantID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := optionalUUID(r.orderCourierID)
	if err != nil {
		return nil, err
	}
	destination, err := optionalCoordinates(r.destinationLat, r.destinationLon)
	if err != nil {
		return nil, err
	}

	paymentStatus := order.PaymentPending
	if r.paymentStatus != nil {
		paymentStatus = order.PaymentStatus(*r.paymentStatus)
	}

	return order.RestoreOrder(
		id,
		clientID,
		restaurantID,
		deref(r.deliveryAddress),
		destination,
		courierID,
		order.Status(*r.orderStatus),
		derefFloat(r.totalPrice),
		derefFloat(r.deliveryFee),
		paymentStatus,
	)
}

func optionalCoordinates(lat, lon *float64) (*kernel.Coordinates, error) {
	if lat == nil || lon == nil {
		return nil, nil
	}
	c, err := kernel.NewCoordinates(*lat, *lon)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
