package services

import (
	"fmt"
	"math"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/pkg/errs"
)

// ErrNoActiveDeliveries is returned when the courier has nothing left to pick up or drop off.
var ErrNoActiveDeliveries = fmt.Errorf("%w: no active deliveries to optimize", errs.ErrObjectNotFound)

const (
	StartPointID          = "starting_point"
	StartPointName        = "Your Current Location"
	DefaultRestaurantName = "Restaurant"
	DefaultCustomerName   = "Customer"
	DefaultAddress        = "No address available"
)

// PointType tells the courier what happens at a stop.
type PointType string

const (
	PointCurrentLocation PointType = "current_location"
	PointRestaurant      PointType = "restaurant"
	PointCustomer        PointType = "customer"
)

// RoutePoint is one stop of an optimized route.
// DeliveryID and OrderID are nil for the starting point.
type RoutePoint struct {
	ID          string
	Coordinates kernel.Coordinates
	Type        PointType
	Name        string
	Address     string
	DeliveryID  *kernel.UUID
	OrderID     *kernel.UUID
}

// RouteCandidate is an open delivery together with the data needed to place
// its stops. Order is nil when the order could not be loaded.
type RouteCandidate struct {
	Delivery     *delivery.Delivery
	Order        *order.Order
	CustomerName string
}

type OptimizedRoute struct {
	Points  []RoutePoint
	Metrics kernel.RouteMetrics
}

// Stops is the number of points on the route, the starting point included.
func (r OptimizedRoute) Stops() int {
	return len(r.Points)
}

// RouteOptimizer orders a courier's pickups and drop-offs with the
// nearest-neighbor heuristic over great-circle distances.
//
// The result is a greedy approximation: from the current point it always
// moves to the closest unvisited point, first minimum wins on ties. It does
// not solve the travelling salesman problem and does not enforce that a
// restaurant is visited before its customer.
type RouteOptimizer struct{}

func NewRouteOptimizer() RouteOptimizer {
	return RouteOptimizer{}
}

// Optimize builds the stops and sequences them starting at start.
//
// Only pending and picked up deliveries are considered. A pending delivery
// contributes its restaurant and its customer, a picked up one only its
// customer. Stops without valid coordinates are left out, and deliveries
// whose order is missing are skipped entirely.
//
// Example:
//
//	route, err := services.NewRouteOptimizer().Optimize(start, candidates)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // nothing to deliver
//	}
func (o RouteOptimizer) Optimize(start kernel.Coordinates, candidates []RouteCandidate) (OptimizedRoute, error) {
	if err := start.Validate(); err != nil {
		return OptimizedRoute{}, err
	}

	open := 0
	for _, c := range candidates {
		if c.Delivery != nil && c.Delivery.Status().IsRoutable() {
			open++
		}
	}
	if open == 0 {
		return OptimizedRoute{}, ErrNoActiveDeliveries
	}

	seed := RoutePoint{
		ID:          StartPointID,
		Coordinates: start,
		Type:        PointCurrentLocation,
		Name:        StartPointName,
	}

	ordered := nearestNeighbor(seed, o.buildPoints(candidates))

	coords := make([]kernel.Coordinates, 0, len(ordered))
	for _, p := range ordered {
		coords = append(coords, p.Coordinates)
	}

	return OptimizedRoute{
		Points:  ordered,
		Metrics: kernel.CalculateRouteMetrics(coords),
	}, nil
}

func (o RouteOptimizer) buildPoints(candidates []RouteCandidate) []RoutePoint {
	points := make([]RoutePoint, 0, len(candidates)*2)

	for _, c := range candidates {
		d := c.Delivery
		if d == nil || !d.Status().IsRoutable() || c.Order == nil {
			continue
		}

		deliveryID := d.ID()
		orderID := c.Order.ID()

		if d.Status() == delivery.Pending {
			if r := d.Restaurant(); r != nil && r.Coordinates() != nil {
				points = append(points, RoutePoint{
					ID:          "restaurant_" + orderID.String(),
					Coordinates: *r.Coordinates(),
					Type:        PointRestaurant,
					Name:        orDefault(r.Name(), DefaultRestaurantName),
					Address:     orDefault(r.Address(), DefaultAddress),
					DeliveryID:  &deliveryID,
					OrderID:     &orderID,
				})
			}
		}

		if dest := c.Order.Destination(); dest != nil {
			points = append(points, RoutePoint{
				ID:          "customer_" + orderID.String(),
				Coordinates: *dest,
				Type:        PointCustomer,
				Name:        orDefault(c.CustomerName, DefaultCustomerName),
				Address:     orDefault(c.Order.DeliveryAddress(), DefaultAddress),
				DeliveryID:  &deliveryID,
				OrderID:     &orderID,
			})
		}
	}

	return points
}

func nearestNeighbor(seed RoutePoint, points []RoutePoint) []RoutePoint {
	route := make([]RoutePoint, 0, len(points)+1)
	route = append(route, seed)

	remaining := append([]RoutePoint(nil), points...)
	current := seed

	for len(remaining) > 0 {
		best := 0
		bestDistance := math.Inf(1)
		for i, p := range remaining {
			if d := current.Coordinates.DistanceTo(p.Coordinates); d < bestDistance {
				best = i
				bestDistance = d
			}
		}

		current = remaining[best]
		route = append(route, current)
		remaining = append(remaining[:best], remaining[best+1:]...)
	}

	return route
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
