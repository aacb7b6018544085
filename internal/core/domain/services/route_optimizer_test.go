package services_test

import (
	"testing"
	"time"

	"courierhub/internal/core/domain/model/delivery"
	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/core/domain/services"
	"courierhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func coords(t *testing.T, lat, lon float64) kernel.Coordinates {
	t.Helper()
	c, err := kernel.NewCoordinates(lat, lon)
	require.NoError(t, err)
	return c
}

type fixture struct {
	courier *user.User
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	u, err := user.NewUser(kernel.NewUUID(), "Sami", user.Courier)
	require.NoError(t, err)
	return fixture{courier: u}
}

// candidate builds an assigned delivery moved to status, with the restaurant
// at r and the customer at c (either may be nil).
func (f fixture) candidate(t *testing.T, status delivery.Status, r, c *kernel.Coordinates) services.RouteCandidate {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), "", c, 20, 3)
	require.NoError(t, err)

	d, err := delivery.NewDelivery(kernel.NewUUID(), f.courier, o, delivery.NewRestaurantSnapshot("", "", r), now)
	require.NoError(t, err)

	path := map[delivery.Status][]delivery.Status{
		delivery.Pending:    nil,
		delivery.PickedUp:   {delivery.PickedUp},
		delivery.Delivering: {delivery.PickedUp, delivery.Delivering},
		delivery.Delivered:  {delivery.PickedUp, delivery.Delivering, delivery.Delivered},
	}
	for _, s := range path[status] {
		require.NoError(t, d.TransitionTo(s, now))
	}

	return services.RouteCandidate{Delivery: d, Order: o}
}

func ptr(c kernel.Coordinates) *kernel.Coordinates {
	return &c
}

func TestRouteOptimizer_Optimize(t *testing.T) {
	optimizer := services.NewRouteOptimizer()
	f := newFixture(t)
	start := coords(t, 36.80, 10.18)

	t.Run("picked up delivery routes straight to the customer", func(t *testing.T) {
		restaurant := coords(t, 36.80, 10.18)
		customer := coords(t, 36.85, 10.20)
		c := f.candidate(t, delivery.PickedUp, &restaurant, &customer)

		route, err := optimizer.Optimize(start, []services.RouteCandidate{c})

		require.NoError(t, err)
		require.Len(t, route.Points, 2)
		assert.Equal(t, services.PointCurrentLocation, route.Points[0].Type)
		assert.Equal(t, services.StartPointID, route.Points[0].ID)
		assert.Equal(t, services.StartPointName, route.Points[0].Name)
		assert.Equal(t, services.PointCustomer, route.Points[1].Type)
		assert.Equal(t, "customer_"+c.Order.ID().String(), route.Points[1].ID)
		assert.Equal(t, services.DefaultCustomerName, route.Points[1].Name)
		assert.Equal(t, services.DefaultAddress, route.Points[1].Address)

		expected := kernel.DistanceKm(36.80, 10.18, 36.85, 10.20)
		assert.InDelta(t, expected, route.Metrics.TotalDistanceKm, 0.05)
		assert.InDelta(t, 5.8, route.Metrics.TotalDistanceKm, 1e-9)
		assert.Equal(t, 14, route.Metrics.EstimatedTimeMinutes)
		assert.Equal(t, "14 min", route.Metrics.EstimatedTimeText)
		assert.Equal(t, 2, route.Stops())
	})

	t.Run("pending delivery adds the restaurant stop", func(t *testing.T) {
		restaurant := coords(t, 36.81, 10.18)
		customer := coords(t, 36.90, 10.25)
		c := f.candidate(t, delivery.Pending, &restaurant, &customer)

		route, err := optimizer.Optimize(start, []services.RouteCandidate{c})

		require.NoError(t, err)
		require.Len(t, route.Points, 3)
		assert.Equal(t, services.PointRestaurant, route.Points[1].Type)
		assert.Equal(t, "restaurant_"+c.Order.ID().String(), route.Points[1].ID)
		assert.Equal(t, services.DefaultRestaurantName, route.Points[1].Name)
		assert.Equal(t, services.PointCustomer, route.Points[2].Type)
		require.NotNil(t, route.Points[2].DeliveryID)
		assert.True(t, route.Points[2].DeliveryID.IsEqual(c.Delivery.ID()))
	})

	t.Run("visits the nearest remaining point first", func(t *testing.T) {
		far := coords(t, 37.00, 10.18)
		near := coords(t, 36.82, 10.18)
		mid := coords(t, 36.90, 10.18)
		a := f.candidate(t, delivery.PickedUp, nil, &far)
		b := f.candidate(t, delivery.PickedUp, nil, &near)
		c := f.candidate(t, delivery.PickedUp, nil, &mid)

		route, err := optimizer.Optimize(start, []services.RouteCandidate{a, b, c})

		require.NoError(t, err)
		require.Len(t, route.Points, 4)
		assert.True(t, route.Points[1].OrderID.IsEqual(b.Order.ID()))
		assert.True(t, route.Points[2].OrderID.IsEqual(c.Order.ID()))
		assert.True(t, route.Points[3].OrderID.IsEqual(a.Order.ID()))
	})

	t.Run("first minimum wins on equal distances", func(t *testing.T) {
		same := coords(t, 36.85, 10.18)
		a := f.candidate(t, delivery.PickedUp, nil, ptr(same))
		b := f.candidate(t, delivery.PickedUp, nil, ptr(same))

		route, err := optimizer.Optimize(start, []services.RouteCandidate{a, b})

		require.NoError(t, err)
		assert.True(t, route.Points[1].OrderID.IsEqual(a.Order.ID()))
		assert.True(t, route.Points[2].OrderID.IsEqual(b.Order.ID()))
	})

	t.Run("skips stops without coordinates and deliveries without order", func(t *testing.T) {
		noCoords := f.candidate(t, delivery.Pending, nil, nil)
		orphan := f.candidate(t, delivery.PickedUp, nil, ptr(coords(t, 36.9, 10.1)))
		orphan.Order = nil

		route, err := optimizer.Optimize(start, []services.RouteCandidate{noCoords, orphan})

		require.NoError(t, err)
		require.Len(t, route.Points, 1)
		assert.Equal(t, "0 min", route.Metrics.EstimatedTimeText)
		assert.Equal(t, 1, route.Stops())
	})

	t.Run("delivering and delivered records are not routed", func(t *testing.T) {
		customer := coords(t, 36.85, 10.20)
		onTheWay := f.candidate(t, delivery.Delivering, nil, &customer)
		done := f.candidate(t, delivery.Delivered, nil, &customer)

		_, err := optimizer.Optimize(start, []services.RouteCandidate{onTheWay, done})

		require.ErrorIs(t, err, services.ErrNoActiveDeliveries)
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("no deliveries is not found", func(t *testing.T) {
		_, err := optimizer.Optimize(start, nil)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("start must be constructed", func(t *testing.T) {
		_, err := optimizer.Optimize(kernel.Coordinates{}, nil)

		require.ErrorIs(t, err, kernel.ErrCoordinatesAreNotConstructed)
	})
}
