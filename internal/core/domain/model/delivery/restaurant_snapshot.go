package delivery

import "courierhub/internal/core/domain/model/kernel"

// RestaurantSnapshot copies what the courier needs to find the pickup point.
// It is taken at assignment and not refreshed when the restaurant changes.
type RestaurantSnapshot struct {
	name        string
	address     string
	coordinates *kernel.Coordinates
}

// NewRestaurantSnapshot keeps coordinates only when they are valid, a
// restaurant without a known position is still a valid pickup.
func NewRestaurantSnapshot(name, address string, coordinates *kernel.Coordinates) RestaurantSnapshot {
	s := RestaurantSnapshot{name: name, address: address}
	if coordinates != nil && coordinates.Validate() == nil {
		c := *coordinates
		s.coordinates = &c
	}
	return s
}

func (s RestaurantSnapshot) Name() string {
	return s.name
}

func (s RestaurantSnapshot) Address() string {
	return s.address
}

func (s RestaurantSnapshot) Coordinates() *kernel.Coordinates {
	if s.coordinates == nil {
		return nil
	}
	c := *s.coordinates
	return &c
}
