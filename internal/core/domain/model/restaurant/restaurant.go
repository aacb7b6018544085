// Package restaurant models the restaurant data the courier core snapshots onto
// new deliveries: name, address and, when known, coordinates.
package restaurant

import (
	"errors"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var (
	ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")
	ErrNameIsRequired             = errs.NewValueIsRequiredError("restaurant name")
)

type Restaurant struct {
	id          kernel.UUID
	name        string
	address     string
	coordinates *kernel.Coordinates
	guard       guard.ConstructorGuard
}

// NewRestaurant builds a restaurant. Coordinates are optional: restaurants
// without them are skipped when routes are planned.
func NewRestaurant(id kernel.UUID, name, address string, coordinates *kernel.Coordinates) (*Restaurant, error) {
	r := &Restaurant{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		r.setCoordinates(coordinates),
	); err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) Address() string {
	return r.address
}

// Coordinates returns nil when the restaurant location is unknown.
func (r *Restaurant) Coordinates() *kernel.Coordinates {
	if r.coordinates == nil {
		return nil
	}
	c := *r.coordinates
	return &c
}

func (r *Restaurant) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Restaurant) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}

func (r *Restaurant) setCoordinates(coordinates *kernel.Coordinates) error {
	if coordinates == nil {
		return nil
	}
	if err := coordinates.Validate(); err != nil {
		return err
	}
	c := *coordinates
	r.coordinates = &c
	return nil
}
