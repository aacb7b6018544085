package user

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// Role is the platform role of a user. Only couriers may drive deliveries.
type Role int

const (
	UnknownRole Role = iota
	Client
	Courier
	RestaurantOwner
	Admin
)

func getRoleStrings() map[Role]string {
	//nolint:exhaustive // UnknownRole is never stored
	return map[Role]string{
		Client:          "client",
		Courier:         "livreur",
		RestaurantOwner: "restaurant",
		Admin:           "admin",
	}
}

// ParseRole maps the stored role name back to a Role.
func ParseRole(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if name == s {
			return role, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}
