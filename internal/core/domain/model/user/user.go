package user

import (
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

var (
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser constructor")
	ErrNameIsRequired       = errs.NewValueIsRequiredError("name")
)

// User is the part of a platform account the courier core reads: identity,
// display name and role. Accounts are owned elsewhere; the core never changes them.
type User struct {
	id    kernel.UUID
	name  string
	role  Role
	guard guard.ConstructorGuard
}

func NewUser(id kernel.UUID, name string, role Role) (*User, error) {
	u := &User{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		u.setID(id),
		u.setName(name),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

func (u *User) Validate() error {
	if u == nil {
		return ErrUserIsNotConstructed
	}
	return u.guard.Validate(ErrUserIsNotConstructed)
}

func (u *User) ID() kernel.UUID {
	return u.id
}

func (u *User) Name() string {
	return u.name
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) IsCourier() bool {
	return u.role == Courier
}

// ValidateCourier fails unless the user can be bound to a delivery as its driver.
func (u *User) ValidateCourier() error {
	if err := u.Validate(); err != nil {
		return err
	}
	if !u.IsCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"courier",
			fmt.Errorf("user %s has role %s, not %s", u.id, u.role, Courier),
		)
	}
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	u.name = name
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
