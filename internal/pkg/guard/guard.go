// Package guard detects values that bypassed their constructor.
//
// A struct embeds a ConstructorGuard set by its New… function; the zero value
// of the struct then fails Validate, so a `var d delivery.Delivery` can never be
// persisted or passed to a handler by accident.
package guard

import "errors"

var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
