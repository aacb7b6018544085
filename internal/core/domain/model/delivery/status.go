package delivery

import (
	"fmt"
	"strings"

	"courierhub/internal/pkg/errs"
)

// Status of a delivery record.
//
//	pending -> picked_up -> delivering -> delivered
//	    \           \            \
//	     +-----------+------------+------> cancelled
//
// Delivered and cancelled are terminal.
type Status int

const (
	Unknown Status = iota
	Pending
	PickedUp
	Delivering
	Delivered
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Pending:    "pending",
		PickedUp:   "picked_up",
		Delivering: "delivering",
		Delivered:  "delivered",
		Cancelled:  "cancelled",
	}
}

// ParseStatus accepts the wire names only. Anything else is a validation
// error, unknown values are never coerced to a default.
func ParseStatus(s string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for status, name := range getStatusStrings() {
		if name == normalized {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a delivery status", s))
	}
	return nil
}

// IsActive reports whether the record still counts as work in progress.
func (s Status) IsActive() bool {
	return s == Pending || s == PickedUp || s == Delivering
}

// IsRoutable reports whether the record still has stops to visit.
// Records already on the way to the customer are left out of route planning.
func (s Status) IsRoutable() bool {
	return s == Pending || s == PickedUp
}

func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo checks the move from s to next against the lifecycle.
func (s Status) CanTransitionTo(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}

	allowed := false
	switch s {
	case Pending:
		allowed = next == PickedUp || next == Cancelled
	case PickedUp:
		allowed = next == Delivering || next == Cancelled
	case Delivering:
		allowed = next == Delivered || next == Cancelled
	case Unknown, Delivered, Cancelled:
	}

	if !allowed {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("cannot move delivery from %s to %s", s, next),
		)
	}
	return nil
}

// Statuses lists every valid status, in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, PickedUp, Delivering, Delivered, Cancelled}
}

// ActiveStatuses lists the statuses counted by IsActive.
func ActiveStatuses() []Status {
	return []Status{Pending, PickedUp, Delivering}
}
