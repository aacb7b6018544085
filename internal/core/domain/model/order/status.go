package order

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// Status is the order lifecycle as far as courier assignment is concerned.
//
//	Pending ──assign──> AwaitingCourier ──accept──> InDelivery ──complete──> Completed
//	   ^                     │   ^   │
//	   └──────reject─────────┘   └───┘ reassign
//
// Every state except Completed and Cancelled may be cancelled.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	// Pending orders have no courier.
	Pending
	// AwaitingCourier orders have a courier who has not accepted yet.
	AwaitingCourier
	// InDelivery orders were accepted and are on their way.
	InDelivery
	Completed
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Pending:         "Pending",
		AwaitingCourier: "AwaitingCourier",
		InDelivery:      "InDelivery",
		Completed:       "Completed",
		Cancelled:       "Cancelled",
	}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transition is possible.
func (s Status) IsFinal() bool {
	return s == Completed || s == Cancelled
}

// ValidateAssign allows the first assignment and reassignment before acceptance.
func (s Status) ValidateAssign() error {
	if s != Pending && s != AwaitingCourier {
		return invalidTransition(s, "assign")
	}
	return nil
}

// ValidateCanHaveCourier checks that the courier reference matches the status.
// Cancelled orders may or may not keep the courier they had.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	switch s {
	case Pending:
		if courier {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have a courier", s),
			)
		}
	case AwaitingCourier, InDelivery, Completed:
		if !courier {
			return errs.NewValueIsInvalidErrorWithCause(
				"status is invalid",
				fmt.Errorf("%s is not a valid status to have no courier", s),
			)
		}
	case Unknown, Cancelled:
	}
	return nil
}

func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return AwaitingCourier, nil
}

func (s Status) Accept() (Status, error) {
	if s != AwaitingCourier {
		return Unknown, invalidTransition(s, "accept")
	}
	return InDelivery, nil
}

func (s Status) Reject() (Status, error) {
	if s != AwaitingCourier {
		return Unknown, invalidTransition(s, "reject")
	}
	return Pending, nil
}

func (s Status) Complete() (Status, error) {
	if s != InDelivery {
		return Unknown, invalidTransition(s, "complete")
	}
	return Completed, nil
}

func (s Status) Cancel() (Status, error) {
	if s.IsFinal() || s == Unknown {
		return Unknown, invalidTransition(s, "cancel")
	}
	return Cancelled, nil
}

func invalidTransition(s Status, action string) error {
	return errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%s is not a valid status to %s", s, action),
	)
}
