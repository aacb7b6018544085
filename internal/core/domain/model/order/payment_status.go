package order

import (
	"fmt"

	"courierhub/internal/pkg/errs"
)

// PaymentStatus is read by the stats aggregation: only paid orders count as collected.
type PaymentStatus int

const (
	PaymentUnknown PaymentStatus = iota
	PaymentPending
	PaymentPaid
	PaymentFailed
)

func (p PaymentStatus) Validate() error {
	if p < PaymentPending || p > PaymentFailed {
		return errs.NewValueIsInvalidErrorWithCause("payment status", fmt.Errorf("%d is not a valid payment status", p))
	}
	return nil
}

func (p PaymentStatus) String() string {
	switch p {
	case PaymentPending:
		return "pending"
	case PaymentPaid:
		return "paid"
	case PaymentFailed:
		return "failed"
	case PaymentUnknown:
	}
	return "unknown"
}
