// Package order models the customer order as a collaborator of the courier
// core. The core reads the restaurant, destination and amounts, and owns only
// the courier assignment and the status transitions tied to it:
//
//	Pending -> AwaitingCourier -> InDelivery -> Completed
//
// with rejection returning an order to Pending and cancellation possible from
// every non-final state. Creating or pricing orders happens elsewhere.
package order
