package order

import (
	"errors"
	"fmt"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

// DefaultDeliveryFee is charged when the order does not carry its own fee.
const DefaultDeliveryFee = 3.0

var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is a customer order as seen by the courier core. The core reads the
// restaurant and destination and writes back the assigned courier and the
// status; everything else (items, pricing) is owned by the ordering service.
//
// Destination is optional. Orders without coordinates are still assignable,
// they are only left out of route planning.
type Order struct {
	id              kernel.UUID
	clientID        kernel.UUID
	restaurantID    kernel.UUID
	deliveryAddress string
	destination     *kernel.Coordinates
	courierID       *kernel.UUID
	status          Status
	totalPrice      float64
	deliveryFee     float64
	paymentStatus   PaymentStatus

	guard guard.ConstructorGuard
}

// NewOrder creates a pending, unpaid order without a courier.
//
// Example:
//
//	dest, _ := kernel.NewCoordinates(36.85, 10.20)
//	o, err := order.NewOrder(id, clientID, restaurantID, "12 Rue de Rome", &dest, 42.5, order.DefaultDeliveryFee)
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	destination *kernel.Coordinates,
	totalPrice float64,
	deliveryFee float64,
) (*Order, error) {
	return RestoreOrder(id, clientID, restaurantID, deliveryAddress, destination,
		nil, Pending, totalPrice, deliveryFee, PaymentPending)
}

// RestoreOrder rebuilds an order from storage and checks that the stored
// state is consistent.
func RestoreOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	restaurantID kernel.UUID,
	deliveryAddress string,
	destination *kernel.Coordinates,
	courierID *kernel.UUID,
	status Status,
	totalPrice float64,
	deliveryFee float64,
	paymentStatus PaymentStatus,
) (*Order, error) {
	o := &Order{
		deliveryAddress: deliveryAddress,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setClientID(clientID),
		o.setRestaurantID(restaurantID),
		o.setDestination(destination),
		o.setCourierID(courierID),
		o.setStatus(status, courierID != nil),
		o.setTotalPrice(totalPrice),
		o.setDeliveryFee(deliveryFee),
		o.setPaymentStatus(paymentStatus),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Destination returns nil when the customer location is unknown.
func (o *Order) Destination() *kernel.Coordinates {
	if o.destination == nil {
		return nil
	}
	d := *o.destination
	return &d
}

// Courier returns the assigned courier or nil.
func (o *Order) Courier() *kernel.UUID {
	if o.courierID == nil {
		return nil
	}
	id := *o.courierID
	return &id
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

func (o *Order) PaymentStatus() PaymentStatus {
	return o.paymentStatus
}

// IsAssignedTo reports whether courierID is the current courier.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// IsPlacedBy reports whether clientID placed the order.
func (o *Order) IsPlacedBy(clientID kernel.UUID) bool {
	return o.clientID.IsEqual(clientID)
}

// ValidateAssign checks the status allows (re)assignment without changing anything.
func (o *Order) ValidateAssign() error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.status.ValidateAssign()
}

// AssignCourier binds a courier and moves the order to AwaitingCourier.
func (o *Order) AssignCourier(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = &courierID
	return nil
}

// Accept is called when the assigned courier takes the order.
func (o *Order) Accept(courierID kernel.UUID) error {
	if err := o.ensureAssignedTo(courierID); err != nil {
		return err
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Reject hands the order back to the pending pool and clears the courier.
func (o *Order) Reject(courierID kernel.UUID) error {
	if err := o.ensureAssignedTo(courierID); err != nil {
		return err
	}

	newStatus, err := o.status.Reject()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.courierID = nil
	return nil
}

func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

func (o *Order) ensureAssignedTo(courierID kernel.UUID) error {
	if !o.IsAssignedTo(courierID) {
		return errs.NewForbiddenError(courierID.String(), "order", o.id.String())
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client", err)
	}
	o.clientID = id
	return nil
}

func (o *Order) setRestaurantID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("restaurant", err)
	}
	o.restaurantID = id
	return nil
}

func (o *Order) setDestination(destination *kernel.Coordinates) error {
	if destination == nil {
		return nil
	}
	if err := destination.Validate(); err != nil {
		return err
	}
	d := *destination
	o.destination = &d
	return nil
}

func (o *Order) setCourierID(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return err
	}
	id := *courierID
	o.courierID = &id
	return nil
}

func (o *Order) setStatus(status Status, hasCourier bool) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveCourier(hasCourier); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total price is invalid", fmt.Errorf("%.2f is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setDeliveryFee(deliveryFee float64) error {
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause("delivery fee is invalid", fmt.Errorf("%.2f is negative", deliveryFee))
	}
	o.deliveryFee = deliveryFee
	return nil
}

func (o *Order) setPaymentStatus(paymentStatus PaymentStatus) error {
	if err := paymentStatus.Validate(); err != nil {
		return err
	}
	o.paymentStatus = paymentStatus
	return nil
}
