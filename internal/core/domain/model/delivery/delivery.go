package delivery

import (
	"errors"
	"fmt"
	"time"

	"courierhub/internal/core/domain/model/kernel"
	"courierhub/internal/core/domain/model/order"
	"courierhub/internal/core/domain/model/user"
	"courierhub/internal/pkg/ddd"
	"courierhub/internal/pkg/errs"
	"courierhub/internal/pkg/guard"
)

const (
	MinRating = 1
	MaxRating = 5
)

var (
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery, NewPlaceholder or RestoreDelivery constructor")
	ErrCourierIsRequired        = errs.NewValueIsRequiredError("courier")
	ErrOrderIsRequired          = errs.NewValueIsRequiredError("order")
)

// Delivery is one courier-to-customer leg. It is the aggregate root of the
// courier core: status, tracked location, rating and the restaurant snapshot
// all change through it.
//
// A Delivery without an order is a placeholder. Placeholders exist only to
// carry the courier's position when the courier has no active work, and to
// represent a courier that an admin added before any assignment.
//
// Invariants:
//   - the courier is always set, and had the courier role at creation
//   - history never holds more than MaxLocationHistory samples
//   - deliveredAt is set once, on the transition to Delivered
//   - rating is set once, only while Delivered
type Delivery struct {
	ddd.EventRecorder

	id              kernel.UUID
	orderID         *kernel.UUID
	courierID       kernel.UUID
	clientID        *kernel.UUID
	status          Status
	currentLocation *TrackedLocation
	locationHistory []LocationSample
	deliveredAt     *time.Time
	rating          *int
	restaurant      *RestaurantSnapshot
	deliveryFee     float64
	createdAt       time.Time
	updatedAt       time.Time

	guard guard.ConstructorGuard
}

// NewDelivery binds a courier to an order. The restaurant snapshot and the
// order's delivery fee are copied onto the record.
//
// Example:
//
//	d, err := delivery.NewDelivery(kernel.NewUUID(), courier, o,
//	    delivery.NewRestaurantSnapshot(r.Name(), r.Address(), r.Coordinates()), clock.Now())
func NewDelivery(
	id kernel.UUID,
	courier *user.User,
	o *order.Order,
	restaurant RestaurantSnapshot,
	now time.Time,
) (*Delivery, error) {
	if err := o.Validate(); err != nil {
		return nil, errors.Join(ErrOrderIsRequired, err)
	}

	d, err := newDelivery(id, courier, now)
	if err != nil {
		return nil, err
	}

	orderID := o.ID()
	clientID := o.ClientID()
	d.orderID = &orderID
	d.clientID = &clientID
	d.restaurant = &restaurant
	d.deliveryFee = o.DeliveryFee()

	return d, nil
}

// NewPlaceholder creates a pending record with no order. location may be nil
// for a courier added by an admin who has not reported a position yet.
func NewPlaceholder(
	id kernel.UUID,
	courier *user.User,
	location *TrackedLocation,
	now time.Time,
) (*Delivery, error) {
	d, err := newDelivery(id, courier, now)
	if err != nil {
		return nil, err
	}

	if location != nil {
		d.applyLocation(*location)
	}

	return d, nil
}

func newDelivery(id kernel.UUID, courier *user.User, now time.Time) (*Delivery, error) {
	d := &Delivery{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCourier(courier),
		validateTimestamp(now),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// State is the persisted form of a Delivery, used by repositories to
// rebuild the aggregate.
type State struct {
	ID              kernel.UUID
	OrderID         *kernel.UUID
	CourierID       kernel.UUID
	ClientID        *kernel.UUID
	Status          Status
	CurrentLocation *TrackedLocation
	LocationHistory []LocationSample
	DeliveredAt     *time.Time
	Rating          *int
	Restaurant      *RestaurantSnapshot
	DeliveryFee     float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// RestoreDelivery rebuilds a record from storage. The courier role is not
// checked again: it was checked at creation and roles may change afterwards.
func RestoreDelivery(s State) (*Delivery, error) {
	d := &Delivery{
		orderID:     copyUUID(s.OrderID),
		clientID:    copyUUID(s.ClientID),
		deliveredAt: copyTime(s.DeliveredAt),
		restaurant:  s.Restaurant,
		deliveryFee: s.DeliveryFee,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setCourierID(s.CourierID),
		d.setStatus(s.Status),
		d.setRating(s.Rating, s.Status),
	); err != nil {
		return nil, err
	}

	if s.CurrentLocation != nil {
		loc := *s.CurrentLocation
		d.currentLocation = &loc
	}
	d.locationHistory = truncateHistory(append([]LocationSample(nil), s.LocationHistory...))

	return d, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) IsEqual(other *Delivery) bool {
	return other != nil && d.id.IsEqual(other.id)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

// Order returns nil for placeholders.
func (d *Delivery) Order() *kernel.UUID {
	return copyUUID(d.orderID)
}

func (d *Delivery) Courier() kernel.UUID {
	return d.courierID
}

func (d *Delivery) Client() *kernel.UUID {
	return copyUUID(d.clientID)
}

func (d *Delivery) Status() Status {
	return d.status
}

// CurrentLocation is nil until the first location update.
func (d *Delivery) CurrentLocation() *TrackedLocation {
	if d.currentLocation == nil {
		return nil
	}
	loc := *d.currentLocation
	return &loc
}

// LocationHistory returns the samples oldest first.
func (d *Delivery) LocationHistory() []LocationSample {
	out := make([]LocationSample, len(d.locationHistory))
	copy(out, d.locationHistory)
	return out
}

func (d *Delivery) DeliveredAt() *time.Time {
	return copyTime(d.deliveredAt)
}

func (d *Delivery) Rating() *int {
	if d.rating == nil {
		return nil
	}
	r := *d.rating
	return &r
}

// Restaurant is nil for placeholders.
func (d *Delivery) Restaurant() *RestaurantSnapshot {
	if d.restaurant == nil {
		return nil
	}
	r := *d.restaurant
	return &r
}

func (d *Delivery) DeliveryFee() float64 {
	return d.deliveryFee
}

func (d *Delivery) CreatedAt() time.Time {
	return d.createdAt
}

func (d *Delivery) UpdatedAt() time.Time {
	return d.updatedAt
}

func (d *Delivery) IsPlaceholder() bool {
	return d.orderID == nil
}

func (d *Delivery) IsActive() bool {
	return d.status.IsActive()
}

func (d *Delivery) IsOwnedBy(courierID kernel.UUID) bool {
	return d.courierID.IsEqual(courierID)
}

// EnsureOwnedBy returns a Forbidden error when courierID is not the record's courier.
func (d *Delivery) EnsureOwnedBy(courierID kernel.UUID) error {
	if !d.IsOwnedBy(courierID) {
		return errs.NewForbiddenError(courierID.String(), "delivery", d.id.String())
	}
	return nil
}

// TransitionTo moves the record along its lifecycle and records StatusChanged.
// The first transition to Delivered stamps deliveredAt.
func (d *Delivery) TransitionTo(next Status, now time.Time) error {
	if err := d.status.CanTransitionTo(next); err != nil {
		return err
	}

	prev := d.status
	d.status = next
	d.updatedAt = now
	if next == Delivered && d.deliveredAt == nil {
		at := now
		d.deliveredAt = &at
	}

	d.Record(newStatusChanged(d, prev, next, now))
	return nil
}

// UpdateLocation sets the current location and appends a history sample.
// An empty address keeps the previously known one.
func (d *Delivery) UpdateLocation(coordinates kernel.Coordinates, address string, now time.Time) error {
	if address == "" && d.currentLocation != nil {
		address = d.currentLocation.Address()
	}

	loc, err := NewTrackedLocation(coordinates, address, now)
	if err != nil {
		return err
	}

	d.applyLocation(loc)
	return nil
}

// Rate stores the customer rating. Only delivered records can be rated, once.
func (d *Delivery) Rate(rating int, now time.Time) error {
	if rating < MinRating || rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", rating, MinRating, MaxRating)
	}
	if d.status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"rating",
			fmt.Errorf("delivery is %s, only delivered deliveries can be rated", d.status),
		)
	}
	if d.rating != nil {
		return errs.NewValueIsInvalidErrorWithCause("rating", errors.New("delivery is already rated"))
	}

	d.rating = &rating
	d.updatedAt = now
	return nil
}

func (d *Delivery) applyLocation(loc TrackedLocation) {
	d.currentLocation = &loc
	d.locationHistory = truncateHistory(append(d.locationHistory, LocationSample{
		coordinates: loc.coordinates,
		timestamp:   loc.updatedAt,
	}))
	d.updatedAt = loc.updatedAt
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCourier(courier *user.User) error {
	if courier == nil {
		return ErrCourierIsRequired
	}
	if err := courier.ValidateCourier(); err != nil {
		return err
	}
	d.courierID = courier.ID()
	return nil
}

func (d *Delivery) setCourierID(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return errors.Join(ErrCourierIsRequired, err)
	}
	d.courierID = courierID
	return nil
}

func (d *Delivery) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Delivery) setRating(rating *int, status Status) error {
	if rating == nil {
		return nil
	}
	if *rating < MinRating || *rating > MaxRating {
		return errs.NewValueIsOutOfRangeError("rating", *rating, MinRating, MaxRating)
	}
	if status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause("rating", fmt.Errorf("%s delivery cannot carry a rating", status))
	}
	r := *rating
	d.rating = &r
	return nil
}

func truncateHistory(history []LocationSample) []LocationSample {
	if len(history) <= MaxLocationHistory {
		return history
	}
	kept := make([]LocationSample, MaxLocationHistory)
	copy(kept, history[len(history)-MaxLocationHistory:])
	return kept
}

func copyUUID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
