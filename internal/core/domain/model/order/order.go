package order

import (
	"errors"
	"fmt"
	"time"

	"sendit/internal/core/domain/model/kernel"
	"sendit/internal/core/domain/model/parcel"
	"sendit/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Pricer computes the delivery price for a parcel weight over a distance.
// The pricing domain service implements it; the aggregate depends only on the
// contract so pricing configuration stays outside the model.
type Pricer interface {
	Price(weightKg float64, distanceKm float64) float64
}

// Order is the DeliveryOrder aggregate root.
//
// Invariants:
//   - the referenced parcel exists and belongs to the same user
//   - distanceKm, durationMinutes, price, and estimatedDelivery are derived
//     together from pickup, destination, and parcel weight; they are never
//     updated independently
//   - the tracking number is assigned exactly once, at creation
//   - actualDelivery is set on transition into delivered and never cleared
type Order struct {
	id                kernel.UUID
	userID            kernel.UUID
	parcelID          kernel.UUID
	pickup            kernel.Location
	destination       kernel.Location
	currentLocation   *kernel.Location
	status            Status
	trackingNumber    TrackingNumber
	distanceKm        float64
	durationMinutes   int
	price             float64
	estimatedDelivery time.Time
	actualDelivery    *time.Time
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewOrder creates a delivery order for the given parcel between two validated
// locations. The route figures (distance, duration, price, estimated delivery)
// are computed as one unit from the locations and the parcel's weight, a fresh
// tracking number is generated, and the order starts in Pending status.
//
// The parcel must belong to userID; a mismatch fails with a NotAuthorized
// error since an order referencing someone else's parcel would violate the
// aggregate's ownership invariant.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	p *parcel.Parcel,
	pickup kernel.Location,
	destination kernel.Location,
	pricer Pricer,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setPickup(pickup),
		o.setDestination(destination),
	); err != nil {
		return nil, err
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !p.IsOwnedBy(userID) {
		return nil, errs.NewNotAuthorizedError("parcel belongs to another user")
	}
	o.parcelID = p.ID()

	if err := o.recomputeRoute(p, pricer); err != nil {
		return nil, err
	}

	o.trackingNumber = NewTrackingNumber()
	now := time.Now().UTC()
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without recomputing
// derived fields; the stored figures are trusted as a consistent set.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	parcelID kernel.UUID,
	pickup kernel.Location,
	destination kernel.Location,
	currentLocation *kernel.Location,
	status Status,
	trackingNumber TrackingNumber,
	distanceKm float64,
	durationMinutes int,
	price float64,
	estimatedDelivery time.Time,
	actualDelivery *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setPickup(pickup),
		o.setDestination(destination),
		parcelID.Validate(),
		status.Validate(),
		trackingNumber.Validate(),
	); err != nil {
		return nil, err
	}

	if currentLocation != nil {
		if err := currentLocation.Validate(); err != nil {
			return nil, err
		}
		loc := *currentLocation
		o.currentLocation = &loc
	}

	o.parcelID = parcelID
	o.status = status
	o.trackingNumber = trackingNumber
	o.distanceKm = distanceKm
	o.durationMinutes = durationMinutes
	o.price = price
	o.estimatedDelivery = estimatedDelivery
	if actualDelivery != nil {
		t := *actualDelivery
		o.actualDelivery = &t
	}
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the owning user.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// ParcelID returns the identifier of the shipped parcel.
func (o *Order) ParcelID() kernel.UUID {
	return o.parcelID
}

// Pickup returns the pickup location.
func (o *Order) Pickup() kernel.Location {
	return o.pickup
}

// Destination returns the destination location.
func (o *Order) Destination() kernel.Location {
	return o.destination
}

// CurrentLocation returns the last admin-reported parcel position.
// Nil until an administrator supplies one.
func (o *Order) CurrentLocation() *kernel.Location {
	return o.currentLocation
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TrackingNumber returns the customer-facing tracking number.
func (o *Order) TrackingNumber() TrackingNumber {
	return o.trackingNumber
}

// DistanceKm returns the great-circle distance between pickup and destination.
func (o *Order) DistanceKm() float64 {
	return o.distanceKm
}

// DurationMinutes returns the estimated transit time in whole minutes.
func (o *Order) DurationMinutes() int {
	return o.durationMinutes
}

// Price returns the delivery price in USD.
func (o *Order) Price() float64 {
	return o.price
}

// EstimatedDelivery returns the projected delivery timestamp.
func (o *Order) EstimatedDelivery() time.Time {
	return o.estimatedDelivery
}

// ActualDelivery returns the timestamp of the transition into delivered,
// or nil if the order has not been delivered.
func (o *Order) ActualDelivery() *time.Time {
	return o.actualDelivery
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last modification timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// IsOverdue reports whether a non-terminal order has passed its estimated
// delivery time as of the given moment.
func (o *Order) IsOverdue(now time.Time) bool {
	return !o.status.IsTerminal() && now.After(o.estimatedDelivery)
}

// ChangeDestination replaces the destination and recomputes distance,
// duration, price, and estimated delivery as one atomic set. Allowed only
// while the order is pending; the parcel is passed in freshly resolved so the
// price reflects its current weight.
func (o *Order) ChangeDestination(newDestination kernel.Location, p *parcel.Parcel, pricer Pricer) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Pending {
		return errs.NewInvalidStateErrorWithCause("destination can only change while order is pending",
			fmt.Errorf("status is %s", o.status))
	}
	if err := newDestination.Validate(); err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	previous := o.destination
	o.destination = newDestination
	if err := o.recomputeRoute(p, pricer); err != nil {
		o.destination = previous
		return err
	}

	o.updatedAt = time.Now().UTC()
	return nil
}

// UpdateStatus moves the order to a new status under the given transition
// policy (AllowAnyTransition when nil). When currentLocation is supplied it
// overwrites the last reported position. A transition into Delivered stamps
// actualDelivery; the stamp is never cleared by later transitions.
func (o *Order) UpdateStatus(newStatus Status, currentLocation *kernel.Location, policy TransitionPolicy) error {
	if err := o.Validate(); err != nil {
		return err
	}

	if policy == nil {
		policy = AllowAnyTransition
	}
	if err := policy(o.status, newStatus); err != nil {
		return err
	}

	if currentLocation != nil {
		if err := currentLocation.Validate(); err != nil {
			return err
		}
		loc := *currentLocation
		o.currentLocation = &loc
	}

	o.status = newStatus
	if newStatus == Delivered {
		deliveredAt := time.Now().UTC()
		o.actualDelivery = &deliveredAt
	}

	o.updatedAt = time.Now().UTC()
	return nil
}

// Cancel transitions the order to cancelled.
// Fails for orders already delivered or cancelled.
func (o *Order) Cancel() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewInvalidStateErrorWithCause("order cannot be cancelled",
			fmt.Errorf("%s is a terminal status", o.status))
	}

	o.status = Cancelled
	o.updatedAt = time.Now().UTC()
	return nil
}

// recomputeRoute derives distance, duration, price, and estimated delivery
// from the current pickup/destination pair and the parcel's weight. The four
// fields only ever change together through this method.
func (o *Order) recomputeRoute(p *parcel.Parcel, pricer Pricer) error {
	if pricer == nil {
		return errs.NewValueIsRequiredError("pricer")
	}

	distance, err := o.pickup.DistanceKmTo(o.destination)
	if err != nil {
		return err
	}

	o.distanceKm = distance
	o.durationMinutes = kernel.EtaMinutes(distance)
	o.price = pricer.Price(p.WeightKg(), distance)
	o.estimatedDelivery = time.Now().UTC().Add(time.Duration(o.durationMinutes) * time.Minute)
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	o.userID = userID
	return nil
}

func (o *Order) setPickup(pickup kernel.Location) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	o.pickup = pickup
	return nil
}

func (o *Order) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}
