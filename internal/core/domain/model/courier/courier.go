package courier

import (
	"errors"
	"fmt"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"
	"kurye/internal/pkg/guard"
)

const (
	minRating = 0.0
	maxRating = 5.0
)

var (
	// ErrCourierIsNotConstructed is returned when a Courier instance was not
	// created through NewCourier or RestoreCourier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")

	// ErrCourierHasActiveOrders is returned when a courier tries to leave
	// the Busy state while still carrying orders.
	ErrCourierHasActiveOrders = errors.New("courier still has active orders")

	// ErrCourierCannotTakeOrder is returned when an offer is made to a
	// courier that is not in a state to receive one.
	ErrCourierCannotTakeOrder = errors.New("courier cannot take an order")

	// ErrCourierHasNoPendingOffer is returned when an accept or decline
	// arrives for a courier without a pending offer.
	ErrCourierHasNoPendingOffer = errors.New("courier has no pending offer")
)

// Courier is the aggregate for a delivery rider. It tracks availability,
// last known location, the active-order count against the courier's
// capacity, and running delivery totals.
//
// The version field is the optimistic concurrency token checked by the
// persistence layer on every update. Concurrent offers for the same
// courier are resolved there: the loser's update matches zero rows.
type Courier struct {
	id           kernel.UUID
	name         string
	vehicle      VehicleType
	location     kernel.GeoPoint
	locatedAt    time.Time
	status       Status
	workingHours WorkingHours

	maxActiveOrders int
	activeOrders    int

	rating          float64
	totalDeliveries int
	totalEarnings   float64

	version int

	guard guard.ConstructorGuard
}

// NewCourier creates a courier in Offline status with no active orders
// and a neutral top rating.
func NewCourier(
	id kernel.UUID,
	name string,
	vehicle VehicleType,
	location kernel.GeoPoint,
	workingHours WorkingHours,
	maxActiveOrders int,
	now time.Time,
) (*Courier, error) {
	return RestoreCourier(
		id, name, vehicle, location, now, StatusOffline, workingHours,
		maxActiveOrders, 0, maxRating, 0, 0, 0,
	)
}

// RestoreCourier reconstructs a courier from persistence.
func RestoreCourier(
	id kernel.UUID,
	name string,
	vehicle VehicleType,
	location kernel.GeoPoint,
	locatedAt time.Time,
	status Status,
	workingHours WorkingHours,
	maxActiveOrders, activeOrders int,
	rating float64,
	totalDeliveries int,
	totalEarnings float64,
	version int,
) (*Courier, error) {
	if err := errors.Join(
		id.Validate(),
		vehicle.Validate(),
		location.Validate(),
		status.Validate(),
		workingHours.Validate(),
	); err != nil {
		return nil, err
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if maxActiveOrders <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"maxActiveOrders is invalid",
			fmt.Errorf("%d is not greater than 0", maxActiveOrders),
		)
	}
	if activeOrders < 0 || activeOrders > maxActiveOrders {
		return nil, errs.NewValueIsOutOfRangeError("activeOrders", activeOrders, 0, maxActiveOrders)
	}
	if rating < minRating || rating > maxRating {
		return nil, errs.NewValueIsOutOfRangeError("rating", rating, minRating, maxRating)
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	return &Courier{
		id:              id,
		name:            name,
		vehicle:         vehicle,
		location:        location,
		locatedAt:       locatedAt,
		status:          status,
		workingHours:    workingHours,
		maxActiveOrders: maxActiveOrders,
		activeOrders:    activeOrders,
		rating:          rating,
		totalDeliveries: totalDeliveries,
		totalEarnings:   totalEarnings,
		version:         version,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Vehicle returns the courier's vehicle type.
func (c *Courier) Vehicle() VehicleType {
	return c.vehicle
}

// Location returns the last reported coordinate.
func (c *Courier) Location() kernel.GeoPoint {
	return c.location
}

// LocatedAt returns when the location was last reported.
func (c *Courier) LocatedAt() time.Time {
	return c.locatedAt
}

// Status returns the courier's availability state.
func (c *Courier) Status() Status {
	return c.status
}

// WorkingHours returns the courier's daily shift window.
func (c *Courier) WorkingHours() WorkingHours {
	return c.workingHours
}

// MaxActiveOrders returns the courier's capacity.
func (c *Courier) MaxActiveOrders() int {
	return c.maxActiveOrders
}

// ActiveOrders returns the number of accepted, undelivered orders.
func (c *Courier) ActiveOrders() int {
	return c.activeOrders
}

// Rating returns the courier's average rating in [0, 5].
func (c *Courier) Rating() float64 {
	return c.rating
}

// TotalDeliveries returns the lifetime delivery count.
func (c *Courier) TotalDeliveries() int {
	return c.totalDeliveries
}

// TotalEarnings returns the lifetime earnings total.
func (c *Courier) TotalEarnings() float64 {
	return c.totalEarnings
}

// Version returns the optimistic concurrency token.
func (c *Courier) Version() int {
	return c.version
}

// UpdateLocation records a new coordinate report.
func (c *Courier) UpdateLocation(location kernel.GeoPoint, at time.Time) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = location
	c.locatedAt = at
	return nil
}

// IsLocationFresh reports whether the last location report is no older
// than maxAge at the given time.
func (c *Courier) IsLocationFresh(now time.Time, maxAge time.Duration) bool {
	return now.Sub(c.locatedAt) <= maxAge
}

// GoOnline brings the courier into dispatch rotation.
func (c *Courier) GoOnline() error {
	if c.status != StatusOffline && c.status != StatusOnBreak {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s courier cannot go online", c.status.String()),
		)
	}
	c.status = StatusAvailable
	return nil
}

// GoOffline removes the courier from dispatch rotation. Not allowed
// while carrying orders or holding a pending offer.
func (c *Courier) GoOffline() error {
	if c.activeOrders > 0 || c.status == StatusAssigned || c.status == StatusBusy {
		return ErrCourierHasActiveOrders
	}
	c.status = StatusOffline
	return nil
}

// TakeBreak pauses the courier. Only allowed while Available.
func (c *Courier) TakeBreak() error {
	if c.status != StatusAvailable {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s courier cannot take a break", c.status.String()),
		)
	}
	c.status = StatusOnBreak
	return nil
}

// CanTake reports whether the courier may be offered an order at the
// given time: in rotation (Available, or Busy under capacity), and
// inside working hours. A courier holding a pending offer cannot
// receive another one.
func (c *Courier) CanTake(at time.Time) bool {
	if c.status != StatusAvailable && c.status != StatusBusy {
		return false
	}
	return c.activeOrders < c.maxActiveOrders && c.workingHours.Contains(at)
}

// MarkAssigned records a pending offer. The courier must be in a state
// to take the order.
func (c *Courier) MarkAssigned(at time.Time) error {
	if !c.CanTake(at) {
		return ErrCourierCannotTakeOrder
	}
	c.status = StatusAssigned
	return nil
}

// AcceptActiveOrder converts the pending offer into an active order.
func (c *Courier) AcceptActiveOrder() error {
	if c.status != StatusAssigned {
		return ErrCourierHasNoPendingOffer
	}
	c.activeOrders++
	c.status = StatusBusy
	return nil
}

// DeclineAssignment releases the pending offer and returns the courier
// to rotation.
func (c *Courier) DeclineAssignment() error {
	if c.status != StatusAssigned {
		return ErrCourierHasNoPendingOffer
	}
	if c.activeOrders > 0 {
		c.status = StatusBusy
	} else {
		c.status = StatusAvailable
	}
	return nil
}

// CompleteDelivery closes one active order, credits the earning, and
// returns the courier to rotation when nothing else is carried.
func (c *Courier) CompleteDelivery(earning float64) error {
	if c.activeOrders == 0 {
		return ErrCourierHasNoPendingOffer
	}
	if earning < 0 {
		return errs.NewValueIsInvalidError("earning is negative")
	}

	c.activeOrders--
	c.totalDeliveries++
	c.totalEarnings = kernel.RoundMoney(c.totalEarnings + earning)
	if c.activeOrders == 0 {
		c.status = StatusAvailable
	}
	return nil
}

// ReleaseActiveOrder closes one active order without crediting anything,
// used when an accepted order is cancelled.
func (c *Courier) ReleaseActiveOrder() error {
	if c.activeOrders == 0 {
		return ErrCourierHasNoPendingOffer
	}
	c.activeOrders--
	if c.activeOrders == 0 {
		c.status = StatusAvailable
	}
	return nil
}
