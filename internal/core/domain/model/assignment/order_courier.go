package assignment

import (
	"errors"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"
	"kurye/internal/pkg/guard"
)

// ErrOrderCourierIsNotConstructed is returned when an OrderCourier instance
// was not created through NewOrderCourier or RestoreOrderCourier.
var ErrOrderCourierIsNotConstructed = errors.New("OrderCourier must be created via NewOrderCourier or RestoreOrderCourier")

// Fee is the delivery fee quoted to the courier at offer time, kept
// itemized so the earning record written at delivery can carry the
// same breakdown.
type Fee struct {
	Base          float64
	DistanceBonus float64
	VehicleBonus  float64
	TimeBonus     float64
	Total         float64
}

// OrderCourier is one assignment attempt between an order and a courier.
// Every offer creates a new record; rejected records stay behind as an
// immutable audit trail. At most one record per order is active at a
// time, enforced by the dispatch transaction and a partial unique index
// in the store.
type OrderCourier struct {
	id        kernel.UUID
	orderID   kernel.UUID
	courierID kernel.UUID

	status       Status
	rejectReason string

	assignedAt       time.Time
	respondedAt      *time.Time
	pickedUpAt       *time.Time
	outForDeliveryAt *time.Time
	deliveredAt      *time.Time
	cancelledAt      *time.Time

	fee Fee
	tip float64

	active  bool
	version int

	guard guard.ConstructorGuard
}

// NewOrderCourier creates an active assignment in Assigned status,
// carrying the delivery fee quoted to the courier at offer time.
func NewOrderCourier(id, orderID, courierID kernel.UUID, fee Fee, assignedAt time.Time) (*OrderCourier, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), courierID.Validate()); err != nil {
		return nil, err
	}
	if fee.Total < 0 {
		return nil, errs.NewValueIsInvalidError("fee total is negative")
	}

	return &OrderCourier{
		id:         id,
		orderID:    orderID,
		courierID:  courierID,
		status:     StatusAssigned,
		assignedAt: assignedAt,
		fee:        fee,
		active:     true,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreOrderCourier reconstructs an assignment from persistence.
func RestoreOrderCourier(
	id, orderID, courierID kernel.UUID,
	status Status,
	rejectReason string,
	assignedAt time.Time,
	respondedAt, pickedUpAt, outForDeliveryAt, deliveredAt, cancelledAt *time.Time,
	fee Fee,
	tip float64,
	active bool,
	version int,
) (*OrderCourier, error) {
	if err := errors.Join(id.Validate(), orderID.Validate(), courierID.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	return &OrderCourier{
		id:               id,
		orderID:          orderID,
		courierID:        courierID,
		status:           status,
		rejectReason:     rejectReason,
		assignedAt:       assignedAt,
		respondedAt:      respondedAt,
		pickedUpAt:       pickedUpAt,
		outForDeliveryAt: outForDeliveryAt,
		deliveredAt:      deliveredAt,
		cancelledAt:      cancelledAt,
		fee:              fee,
		tip:              tip,
		active:           active,
		version:          version,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the OrderCourier instance was properly constructed.
func (a *OrderCourier) Validate() error {
	if a == nil {
		return ErrOrderCourierIsNotConstructed
	}
	return a.guard.Validate(ErrOrderCourierIsNotConstructed)
}

// ID returns the assignment's unique identifier.
func (a *OrderCourier) ID() kernel.UUID {
	return a.id
}

// OrderID returns the order this assignment is for.
func (a *OrderCourier) OrderID() kernel.UUID {
	return a.orderID
}

// CourierID returns the courier the offer was made to.
func (a *OrderCourier) CourierID() kernel.UUID {
	return a.courierID
}

// Status returns the assignment's state.
func (a *OrderCourier) Status() Status {
	return a.status
}

// RejectReason returns the courier's reason, empty unless Rejected.
func (a *OrderCourier) RejectReason() string {
	return a.rejectReason
}

// AssignedAt returns when the offer was made.
func (a *OrderCourier) AssignedAt() time.Time {
	return a.assignedAt
}

// RespondedAt returns when the courier accepted or rejected, nil before.
func (a *OrderCourier) RespondedAt() *time.Time {
	return a.respondedAt
}

// PickedUpAt returns when the order was collected, nil before.
func (a *OrderCourier) PickedUpAt() *time.Time {
	return a.pickedUpAt
}

// OutForDeliveryAt returns when the courier left for the customer, nil before.
func (a *OrderCourier) OutForDeliveryAt() *time.Time {
	return a.outForDeliveryAt
}

// DeliveredAt returns when the order was handed over, nil before.
func (a *OrderCourier) DeliveredAt() *time.Time {
	return a.deliveredAt
}

// CancelledAt returns when the assignment was cancelled, nil otherwise.
func (a *OrderCourier) CancelledAt() *time.Time {
	return a.cancelledAt
}

// Fee returns the itemized fee quoted to the courier at offer time.
func (a *OrderCourier) Fee() Fee {
	return a.fee
}

// DeliveryFee returns the total fee quoted to the courier at offer time.
func (a *OrderCourier) DeliveryFee() float64 {
	return a.fee.Total
}

// Tip returns the tip recorded at delivery.
func (a *OrderCourier) Tip() float64 {
	return a.tip
}

// IsActive reports whether this is the order's live assignment.
func (a *OrderCourier) IsActive() bool {
	return a.active
}

// Version returns the optimistic concurrency token.
func (a *OrderCourier) Version() int {
	return a.version
}

// Accept records the courier taking the offer.
func (a *OrderCourier) Accept(at time.Time) error {
	if a.status != StatusAssigned {
		return NewStateTransitionError(a.status, StatusAccepted)
	}
	a.status = StatusAccepted
	a.respondedAt = &at
	return nil
}

// Reject records the courier declining the offer. The record is
// deactivated and kept for the audit trail; a reason is required.
func (a *OrderCourier) Reject(reason string, at time.Time) error {
	if a.status != StatusAssigned {
		return NewStateTransitionError(a.status, StatusRejected)
	}
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	a.status = StatusRejected
	a.rejectReason = reason
	a.respondedAt = &at
	a.active = false
	return nil
}

// PickUp records the courier collecting the order from the vendor.
func (a *OrderCourier) PickUp(at time.Time) error {
	if a.status != StatusAccepted {
		return NewStateTransitionError(a.status, StatusPickedUp)
	}
	a.status = StatusPickedUp
	a.pickedUpAt = &at
	return nil
}

// StartDelivery records the courier leaving for the customer.
func (a *OrderCourier) StartDelivery(at time.Time) error {
	if a.status != StatusPickedUp {
		return NewStateTransitionError(a.status, StatusOutForDelivery)
	}
	a.status = StatusOutForDelivery
	a.outForDeliveryAt = &at
	return nil
}

// Deliver closes the assignment with an optional tip.
func (a *OrderCourier) Deliver(tip float64, at time.Time) error {
	if a.status != StatusOutForDelivery {
		return NewStateTransitionError(a.status, StatusDelivered)
	}
	if tip < 0 {
		return errs.NewValueIsInvalidError("tip is negative")
	}
	a.status = StatusDelivered
	a.tip = kernel.RoundMoney(tip)
	a.deliveredAt = &at
	a.active = false
	return nil
}

// Cancel terminates the assignment before delivery, for example when
// the order itself is cancelled.
func (a *OrderCourier) Cancel(at time.Time) error {
	if a.status.IsTerminal() {
		return NewStateTransitionError(a.status, StatusCancelled)
	}
	a.status = StatusCancelled
	a.cancelledAt = &at
	a.active = false
	return nil
}
