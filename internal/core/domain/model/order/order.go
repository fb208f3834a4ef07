package order

import (
	"errors"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"
	"kurye/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoItems is returned when an order is created with an empty item list.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("items")
)

// StatusChange is one entry of an order's append-only status history.
type StatusChange struct {
	From Status
	To   Status
	At   time.Time
}

// Order is the aggregate root for a customer order. It owns the priced
// item lines, the applied discount, the delivery fee, and the lifecycle
// state machine.
//
// Invariants:
//   - at least one item; item prices come from the vendor catalog
//   - status transitions follow the Status state machine
//   - every transition is recorded in the status history
//   - once Delivered or Cancelled nothing but reads is allowed
//
// The version field is the optimistic concurrency token checked by the
// persistence layer on every update.
type Order struct {
	id              kernel.UUID
	customerID      kernel.UUID
	vendorID        kernel.UUID
	deliveryAddress kernel.GeoPoint
	items           []Item

	status       Status
	history      []StatusChange
	cancelReason string

	deliveryFee    float64
	discountAmount float64
	totalAmount    float64
	campaignID     *kernel.UUID
	couponID       *kernel.UUID

	version int

	guard guard.ConstructorGuard
}

// NewOrder creates a new order in Pending status with zero pricing.
// Pricing is applied separately once distance and discounts are resolved.
func NewOrder(
	id, customerID, vendorID kernel.UUID,
	deliveryAddress kernel.GeoPoint,
	items []Item,
	now time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		customerID.Validate(),
		vendorID.Validate(),
		deliveryAddress.Validate(),
	); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}

	o := &Order{
		id:              id,
		customerID:      customerID,
		vendorID:        vendorID,
		deliveryAddress: deliveryAddress,
		items:           append([]Item(nil), items...),
		status:          StatusPending,
		history: []StatusChange{
			{From: StatusUnknown, To: StatusPending, At: now},
		},
		guard: guard.NewConstructorGuard(),
	}
	o.totalAmount = kernel.RoundMoney(o.Subtotal())

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without running the
// creation-time rules. The caller is responsible for passing stored state.
func RestoreOrder(
	id, customerID, vendorID kernel.UUID,
	deliveryAddress kernel.GeoPoint,
	items []Item,
	status Status,
	history []StatusChange,
	cancelReason string,
	deliveryFee, discountAmount, totalAmount float64,
	campaignID, couponID *kernel.UUID,
	version int,
) (*Order, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError("version")
	}

	return &Order{
		id:              id,
		customerID:      customerID,
		vendorID:        vendorID,
		deliveryAddress: deliveryAddress,
		items:           append([]Item(nil), items...),
		status:          status,
		history:         append([]StatusChange(nil), history...),
		cancelReason:    cancelReason,
		deliveryFee:     deliveryFee,
		discountAmount:  discountAmount,
		totalAmount:     totalAmount,
		campaignID:      campaignID,
		couponID:        couponID,
		version:         version,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// VendorID returns the vendor the order was placed with.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// DeliveryAddress returns the drop-off coordinate.
func (o *Order) DeliveryAddress() kernel.GeoPoint {
	return o.deliveryAddress
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only status history.
func (o *Order) History() []StatusChange {
	return append([]StatusChange(nil), o.history...)
}

// CancelReason returns the reason recorded on cancellation, empty otherwise.
func (o *Order) CancelReason() string {
	return o.cancelReason
}

// Subtotal returns the sum of all line totals rounded to cents.
func (o *Order) Subtotal() float64 {
	var sum float64
	for _, item := range o.items {
		sum += item.LineTotal()
	}
	return kernel.RoundMoney(sum)
}

// DeliveryFee returns the fee charged for delivering the order.
func (o *Order) DeliveryFee() float64 {
	return o.deliveryFee
}

// DiscountAmount returns the applied campaign or coupon discount.
func (o *Order) DiscountAmount() float64 {
	return o.discountAmount
}

// TotalAmount returns the amount the customer pays:
// subtotal minus discount (never below zero) plus the delivery fee.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// CampaignID returns the applied campaign, nil when none.
func (o *Order) CampaignID() *kernel.UUID {
	return o.campaignID
}

// CouponID returns the applied coupon, nil when none.
func (o *Order) CouponID() *kernel.UUID {
	return o.couponID
}

// Version returns the optimistic concurrency token.
func (o *Order) Version() int {
	return o.version
}

// ApplyPricing records the resolved delivery fee and discount and
// recalculates the total. Only allowed while the order is still Pending.
func (o *Order) ApplyPricing(deliveryFee, discountAmount float64, campaignID, couponID *kernel.UUID) error {
	if o.status != StatusPending {
		return errs.NewValueIsInvalidError("pricing can only be applied to a pending order")
	}
	if deliveryFee < 0 {
		return errs.NewValueIsInvalidError("deliveryFee is negative")
	}
	if discountAmount < 0 {
		return errs.NewValueIsInvalidError("discountAmount is negative")
	}

	o.deliveryFee = kernel.RoundMoney(deliveryFee)
	o.discountAmount = kernel.RoundMoney(discountAmount)
	o.campaignID = campaignID
	o.couponID = couponID

	discounted := o.Subtotal() - o.discountAmount
	if discounted < 0 {
		discounted = 0
	}
	o.totalAmount = kernel.RoundMoney(discounted + o.deliveryFee)

	return nil
}

// StartPreparing moves the order from Pending to Preparing.
func (o *Order) StartPreparing(at time.Time) error {
	return o.transition(StatusPreparing, at)
}

// MarkReady moves the order from Preparing to Ready for dispatch.
func (o *Order) MarkReady(at time.Time) error {
	return o.transition(StatusReady, at)
}

// Assign moves the order from Ready to Assigned when a courier is offered the job.
func (o *Order) Assign(at time.Time) error {
	return o.transition(StatusAssigned, at)
}

// Accept moves the order from Assigned to Accepted.
func (o *Order) Accept(at time.Time) error {
	return o.transition(StatusAccepted, at)
}

// ResetToReady returns a rejected order to the dispatch pool.
func (o *Order) ResetToReady(at time.Time) error {
	return o.transition(StatusReady, at)
}

// StartDelivery moves the order from Accepted to OutForDelivery.
func (o *Order) StartDelivery(at time.Time) error {
	return o.transition(StatusOutForDelivery, at)
}

// Deliver moves the order from OutForDelivery to Delivered.
func (o *Order) Deliver(at time.Time) error {
	return o.transition(StatusDelivered, at)
}

// Cancel terminates the order with a reason. Not allowed once the order
// is out for delivery or already terminal.
func (o *Order) Cancel(reason string, at time.Time) error {
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	if err := o.transition(StatusCancelled, at); err != nil {
		return err
	}
	o.cancelReason = reason
	return nil
}

func (o *Order) transition(next Status, at time.Time) error {
	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}

	o.history = append(o.history, StatusChange{From: o.status, To: newStatus, At: at})
	o.status = newStatus
	return nil
}
