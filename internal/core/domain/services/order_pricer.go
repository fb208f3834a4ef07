package services

import (
	"errors"
	"fmt"

	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/order"
	"kurye/internal/core/domain/model/vendor"
)

// Distance-tiered minimum subtotals. Beyond these distances a delivery
// only pays off for larger carts, so the platform raises the floor past
// whatever the vendor configured.
const (
	midRangeDistanceKm = 3.0
	farRangeDistanceKm = 6.0

	midRangeMinimum = 150.0
	farRangeMinimum = 300.0
)

var (
	// ErrVendorInactive is returned when the vendor is not taking orders.
	ErrVendorInactive = errors.New("vendor is not taking orders")

	// ErrOutOfDeliveryRange is returned when the drop-off point is outside
	// the vendor's effective delivery radius.
	ErrOutOfDeliveryRange = errors.New("delivery address is out of range")

	// ErrMinimumOrderNotMet is returned when the cart subtotal is below
	// the minimum required for the delivery distance.
	ErrMinimumOrderNotMet = errors.New("minimum order amount not met")
)

// DiscountRejectedError reports a campaign or coupon whose rules did not
// match the order. ReasonKey is a stable localization key.
type DiscountRejectedError struct {
	Kind      string // "campaign" or "coupon"
	ReasonKey string
}

func (e *DiscountRejectedError) Error() string {
	return fmt.Sprintf("%s rejected: %s", e.Kind, e.ReasonKey)
}

// PricingResult is the priced order before persistence: subtotal over
// the catalog prices, any discount, and the resulting goods total. The
// delivery fee is computed separately per courier vehicle.
type PricingResult struct {
	Subtotal       float64
	DiscountAmount float64
	Total          float64

	AppliedCampaignID *kernel.UUID
	AppliedCouponID   *kernel.UUID
}

// OrderPricer is a domain service that prices a cart against a vendor
// given a resolved delivery distance. Distance resolution (road distance
// with great-circle fallback) is the caller's job; the pricer is pure.
type OrderPricer struct {
	calculator CampaignCalculator
}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer(calculator CampaignCalculator) OrderPricer {
	return OrderPricer{calculator: calculator}
}

// Price validates range and minimum-amount constraints, applies at most
// one discount source, and returns the priced result.
//
// A campaign or coupon that is present but fails its rules aborts the
// pricing with a DiscountRejectedError rather than silently pricing
// without the discount: the customer made an ordering decision based on
// it.
//
// rangeEnforced is false when the distance came from a degraded source
// (great-circle fallback while the road provider was unavailable); the
// radius check is skipped then so provider downtime never blocks orders
// on an inflated estimate.
func (p OrderPricer) Price(
	v *vendor.Vendor,
	items []order.Item,
	distanceKm float64,
	rangeEnforced bool,
	cmp *campaign.Campaign,
	cpn *campaign.Coupon,
	ctx campaign.RuleValidationContext,
) (PricingResult, error) {
	if err := v.Validate(); err != nil {
		return PricingResult{}, err
	}
	if !v.IsActive() {
		return PricingResult{}, ErrVendorInactive
	}
	if rangeEnforced && distanceKm > v.EffectiveRadiusKm() {
		return PricingResult{}, fmt.Errorf("%w: %.2f km exceeds %.2f km", ErrOutOfDeliveryRange, distanceKm, v.EffectiveRadiusKm())
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.LineTotal()
	}
	subtotal = kernel.RoundMoney(subtotal)

	if minimum := p.minimumFor(v, distanceKm); subtotal < minimum {
		return PricingResult{}, fmt.Errorf("%w: subtotal %.2f is below %.2f", ErrMinimumOrderNotMet, subtotal, minimum)
	}

	result := PricingResult{Subtotal: subtotal}

	switch {
	case cmp != nil:
		discount := p.calculator.CalculateCampaign(*cmp, ctx)
		if !discount.Valid {
			return PricingResult{}, &DiscountRejectedError{Kind: "campaign", ReasonKey: discount.Reason}
		}
		result.DiscountAmount = discount.DiscountAmount
		result.AppliedCampaignID = &cmp.ID
	case cpn != nil:
		discount := p.calculator.CalculateCoupon(*cpn, ctx)
		if !discount.Valid {
			return PricingResult{}, &DiscountRejectedError{Kind: "coupon", ReasonKey: discount.Reason}
		}
		result.DiscountAmount = discount.DiscountAmount
		result.AppliedCouponID = &cpn.ID
	}

	total := subtotal - result.DiscountAmount
	if total < 0 {
		total = 0
	}
	result.Total = kernel.RoundMoney(total)

	return result, nil
}

// minimumFor returns the minimum subtotal for the distance: the vendor's
// own minimum below 3 km, at least 150 from 3 km, and at least 300 from
// 6 km. The tiers never lower what the vendor configured.
func (p OrderPricer) minimumFor(v *vendor.Vendor, distanceKm float64) float64 {
	minimum := v.MinimumOrderAmount()
	switch {
	case distanceKm >= farRangeDistanceKm:
		minimum = max(minimum, farRangeMinimum)
	case distanceKm >= midRangeDistanceKm:
		minimum = max(minimum, midRangeMinimum)
	}
	return minimum
}
