package campaign

import (
	"fmt"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/vendor"
	"kurye/internal/pkg/errs"
)

// DiscountType is how a campaign or coupon discount is computed.
type DiscountType int

const (
	// DiscountUnknown represents an invalid or undefined discount type.
	DiscountUnknown DiscountType = iota

	// DiscountPercentage takes DiscountValue percent off the applicable subtotal.
	DiscountPercentage

	// DiscountFixedAmount takes DiscountValue off, never more than the
	// applicable subtotal.
	DiscountFixedAmount
)

// Validate checks if the DiscountType value is one of the defined types.
func (d DiscountType) Validate() error {
	switch d {
	case DiscountPercentage, DiscountFixedAmount:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("discountType is invalid", fmt.Errorf("%d is not a valid discount type", d))
	}
}

// String returns the human-readable name of the discount type.
func (d DiscountType) String() string {
	switch d {
	case DiscountPercentage:
		return "Percentage"
	case DiscountFixedAmount:
		return "FixedAmount"
	default:
		return "Unknown"
	}
}

// TimeWindow is a daily time-of-day restriction in minutes after
// midnight. A window whose end is before its start wraps past midnight.
type TimeWindow struct {
	StartMinute int
	EndMinute   int
}

// Contains reports whether the local clock time of t falls inside the
// window. Both ends are inclusive: a request exactly at the end minute
// is still eligible.
func (w TimeWindow) Contains(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()
	if w.StartMinute == w.EndMinute {
		return minute == w.StartMinute
	}
	if w.StartMinute < w.EndMinute {
		return minute >= w.StartMinute && minute <= w.EndMinute
	}
	return minute >= w.StartMinute || minute <= w.EndMinute
}

// Rules is the eligibility rule set shared by campaigns and coupons.
// Empty slices mean "unrestricted" except ProductIDs/CategoryIDs, where
// a non-empty set additionally narrows which items the discount applies
// to.
type Rules struct {
	IsActive  bool
	StartDate time.Time
	EndDate   time.Time

	// ActiveHours restricts the time of day, nil when unrestricted.
	ActiveHours *TimeWindow

	FirstOrderOnly    bool
	MinCartAmount     float64
	UsageLimitPerUser int // 0 means unlimited

	Cities      []string
	Districts   []string
	VendorTypes []vendor.Type

	ProductIDs  []kernel.UUID
	CategoryIDs []kernel.UUID
}

// Campaign is a vendor- or platform-funded promotion applied
// automatically when its rules match.
type Campaign struct {
	ID   kernel.UUID
	Name string

	DiscountType      DiscountType
	DiscountValue     float64
	MaxDiscountAmount float64 // 0 means no cap; only used for percentage discounts

	Rules Rules
}

// Coupon is a code-redeemed discount with the same rule set as a campaign.
type Coupon struct {
	ID   kernel.UUID
	Code string

	DiscountType      DiscountType
	DiscountValue     float64
	MaxDiscountAmount float64

	Rules Rules
}
