package campaign

import (
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/vendor"
)

// ContextItem is one cart line as seen by rule validation.
type ContextItem struct {
	ProductID  kernel.UUID
	CategoryID kernel.UUID
	UnitPrice  float64
	Quantity   int
}

// LineTotal returns unitPrice * quantity rounded to cents.
func (i ContextItem) LineTotal() float64 {
	return kernel.RoundMoney(i.UnitPrice * float64(i.Quantity))
}

// RuleValidationContext carries everything rule evaluation needs about
// the order being placed. The application layer assembles it; the
// committed prior-use count comes from the order store so validation
// itself stays pure.
type RuleValidationContext struct {
	CustomerID kernel.UUID
	Now        time.Time

	IsFirstOrder    bool
	PriorUsageCount int

	City     string
	District string

	VendorType vendor.Type

	Items []ContextItem
}

// Subtotal returns the cart subtotal rounded to cents.
func (c RuleValidationContext) Subtotal() float64 {
	var sum float64
	for _, item := range c.Items {
		sum += item.LineTotal()
	}
	return kernel.RoundMoney(sum)
}
