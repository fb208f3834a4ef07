package commands

import "kurye/internal/core/domain/model/kernel"

// CalculateOrderCommand requests a dry-run price for a cart. It carries
// the same payload as order placement, so it embeds the placement
// command and reuses its validation.
type CalculateOrderCommand struct {
	CreateOrderCommand
}

// NewCalculateOrderCommand creates a validated dry-run pricing command.
// The carried order ID is only used for validation and never persisted.
func NewCalculateOrderCommand(
	customerID, vendorID kernel.UUID,
	deliveryAddress kernel.GeoPoint,
	city, district string,
	items []OrderItemSpec,
	campaignID *kernel.UUID,
	couponCode string,
) (CalculateOrderCommand, error) {
	inner, err := NewCreateOrderCommand(
		kernel.NewUUID(),
		customerID,
		vendorID,
		deliveryAddress,
		city,
		district,
		items,
		campaignID,
		couponCode,
	)
	if err != nil {
		return CalculateOrderCommand{}, err
	}
	return CalculateOrderCommand{CreateOrderCommand: inner}, nil
}
