package commands

import (
	"context"

	"kurye/internal/core/domain/model/order"
	"kurye/internal/core/domain/services"
	"kurye/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// Resolves product prices from the vendor catalog, validates the discount
// source, prices the cart and persists the order in "pending" status.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, campaigns, catalog, maps, clock)
//	cmd, _ := NewCreateOrderCommand(orderID, customerID, vendorID, address,
//	    "Istanbul", "Kadikoy", items, nil, "WELCOME10")
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order placement failed: %w", err)
//	}
//	// Order is now pending and will be offered to couriers once ready
type CreateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	pricing    orderPricing
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires an OrderingUoWFactory for transactional persistence plus the
// read-side collaborators pricing depends on.
func NewCreateOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	campaigns ports.CampaignRepository,
	catalog ports.ProductCatalog,
	maps ports.MapService,
	clock ports.Clock,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		pricing: orderPricing{
			catalog:   catalog,
			campaigns: campaigns,
			maps:      maps,
			pricer:    services.NewOrderPricer(services.NewCampaignCalculator(services.NewRuleValidator())),
			feeCalc:   services.NewDeliveryFeeCalculator(),
			clock:     clock,
		},
	}
}

// Handle processes the order placement command.
// Prices the cart inside the transaction so usage counts for discount
// rules read committed state, then persists the priced order.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return err
	}

	priced, err := h.pricing.price(ctx, cmd, v, uow.OrderRepository())
	if err != nil {
		return err
	}

	placed, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.VendorID(),
		cmd.DeliveryAddress(),
		priced.items,
		h.pricing.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = placed.ApplyPricing(
		priced.fee.Total,
		priced.pricing.DiscountAmount,
		priced.pricing.AppliedCampaignID,
		priced.pricing.AppliedCouponID,
	); err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, placed); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
