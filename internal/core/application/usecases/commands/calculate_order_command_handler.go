package commands

import (
	"context"
	"math"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/services"
	"kurye/internal/core/ports"
)

const (
	// basePrepMinutes is the kitchen time promised for a vendor at
	// normal load. Busy and overloaded vendors add on top.
	basePrepMinutes = 20

	// travelMinutesPerKm converts distance to riding time for the
	// promised delivery window.
	travelMinutesPerKm = 3.0
)

// CalculateOrderResult is the customer-facing quote for a cart: the
// money split, the distance the quote was computed for, and the
// promised delivery time.
type CalculateOrderResult struct {
	Subtotal       float64
	DiscountAmount float64
	DeliveryFee    float64
	Total          float64

	AppliedCampaignID *kernel.UUID
	AppliedCouponID   *kernel.UUID

	DistanceKm        float64
	DistanceEstimated bool
	PromisedMinutes   int
}

// CalculateOrderCommandHandler prices a cart without persisting
// anything. Runs the same path as order placement so the quote and the
// final price can only diverge when state changes in between.
type CalculateOrderCommandHandler struct {
	uowFactory OrderingUoWFactory
	pricing    orderPricing
}

// NewCalculateOrderCommandHandler creates a handler for dry-run pricing.
func NewCalculateOrderCommandHandler(
	uowFactory OrderingUoWFactory,
	campaigns ports.CampaignRepository,
	catalog ports.ProductCatalog,
	maps ports.MapService,
	clock ports.Clock,
) CalculateOrderCommandHandler {
	return CalculateOrderCommandHandler{
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

// Handle prices the cart and returns the quote. The transaction is
// read-only and always rolled back.
func (h *CalculateOrderCommandHandler) Handle(ctx context.Context, cmd CalculateOrderCommand) (CalculateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CalculateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CalculateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	v, err := uow.VendorRepository().Get(ctx, cmd.VendorID())
	if err != nil {
		return CalculateOrderResult{}, err
	}

	priced, err := h.pricing.price(ctx, cmd.CreateOrderCommand, v, uow.OrderRepository())
	if err != nil {
		return CalculateOrderResult{}, err
	}

	promised := basePrepMinutes + v.ExtraPrepMinutes() +
		int(math.Ceil(priced.distanceKm*travelMinutesPerKm))

	return CalculateOrderResult{
		Subtotal:          priced.pricing.Subtotal,
		DiscountAmount:    priced.pricing.DiscountAmount,
		DeliveryFee:       priced.fee.Total,
		Total:             kernel.RoundMoney(priced.pricing.Total + priced.fee.Total),
		AppliedCampaignID: priced.pricing.AppliedCampaignID,
		AppliedCouponID:   priced.pricing.AppliedCouponID,
		DistanceKm:        priced.distanceKm,
		DistanceEstimated: priced.distanceStatus != ports.DistanceOK,
		PromisedMinutes:   promised,
	}, nil
}
