package commands

import (
	"context"
	"fmt"

	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/order"
	"kurye/internal/core/domain/model/vendor"
	"kurye/internal/core/domain/services"
	"kurye/internal/core/ports"
	"kurye/internal/pkg/errs"
)

// estimateVehicle is the fleet-typical vehicle used for the delivery fee
// quoted to the customer before a courier is known. The fee actually
// paid out is recomputed for the assigned courier's vehicle.
const estimateVehicle = courier.VehicleMotorcycle

// orderPricing bundles the collaborators shared by order placement and
// the dry-run price preview.
type orderPricing struct {
	catalog   ports.ProductCatalog
	campaigns ports.CampaignRepository
	maps      ports.MapService
	pricer    services.OrderPricer
	feeCalc   services.DeliveryFeeCalculator
	clock     ports.Clock
}

// pricedOrder is the fully resolved outcome of pricing a cart: catalog-
// priced lines, the discount decision, the customer fee estimate, and
// the distance the checks ran against.
type pricedOrder struct {
	items          []order.Item
	pricing        services.PricingResult
	fee            services.FeeBreakdown
	distanceKm     float64
	distanceStatus ports.DistanceStatus
}

// price runs the full pricing path for a cart against a vendor:
// catalog resolution, road distance with great-circle fallback, rule
// context assembly from committed usage counts, discount validation,
// and range/minimum checks. orderRepo supplies the usage counts and
// must come from the caller's transaction.
func (p orderPricing) price(
	ctx context.Context,
	cmd CreateOrderCommand,
	v *vendor.Vendor,
	orderRepo ports.OrderRepository,
) (pricedOrder, error) {
	items, contextItems, err := p.resolveItems(ctx, cmd)
	if err != nil {
		return pricedOrder{}, err
	}

	now := p.clock.Now()
	distance := p.maps.RoadDistance(ctx, v.Location(), cmd.DeliveryAddress())
	distanceKm := distance.Km
	rangeEnforced := distance.Status == ports.DistanceOK
	if !rangeEnforced {
		distanceKm = v.Location().DistanceKmTo(cmd.DeliveryAddress())
	}

	ruleCtx := campaign.RuleValidationContext{
		CustomerID: cmd.CustomerID(),
		Now:        now,
		City:       cmd.City(),
		District:   cmd.District(),
		VendorType: v.VendorType(),
		Items:      contextItems,
	}

	var cmp *campaign.Campaign
	var cpn *campaign.Coupon
	switch {
	case cmd.CampaignID() != nil:
		found, err := p.campaigns.GetCampaign(ctx, *cmd.CampaignID())
		if err != nil {
			return pricedOrder{}, err
		}
		cmp = &found
	case cmd.CouponCode() != "":
		found, err := p.campaigns.GetCouponByCode(ctx, cmd.CouponCode())
		if err != nil {
			return pricedOrder{}, err
		}
		cpn = &found
	}

	if err := p.fillUsageCounts(ctx, cmd, cmp, cpn, orderRepo, &ruleCtx); err != nil {
		return pricedOrder{}, err
	}

	pricing, err := p.pricer.Price(v, items, distanceKm, rangeEnforced, cmp, cpn, ruleCtx)
	if err != nil {
		return pricedOrder{}, err
	}

	fee, err := p.feeCalc.Calculate(distanceKm, estimateVehicle, now)
	if err != nil {
		return pricedOrder{}, err
	}

	return pricedOrder{
		items:          items,
		pricing:        pricing,
		fee:            fee,
		distanceKm:     distanceKm,
		distanceStatus: distance.Status,
	}, nil
}

// resolveItems turns the requested product references into priced order
// lines using the vendor catalog.
func (p orderPricing) resolveItems(ctx context.Context, cmd CreateOrderCommand) ([]order.Item, []campaign.ContextItem, error) {
	specs := cmd.Items()
	productIDs := make([]kernel.UUID, 0, len(specs))
	for _, spec := range specs {
		productIDs = append(productIDs, spec.ProductID)
	}

	products, err := p.catalog.GetByIDs(ctx, cmd.VendorID(), productIDs)
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]ports.Product, len(products))
	for _, product := range products {
		byID[product.ID.String()] = product
	}

	items := make([]order.Item, 0, len(specs))
	contextItems := make([]campaign.ContextItem, 0, len(specs))
	for _, spec := range specs {
		product, ok := byID[spec.ProductID.String()]
		if !ok {
			return nil, nil, errs.NewObjectNotFoundError("productID", spec.ProductID)
		}
		if !product.IsAvailable {
			return nil, nil, fmt.Errorf("product %s is unavailable: %w", product.ID, errs.ErrValueIsInvalid)
		}

		item, err := order.NewItem(product.ID, product.CategoryID, product.Price, spec.Quantity)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, item)
		contextItems = append(contextItems, campaign.ContextItem{
			ProductID:  product.ID,
			CategoryID: product.CategoryID,
			UnitPrice:  product.Price,
			Quantity:   spec.Quantity,
		})
	}

	return items, contextItems, nil
}

// fillUsageCounts loads the committed counts rule validation needs:
// whether this is the customer's first order and how often the discount
// source was already used.
func (p orderPricing) fillUsageCounts(
	ctx context.Context,
	cmd CreateOrderCommand,
	cmp *campaign.Campaign,
	cpn *campaign.Coupon,
	orderRepo ports.OrderRepository,
	ruleCtx *campaign.RuleValidationContext,
) error {
	if cmp == nil && cpn == nil {
		return nil
	}

	orderCount, err := orderRepo.CountByCustomer(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}
	ruleCtx.IsFirstOrder = orderCount == 0

	switch {
	case cmp != nil:
		used, err := orderRepo.CountByCustomerAndCampaign(ctx, cmd.CustomerID(), cmp.ID)
		if err != nil {
			return err
		}
		ruleCtx.PriorUsageCount = used
	case cpn != nil:
		used, err := orderRepo.CountByCustomerAndCoupon(ctx, cmd.CustomerID(), cpn.ID)
		if err != nil {
			return err
		}
		ruleCtx.PriorUsageCount = used
	}

	return nil
}
