package services

import (
	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/kernel"
)

// DiscountResult is the outcome of evaluating a campaign or coupon
// against an order. When Valid is false, Reason carries the failing
// rule's reason key and the amount is zero.
type DiscountResult struct {
	Valid          bool
	Reason         string
	DiscountAmount float64

	// ApplicableProductIDs lists the cart lines the discount was
	// computed over, for receipts and auditing.
	ApplicableProductIDs []kernel.UUID
}

// CampaignCalculator is a pure domain service that turns a matching
// campaign or coupon into a concrete discount amount.
type CampaignCalculator struct {
	validator RuleValidator
}

// NewCampaignCalculator creates a new CampaignCalculator instance.
func NewCampaignCalculator(validator RuleValidator) CampaignCalculator {
	return CampaignCalculator{validator: validator}
}

// CalculateCampaign validates the campaign and, when it applies,
// computes the discount over the applicable lines.
func (c CampaignCalculator) CalculateCampaign(cmp campaign.Campaign, ctx campaign.RuleValidationContext) DiscountResult {
	ok, reason := c.validator.ValidateCampaign(cmp, ctx)
	if !ok {
		return DiscountResult{Reason: reason}
	}
	return c.calculate(cmp.DiscountType, cmp.DiscountValue, cmp.MaxDiscountAmount, cmp.Rules, ctx)
}

// CalculateCoupon validates the coupon and, when it applies, computes
// the discount over the applicable lines. Coupons and campaigns share
// the same math.
func (c CampaignCalculator) CalculateCoupon(cpn campaign.Coupon, ctx campaign.RuleValidationContext) DiscountResult {
	ok, reason := c.validator.ValidateCoupon(cpn, ctx)
	if !ok {
		return DiscountResult{Reason: reason}
	}
	return c.calculate(cpn.DiscountType, cpn.DiscountValue, cpn.MaxDiscountAmount, cpn.Rules, ctx)
}

func (c CampaignCalculator) calculate(
	discountType campaign.DiscountType,
	discountValue, maxDiscount float64,
	rules campaign.Rules,
	ctx campaign.RuleValidationContext,
) DiscountResult {
	applicable := c.validator.ApplicableItems(rules, ctx.Items)

	var subtotal float64
	productIDs := make([]kernel.UUID, 0, len(applicable))
	for _, item := range applicable {
		subtotal += item.LineTotal()
		productIDs = append(productIDs, item.ProductID)
	}

	var amount float64
	switch discountType {
	case campaign.DiscountPercentage:
		amount = subtotal * discountValue / 100
		if maxDiscount > 0 && amount > maxDiscount {
			amount = maxDiscount
		}
	case campaign.DiscountFixedAmount:
		amount = discountValue
		if amount > subtotal {
			amount = subtotal
		}
	default:
		amount = 0
	}
	if amount < 0 {
		amount = 0
	}

	return DiscountResult{
		Valid:                true,
		DiscountAmount:       kernel.RoundMoney(amount),
		ApplicableProductIDs: productIDs,
	}
}
