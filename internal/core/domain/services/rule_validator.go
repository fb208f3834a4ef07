package services

import (
	"slices"

	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/kernel"
)

// Stable reason keys returned by rule validation. The core never builds
// display strings from them; translation happens at the edge.
const (
	ReasonNotActive         = "rules.not_active"
	ReasonOutsideDateRange  = "rules.outside_date_range"
	ReasonOutsideTimeWindow = "rules.outside_time_window"
	ReasonNotFirstOrder     = "rules.not_first_order"
	ReasonMinCartNotMet     = "rules.min_cart_not_met"
	ReasonCityNotCovered    = "rules.city_not_covered"
	ReasonVendorNotCovered  = "rules.vendor_type_not_covered"
	ReasonNoApplicableItems = "rules.no_applicable_items"
	ReasonUsageLimitReached = "rules.usage_limit_reached"
)

// RuleValidator is a pure domain service that decides whether a campaign
// or coupon rule set matches an order. It holds no state and touches no
// store: the context carries everything, including the committed
// prior-use count.
type RuleValidator struct{}

// NewRuleValidator creates a new RuleValidator instance.
func NewRuleValidator() RuleValidator {
	return RuleValidator{}
}

// ValidateCampaign checks a campaign's rules against the order context.
// Returns (true, "") when the campaign applies, otherwise (false, reason)
// with the first failing rule's reason key.
func (v RuleValidator) ValidateCampaign(c campaign.Campaign, ctx campaign.RuleValidationContext) (bool, string) {
	return v.validateRules(c.Rules, ctx)
}

// ValidateCoupon checks a coupon's rules against the order context.
func (v RuleValidator) ValidateCoupon(c campaign.Coupon, ctx campaign.RuleValidationContext) (bool, string) {
	return v.validateRules(c.Rules, ctx)
}

// ApplicableItems returns the cart lines the discount applies to. When
// the rules carry product or category restrictions, only matching lines
// qualify; otherwise every line does.
func (v RuleValidator) ApplicableItems(rules campaign.Rules, items []campaign.ContextItem) []campaign.ContextItem {
	if len(rules.ProductIDs) == 0 && len(rules.CategoryIDs) == 0 {
		return slices.Clone(items)
	}

	var applicable []campaign.ContextItem
	for _, item := range items {
		if containsUUID(rules.ProductIDs, item.ProductID) || containsUUID(rules.CategoryIDs, item.CategoryID) {
			applicable = append(applicable, item)
		}
	}
	return applicable
}

// validateRules evaluates the rule set in a fixed short-circuit order so
// the reported reason is deterministic: activity and date range first,
// then time window, first-order flag, minimum cart, geographic scope,
// vendor type, item scope, and usage limit last.
func (v RuleValidator) validateRules(rules campaign.Rules, ctx campaign.RuleValidationContext) (bool, string) {
	if !rules.IsActive {
		return false, ReasonNotActive
	}
	if ctx.Now.Before(rules.StartDate) || ctx.Now.After(rules.EndDate) {
		return false, ReasonOutsideDateRange
	}
	if rules.ActiveHours != nil && !rules.ActiveHours.Contains(ctx.Now) {
		return false, ReasonOutsideTimeWindow
	}
	if rules.FirstOrderOnly && !ctx.IsFirstOrder {
		return false, ReasonNotFirstOrder
	}
	if rules.MinCartAmount > 0 && ctx.Subtotal() < rules.MinCartAmount {
		return false, ReasonMinCartNotMet
	}
	if !v.coversLocation(rules, ctx) {
		return false, ReasonCityNotCovered
	}
	if len(rules.VendorTypes) > 0 && !slices.Contains(rules.VendorTypes, ctx.VendorType) {
		return false, ReasonVendorNotCovered
	}
	if len(v.ApplicableItems(rules, ctx.Items)) == 0 {
		return false, ReasonNoApplicableItems
	}
	if rules.UsageLimitPerUser > 0 && ctx.PriorUsageCount >= rules.UsageLimitPerUser {
		return false, ReasonUsageLimitReached
	}

	return true, ""
}

// coversLocation checks the city and district scope. An empty city list
// means the rules apply everywhere; a non-empty district list narrows
// further within the listed cities.
func (v RuleValidator) coversLocation(rules campaign.Rules, ctx campaign.RuleValidationContext) bool {
	if len(rules.Cities) == 0 {
		return true
	}
	if !slices.Contains(rules.Cities, ctx.City) {
		return false
	}
	if len(rules.Districts) > 0 && !slices.Contains(rules.Districts, ctx.District) {
		return false
	}
	return true
}

func containsUUID(ids []kernel.UUID, id kernel.UUID) bool {
	for _, candidate := range ids {
		if candidate.IsEqual(id) {
			return true
		}
	}
	return false
}
