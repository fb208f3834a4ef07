package services_test

import (
	"testing"
	"time"

	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/vendor"
	"kurye/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ruleNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func openRules() campaign.Rules {
	return campaign.Rules{
		IsActive:  true,
		StartDate: ruleNow.AddDate(0, -1, 0),
		EndDate:   ruleNow.AddDate(0, 1, 0),
	}
}

func contextWithItems(items ...campaign.ContextItem) campaign.RuleValidationContext {
	if len(items) == 0 {
		items = []campaign.ContextItem{
			{ProductID: kernel.NewUUID(), CategoryID: kernel.NewUUID(), UnitPrice: 100, Quantity: 1},
		}
	}
	return campaign.RuleValidationContext{
		CustomerID: kernel.NewUUID(),
		Now:        ruleNow,
		City:       "Istanbul",
		District:   "Kadikoy",
		VendorType: vendor.TypeRestaurant,
		Items:      items,
	}
}

func campaignWithRules(rules campaign.Rules) campaign.Campaign {
	return campaign.Campaign{
		ID:            kernel.NewUUID(),
		Name:          "Test Campaign",
		DiscountType:  campaign.DiscountPercentage,
		DiscountValue: 10,
		Rules:         rules,
	}
}

func TestRuleValidator_ValidCampaign(t *testing.T) {
	validator := services.NewRuleValidator()

	ok, reason := validator.ValidateCampaign(campaignWithRules(openRules()), contextWithItems())

	assert.True(t, ok)
	assert.Empty(t, reason)
}

func TestRuleValidator_ReasonKeys(t *testing.T) {
	validator := services.NewRuleValidator()

	t.Run("inactive", func(t *testing.T) {
		rules := openRules()
		rules.IsActive = false

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonNotActive, reason)
	})

	t.Run("before_start_date", func(t *testing.T) {
		rules := openRules()
		rules.StartDate = ruleNow.AddDate(0, 0, 1)

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonOutsideDateRange, reason)
	})

	t.Run("after_end_date", func(t *testing.T) {
		rules := openRules()
		rules.EndDate = ruleNow.AddDate(0, 0, -1)

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonOutsideDateRange, reason)
	})

	t.Run("outside_time_window", func(t *testing.T) {
		rules := openRules()
		// Breakfast window 09:00-11:00; context time is 12:00.
		rules.ActiveHours = &campaign.TimeWindow{StartMinute: 9 * 60, EndMinute: 11 * 60}

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonOutsideTimeWindow, reason)
	})

	t.Run("time_window_end_is_inclusive", func(t *testing.T) {
		rules := openRules()
		// Lunch window 11:00-12:00; context time is exactly 12:00 and
		// still counts.
		rules.ActiveHours = &campaign.TimeWindow{StartMinute: 11 * 60, EndMinute: 12 * 60}

		ok, _ := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.True(t, ok)
	})

	t.Run("time_window_wraps_midnight", func(t *testing.T) {
		rules := openRules()
		rules.ActiveHours = &campaign.TimeWindow{StartMinute: 22 * 60, EndMinute: 6 * 60}

		nightCtx := contextWithItems()
		nightCtx.Now = time.Date(2025, 3, 14, 2, 30, 0, 0, time.UTC)

		ok, _ := validator.ValidateCampaign(campaignWithRules(rules), nightCtx)

		assert.True(t, ok)
	})

	t.Run("first_order_only", func(t *testing.T) {
		rules := openRules()
		rules.FirstOrderOnly = true

		ctx := contextWithItems()
		ctx.IsFirstOrder = false

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), ctx)

		assert.False(t, ok)
		assert.Equal(t, services.ReasonNotFirstOrder, reason)

		ctx.IsFirstOrder = true
		ok, _ = validator.ValidateCampaign(campaignWithRules(rules), ctx)
		assert.True(t, ok)
	})

	t.Run("min_cart_amount", func(t *testing.T) {
		rules := openRules()
		rules.MinCartAmount = 200

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonMinCartNotMet, reason)
	})

	t.Run("city_scope", func(t *testing.T) {
		rules := openRules()
		rules.Cities = []string{"Ankara"}

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonCityNotCovered, reason)
	})

	t.Run("district_narrows_city", func(t *testing.T) {
		rules := openRules()
		rules.Cities = []string{"Istanbul"}
		rules.Districts = []string{"Besiktas"}

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonCityNotCovered, reason)
	})

	t.Run("vendor_type_scope", func(t *testing.T) {
		rules := openRules()
		rules.VendorTypes = []vendor.Type{vendor.TypeMarket}

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonVendorNotCovered, reason)
	})

	t.Run("no_applicable_items", func(t *testing.T) {
		rules := openRules()
		rules.ProductIDs = []kernel.UUID{kernel.NewUUID()}

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), contextWithItems())

		assert.False(t, ok)
		assert.Equal(t, services.ReasonNoApplicableItems, reason)
	})

	t.Run("usage_limit", func(t *testing.T) {
		rules := openRules()
		rules.UsageLimitPerUser = 2

		ctx := contextWithItems()
		ctx.PriorUsageCount = 2

		ok, reason := validator.ValidateCampaign(campaignWithRules(rules), ctx)

		assert.False(t, ok)
		assert.Equal(t, services.ReasonUsageLimitReached, reason)

		ctx.PriorUsageCount = 1
		ok, _ = validator.ValidateCampaign(campaignWithRules(rules), ctx)
		assert.True(t, ok)
	})
}

func TestRuleValidator_ApplicableItems(t *testing.T) {
	validator := services.NewRuleValidator()

	coveredProduct := kernel.NewUUID()
	coveredCategory := kernel.NewUUID()

	items := []campaign.ContextItem{
		{ProductID: coveredProduct, CategoryID: kernel.NewUUID(), UnitPrice: 10, Quantity: 1},
		{ProductID: kernel.NewUUID(), CategoryID: coveredCategory, UnitPrice: 20, Quantity: 1},
		{ProductID: kernel.NewUUID(), CategoryID: kernel.NewUUID(), UnitPrice: 30, Quantity: 1},
	}

	t.Run("unrestricted_rules_cover_all_items", func(t *testing.T) {
		applicable := validator.ApplicableItems(openRules(), items)
		assert.Len(t, applicable, 3)
	})

	t.Run("product_or_category_match", func(t *testing.T) {
		rules := openRules()
		rules.ProductIDs = []kernel.UUID{coveredProduct}
		rules.CategoryIDs = []kernel.UUID{coveredCategory}

		applicable := validator.ApplicableItems(rules, items)

		require.Len(t, applicable, 2)
		assert.True(t, applicable[0].ProductID.IsEqual(coveredProduct))
	})
}

func TestRuleValidator_ValidateCoupon(t *testing.T) {
	validator := services.NewRuleValidator()

	coupon := campaign.Coupon{
		ID:            kernel.NewUUID(),
		Code:          "WELCOME10",
		DiscountType:  campaign.DiscountFixedAmount,
		DiscountValue: 10,
		Rules:         openRules(),
	}

	ok, reason := validator.ValidateCoupon(coupon, contextWithItems())

	assert.True(t, ok)
	assert.Empty(t, reason)
}
