// Package campaignrepo provides read access to campaign and coupon rule
// snapshots. Rules are a nested document edited by back-office tooling,
// so they are stored as jsonb rather than normalized.
package campaignrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// CampaignDTO represents the database structure for campaign snapshots.
type CampaignDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"type:varchar(255);not null"`

	DiscountType      int     `gorm:"type:int;not null"`
	DiscountValue     float64 `gorm:"not null"`
	MaxDiscountAmount float64 `gorm:"not null"`

	Rules RulesJSON `gorm:"type:jsonb;not null"`
}

// TableName specifies the database table name for campaign entities.
func (CampaignDTO) TableName() string {
	return "campaigns"
}

// CouponDTO represents the database structure for coupon snapshots.
type CouponDTO struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code string    `gorm:"type:varchar(64);not null;uniqueIndex"`

	DiscountType      int     `gorm:"type:int;not null"`
	DiscountValue     float64 `gorm:"not null"`
	MaxDiscountAmount float64 `gorm:"not null"`

	Rules RulesJSON `gorm:"type:jsonb;not null"`
}

// TableName specifies the database table name for coupon entities.
func (CouponDTO) TableName() string {
	return "coupons"
}

// timeWindowJSON is the jsonb shape for a daily time restriction.
type timeWindowJSON struct {
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

// RulesJSON stores the eligibility rule set as a jsonb document.
type RulesJSON struct {
	IsActive  bool      `json:"is_active"`
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`

	ActiveHours *timeWindowJSON `json:"active_hours,omitempty"`

	FirstOrderOnly    bool    `json:"first_order_only"`
	MinCartAmount     float64 `json:"min_cart_amount"`
	UsageLimitPerUser int     `json:"usage_limit_per_user"`

	Cities      []string `json:"cities,omitempty"`
	Districts   []string `json:"districts,omitempty"`
	VendorTypes []int    `json:"vendor_types,omitempty"`

	ProductIDs  []uuid.UUID `json:"product_ids,omitempty"`
	CategoryIDs []uuid.UUID `json:"category_ids,omitempty"`
}

// Value serializes the rules for storage.
func (r RulesJSON) Value() (driver.Value, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan deserializes the rules from storage.
func (r *RulesJSON) Scan(value any) error {
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	case nil:
		*r = RulesJSON{}
		return nil
	default:
		return fmt.Errorf("unsupported rules column type %T", value)
	}

	return json.Unmarshal(raw, r)
}

// RulesFromDomain converts a domain rule set to its jsonb shape.
// Exported so seed tooling and tests can build rows from domain values.
func RulesFromDomain(rules campaign.Rules) RulesJSON {
	var window *timeWindowJSON
	if rules.ActiveHours != nil {
		window = &timeWindowJSON{
			StartMinute: rules.ActiveHours.StartMinute,
			EndMinute:   rules.ActiveHours.EndMinute,
		}
	}

	vendorTypes := make([]int, 0, len(rules.VendorTypes))
	for _, vendorType := range rules.VendorTypes {
		vendorTypes = append(vendorTypes, int(vendorType))
	}

	return RulesJSON{
		IsActive:          rules.IsActive,
		StartDate:         rules.StartDate,
		EndDate:           rules.EndDate,
		ActiveHours:       window,
		FirstOrderOnly:    rules.FirstOrderOnly,
		MinCartAmount:     rules.MinCartAmount,
		UsageLimitPerUser: rules.UsageLimitPerUser,
		Cities:            rules.Cities,
		Districts:         rules.Districts,
		VendorTypes:       vendorTypes,
		ProductIDs:        uuidsFromDomain(rules.ProductIDs),
		CategoryIDs:       uuidsFromDomain(rules.CategoryIDs),
	}
}

// CampaignFromDomain converts a domain campaign to its database representation.
func CampaignFromDomain(c campaign.Campaign) CampaignDTO {
	return CampaignDTO{
		ID:                c.ID.Bytes(),
		Name:              c.Name,
		DiscountType:      int(c.DiscountType),
		DiscountValue:     c.DiscountValue,
		MaxDiscountAmount: c.MaxDiscountAmount,
		Rules:             RulesFromDomain(c.Rules),
	}
}

// CouponFromDomain converts a domain coupon to its database representation.
func CouponFromDomain(c campaign.Coupon) CouponDTO {
	return CouponDTO{
		ID:                c.ID.Bytes(),
		Code:              c.Code,
		DiscountType:      int(c.DiscountType),
		DiscountValue:     c.DiscountValue,
		MaxDiscountAmount: c.MaxDiscountAmount,
		Rules:             RulesFromDomain(c.Rules),
	}
}

// rulesToDomain converts a jsonb rule set back to the domain shape.
func rulesToDomain(dto RulesJSON) (campaign.Rules, error) {
	var window *campaign.TimeWindow
	if dto.ActiveHours != nil {
		window = &campaign.TimeWindow{
			StartMinute: dto.ActiveHours.StartMinute,
			EndMinute:   dto.ActiveHours.EndMinute,
		}
	}

	vendorTypes := make([]vendor.Type, 0, len(dto.VendorTypes))
	for _, vendorType := range dto.VendorTypes {
		vendorTypes = append(vendorTypes, vendor.Type(vendorType))
	}

	productIDs, err := uuidsToDomain(dto.ProductIDs)
	if err != nil {
		return campaign.Rules{}, err
	}
	categoryIDs, err := uuidsToDomain(dto.CategoryIDs)
	if err != nil {
		return campaign.Rules{}, err
	}

	return campaign.Rules{
		IsActive:          dto.IsActive,
		StartDate:         dto.StartDate,
		EndDate:           dto.EndDate,
		ActiveHours:       window,
		FirstOrderOnly:    dto.FirstOrderOnly,
		MinCartAmount:     dto.MinCartAmount,
		UsageLimitPerUser: dto.UsageLimitPerUser,
		Cities:            dto.Cities,
		Districts:         dto.Districts,
		VendorTypes:       vendorTypes,
		ProductIDs:        productIDs,
		CategoryIDs:       categoryIDs,
	}, nil
}

// campaignToDomain converts a database DTO to a domain campaign.
func campaignToDomain(dto CampaignDTO) (campaign.Campaign, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return campaign.Campaign{}, err
	}

	rules, err := rulesToDomain(dto.Rules)
	if err != nil {
		return campaign.Campaign{}, err
	}

	return campaign.Campaign{
		ID:                id,
		Name:              dto.Name,
		DiscountType:      campaign.DiscountType(dto.DiscountType),
		DiscountValue:     dto.DiscountValue,
		MaxDiscountAmount: dto.MaxDiscountAmount,
		Rules:             rules,
	}, nil
}

// couponToDomain converts a database DTO to a domain coupon.
func couponToDomain(dto CouponDTO) (campaign.Coupon, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return campaign.Coupon{}, err
	}

	rules, err := rulesToDomain(dto.Rules)
	if err != nil {
		return campaign.Coupon{}, err
	}

	return campaign.Coupon{
		ID:                id,
		Code:              dto.Code,
		DiscountType:      campaign.DiscountType(dto.DiscountType),
		DiscountValue:     dto.DiscountValue,
		MaxDiscountAmount: dto.MaxDiscountAmount,
		Rules:             rules,
	}, nil
}

func uuidsFromDomain(ids []kernel.UUID) []uuid.UUID {
	if len(ids) == 0 {
		return nil
	}
	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}
	return raw
}

func uuidsToDomain(raw []uuid.UUID) ([]kernel.UUID, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		parsed, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, parsed)
	}
	return ids, nil
}
