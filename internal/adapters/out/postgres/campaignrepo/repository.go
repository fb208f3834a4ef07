package campaignrepo

import (
	"context"
	"errors"

	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCampaignRepository implements CampaignRepository using GORM.
// Reads only; campaigns and coupons are written by back-office tooling.
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GORM campaign repository.
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// GetCampaign retrieves a campaign by ID.
func (r *GormCampaignRepository) GetCampaign(ctx context.Context, id kernel.UUID) (campaign.Campaign, error) {
	if err := id.Validate(); err != nil {
		return campaign.Campaign{}, err
	}

	var dto CampaignDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return campaign.Campaign{}, errs.NewObjectNotFoundError("campaign", id.String())
		}
		return campaign.Campaign{}, err
	}

	return campaignToDomain(dto)
}

// GetCouponByCode retrieves a coupon by its redemption code.
func (r *GormCampaignRepository) GetCouponByCode(ctx context.Context, code string) (campaign.Coupon, error) {
	if code == "" {
		return campaign.Coupon{}, errs.NewValueIsRequiredError("code")
	}

	var dto CouponDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return campaign.Coupon{}, errs.NewObjectNotFoundError("coupon", code)
		}
		return campaign.Coupon{}, err
	}

	return couponToDomain(dto)
}
