package ports

import (
	"context"

	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/kernel"
)

// CampaignRepository provides read access to campaign and coupon rule
// snapshots. Implementations may cache: rule snapshots only change
// through back-office edits.
type CampaignRepository interface {
	// GetCampaign retrieves a campaign by its unique identifier.
	GetCampaign(ctx context.Context, id kernel.UUID) (campaign.Campaign, error)

	// GetCouponByCode retrieves a coupon by its redemption code.
	GetCouponByCode(ctx context.Context, code string) (campaign.Coupon, error)
}
