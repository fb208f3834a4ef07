// Package rediscache provides a read-through Redis cache for campaign
// and coupon rule snapshots. Snapshots only change through back-office
// edits, so a short TTL keeps pricing hot without an invalidation
// protocol.
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"kurye/internal/core/domain/model/campaign"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"

	"github.com/redis/go-redis/v9"
)

// DefaultTTL is how long a cached snapshot stays valid.
const DefaultTTL = 5 * time.Minute

// CampaignCache wraps a CampaignRepository with a Redis read-through
// cache. Redis trouble is logged and degrades to the inner repository,
// never to a failed order.
type CampaignCache struct {
	inner  ports.CampaignRepository
	client redis.UniversalClient
	ttl    time.Duration
	logger *slog.Logger
}

// NewCampaignCache creates a read-through cache in front of inner.
func NewCampaignCache(
	inner ports.CampaignRepository,
	client redis.UniversalClient,
	ttl time.Duration,
	logger *slog.Logger,
) *CampaignCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &CampaignCache{
		inner:  inner,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// GetCampaign retrieves a campaign, serving from Redis when possible.
func (c *CampaignCache) GetCampaign(ctx context.Context, id kernel.UUID) (campaign.Campaign, error) {
	key := "campaign:" + id.String()

	var cached campaign.Campaign
	if c.readThrough(ctx, key, &cached) {
		return cached, nil
	}

	loaded, err := c.inner.GetCampaign(ctx, id)
	if err != nil {
		return campaign.Campaign{}, err
	}

	c.store(ctx, key, loaded)
	return loaded, nil
}

// GetCouponByCode retrieves a coupon, serving from Redis when possible.
func (c *CampaignCache) GetCouponByCode(ctx context.Context, code string) (campaign.Coupon, error) {
	key := "coupon:" + code

	var cached campaign.Coupon
	if c.readThrough(ctx, key, &cached) {
		return cached, nil
	}

	loaded, err := c.inner.GetCouponByCode(ctx, code)
	if err != nil {
		return campaign.Coupon{}, err
	}

	c.store(ctx, key, loaded)
	return loaded, nil
}

// readThrough reports whether dest was filled from the cache.
func (c *CampaignCache) readThrough(ctx context.Context, key string, dest any) bool {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("campaign cache read failed", "key", key, "error", err)
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("campaign cache entry is corrupt", "key", key, "error", err)
		return false
	}

	return true
}

func (c *CampaignCache) store(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("campaign cache serialization failed", "key", key, "error", err)
		return
	}

	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("campaign cache write failed", "key", key, "error", err)
	}
}
