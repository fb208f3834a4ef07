package ports

import (
	"context"
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/order"
)

// ErrConcurrencyConflict is returned when an update loses an optimistic
// concurrency race: the aggregate's stored version no longer matches the
// version it was loaded with. Callers may re-fetch and retry.
var ErrConcurrencyConflict = errors.New("concurrency conflict")

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Returns
	// ErrConcurrencyConflict when the stored version moved on.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllInStatus retrieves every order currently in the given status.
	// The assignment job uses it to find Ready orders to dispatch.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// CountByCustomer returns the number of non-cancelled orders the
	// customer has placed, used for first-order campaign rules.
	CountByCustomer(ctx context.Context, customerID kernel.UUID) (int, error)

	// CountByCustomerAndCampaign returns how many non-cancelled orders of
	// the customer used the campaign, for per-user usage limits.
	CountByCustomerAndCampaign(ctx context.Context, customerID, campaignID kernel.UUID) (int, error)

	// CountByCustomerAndCoupon returns how many non-cancelled orders of
	// the customer used the coupon, for per-user usage limits.
	CountByCustomerAndCoupon(ctx context.Context, customerID, couponID kernel.UUID) (int, error)
}
