package ports

import (
	"context"
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
)

// EarningRepository defines the persistence contract for courier earning
// records. Payout fields are append-only; the paid flag is the only
// thing that ever changes on a record.
type EarningRepository interface {
	// Add persists a new earning record.
	Add(ctx context.Context, earning courier.Earning) error

	// GetAllByCourier retrieves a courier's earning records, newest first.
	GetAllByCourier(ctx context.Context, courierID kernel.UUID) ([]courier.Earning, error)

	// GetAllUnpaid retrieves earning records not yet credited to a
	// wallet, oldest first.
	GetAllUnpaid(ctx context.Context) ([]courier.Earning, error)

	// MarkPaid flags a record as credited to the courier's wallet.
	MarkPaid(ctx context.Context, id kernel.UUID, at time.Time) error
}
