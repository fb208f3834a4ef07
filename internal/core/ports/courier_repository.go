package ports

import (
	"context"
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
)

// CourierRepository defines the persistence contract for courier aggregates.
type CourierRepository interface {
	// Add persists a new courier aggregate to storage.
	Add(ctx context.Context, aggregate *courier.Courier) error

	// Update persists changes to an existing courier aggregate. Returns
	// ErrConcurrencyConflict when the stored version moved on.
	Update(ctx context.Context, aggregate *courier.Courier) error

	// Get retrieves a courier by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error)

	// GetAllInRotation retrieves couriers the dispatcher may consider:
	// everyone currently Available or Busy.
	GetAllInRotation(ctx context.Context) ([]*courier.Courier, error)

	// GetAllWithStaleLocation retrieves online couriers whose last
	// location report is older than the cutoff, for the stale sweep.
	GetAllWithStaleLocation(ctx context.Context, olderThan time.Time) ([]*courier.Courier, error)
}
