package ports

import (
	"context"

	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for OrderCourier
// assignment records. The store enforces at most one active record per
// order with a partial unique index; Add surfaces a violation as
// ErrConcurrencyConflict.
type AssignmentRepository interface {
	// Add persists a new assignment record.
	Add(ctx context.Context, aggregate *assignment.OrderCourier) error

	// Update persists changes to an existing assignment record. Returns
	// ErrConcurrencyConflict when the stored version moved on.
	Update(ctx context.Context, aggregate *assignment.OrderCourier) error

	// Get retrieves an assignment record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assignment.OrderCourier, error)

	// GetActiveByOrder retrieves the order's single active assignment.
	GetActiveByOrder(ctx context.Context, orderID kernel.UUID) (*assignment.OrderCourier, error)

	// GetAllByOrder retrieves the order's full assignment history,
	// including rejected and cancelled records, oldest first.
	GetAllByOrder(ctx context.Context, orderID kernel.UUID) ([]*assignment.OrderCourier, error)

	// GetRejectedCourierIDs lists couriers that already rejected the
	// order, so re-dispatch can skip them.
	GetRejectedCourierIDs(ctx context.Context, orderID kernel.UUID) ([]kernel.UUID, error)
}
