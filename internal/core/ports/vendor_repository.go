package ports

import (
	"context"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/vendor"
)

// VendorRepository defines the persistence contract for vendor aggregates.
type VendorRepository interface {
	// Add persists a new vendor aggregate to storage.
	Add(ctx context.Context, aggregate *vendor.Vendor) error

	// Update persists changes to an existing vendor aggregate.
	Update(ctx context.Context, aggregate *vendor.Vendor) error

	// Get retrieves a vendor by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vendor.Vendor, error)
}
