package ports

import (
	"context"

	"kurye/internal/core/domain/model/kernel"
)

// Product is a catalog entry as pricing sees it. Prices always come from
// here, never from the client request.
type Product struct {
	ID          kernel.UUID
	VendorID    kernel.UUID
	CategoryID  kernel.UUID
	Name        string
	Price       float64
	IsAvailable bool // vendors can pause items without delisting them
}

// ProductCatalog provides read access to a vendor's product catalog.
type ProductCatalog interface {
	// GetByIDs retrieves the vendor's products for the given IDs.
	// A missing or foreign product surfaces as errs.ObjectNotFoundError.
	GetByIDs(ctx context.Context, vendorID kernel.UUID, ids []kernel.UUID) ([]Product, error)
}
