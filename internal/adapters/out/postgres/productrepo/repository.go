package productrepo

import (
	"context"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"
	"kurye/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormProductCatalog implements ProductCatalog using GORM.
type GormProductCatalog struct {
	db *gorm.DB
}

// NewGormProductCatalog creates a new GORM product catalog.
func NewGormProductCatalog(db *gorm.DB) *GormProductCatalog {
	return &GormProductCatalog{db: db}
}

// GetByIDs retrieves the vendor's products for the given IDs. An ID that
// does not resolve within the vendor's catalog surfaces as
// ObjectNotFoundError so pricing can point at the offending line.
func (r *GormProductCatalog) GetByIDs(
	ctx context.Context,
	vendorID kernel.UUID,
	ids []kernel.UUID,
) ([]ports.Product, error) {
	if err := vendorID.Validate(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []ports.Product{}, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "vendor_id = ? AND id IN ?", vendorID.Bytes(), raw).Error; err != nil {
		return nil, err
	}

	found := make(map[uuid.UUID]bool, len(dtos))
	products := make([]ports.Product, 0, len(dtos))
	for _, dto := range dtos {
		product, err := toPort(dto)
		if err != nil {
			return nil, err
		}
		found[dto.ID] = true
		products = append(products, product)
	}

	for _, id := range ids {
		if !found[id.Bytes()] {
			return nil, errs.NewObjectNotFoundError("product", id.String())
		}
	}

	return products, nil
}
