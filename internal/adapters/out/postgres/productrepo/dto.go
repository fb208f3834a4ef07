// Package productrepo provides read access to vendor product catalogs.
package productrepo

import (
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for catalog entries.
type ProductDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name        string  `gorm:"type:varchar(255);not null"`
	Price       float64 `gorm:"not null"`
	IsAvailable bool    `gorm:"not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// FromPort converts a catalog entry to its database representation.
// Exported so seed tooling and tests can build rows from port values.
func FromPort(product ports.Product) ProductDTO {
	return ProductDTO{
		ID:          product.ID.Bytes(),
		VendorID:    product.VendorID.Bytes(),
		CategoryID:  product.CategoryID.Bytes(),
		Name:        product.Name,
		Price:       product.Price,
		IsAvailable: product.IsAvailable,
	}
}

// toPort converts a database DTO to a catalog entry.
func toPort(dto ProductDTO) (ports.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.Product{}, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return ports.Product{}, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return ports.Product{}, err
	}

	return ports.Product{
		ID:          id,
		VendorID:    vendorID,
		CategoryID:  categoryID,
		Name:        dto.Name,
		Price:       dto.Price,
		IsAvailable: dto.IsAvailable,
	}, nil
}
