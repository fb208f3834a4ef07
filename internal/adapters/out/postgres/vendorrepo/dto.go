// Package vendorrepo provides data transfer objects and mapping functions for vendor persistence.
package vendorrepo

import (
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/vendor"

	"github.com/google/uuid"
)

// VendorDTO represents the database structure for persisting vendor aggregates.
type VendorDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name       string      `gorm:"type:varchar(255);not null"`
	VendorType int         `gorm:"type:int;not null"`
	Location   GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`

	DeliveryRadiusKm   float64 `gorm:"not null"`
	MinimumOrderAmount float64 `gorm:"not null"`
	BusyStatus         int     `gorm:"type:int;not null"`
	IsActive           bool    `gorm:"not null;index"`
}

// TableName specifies the database table name for vendor entities.
func (VendorDTO) TableName() string {
	return "vendors"
}

// GeoPointDTO represents the embedded WGS84 coordinates within the vendor table.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

// fromDomain converts a vendor domain aggregate to its database representation.
func fromDomain(aggregate *vendor.Vendor) VendorDTO {
	return VendorDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		VendorType: int(aggregate.VendorType()),
		Location: GeoPointDTO{
			Lat: aggregate.Location().Latitude(),
			Lng: aggregate.Location().Longitude(),
		},
		DeliveryRadiusKm:   aggregate.DeliveryRadiusKm(),
		MinimumOrderAmount: aggregate.MinimumOrderAmount(),
		BusyStatus:         int(aggregate.BusyStatus()),
		IsActive:           aggregate.IsActive(),
	}
}

// toDomain converts a database DTO to a vendor domain aggregate.
func toDomain(dto VendorDTO) (*vendor.Vendor, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	return vendor.RestoreVendor(
		id,
		dto.Name,
		vendor.Type(dto.VendorType),
		location,
		dto.DeliveryRadiusKm,
		dto.MinimumOrderAmount,
		vendor.BusyStatus(dto.BusyStatus),
		dto.IsActive,
	)
}
