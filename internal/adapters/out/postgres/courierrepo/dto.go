// Package courierrepo provides data transfer objects and mapping functions for courier persistence.
// This package implements the repository pattern for the courier domain aggregate, handling
// the conversion between domain entities and database representations.
package courierrepo

import (
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier aggregates.
type CourierDTO struct {
	ID       uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Name     string      `gorm:"type:varchar(255);not null"`
	Vehicle  int         `gorm:"type:int;not null"`
	Location GeoPointDTO `gorm:"embedded;embeddedPrefix:location_"`

	LocatedAt time.Time `gorm:"not null"`
	Status    int       `gorm:"type:int;not null;index"`

	ShiftStartMinute int `gorm:"type:int;not null"`
	ShiftEndMinute   int `gorm:"type:int;not null"`

	MaxActiveOrders int     `gorm:"type:int;not null"`
	ActiveOrders    int     `gorm:"type:int;not null"`
	Rating          float64 `gorm:"not null"`
	TotalDeliveries int     `gorm:"type:int;not null"`
	TotalEarnings   float64 `gorm:"not null"`

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for courier entities.
func (CourierDTO) TableName() string {
	return "couriers"
}

// GeoPointDTO represents the embedded WGS84 coordinates within the courier table.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

// fromDomain converts a courier domain aggregate to its database representation.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:      aggregate.ID().Bytes(),
		Name:    aggregate.Name(),
		Vehicle: int(aggregate.Vehicle()),
		Location: GeoPointDTO{
			Lat: aggregate.Location().Latitude(),
			Lng: aggregate.Location().Longitude(),
		},
		LocatedAt:        aggregate.LocatedAt(),
		Status:           int(aggregate.Status()),
		ShiftStartMinute: aggregate.WorkingHours().StartMinute(),
		ShiftEndMinute:   aggregate.WorkingHours().EndMinute(),
		MaxActiveOrders:  aggregate.MaxActiveOrders(),
		ActiveOrders:     aggregate.ActiveOrders(),
		Rating:           aggregate.Rating(),
		TotalDeliveries:  aggregate.TotalDeliveries(),
		TotalEarnings:    aggregate.TotalEarnings(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO to a courier domain aggregate.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	location, err := kernel.NewGeoPoint(dto.Location.Lat, dto.Location.Lng)
	if err != nil {
		return nil, err
	}

	workingHours, err := courier.NewWorkingHours(
		dto.ShiftStartMinute/60, dto.ShiftStartMinute%60,
		dto.ShiftEndMinute/60, dto.ShiftEndMinute%60,
	)
	if err != nil {
		return nil, err
	}

	return courier.RestoreCourier(
		id,
		dto.Name,
		courier.VehicleType(dto.Vehicle),
		location,
		dto.LocatedAt,
		courier.Status(dto.Status),
		workingHours,
		dto.MaxActiveOrders, dto.ActiveOrders,
		dto.Rating,
		dto.TotalDeliveries,
		dto.TotalEarnings,
		dto.Version,
	)
}
