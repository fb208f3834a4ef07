// Package earningrepo provides data transfer objects and mapping functions
// for the append-only courier earning ledger.
package earningrepo

import (
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// EarningDTO represents the database structure for persisting earning records.
type EarningDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	OrderID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AssignmentID uuid.UUID `gorm:"type:uuid;not null"`

	BaseFee       float64 `gorm:"not null"`
	DistanceBonus float64 `gorm:"not null"`
	VehicleBonus  float64 `gorm:"not null"`
	TimeBonus     float64 `gorm:"not null"`
	Tip           float64 `gorm:"not null"`
	Total         float64 `gorm:"not null"`

	EarnedAt time.Time `gorm:"not null;index"`

	Paid   bool `gorm:"not null;index"`
	PaidAt *time.Time
}

// TableName specifies the database table name for earning entities.
func (EarningDTO) TableName() string {
	return "earnings"
}

// fromDomain converts an earning record to its database representation.
func fromDomain(earning courier.Earning) EarningDTO {
	return EarningDTO{
		ID:            earning.ID.Bytes(),
		CourierID:     earning.CourierID.Bytes(),
		OrderID:       earning.OrderID.Bytes(),
		AssignmentID:  earning.AssignmentID.Bytes(),
		BaseFee:       earning.BaseFee,
		DistanceBonus: earning.DistanceBonus,
		VehicleBonus:  earning.VehicleBonus,
		TimeBonus:     earning.TimeBonus,
		Tip:           earning.Tip,
		Total:         earning.Total,
		EarnedAt:      earning.EarnedAt,
		Paid:          earning.Paid,
		PaidAt:        earning.PaidAt,
	}
}

// toDomain converts a database DTO to an earning record.
func toDomain(dto EarningDTO) (courier.Earning, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return courier.Earning{}, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return courier.Earning{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return courier.Earning{}, err
	}
	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return courier.Earning{}, err
	}

	return courier.Earning{
		ID:            id,
		CourierID:     courierID,
		OrderID:       orderID,
		AssignmentID:  assignmentID,
		BaseFee:       dto.BaseFee,
		DistanceBonus: dto.DistanceBonus,
		VehicleBonus:  dto.VehicleBonus,
		TimeBonus:     dto.TimeBonus,
		Tip:           dto.Tip,
		Total:         dto.Total,
		EarnedAt:      dto.EarnedAt,
		Paid:          dto.Paid,
		PaidAt:        dto.PaidAt,
	}, nil
}
