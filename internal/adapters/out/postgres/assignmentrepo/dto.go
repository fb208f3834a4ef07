// Package assignmentrepo provides data transfer objects and mapping functions
// for order-courier assignment persistence. The table carries a partial
// unique index on (order_id) WHERE active, so the database itself refuses
// a second concurrent offer for the same order.
package assignmentrepo

import (
	"time"

	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// OrderCourierDTO represents the database structure for persisting
// assignment records.
type OrderCourierDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CourierID uuid.UUID `gorm:"type:uuid;not null;index"`

	Status       int    `gorm:"type:int;not null"`
	RejectReason string `gorm:"type:varchar(255)"`

	AssignedAt       time.Time  `gorm:"not null"`
	RespondedAt      *time.Time `gorm:""`
	PickedUpAt       *time.Time `gorm:""`
	OutForDeliveryAt *time.Time `gorm:""`
	DeliveredAt      *time.Time `gorm:""`
	CancelledAt      *time.Time `gorm:""`

	FeeBase          float64 `gorm:"not null"`
	FeeDistanceBonus float64 `gorm:"not null"`
	FeeVehicleBonus  float64 `gorm:"not null"`
	FeeTimeBonus     float64 `gorm:"not null"`
	FeeTotal         float64 `gorm:"not null"`
	Tip              float64 `gorm:"not null"`

	Active  bool `gorm:"not null"`
	Version int  `gorm:"not null"`
}

// TableName specifies the database table name for assignment entities.
func (OrderCourierDTO) TableName() string {
	return "order_couriers"
}

// fromDomain converts an assignment domain aggregate to its database representation.
func fromDomain(aggregate *assignment.OrderCourier) OrderCourierDTO {
	fee := aggregate.Fee()

	return OrderCourierDTO{
		ID:               aggregate.ID().Bytes(),
		OrderID:          aggregate.OrderID().Bytes(),
		CourierID:        aggregate.CourierID().Bytes(),
		Status:           int(aggregate.Status()),
		RejectReason:     aggregate.RejectReason(),
		AssignedAt:       aggregate.AssignedAt(),
		RespondedAt:      aggregate.RespondedAt(),
		PickedUpAt:       aggregate.PickedUpAt(),
		OutForDeliveryAt: aggregate.OutForDeliveryAt(),
		DeliveredAt:      aggregate.DeliveredAt(),
		CancelledAt:      aggregate.CancelledAt(),
		FeeBase:          fee.Base,
		FeeDistanceBonus: fee.DistanceBonus,
		FeeVehicleBonus:  fee.VehicleBonus,
		FeeTimeBonus:     fee.TimeBonus,
		FeeTotal:         fee.Total,
		Tip:              aggregate.Tip(),
		Active:           aggregate.IsActive(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate.
func toDomain(dto OrderCourierDTO) (*assignment.OrderCourier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	courierID, err := kernel.UUIDFromBytes(dto.CourierID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreOrderCourier(
		id, orderID, courierID,
		assignment.Status(dto.Status),
		dto.RejectReason,
		dto.AssignedAt,
		dto.RespondedAt, dto.PickedUpAt, dto.OutForDeliveryAt, dto.DeliveredAt, dto.CancelledAt,
		assignment.Fee{
			Base:          dto.FeeBase,
			DistanceBonus: dto.FeeDistanceBonus,
			VehicleBonus:  dto.FeeVehicleBonus,
			TimeBonus:     dto.FeeTimeBonus,
			Total:         dto.FeeTotal,
		},
		dto.Tip,
		dto.Active,
		dto.Version,
	)
}
