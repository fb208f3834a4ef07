// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The status history lives in a jsonb column: it is an append-only audit
// trail that is always read and written with the whole aggregate.
type OrderDTO struct {
	ID         uuid.UUID   `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID   `gorm:"type:uuid;not null;index"`
	VendorID   uuid.UUID   `gorm:"type:uuid;not null;index"`
	Address    GeoPointDTO `gorm:"embedded;embeddedPrefix:address_"`

	Items   []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Status  int            `gorm:"type:int;not null;index"`
	History HistoryJSON    `gorm:"type:jsonb"`

	CancelReason   string `gorm:"type:varchar(255)"`
	DeliveryFee    float64
	DiscountAmount float64
	TotalAmount    float64
	CampaignID     *uuid.UUID `gorm:"type:uuid;index"`
	CouponID       *uuid.UUID `gorm:"type:uuid;index"`

	Version int `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// GeoPointDTO represents embedded WGS84 coordinates within a table.
type GeoPointDTO struct {
	Lat float64 `gorm:"type:double precision;not null"`
	Lng float64 `gorm:"type:double precision;not null"`
}

// OrderItemDTO represents one order line. Lines are immutable once the
// order is placed, so they are only ever inserted alongside the order.
type OrderItemDTO struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID  uuid.UUID `gorm:"type:uuid;not null"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null"`
	UnitPrice  float64   `gorm:"not null"`
	Quantity   int       `gorm:"not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// statusChangeJSON is the jsonb shape for one lifecycle transition.
type statusChangeJSON struct {
	From int       `json:"from"`
	To   int       `json:"to"`
	At   time.Time `json:"at"`
}

// HistoryJSON stores the order's status history as a jsonb document.
type HistoryJSON []statusChangeJSON

// Value serializes the history for storage.
func (h HistoryJSON) Value() (driver.Value, error) {
	if h == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(h)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

// Scan deserializes the history from storage.
func (h *HistoryJSON) Scan(value any) error {
	if value == nil {
		*h = nil
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported history column type %T", value)
	}

	return json.Unmarshal(raw, h)
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()

	items := make([]OrderItemDTO, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			OrderID:    orderID,
			ProductID:  item.ProductID().Bytes(),
			CategoryID: item.CategoryID().Bytes(),
			UnitPrice:  item.UnitPrice(),
			Quantity:   item.Quantity(),
		})
	}

	history := make(HistoryJSON, 0, len(aggregate.History()))
	for _, change := range aggregate.History() {
		history = append(history, statusChangeJSON{
			From: int(change.From),
			To:   int(change.To),
			At:   change.At,
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
		VendorID:   aggregate.VendorID().Bytes(),
		Address: GeoPointDTO{
			Lat: aggregate.DeliveryAddress().Latitude(),
			Lng: aggregate.DeliveryAddress().Longitude(),
		},
		Items:          items,
		Status:         int(aggregate.Status()),
		History:        history,
		CancelReason:   aggregate.CancelReason(),
		DeliveryFee:    aggregate.DeliveryFee(),
		DiscountAmount: aggregate.DiscountAmount(),
		TotalAmount:    aggregate.TotalAmount(),
		CampaignID:     optionalUUID(aggregate.CampaignID()),
		CouponID:       optionalUUID(aggregate.CouponID()),
		Version:        aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including lines and status history
// using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewGeoPoint(dto.Address.Lat, dto.Address.Lng)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	history := make([]order.StatusChange, 0, len(dto.History))
	for _, change := range dto.History {
		history = append(history, order.StatusChange{
			From: order.Status(change.From),
			To:   order.Status(change.To),
			At:   change.At,
		})
	}

	campaignID, err := optionalKernelUUID(dto.CampaignID)
	if err != nil {
		return nil, err
	}
	couponID, err := optionalKernelUUID(dto.CouponID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id, customerID, vendorID,
		address,
		items,
		order.Status(dto.Status),
		history,
		dto.CancelReason,
		dto.DeliveryFee, dto.DiscountAmount, dto.TotalAmount,
		campaignID, couponID,
		dto.Version,
	)
}

// itemToDomain converts an order line DTO to its domain value object.
func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return order.Item{}, err
	}
	categoryID, err := kernel.UUIDFromBytes(dto.CategoryID[:])
	if err != nil {
		return order.Item{}, err
	}

	return order.NewItem(productID, categoryID, dto.UnitPrice, dto.Quantity)
}

func optionalUUID(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalKernelUUID(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	parsed, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
