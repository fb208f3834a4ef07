package orderrepo

import (
	"context"
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/order"
	"kurye/internal/core/ports"
	"kurye/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing order to the database. The write is guarded
// by the version the aggregate was loaded with: a row that moved on in
// the meantime is not touched and the caller gets ErrConcurrencyConflict.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("id", "Items").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrConcurrencyConflict
	}

	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllInStatus retrieves all orders currently in the given status.
func (r *GormOrderRepository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").Find(&dtos, "status = ?", int(status)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// CountByCustomer returns the number of non-cancelled orders the customer
// has placed.
func (r *GormOrderRepository) CountByCustomer(ctx context.Context, customerID kernel.UUID) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("customer_id = ? AND status <> ?", customerID.Bytes(), int(order.StatusCancelled)).
		Count(&count).Error
	return int(count), err
}

// CountByCustomerAndCampaign returns how many non-cancelled orders of the
// customer used the campaign.
func (r *GormOrderRepository) CountByCustomerAndCampaign(
	ctx context.Context,
	customerID, campaignID kernel.UUID,
) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("customer_id = ? AND campaign_id = ? AND status <> ?",
			customerID.Bytes(), campaignID.Bytes(), int(order.StatusCancelled)).
		Count(&count).Error
	return int(count), err
}

// CountByCustomerAndCoupon returns how many non-cancelled orders of the
// customer used the coupon.
func (r *GormOrderRepository) CountByCustomerAndCoupon(
	ctx context.Context,
	customerID, couponID kernel.UUID,
) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("customer_id = ? AND coupon_id = ? AND status <> ?",
			customerID.Bytes(), couponID.Bytes(), int(order.StatusCancelled)).
		Count(&count).Error
	return int(count), err
}
