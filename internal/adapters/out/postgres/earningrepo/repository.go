package earningrepo

import (
	"context"
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormEarningRepository implements EarningRepository using GORM.
type GormEarningRepository struct {
	db *gorm.DB
}

// NewGormEarningRepository creates a new GORM earning repository.
func NewGormEarningRepository(db *gorm.DB) *GormEarningRepository {
	return &GormEarningRepository{db: db}
}

// Add persists a new earning record. Payout fields are never updated.
func (r *GormEarningRepository) Add(ctx context.Context, earning courier.Earning) error {
	dto := fromDomain(earning)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetAllByCourier retrieves a courier's earning records, newest first.
func (r *GormEarningRepository) GetAllByCourier(
	ctx context.Context,
	courierID kernel.UUID,
) ([]courier.Earning, error) {
	if err := courierID.Validate(); err != nil {
		return nil, err
	}

	var dtos []EarningDTO
	if err := r.db.WithContext(ctx).
		Order("earned_at DESC").
		Find(&dtos, "courier_id = ?", courierID.Bytes()).Error; err != nil {
		return nil, err
	}

	earnings := make([]courier.Earning, 0, len(dtos))
	for _, dto := range dtos {
		earning, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		earnings = append(earnings, earning)
	}

	return earnings, nil
}

// GetAllUnpaid retrieves earning records not yet credited to a wallet,
// oldest first so the longest-waiting payout syncs first.
func (r *GormEarningRepository) GetAllUnpaid(ctx context.Context) ([]courier.Earning, error) {
	var dtos []EarningDTO
	if err := r.db.WithContext(ctx).
		Order("earned_at ASC").
		Find(&dtos, "NOT paid").Error; err != nil {
		return nil, err
	}

	earnings := make([]courier.Earning, 0, len(dtos))
	for _, dto := range dtos {
		earning, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		earnings = append(earnings, earning)
	}

	return earnings, nil
}

// MarkPaid flags a record as credited to the courier's wallet.
func (r *GormEarningRepository) MarkPaid(ctx context.Context, id kernel.UUID, at time.Time) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&EarningDTO{}).
		Where("id = ?", id.Bytes()).
		Updates(map[string]any{"paid": true, "paid_at": at})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("earning", id)
	}

	return nil
}
