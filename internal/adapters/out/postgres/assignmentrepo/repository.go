package assignmentrepo

import (
	"context"
	"errors"

	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"
	"kurye/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActiveOrderIndex is the partial unique index enforcing at most one
// active assignment per order. Created alongside AutoMigrate since GORM
// cannot express partial indexes through tags.
const ActiveOrderIndex = `
	CREATE UNIQUE INDEX IF NOT EXISTS idx_order_couriers_active_order
	ON order_couriers (order_id) WHERE active
`

// GormAssignmentRepository implements AssignmentRepository using GORM.
// Requires the connection to be opened with TranslateError so unique
// violations surface as gorm.ErrDuplicatedKey.
type GormAssignmentRepository struct {
	db *gorm.DB
}

// NewGormAssignmentRepository creates a new GORM assignment repository.
func NewGormAssignmentRepository(db *gorm.DB) *GormAssignmentRepository {
	return &GormAssignmentRepository{db: db}
}

// Add saves a new assignment record. Two dispatchers offering the same
// order trip the partial unique index; the loser gets
// ErrConcurrencyConflict and retries against fresh state.
func (r *GormAssignmentRepository) Add(ctx context.Context, aggregate *assignment.OrderCourier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ports.ErrConcurrencyConflict
		}
		return err
	}

	return nil
}

// Update saves an existing assignment record. Guarded by the loaded
// version; a lost race returns ErrConcurrencyConflict.
func (r *GormAssignmentRepository) Update(ctx context.Context, aggregate *assignment.OrderCourier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).Model(&OrderCourierDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ports.ErrConcurrencyConflict
	}

	return nil
}

// Get retrieves an assignment record by ID.
func (r *GormAssignmentRepository) Get(ctx context.Context, id kernel.UUID) (*assignment.OrderCourier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderCourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("assignment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetActiveByOrder retrieves the order's single active assignment.
func (r *GormAssignmentRepository) GetActiveByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) (*assignment.OrderCourier, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderCourierDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "order_id = ? AND active", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("active assignment", orderID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOrder retrieves the order's full assignment history, oldest first.
func (r *GormAssignmentRepository) GetAllByOrder(
	ctx context.Context,
	orderID kernel.UUID,
) ([]*assignment.OrderCourier, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderCourierDTO
	if err := r.db.WithContext(ctx).
		Order("assigned_at").
		Find(&dtos, "order_id = ?", orderID.Bytes()).Error; err != nil {
		return nil, err
	}

	records := make([]*assignment.OrderCourier, 0, len(dtos))
	for _, dto := range dtos {
		record, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// GetRejectedCourierIDs lists couriers that already rejected the order.
func (r *GormAssignmentRepository) GetRejectedCourierIDs(
	ctx context.Context,
	orderID kernel.UUID,
) ([]kernel.UUID, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).Model(&OrderCourierDTO{}).
		Where("order_id = ? AND status = ?", orderID.Bytes(), int(assignment.StatusRejected)).
		Pluck("courier_id", &raw).Error; err != nil {
		return nil, err
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, column := range raw {
		id, err := kernel.UUIDFromBytes(column[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}
