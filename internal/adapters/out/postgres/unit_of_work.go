// Package postgres provides the GORM-based Unit of Work implementation.
// A unit of work owns one database transaction and hands out repositories
// bound to it, so a business operation commits or rolls back as a whole.
package postgres

import (
	"context"

	"kurye/internal/adapters/out/postgres/assignmentrepo"
	"kurye/internal/adapters/out/postgres/campaignrepo"
	"kurye/internal/adapters/out/postgres/courierrepo"
	"kurye/internal/adapters/out/postgres/earningrepo"
	"kurye/internal/adapters/out/postgres/orderrepo"
	"kurye/internal/adapters/out/postgres/productrepo"
	"kurye/internal/adapters/out/postgres/vendorrepo"
	"kurye/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one GORM
// connection pool. Each business operation gets a fresh instance with
// its own transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work
// instances. The connection must be opened with TranslateError so the
// assignment repository can recognize unique-index violations.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork coordinates one database transaction across the
// repositories it hands out. Before Begin, repositories run against the
// pool directly, which read-only callers rely on.
type GormUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin starts a new database transaction. Calling Begin again on an
// instance with an open transaction is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}

	uow.tx = tx
	return nil
}

// Commit finalizes the current transaction.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards the current transaction. Rolling back without an
// open transaction returns gorm.ErrInvalidTransaction, which deferred
// cleanup after a commit deliberately ignores.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an OrderRepository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.session())
}

// CourierRepository returns a CourierRepository bound to the current transaction.
func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.session())
}

// VendorRepository returns a VendorRepository bound to the current transaction.
func (uow *GormUnitOfWork) VendorRepository() ports.VendorRepository {
	return vendorrepo.NewGormVendorRepository(uow.session())
}

// AssignmentRepository returns an AssignmentRepository bound to the current transaction.
func (uow *GormUnitOfWork) AssignmentRepository() ports.AssignmentRepository {
	return assignmentrepo.NewGormAssignmentRepository(uow.session())
}

// EarningRepository returns an EarningRepository bound to the current transaction.
func (uow *GormUnitOfWork) EarningRepository() ports.EarningRepository {
	return earningrepo.NewGormEarningRepository(uow.session())
}

func (uow *GormUnitOfWork) session() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// Migrate creates or updates the schema for every table the module
// persists, including the partial unique index guarding single active
// assignment per order.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&courierrepo.CourierDTO{},
		&vendorrepo.VendorDTO{},
		&assignmentrepo.OrderCourierDTO{},
		&campaignrepo.CampaignDTO{},
		&campaignrepo.CouponDTO{},
		&earningrepo.EarningDTO{},
		&productrepo.ProductDTO{},
	); err != nil {
		return err
	}

	return db.Exec(assignmentrepo.ActiveOrderIndex).Error
}
