// Package wallet credits courier earnings into a ledger table. The real
// wallet lives in another bounded context; this adapter stands in for it
// with the same idempotency contract: one credit per reference, ever.
package wallet

import (
	"context"
	"errors"
	"time"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CreditDTO represents one wallet credit row. ReferenceID carries the
// assignment the credit settles; the unique index makes retries no-ops.
type CreditDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CourierID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount      float64   `gorm:"not null"`
	ReferenceID string    `gorm:"type:varchar(64);not null;uniqueIndex"`
	CreditedAt  time.Time `gorm:"not null"`
}

// TableName specifies the database table name for wallet credits.
func (CreditDTO) TableName() string {
	return "wallet_credits"
}

// GormWalletService implements WalletService against the ledger table.
// Requires the connection to be opened with TranslateError.
type GormWalletService struct {
	db *gorm.DB
}

// NewGormWalletService creates a new GORM wallet service.
func NewGormWalletService(db *gorm.DB) *GormWalletService {
	return &GormWalletService{db: db}
}

// Migrate creates or updates the ledger schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&CreditDTO{})
}

// AddEarning credits amount to the courier's wallet. A reference that
// was already credited is silently accepted, so a replayed settlement
// never double-credits.
func (s *GormWalletService) AddEarning(
	ctx context.Context,
	courierID kernel.UUID,
	amount float64,
	referenceID string,
) error {
	if err := courierID.Validate(); err != nil {
		return err
	}
	if referenceID == "" {
		return errs.NewValueIsRequiredError("referenceID")
	}

	dto := CreditDTO{
		ID:          uuid.New(),
		CourierID:   courierID.Bytes(),
		Amount:      amount,
		ReferenceID: referenceID,
		CreditedAt:  time.Now().UTC(),
	}

	if err := s.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil
		}
		return err
	}

	return nil
}

// BalanceOf sums the courier's credited amounts. Used by back-office
// reconciliation and tests.
func (s *GormWalletService) BalanceOf(ctx context.Context, courierID kernel.UUID) (float64, error) {
	if err := courierID.Validate(); err != nil {
		return 0, err
	}

	var balance float64
	err := s.db.WithContext(ctx).Model(&CreditDTO{}).
		Where("courier_id = ?", courierID.Bytes()).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&balance).Error

	return balance, err
}
