package earningrepo_test

import (
	"context"
	"testing"
	"time"

	"kurye/internal/adapters/out/postgres"
	"kurye/internal/adapters/out/postgres/earningrepo"
	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type EarningRepositoryTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	repo      *earningrepo.GormEarningRepository
}

func (suite *EarningRepositoryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))

	suite.repo = earningrepo.NewGormEarningRepository(db)
}

func (suite *EarningRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *EarningRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE earnings").Error
	suite.Require().NoError(err)
}

func (suite *EarningRepositoryTestSuite) TestAddAndGetAllByCourier_NewestFirst() {
	courierID := kernel.NewUUID()
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	older := suite.newEarning(courierID, 30, base)
	newer := suite.newEarning(courierID, 45, base.Add(time.Hour))
	suite.Require().NoError(suite.repo.Add(context.Background(), older))
	suite.Require().NoError(suite.repo.Add(context.Background(), newer))

	earnings, err := suite.repo.GetAllByCourier(context.Background(), courierID)
	suite.Require().NoError(err)

	suite.Require().Len(earnings, 2)
	suite.Equal(newer.ID, earnings[0].ID)
	suite.Equal(older.ID, earnings[1].ID)
	suite.Equal(newer.AssignmentID, earnings[0].AssignmentID)
	suite.False(earnings[0].Paid)
	suite.Nil(earnings[0].PaidAt)
}

func (suite *EarningRepositoryTestSuite) TestGetAllUnpaid_OldestFirstAndSkipsPaid() {
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	newer := suite.newEarning(kernel.NewUUID(), 45, base.Add(time.Hour))
	older := suite.newEarning(kernel.NewUUID(), 30, base)
	settled := suite.newEarning(kernel.NewUUID(), 60, base.Add(2*time.Hour))
	suite.Require().NoError(suite.repo.Add(context.Background(), newer))
	suite.Require().NoError(suite.repo.Add(context.Background(), older))
	suite.Require().NoError(suite.repo.Add(context.Background(), settled))

	paidAt := base.Add(3 * time.Hour)
	suite.Require().NoError(suite.repo.MarkPaid(context.Background(), settled.ID, paidAt))

	unpaid, err := suite.repo.GetAllUnpaid(context.Background())
	suite.Require().NoError(err)

	suite.Require().Len(unpaid, 2)
	suite.Equal(older.ID, unpaid[0].ID)
	suite.Equal(newer.ID, unpaid[1].ID)
}

func (suite *EarningRepositoryTestSuite) TestMarkPaid_SetsFlagAndTimestamp() {
	courierID := kernel.NewUUID()
	base := time.Date(2025, 3, 10, 14, 0, 0, 0, time.UTC)

	earning := suite.newEarning(courierID, 30, base)
	suite.Require().NoError(suite.repo.Add(context.Background(), earning))

	paidAt := base.Add(time.Minute)
	err := suite.repo.MarkPaid(context.Background(), earning.ID, paidAt)
	suite.Require().NoError(err)

	earnings, err := suite.repo.GetAllByCourier(context.Background(), courierID)
	suite.Require().NoError(err)

	suite.Require().Len(earnings, 1)
	suite.True(earnings[0].Paid)
	suite.Require().NotNil(earnings[0].PaidAt)
	suite.WithinDuration(paidAt, *earnings[0].PaidAt, time.Second)
}

func (suite *EarningRepositoryTestSuite) TestMarkPaid_UnknownID_ReturnsNotFound() {
	err := suite.repo.MarkPaid(context.Background(), kernel.NewUUID(), time.Now().UTC())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *EarningRepositoryTestSuite) newEarning(
	courierID kernel.UUID,
	total float64,
	earnedAt time.Time,
) courier.Earning {
	return courier.Earning{
		ID:            kernel.NewUUID(),
		CourierID:     courierID,
		OrderID:       kernel.NewUUID(),
		AssignmentID:  kernel.NewUUID(),
		BaseFee:       15,
		DistanceBonus: 10,
		VehicleBonus:  5,
		Total:         total,
		EarnedAt:      earnedAt,
	}
}

func TestEarningRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(EarningRepositoryTestSuite))
}
