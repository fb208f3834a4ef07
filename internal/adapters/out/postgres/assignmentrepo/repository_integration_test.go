package assignmentrepo_test

import (
	"context"
	"testing"
	"time"

	"kurye/internal/adapters/out/postgres"
	"kurye/internal/adapters/out/postgres/assignmentrepo"
	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/ports"
	"kurye/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type AssignmentRepositoryTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	repo      *assignmentrepo.GormAssignmentRepository
}

func (suite *AssignmentRepositoryTestSuite) SetupSuite() {
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

	suite.repo = assignmentrepo.NewGormAssignmentRepository(db)
}

func (suite *AssignmentRepositoryTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *AssignmentRepositoryTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_couriers").Error
	suite.Require().NoError(err)
}

func (suite *AssignmentRepositoryTestSuite) TestAddAndGet_RoundTripsRecord() {
	record := suite.newOffer(kernel.NewUUID())

	err := suite.repo.Add(context.Background(), record)
	suite.Require().NoError(err)

	loaded, err := suite.repo.Get(context.Background(), record.ID())
	suite.Require().NoError(err)

	suite.Equal(record.OrderID(), loaded.OrderID())
	suite.Equal(record.CourierID(), loaded.CourierID())
	suite.Equal(assignment.StatusAssigned, loaded.Status())
	suite.InDelta(30.0, loaded.Fee().Total, 0.001)
	suite.True(loaded.IsActive())
	suite.Equal(0, loaded.Version())
}

func (suite *AssignmentRepositoryTestSuite) TestAdd_SecondActiveOfferForOrder_ReturnsConflict() {
	orderID := kernel.NewUUID()

	first := suite.newOffer(orderID)
	suite.Require().NoError(suite.repo.Add(context.Background(), first))

	second := suite.newOffer(orderID)
	err := suite.repo.Add(context.Background(), second)

	suite.Require().Error(err)
	suite.ErrorIs(err, ports.ErrConcurrencyConflict)
}

func (suite *AssignmentRepositoryTestSuite) TestAdd_AfterRejection_AllowsNewOffer() {
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	first := suite.newOffer(orderID)
	suite.Require().NoError(suite.repo.Add(context.Background(), first))

	suite.Require().NoError(first.Reject("too far", now))
	suite.Require().NoError(suite.repo.Update(context.Background(), first))

	second := suite.newOffer(orderID)
	err := suite.repo.Add(context.Background(), second)

	suite.Require().NoError(err)
}

func (suite *AssignmentRepositoryTestSuite) TestUpdate_StaleVersion_ReturnsConflict() {
	record := suite.newOffer(kernel.NewUUID())
	suite.Require().NoError(suite.repo.Add(context.Background(), record))

	now := time.Now().UTC()

	first, err := suite.repo.Get(context.Background(), record.ID())
	suite.Require().NoError(err)
	second, err := suite.repo.Get(context.Background(), record.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(first.Accept(now))
	suite.Require().NoError(suite.repo.Update(context.Background(), first))

	suite.Require().NoError(second.Reject("took another order", now))
	err = suite.repo.Update(context.Background(), second)

	suite.Require().Error(err)
	suite.ErrorIs(err, ports.ErrConcurrencyConflict)
}

func (suite *AssignmentRepositoryTestSuite) TestGetActiveByOrder_IgnoresSettledRecords() {
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	rejected := suite.newOffer(orderID)
	suite.Require().NoError(suite.repo.Add(context.Background(), rejected))
	suite.Require().NoError(rejected.Reject("too far", now))
	suite.Require().NoError(suite.repo.Update(context.Background(), rejected))

	current := suite.newOffer(orderID)
	suite.Require().NoError(suite.repo.Add(context.Background(), current))

	active, err := suite.repo.GetActiveByOrder(context.Background(), orderID)
	suite.Require().NoError(err)
	suite.Equal(current.ID(), active.ID())

	_, err = suite.repo.GetActiveByOrder(context.Background(), kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *AssignmentRepositoryTestSuite) TestGetRejectedCourierIDs_ListsOnlyRejections() {
	orderID := kernel.NewUUID()
	now := time.Now().UTC()

	rejected := suite.newOffer(orderID)
	suite.Require().NoError(suite.repo.Add(context.Background(), rejected))
	suite.Require().NoError(rejected.Reject("too far", now))
	suite.Require().NoError(suite.repo.Update(context.Background(), rejected))

	current := suite.newOffer(orderID)
	suite.Require().NoError(suite.repo.Add(context.Background(), current))

	ids, err := suite.repo.GetRejectedCourierIDs(context.Background(), orderID)
	suite.Require().NoError(err)

	suite.Len(ids, 1)
	suite.Equal(rejected.CourierID(), ids[0])
}

func (suite *AssignmentRepositoryTestSuite) newOffer(orderID kernel.UUID) *assignment.OrderCourier {
	record, err := assignment.NewOrderCourier(
		kernel.NewUUID(), orderID, kernel.NewUUID(),
		assignment.Fee{Base: 15, DistanceBonus: 10, VehicleBonus: 5, Total: 30},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	return record
}

func TestAssignmentRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(AssignmentRepositoryTestSuite))
}
