package commands_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"kurye/internal/core/application/usecases/commands"
	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/order"
	"kurye/internal/core/domain/model/vendor"
	"kurye/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// outForDeliveryPair drives an assigned pair all the way to the
// delivery leg.
func outForDeliveryPair(t *testing.T, v *vendor.Vendor) (
	*order.Order, *courier.Courier, *assignment.OrderCourier,
) {
	t.Helper()
	ord, assignee, record := newAssignedPair(t, v, testPoint(t, 41.02, 28.99))
	require.NoError(t, record.Accept(testNow))
	require.NoError(t, ord.Accept(testNow))
	require.NoError(t, assignee.AcceptActiveOrder())
	require.NoError(t, record.PickUp(testNow))
	require.NoError(t, record.StartDelivery(testNow))
	require.NoError(t, ord.StartDelivery(testNow))
	return ord, assignee, record
}

func TestDeliverOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := context.Background()

	v := newTestVendor(t)
	ord, assignee, record := outForDeliveryPair(t, v)

	cmd, err := commands.NewDeliverOrderCommand(record.ID(), 7.5)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	assignmentRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()
	assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.OrderCourier")).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once()
	courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once()

	earningRepo := new(MockEarningRepository)
	var earned courier.Earning
	earningRepo.On("Add", ctx, mock.AnythingOfType("courier.Earning")).
		Run(func(args mock.Arguments) {
			earned = args.Get(1).(courier.Earning)
		}).
		Return(nil).Once()
	earningRepo.On("MarkPaid", ctx, mock.AnythingOfType("kernel.UUID"), testNow).Return(nil).Once()

	wallet := new(MockWalletService)
	wallet.On("AddEarning", ctx, assignee.ID(), 37.5, record.ID().String()).Return(nil).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.MatchedBy(func(event ports.OrderEvent) bool {
		return event.Event == ports.EventOrderDelivered
	})).Return(nil).Once()

	// Settlement commits first; the paid flag is flipped in a second
	// short transaction once the wallet credit lands.
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Twice()
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("EarningRepository").Return(earningRepo)
	uow.On("Commit", ctx).Return(nil).Twice()
	uow.On("Rollback", ctx).Return(nil).Twice()

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Twice()

	handler := commands.NewDeliverOrderCommandHandler(
		factory, wallet, notifier, fixedClock{now: testNow}, slog.Default(),
	)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)

	assert.Equal(t, assignment.StatusDelivered, record.Status())
	assert.Equal(t, order.StatusDelivered, ord.Status())
	assert.Equal(t, courier.StatusAvailable, assignee.Status())
	assert.Equal(t, 1, assignee.TotalDeliveries())
	assert.InDelta(t, 37.5, assignee.TotalEarnings(), 0.001)

	// The earning record carries the fee breakdown frozen at offer time
	// and enters the ledger unpaid.
	assert.Equal(t, ord.ID(), earned.OrderID)
	assert.Equal(t, record.ID(), earned.AssignmentID)
	assert.False(t, earned.Paid)
	assert.InDelta(t, 15.0, earned.BaseFee, 0.001)
	assert.InDelta(t, 10.0, earned.DistanceBonus, 0.001)
	assert.InDelta(t, 5.0, earned.VehicleBonus, 0.001)
	assert.InDelta(t, 7.5, earned.Tip, 0.001)
	assert.InDelta(t, 37.5, earned.Total, 0.001)

	wallet.AssertExpectations(t)
	earningRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeliverOrderCommandHandler_Handle_WalletFailureDoesNotFail(t *testing.T) {
	ctx := context.Background()

	v := newTestVendor(t)
	ord, assignee, record := outForDeliveryPair(t, v)

	cmd, err := commands.NewDeliverOrderCommand(record.ID(), 0)
	require.NoError(t, err)

	assignmentRepo := new(MockAssignmentRepository)
	assignmentRepo.On("Get", ctx, record.ID()).Return(record, nil).Once()
	assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.OrderCourier")).Return(nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once()
	courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once()

	earningRepo := new(MockEarningRepository)
	earningRepo.On("Add", ctx, mock.AnythingOfType("courier.Earning")).Return(nil).Once()

	// The failed credit leaves the record unpaid for the earning sync
	// sweep; the committed settlement must not be reported as failed.
	wallet := new(MockWalletService)
	wallet.On("AddEarning", ctx, assignee.ID(), 30.0, record.ID().String()).
		Return(errors.New("wallet unreachable")).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.AnythingOfType("ports.OrderEvent")).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("EarningRepository").Return(earningRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockSettlementUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewDeliverOrderCommandHandler(
		factory, wallet, notifier, fixedClock{now: testNow}, slog.Default(),
	)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	wallet.AssertExpectations(t)
	earningRepo.AssertNotCalled(t, "MarkPaid", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeliverOrderCommandHandler_Handle_NegativeTip(t *testing.T) {
	_, err := commands.NewDeliverOrderCommand(kernel.NewUUID(), -1)
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrTipIsInvalid)
}
