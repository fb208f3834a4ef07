package commands_test

import (
	"context"
	"log/slog"
	"testing"

	"kurye/internal/core/application/usecases/commands"
	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/order"
	"kurye/internal/core/ports"
	"kurye/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_NoAssignment(t *testing.T) {
	ctx := context.Background()

	v := newTestVendor(t)
	ready := newReadyOrder(t, v, testPoint(t, 41.02, 28.99))

	cmd, err := commands.NewCancelOrderCommand(ready.ID(), "customer changed mind")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, ready.ID()).Return(ready, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	assignmentRepo := new(MockAssignmentRepository)
	assignmentRepo.On("GetActiveByOrder", ctx, ready.ID()).
		Return(nil, errs.ErrObjectNotFound).Once()

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.MatchedBy(func(event ports.OrderEvent) bool {
		return event.Event == ports.EventOrderCancelled
	})).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, notifier, fixedClock{now: testNow}, slog.Default())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, ready.Status())
	assert.Equal(t, "customer changed mind", ready.CancelReason())
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_WithPendingOffer(t *testing.T) {
	ctx := context.Background()

	v := newTestVendor(t)
	ord, assignee, record := newAssignedPair(t, v, testPoint(t, 41.02, 28.99))

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), "vendor closed")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()
	orderRepo.On("Update", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	assignmentRepo := new(MockAssignmentRepository)
	assignmentRepo.On("GetActiveByOrder", ctx, ord.ID()).Return(record, nil).Once()
	assignmentRepo.On("Update", ctx, mock.AnythingOfType("*assignment.OrderCourier")).Return(nil).Once()

	courierRepo := new(MockCourierRepository)
	courierRepo.On("Get", ctx, assignee.ID()).Return(assignee, nil).Once()
	courierRepo.On("Update", ctx, mock.AnythingOfType("*courier.Courier")).Return(nil).Once()

	// Both the customer and the courier hear about the cancellation.
	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, mock.MatchedBy(func(event ports.OrderEvent) bool {
		return event.Event == ports.EventOrderCancelled
	})).Return(nil).Twice()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("AssignmentRepository").Return(assignmentRepo)
	uow.On("CourierRepository").Return(courierRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, notifier, fixedClock{now: testNow}, slog.Default())
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.StatusCancelled, ord.Status())
	assert.Equal(t, assignment.StatusCancelled, record.Status())
	assert.False(t, record.IsActive())
	assert.Equal(t, courier.StatusAvailable, assignee.Status())
	notifier.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_OutForDeliveryRefused(t *testing.T) {
	ctx := context.Background()

	v := newTestVendor(t)
	ord, _, _ := outForDeliveryPair(t, v)

	cmd, err := commands.NewCancelOrderCommand(ord.ID(), "too late")
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	orderRepo.On("Get", ctx, ord.ID()).Return(ord, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockDispatchUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCancelOrderCommandHandler(factory, new(MockNotifier), fixedClock{now: testNow}, slog.Default())
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, order.StatusOutForDelivery, ord.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
