package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/ports"
	"kurye/internal/pkg/errs"
)

// CancelOrderCommandHandler cancels an order and unwinds its active
// assignment. The order state machine refuses cancellation once the
// courier is out for delivery or the order is terminal.
type CancelOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
	clock      ports.Clock
	logger     *slog.Logger
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.Notifier,
	clock ports.Clock,
	logger *slog.Logger,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
	}
}

// Handle processes the cancellation. A pending offer is withdrawn, an
// accepted delivery releases the courier's active slot.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ord, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = ord.Cancel(cmd.Reason(), now); err != nil {
		return err
	}

	record, err := uow.AssignmentRepository().GetActiveByOrder(ctx, ord.ID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		record = nil
	case err != nil:
		return err
	}

	if record != nil {
		if err = h.unwindAssignment(ctx, uow, record, now); err != nil {
			return err
		}
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderEvent(ctx, h.notifier, h.logger, ord.CustomerID(), ord.ID(), ports.EventOrderCancelled)
	if record != nil {
		notifyOrderEvent(ctx, h.notifier, h.logger, record.CourierID(), ord.ID(), ports.EventOrderCancelled)
	}
	return nil
}

// unwindAssignment cancels the active assignment and puts the courier
// back in rotation. A pending offer is withdrawn; an accepted one frees
// the courier's active slot.
func (h *CancelOrderCommandHandler) unwindAssignment(
	ctx context.Context,
	uow DispatchUoW,
	record *assignment.OrderCourier,
	now time.Time,
) error {
	assignee, err := uow.CourierRepository().Get(ctx, record.CourierID())
	if err != nil {
		return err
	}

	wasPending := record.Status() == assignment.StatusAssigned
	if err = record.Cancel(now); err != nil {
		return err
	}

	if wasPending {
		err = assignee.DeclineAssignment()
	} else {
		err = assignee.ReleaseActiveOrder()
	}
	if err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}
	return uow.CourierRepository().Update(ctx, assignee)
}
