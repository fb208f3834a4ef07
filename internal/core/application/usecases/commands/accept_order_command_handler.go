package commands

import (
	"context"
	"log/slog"

	"kurye/internal/core/ports"
)

// AcceptOrderCommandHandler converts a pending offer into an active
// delivery. The assignment record, the order and the courier move
// together in one transaction; every update is version-checked, so when
// two responses race on the same offer exactly one commits.
//
// Example:
//
//	handler := NewAcceptOrderCommandHandler(uowFactory, notifier, clock, logger)
//	cmd, _ := NewAcceptOrderCommand(assignmentID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("accept failed: %v", err)
//	}
type AcceptOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
	clock      ports.Clock
	logger     *slog.Logger
}

// NewAcceptOrderCommandHandler creates a handler for offer acceptance.
func NewAcceptOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.Notifier,
	clock ports.Clock,
	logger *slog.Logger,
) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
	}
}

// Handle processes the acceptance. A second acceptance of the same offer
// fails in the assignment state machine after the first one committed.
// Version conflicts against unrelated writers are retried on fresh
// state; losing an accept race surfaces as a state transition error on
// the retry.
func (h *AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withConflictRetry(func() error {
		return h.accept(ctx, cmd)
	})
}

func (h *AcceptOrderCommandHandler) accept(ctx context.Context, cmd AcceptOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	record, err := uow.AssignmentRepository().Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, record.OrderID())
	if err != nil {
		return err
	}

	accepting, err := uow.CourierRepository().Get(ctx, record.CourierID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = record.Accept(now); err != nil {
		return err
	}
	if err = ord.Accept(now); err != nil {
		return err
	}
	if err = accepting.AcceptActiveOrder(); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.CourierRepository().Update(ctx, accepting); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderEvent(ctx, h.notifier, h.logger, ord.CustomerID(), ord.ID(), ports.EventOrderAccepted)
	return nil
}
