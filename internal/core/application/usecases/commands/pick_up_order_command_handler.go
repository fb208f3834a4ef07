package commands

import (
	"context"
	"log/slog"

	"kurye/internal/core/ports"
)

// PickUpOrderCommandHandler records the pickup on the assignment. The
// order itself stays accepted until the courier starts the delivery leg.
type PickUpOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
	clock      ports.Clock
	logger     *slog.Logger
}

// NewPickUpOrderCommandHandler creates a handler for order pickup.
func NewPickUpOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.Notifier,
	clock ports.Clock,
	logger *slog.Logger,
) PickUpOrderCommandHandler {
	return PickUpOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
	}
}

// Handle processes the pickup.
func (h *PickUpOrderCommandHandler) Handle(ctx context.Context, cmd PickUpOrderCommand) error {
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

	record, err := uow.AssignmentRepository().Get(ctx, cmd.AssignmentID())
	if err != nil {
		return err
	}

	ord, err := uow.OrderRepository().Get(ctx, record.OrderID())
	if err != nil {
		return err
	}

	if err = record.PickUp(h.clock.Now()); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderEvent(ctx, h.notifier, h.logger, ord.CustomerID(), ord.ID(), ports.EventOrderPickedUp)
	return nil
}
