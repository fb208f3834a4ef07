package commands

import (
	"context"
	"log/slog"

	"kurye/internal/core/ports"
)

// StartDeliveryCommandHandler moves the assignment and the order onto
// the delivery leg together.
type StartDeliveryCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
	clock      ports.Clock
	logger     *slog.Logger
}

// NewStartDeliveryCommandHandler creates a handler for starting deliveries.
func NewStartDeliveryCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.Notifier,
	clock ports.Clock,
	logger *slog.Logger,
) StartDeliveryCommandHandler {
	return StartDeliveryCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
	}
}

// Handle processes the start of the delivery leg.
func (h *StartDeliveryCommandHandler) Handle(ctx context.Context, cmd StartDeliveryCommand) error {
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

	now := h.clock.Now()
	if err = record.StartDelivery(now); err != nil {
		return err
	}
	if err = ord.StartDelivery(now); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderEvent(ctx, h.notifier, h.logger, ord.CustomerID(), ord.ID(), ports.EventOrderOutForDelivery)
	return nil
}
