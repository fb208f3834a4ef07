package commands

import (
	"context"
	"log/slog"

	"kurye/internal/core/ports"
)

// RejectOrderCommandHandler processes a courier's rejection of an offer.
// The assignment record becomes terminal, the order returns to "ready"
// so the next sweep re-dispatches it, and the courier goes back into
// rotation.
type RejectOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	notifier   ports.Notifier
	clock      ports.Clock
	logger     *slog.Logger
}

// NewRejectOrderCommandHandler creates a handler for offer rejection.
func NewRejectOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	notifier ports.Notifier,
	clock ports.Clock,
	logger *slog.Logger,
) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		notifier:   notifier,
		clock:      clock,
		logger:     logger,
	}
}

// Handle processes the rejection. Racing against an accept on the same
// offer is settled by the version checks: whichever response commits
// first wins and the loser's transaction rolls back.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
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

	rejecting, err := uow.CourierRepository().Get(ctx, record.CourierID())
	if err != nil {
		return err
	}

	now := h.clock.Now()
	if err = record.Reject(cmd.Reason(), now); err != nil {
		return err
	}
	if err = ord.ResetToReady(now); err != nil {
		return err
	}
	if err = rejecting.DeclineAssignment(); err != nil {
		return err
	}

	if err = uow.AssignmentRepository().Update(ctx, record); err != nil {
		return err
	}
	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.CourierRepository().Update(ctx, rejecting); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderEvent(ctx, h.notifier, h.logger, ord.CustomerID(), ord.ID(), ports.EventOrderRejected)
	return nil
}
