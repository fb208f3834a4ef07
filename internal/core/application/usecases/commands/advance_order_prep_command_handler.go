package commands

import (
	"context"

	"kurye/internal/core/ports"
)

// AdvanceOrderPrepCommandHandler applies a vendor's prep progress to the
// order. Marking an order ready is what makes the next dispatch sweep
// pick it up.
type AdvanceOrderPrepCommandHandler struct {
	uowFactory OrderUoWFactory
	clock      ports.Clock
}

// NewAdvanceOrderPrepCommandHandler creates a handler for prep progress.
func NewAdvanceOrderPrepCommandHandler(uowFactory OrderUoWFactory, clock ports.Clock) AdvanceOrderPrepCommandHandler {
	return AdvanceOrderPrepCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the prep report.
func (h *AdvanceOrderPrepCommandHandler) Handle(ctx context.Context, cmd AdvanceOrderPrepCommand) error {
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
	switch cmd.Action() {
	case PrepStart:
		err = ord.StartPreparing(now)
	case PrepReady:
		err = ord.MarkReady(now)
	default:
		err = ErrPrepActionIsInvalid
	}
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
