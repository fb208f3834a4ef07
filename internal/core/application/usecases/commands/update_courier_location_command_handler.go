package commands

import (
	"context"

	"kurye/internal/core/ports"
)

// UpdateCourierLocationCommandHandler stores a courier's position
// report. Reports arrive at high frequency; a lost optimistic race with
// a dispatch transaction is retried so the freshness window stays
// honest.
type UpdateCourierLocationCommandHandler struct {
	uowFactory CourierUoWFactory
	clock      ports.Clock
}

// NewUpdateCourierLocationCommandHandler creates a handler for position reports.
func NewUpdateCourierLocationCommandHandler(uowFactory CourierUoWFactory, clock ports.Clock) UpdateCourierLocationCommandHandler {
	return UpdateCourierLocationCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the position report.
func (h *UpdateCourierLocationCommandHandler) Handle(ctx context.Context, cmd UpdateCourierLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withConflictRetry(func() error {
		return h.handleOnce(ctx, cmd)
	})
}

func (h *UpdateCourierLocationCommandHandler) handleOnce(ctx context.Context, cmd UpdateCourierLocationCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	reporting, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if err = reporting.UpdateLocation(cmd.Location(), h.clock.Now()); err != nil {
		return err
	}

	if err = uow.CourierRepository().Update(ctx, reporting); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
