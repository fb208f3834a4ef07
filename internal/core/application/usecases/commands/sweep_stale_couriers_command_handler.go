package commands

import (
	"context"
	"log/slog"
	"time"

	"kurye/internal/core/ports"
)

// staleLocationCutoff is how long a courier may go without a position
// report before the sweep takes them out of rotation. Matches the
// freshness window dispatch uses, with slack for one missed report.
const staleLocationCutoff = 10 * time.Minute

// SweepStaleCouriersCommandHandler takes couriers with silent location
// feeds offline. A courier mid-delivery is left alone: the sweep only
// ends shifts that dispatch can no longer use.
type SweepStaleCouriersCommandHandler struct {
	uowFactory CourierUoWFactory
	clock      ports.Clock
	logger     *slog.Logger
}

// NewSweepStaleCouriersCommandHandler creates a handler for stale sweeps.
func NewSweepStaleCouriersCommandHandler(
	uowFactory CourierUoWFactory,
	clock ports.Clock,
	logger *slog.Logger,
) SweepStaleCouriersCommandHandler {
	return SweepStaleCouriersCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
		logger:     logger,
	}
}

// Handle runs one sweep. Couriers that cannot go offline, because they
// still carry orders or hold a pending offer, are logged and skipped.
func (h *SweepStaleCouriersCommandHandler) Handle(ctx context.Context, cmd SweepStaleCouriersCommand) error {
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

	cutoff := h.clock.Now().Add(-staleLocationCutoff)
	stale, err := uow.CourierRepository().GetAllWithStaleLocation(ctx, cutoff)
	if err != nil {
		return err
	}
	if len(stale) == 0 {
		return nil
	}

	for _, c := range stale {
		if err := c.GoOffline(); err != nil {
			h.logger.Warn("stale courier left online",
				"courierID", c.ID().String(),
				"status", c.Status().String(),
				"error", err)
			continue
		}

		if err := uow.CourierRepository().Update(ctx, c); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
