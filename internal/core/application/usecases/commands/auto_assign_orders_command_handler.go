package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/order"
	"kurye/internal/core/domain/services"
	"kurye/internal/core/ports"
)

// AutoAssignOrdersCommandHandler runs the periodic dispatch sweep.
// Loads every ready order and the couriers in rotation, picks the best
// qualifying courier per order, and delegates the actual offer to the
// assignment handler so each offer commits in its own transaction.
//
// Orders with no qualifying courier are skipped and picked up again on
// the next sweep. One failing order never aborts the sweep.
type AutoAssignOrdersCommandHandler struct {
	uowFactory DispatchUoWFactory
	assigner   AssignOrderCommandHandler
	dispatcher services.CourierDispatcher
	clock      ports.Clock
	logger     *slog.Logger
}

// NewAutoAssignOrdersCommandHandler creates a handler for dispatch sweeps.
func NewAutoAssignOrdersCommandHandler(
	uowFactory DispatchUoWFactory,
	assigner AssignOrderCommandHandler,
	clock ports.Clock,
	logger *slog.Logger,
) AutoAssignOrdersCommandHandler {
	return AutoAssignOrdersCommandHandler{
		uowFactory: uowFactory,
		assigner:   assigner,
		dispatcher: services.NewCourierDispatcher(),
		clock:      clock,
		logger:     logger,
	}
}

// dispatchCandidate is one ready order with everything the dispatcher
// needs to rank couriers for it.
type dispatchCandidate struct {
	order      *order.Order
	pickup     kernel.GeoPoint
	rejectedBy map[string]bool
}

// Handle runs one sweep. The candidate snapshot is read in a short
// read-only transaction; each offer then re-reads and version-checks its
// aggregates, so a snapshot gone stale only costs a skipped offer.
func (h *AutoAssignOrdersCommandHandler) Handle(ctx context.Context, cmd AutoAssignOrdersCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	candidates, rotation, err := h.readSnapshot(ctx)
	if err != nil {
		return err
	}
	if len(candidates) == 0 {
		return nil
	}

	now := h.clock.Now()
	for _, candidate := range candidates {
		if err := h.dispatchOne(ctx, candidate, rotation, now); err != nil {
			h.logger.Warn("order dispatch failed",
				"orderID", candidate.order.ID().String(),
				"error", err)
		}
	}

	return nil
}

// readSnapshot loads the ready orders, their pickup points and rejection
// history, and the couriers currently in rotation.
func (h *AutoAssignOrdersCommandHandler) readSnapshot(
	ctx context.Context,
) ([]dispatchCandidate, []*courier.Courier, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	readyOrders, err := uow.OrderRepository().GetAllInStatus(ctx, order.StatusReady)
	if err != nil {
		return nil, nil, err
	}
	if len(readyOrders) == 0 {
		return nil, nil, nil
	}

	rotation, err := uow.CourierRepository().GetAllInRotation(ctx)
	if err != nil {
		return nil, nil, err
	}

	candidates := make([]dispatchCandidate, 0, len(readyOrders))
	for _, ready := range readyOrders {
		v, err := uow.VendorRepository().Get(ctx, ready.VendorID())
		if err != nil {
			return nil, nil, err
		}

		rejectedIDs, err := uow.AssignmentRepository().GetRejectedCourierIDs(ctx, ready.ID())
		if err != nil {
			return nil, nil, err
		}
		rejectedBy := make(map[string]bool, len(rejectedIDs))
		for _, id := range rejectedIDs {
			rejectedBy[id.String()] = true
		}

		candidates = append(candidates, dispatchCandidate{
			order:      ready,
			pickup:     v.Location(),
			rejectedBy: rejectedBy,
		})
	}

	return candidates, rotation, nil
}

// dispatchOne picks the best courier for one ready order and issues the
// offer. A courier that already rejected the order is never offered it
// again.
func (h *AutoAssignOrdersCommandHandler) dispatchOne(
	ctx context.Context,
	candidate dispatchCandidate,
	rotation []*courier.Courier,
	now time.Time,
) error {
	eligible := make([]*courier.Courier, 0, len(rotation))
	for _, c := range rotation {
		if candidate.rejectedBy[c.ID().String()] {
			continue
		}
		eligible = append(eligible, c)
	}

	best, err := h.dispatcher.FindBestCourier(candidate.pickup, eligible, now)
	if errors.Is(err, services.ErrNoCourierAvailable) {
		return nil
	}
	if err != nil {
		return err
	}

	cmd, err := NewAssignOrderCommand(candidate.order.ID(), best.ID())
	if err != nil {
		return err
	}

	return h.assigner.Handle(ctx, cmd)
}
