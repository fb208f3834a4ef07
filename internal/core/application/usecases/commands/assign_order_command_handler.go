package commands

import (
	"context"
	"log/slog"

	"kurye/internal/core/domain/model/assignment"
	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/services"
	"kurye/internal/core/ports"
)

// AssignOrderCommandHandler offers a ready order to a courier. Creates
// the assignment record, moves the order to "assigned" and parks the
// courier on the pending offer. The courier fee is computed here, for
// the courier's own vehicle, and frozen on the assignment record.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, maps, notifier, clock, logger)
//	cmd, _ := NewAssignOrderCommand(orderID, courierID)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("offer failed: %v", err)
//	}
type AssignOrderCommandHandler struct {
	uowFactory DispatchUoWFactory
	maps       ports.MapService
	notifier   ports.Notifier
	clock      ports.Clock
	feeCalc    services.DeliveryFeeCalculator
	logger     *slog.Logger
}

// NewAssignOrderCommandHandler creates a handler for offering orders to couriers.
func NewAssignOrderCommandHandler(
	uowFactory DispatchUoWFactory,
	maps ports.MapService,
	notifier ports.Notifier,
	clock ports.Clock,
	logger *slog.Logger,
) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		maps:       maps,
		notifier:   notifier,
		clock:      clock,
		feeCalc:    services.NewDeliveryFeeCalculator(),
		logger:     logger,
	}
}

// Handle processes the offer. Both the order and the courier are
// version-checked on update; losing the race to another dispatcher
// aborts the transaction and the attempt is retried on fresh state.
func (h *AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return withConflictRetry(func() error {
		return h.handleOnce(ctx, cmd)
	})
}

func (h *AssignOrderCommandHandler) handleOnce(ctx context.Context, cmd AssignOrderCommand) error {
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

	assignee, err := uow.CourierRepository().Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	v, err := uow.VendorRepository().Get(ctx, ord.VendorID())
	if err != nil {
		return err
	}

	now := h.clock.Now()

	distance := h.maps.RoadDistance(ctx, v.Location(), ord.DeliveryAddress())
	distanceKm := distance.Km
	if distance.Status != ports.DistanceOK {
		distanceKm = v.Location().DistanceKmTo(ord.DeliveryAddress())
	}

	fee, err := h.feeCalc.Calculate(distanceKm, assignee.Vehicle(), now)
	if err != nil {
		return err
	}

	if err = ord.Assign(now); err != nil {
		return err
	}
	if err = assignee.MarkAssigned(now); err != nil {
		return err
	}

	record, err := assignment.NewOrderCourier(
		kernel.NewUUID(),
		ord.ID(),
		assignee.ID(),
		assignment.Fee{
			Base:          fee.Base,
			DistanceBonus: fee.DistanceBonus,
			VehicleBonus:  fee.VehicleBonus,
			TimeBonus:     fee.TimeBonus,
			Total:         fee.Total,
		},
		now,
	)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, ord); err != nil {
		return err
	}
	if err = uow.CourierRepository().Update(ctx, assignee); err != nil {
		return err
	}
	if err = uow.AssignmentRepository().Add(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	notifyOrderEvent(ctx, h.notifier, h.logger, assignee.ID(), ord.ID(), ports.EventOrderAssigned)
	return nil
}
