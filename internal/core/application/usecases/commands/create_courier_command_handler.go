package commands

import (
	"context"

	"kurye/internal/core/domain/model/courier"
	"kurye/internal/core/ports"
)

// CreateCourierCommandHandler registers couriers. New couriers start
// offline and enter rotation when they go online.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory, clock)
//	cmd, _ := NewCreateCourierCommand("Ayşe", courier.VehicleMotorcycle, location, hours, 3)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register courier: %w", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
	clock      ports.Clock
}

// NewCreateCourierCommandHandler creates a handler for courier registration.
func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory, clock ports.Clock) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
		clock:      clock,
	}
}

// Handle processes the registration command.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) error {
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

	registered, err := courier.NewCourier(
		cmd.CourierID(),
		cmd.Name(),
		cmd.Vehicle(),
		cmd.Location(),
		cmd.WorkingHours(),
		cmd.MaxActiveOrders(),
		h.clock.Now(),
	)
	if err != nil {
		return err
	}

	if err = uow.CourierRepository().Add(ctx, registered); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
