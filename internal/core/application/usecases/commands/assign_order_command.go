package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand offers a ready order to one specific courier.
// Dispatcher-driven assignment builds this command after ranking the
// candidates; an operator override builds it directly.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(orderID, courierID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("offer failed: %v", err)
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command offering the order to the courier.
func NewAssignOrderCommand(orderID, courierID kernel.UUID) (AssignOrderCommand, error) {
	command := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setCourierID(courierID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAssignOrderCommandIsNotConstructed if validation fails.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// OrderID returns the order to offer.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CourierID returns the courier receiving the offer.
func (c AssignOrderCommand) CourierID() kernel.UUID {
	return c.courierID
}

func (c *AssignOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AssignOrderCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}
