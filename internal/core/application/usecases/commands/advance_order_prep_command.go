package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var (
	ErrAdvanceOrderPrepCommandIsNotConstructed = errors.New(
		"AdvanceOrderPrepCommand must be created via NewAdvanceOrderPrepCommand constructor",
	)
	ErrPrepActionIsInvalid = errors.New("prep action is invalid")
)

// PrepAction is a vendor's progress report on an order.
type PrepAction int

const (
	// PrepActionUnknown represents an invalid or undefined action.
	PrepActionUnknown PrepAction = iota

	// PrepStart means the vendor started preparing the order.
	PrepStart

	// PrepReady means the order is packed and waiting for a courier.
	// This is what puts the order into the dispatch pool.
	PrepReady
)

// Validate checks the action is one of the defined values.
func (a PrepAction) Validate() error {
	switch a {
	case PrepStart, PrepReady:
		return nil
	default:
		return ErrPrepActionIsInvalid
	}
}

// AdvanceOrderPrepCommand is the vendor advancing an order through
// preparation.
type AdvanceOrderPrepCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  PrepAction

	guard guard.ConstructorGuard
}

// NewAdvanceOrderPrepCommand creates a command applying the prep action
// to the order.
func NewAdvanceOrderPrepCommand(orderID kernel.UUID, action PrepAction) (AdvanceOrderPrepCommand, error) {
	command := AdvanceOrderPrepCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setAction(action),
	); err != nil {
		return AdvanceOrderPrepCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceOrderPrepCommandIsNotConstructed if validation fails.
func (c AdvanceOrderPrepCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceOrderPrepCommandIsNotConstructed)
}

// OrderID returns the order being advanced.
func (c AdvanceOrderPrepCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Action returns the reported prep progress.
func (c AdvanceOrderPrepCommand) Action() PrepAction {
	return c.action
}

func (c *AdvanceOrderPrepCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *AdvanceOrderPrepCommand) setAction(action PrepAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}
