package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var (
	ErrDeliverOrderCommandIsNotConstructed = errors.New(
		"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
	)
	ErrTipIsInvalid = errors.New("tip must not be negative")
)

// DeliverOrderCommand completes a delivery: the courier handed the order
// to the customer, optionally with a tip.
//
// Example:
//
//	cmd, err := NewDeliverOrderCommand(assignmentID, 12.50)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("delivery completion failed: %v", err)
//	}
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	tip          float64

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand creates a command completing the assignment's
// delivery with the given tip. Tip may be zero, never negative.
func NewDeliverOrderCommand(assignmentID kernel.UUID, tip float64) (DeliverOrderCommand, error) {
	command := DeliverOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setTip(tip),
	); err != nil {
		return DeliverOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrDeliverOrderCommandIsNotConstructed if validation fails.
func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

// AssignmentID returns the assignment record being completed.
func (c DeliverOrderCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Tip returns the customer's tip.
func (c DeliverOrderCommand) Tip() float64 {
	return c.tip
}

func (c *DeliverOrderCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}

func (c *DeliverOrderCommand) setTip(tip float64) error {
	if tip < 0 {
		return ErrTipIsInvalid
	}

	c.tip = tip
	return nil
}
