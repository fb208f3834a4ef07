package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var ErrAcceptOrderCommandIsNotConstructed = errors.New(
	"AcceptOrderCommand must be created via NewAcceptOrderCommand constructor",
)

// AcceptOrderCommand is a courier's acceptance of a pending offer.
//
// Example:
//
//	cmd, err := NewAcceptOrderCommand(assignmentID)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("accept failed: %v", err)
//	}
type AcceptOrderCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptOrderCommand creates a command accepting the offer identified
// by the assignment record.
func NewAcceptOrderCommand(assignmentID kernel.UUID) (AcceptOrderCommand, error) {
	command := AcceptOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAssignmentID(assignmentID); err != nil {
		return AcceptOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAcceptOrderCommandIsNotConstructed if validation fails.
func (c AcceptOrderCommand) Validate() error {
	return c.guard.Validate(ErrAcceptOrderCommandIsNotConstructed)
}

// AssignmentID returns the assignment record being accepted.
func (c AcceptOrderCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *AcceptOrderCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}
