package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var ErrPickUpOrderCommandIsNotConstructed = errors.New(
	"PickUpOrderCommand must be created via NewPickUpOrderCommand constructor",
)

// PickUpOrderCommand records that the courier collected the order from
// the vendor.
type PickUpOrderCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPickUpOrderCommand creates a command marking the assignment's order
// as picked up.
func NewPickUpOrderCommand(assignmentID kernel.UUID) (PickUpOrderCommand, error) {
	command := PickUpOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAssignmentID(assignmentID); err != nil {
		return PickUpOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPickUpOrderCommandIsNotConstructed if validation fails.
func (c PickUpOrderCommand) Validate() error {
	return c.guard.Validate(ErrPickUpOrderCommandIsNotConstructed)
}

// AssignmentID returns the assignment record being advanced.
func (c PickUpOrderCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *PickUpOrderCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}
