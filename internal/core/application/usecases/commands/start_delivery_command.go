package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var ErrStartDeliveryCommandIsNotConstructed = errors.New(
	"StartDeliveryCommand must be created via NewStartDeliveryCommand constructor",
)

// StartDeliveryCommand records that the courier left the vendor and is
// riding to the customer.
type StartDeliveryCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID

	guard guard.ConstructorGuard
}

// NewStartDeliveryCommand creates a command starting the delivery leg of
// the assignment.
func NewStartDeliveryCommand(assignmentID kernel.UUID) (StartDeliveryCommand, error) {
	command := StartDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setAssignmentID(assignmentID); err != nil {
		return StartDeliveryCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrStartDeliveryCommandIsNotConstructed if validation fails.
func (c StartDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrStartDeliveryCommandIsNotConstructed)
}

// AssignmentID returns the assignment record being advanced.
func (c StartDeliveryCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

func (c *StartDeliveryCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}
