package commands

import (
	"errors"

	"kurye/internal/pkg/guard"
)

var ErrAutoAssignOrdersCommandIsNotConstructed = errors.New(
	"AutoAssignOrdersCommand must be created via NewAutoAssignOrdersCommand constructor",
)

// AutoAssignOrdersCommand triggers one dispatch sweep: every order in
// "ready" status is offered to the best qualifying courier. The
// scheduler issues this command periodically.
//
// Example:
//
//	cmd := NewAutoAssignOrdersCommand()
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("dispatch sweep failed: %v", err)
//	}
type AutoAssignOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewAutoAssignOrdersCommand creates a new command to trigger a dispatch sweep.
func NewAutoAssignOrdersCommand() AutoAssignOrdersCommand {
	return AutoAssignOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAutoAssignOrdersCommandIsNotConstructed if validation fails.
func (c *AutoAssignOrdersCommand) Validate() error {
	return c.guard.Validate(ErrAutoAssignOrdersCommandIsNotConstructed)
}
