package commands

import (
	"errors"

	"kurye/internal/pkg/guard"
)

var ErrSweepStaleCouriersCommandIsNotConstructed = errors.New(
	"SweepStaleCouriersCommand must be created via NewSweepStaleCouriersCommand constructor",
)

// SweepStaleCouriersCommand triggers one stale-location sweep: couriers
// whose app stopped reporting positions are taken out of rotation so
// dispatch never offers orders into the void.
type SweepStaleCouriersCommand struct {
	guard guard.ConstructorGuard
}

// NewSweepStaleCouriersCommand creates a new command to trigger a stale sweep.
func NewSweepStaleCouriersCommand() SweepStaleCouriersCommand {
	return SweepStaleCouriersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSweepStaleCouriersCommandIsNotConstructed if validation fails.
func (c *SweepStaleCouriersCommand) Validate() error {
	return c.guard.Validate(ErrSweepStaleCouriersCommandIsNotConstructed)
}
