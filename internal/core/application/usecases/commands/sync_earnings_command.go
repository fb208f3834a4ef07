package commands

import (
	"errors"

	"kurye/internal/pkg/guard"
)

var ErrSyncEarningsCommandIsNotConstructed = errors.New(
	"SyncEarningsCommand must be created via NewSyncEarningsCommand constructor",
)

// SyncEarningsCommand triggers one earning sync sweep: ledger records
// whose wallet credit failed after settlement are credited again and
// flagged paid.
type SyncEarningsCommand struct {
	guard guard.ConstructorGuard
}

// NewSyncEarningsCommand creates a new command to trigger an earning sync.
func NewSyncEarningsCommand() SyncEarningsCommand {
	return SyncEarningsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrSyncEarningsCommandIsNotConstructed if validation fails.
func (c *SyncEarningsCommand) Validate() error {
	return c.guard.Validate(ErrSyncEarningsCommandIsNotConstructed)
}
