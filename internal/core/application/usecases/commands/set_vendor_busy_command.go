package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/core/domain/model/vendor"
	"kurye/internal/pkg/guard"
)

var ErrSetVendorBusyCommandIsNotConstructed = errors.New(
	"SetVendorBusyCommand must be created via NewSetVendorBusyCommand constructor",
)

// SetVendorBusyCommand updates a vendor's kitchen load. The busy level
// feeds the promised delivery time quoted to customers.
type SetVendorBusyCommand struct { //nolint:recvcheck //using for validation
	vendorID   kernel.UUID
	busyStatus vendor.BusyStatus

	guard guard.ConstructorGuard
}

// NewSetVendorBusyCommand creates a command setting the vendor's busy level.
func NewSetVendorBusyCommand(vendorID kernel.UUID, busyStatus vendor.BusyStatus) (SetVendorBusyCommand, error) {
	command := SetVendorBusyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVendorID(vendorID),
		command.setBusyStatus(busyStatus),
	); err != nil {
		return SetVendorBusyCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetVendorBusyCommandIsNotConstructed if validation fails.
func (c SetVendorBusyCommand) Validate() error {
	return c.guard.Validate(ErrSetVendorBusyCommandIsNotConstructed)
}

// VendorID returns the vendor being updated.
func (c SetVendorBusyCommand) VendorID() kernel.UUID {
	return c.vendorID
}

// BusyStatus returns the new busy level.
func (c SetVendorBusyCommand) BusyStatus() vendor.BusyStatus {
	return c.busyStatus
}

func (c *SetVendorBusyCommand) setVendorID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.vendorID = id
	return nil
}

func (c *SetVendorBusyCommand) setBusyStatus(status vendor.BusyStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}

	c.busyStatus = status
	return nil
}
