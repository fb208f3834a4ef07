package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var (
	ErrChangeCourierShiftCommandIsNotConstructed = errors.New(
		"ChangeCourierShiftCommand must be created via NewChangeCourierShiftCommand constructor",
	)
	ErrShiftActionIsInvalid = errors.New("shift action is invalid")
)

// ShiftAction is what the courier wants to do with their shift.
type ShiftAction int

const (
	// ShiftActionUnknown represents an invalid or undefined action.
	ShiftActionUnknown ShiftAction = iota

	// ShiftGoOnline puts the courier into rotation.
	ShiftGoOnline

	// ShiftGoOffline ends the courier's shift.
	ShiftGoOffline

	// ShiftTakeBreak pauses the courier without ending the shift.
	ShiftTakeBreak
)

// Validate checks the action is one of the defined values.
func (a ShiftAction) Validate() error {
	switch a {
	case ShiftGoOnline, ShiftGoOffline, ShiftTakeBreak:
		return nil
	default:
		return ErrShiftActionIsInvalid
	}
}

// ChangeCourierShiftCommand moves a courier between shift states:
// online, offline or on break.
type ChangeCourierShiftCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID
	action    ShiftAction

	guard guard.ConstructorGuard
}

// NewChangeCourierShiftCommand creates a command applying the shift
// action to the courier.
func NewChangeCourierShiftCommand(courierID kernel.UUID, action ShiftAction) (ChangeCourierShiftCommand, error) {
	command := ChangeCourierShiftCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCourierID(courierID),
		command.setAction(action),
	); err != nil {
		return ChangeCourierShiftCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrChangeCourierShiftCommandIsNotConstructed if validation fails.
func (c ChangeCourierShiftCommand) Validate() error {
	return c.guard.Validate(ErrChangeCourierShiftCommandIsNotConstructed)
}

// CourierID returns the courier changing shift state.
func (c ChangeCourierShiftCommand) CourierID() kernel.UUID {
	return c.courierID
}

// Action returns the requested shift action.
func (c ChangeCourierShiftCommand) Action() ShiftAction {
	return c.action
}

func (c *ChangeCourierShiftCommand) setCourierID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.courierID = id
	return nil
}

func (c *ChangeCourierShiftCommand) setAction(action ShiftAction) error {
	if err := action.Validate(); err != nil {
		return err
	}

	c.action = action
	return nil
}
