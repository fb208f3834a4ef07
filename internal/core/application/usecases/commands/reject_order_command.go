package commands

import (
	"errors"

	"kurye/internal/core/domain/model/kernel"
	"kurye/internal/pkg/guard"
)

var (
	ErrRejectOrderCommandIsNotConstructed = errors.New(
		"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
	)
	ErrRejectReasonIsRequired = errors.New("reject reason is required")
)

// RejectOrderCommand is a courier's rejection of a pending offer.
// The order goes back into the dispatch pool and the rejecting courier
// is excluded from future offers for it.
//
// Example:
//
//	cmd, err := NewRejectOrderCommand(assignmentID, "too far")
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("reject failed: %v", err)
//	}
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	assignmentID kernel.UUID
	reason       string

	guard guard.ConstructorGuard
}

// NewRejectOrderCommand creates a command rejecting the offer identified
// by the assignment record. A reason is required.
func NewRejectOrderCommand(assignmentID kernel.UUID, reason string) (RejectOrderCommand, error) {
	command := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setAssignmentID(assignmentID),
		command.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRejectOrderCommandIsNotConstructed if validation fails.
func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

// AssignmentID returns the assignment record being rejected.
func (c RejectOrderCommand) AssignmentID() kernel.UUID {
	return c.assignmentID
}

// Reason returns why the courier declined.
func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setAssignmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.assignmentID = id
	return nil
}

func (c *RejectOrderCommand) setReason(reason string) error {
	if reason == "" {
		return ErrRejectReasonIsRequired
	}

	c.reason = reason
	return nil
}
