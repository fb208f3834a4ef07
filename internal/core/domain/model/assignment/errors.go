package assignment

import (
	"errors"
	"fmt"
)

// ErrStateTransition is the sentinel every StateTransitionError unwraps
// to, so callers can classify with errors.Is.
var ErrStateTransition = errors.New("state transition is not allowed")

// StateTransitionError reports an assignment operation attempted from a
// state that does not permit it. The offending transition is carried so
// it can be logged and surfaced instead of silently dropped.
type StateTransitionError struct {
	From Status
	To   Status
}

// NewStateTransitionError creates a StateTransitionError for the
// transition from -> to.
func NewStateTransitionError(from, to Status) *StateTransitionError {
	return &StateTransitionError{From: from, To: to}
}

func (e *StateTransitionError) Error() string {
	return fmt.Sprintf("%s: from %s to %s", ErrStateTransition, e.From.String(), e.To.String())
}

func (e *StateTransitionError) Unwrap() error {
	return ErrStateTransition
}
