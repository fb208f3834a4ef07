package courier

import (
	"fmt"

	"kurye/internal/pkg/errs"
)

// Status is the courier's availability state as seen by the dispatcher.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusOffline means the courier is not working and is invisible to dispatch.
	StatusOffline

	// StatusAvailable means the courier is online and can be offered orders.
	StatusAvailable

	// StatusAssigned means the courier has a pending offer awaiting accept or reject.
	StatusAssigned

	// StatusBusy means the courier is carrying at least one accepted order.
	StatusBusy

	// StatusOnBreak means the courier paused work and is skipped by dispatch.
	StatusOnBreak
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusOffline:   "Offline",
		StatusAvailable: "Available",
		StatusAssigned:  "Assigned",
		StatusBusy:      "Busy",
		StatusOnBreak:   "OnBreak",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	switch s {
	case StatusOffline, StatusAvailable, StatusAssigned, StatusBusy, StatusOnBreak:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
