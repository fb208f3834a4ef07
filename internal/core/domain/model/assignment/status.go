package assignment

import (
	"fmt"

	"kurye/internal/pkg/errs"
)

// Status is the state of one assignment attempt between an order and a
// courier.
//
// State transitions:
//
//	Assigned ──> Accepted ──> PickedUp ──> OutForDelivery ──> Delivered
//	    │            │            │
//	    ├──> Rejected│            │
//	    └────────────┴────────────┴──> Cancelled
//
// Rejected, Delivered, and Cancelled are terminal. A rejected record is
// kept for the audit trail and to exclude the courier from re-dispatch
// of the same order.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAssigned means the offer was made and awaits the courier's response.
	StatusAssigned

	// StatusAccepted means the courier accepted and is heading to the vendor.
	StatusAccepted

	// StatusRejected means the courier declined the offer. Terminal.
	StatusRejected

	// StatusPickedUp means the courier collected the order from the vendor.
	StatusPickedUp

	// StatusOutForDelivery means the courier is en route to the customer.
	StatusOutForDelivery

	// StatusDelivered means the order was handed to the customer. Terminal.
	StatusDelivered

	// StatusCancelled means the assignment was cancelled before delivery. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusAssigned:       "Assigned",
		StatusAccepted:       "Accepted",
		StatusRejected:       "Rejected",
		StatusPickedUp:       "PickedUp",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	switch s {
	case StatusAssigned, StatusAccepted, StatusRejected, StatusPickedUp,
		StatusOutForDelivery, StatusDelivered, StatusCancelled:
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

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusRejected || s == StatusDelivered || s == StatusCancelled
}
