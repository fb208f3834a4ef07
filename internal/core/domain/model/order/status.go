package order

import (
	"fmt"

	"kurye/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Preparing ──> Ready ──> Assigned ──> Accepted ──> OutForDelivery ──> Delivered
//	   │            │           ▲  ▲        │  │          │
//	   │            │           │  └────────┘  │          │
//	   │            │           │ (rejection)  │          │
//	   └────────────┴───────────┴──────────────┴──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal. An order that is already out for
// delivery can no longer be cancelled.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status after the order is placed and priced.
	StatusPending

	// StatusPreparing indicates the vendor accepted the order and is preparing it.
	StatusPreparing

	// StatusReady indicates the order is packed and waiting for a courier.
	StatusReady

	// StatusAssigned indicates a courier has been offered the order.
	StatusAssigned

	// StatusAccepted indicates the assigned courier accepted the offer.
	StatusAccepted

	// StatusOutForDelivery indicates the courier picked the order up and is en route.
	StatusOutForDelivery

	// StatusDelivered indicates the order reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the order was cancelled before dispatch completed. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:        "Unknown",
		StatusPending:        "Pending",
		StatusPreparing:      "Preparing",
		StatusReady:          "Ready",
		StatusAssigned:       "Assigned",
		StatusAccepted:       "Accepted",
		StatusOutForDelivery: "OutForDelivery",
		StatusDelivered:      "Delivered",
		StatusCancelled:      "Cancelled",
	}
}

// getStatusTransitions returns the allowed next statuses for each status.
// Assigned -> Ready covers courier rejection: the order goes back to the
// dispatch pool for reassignment.
func getStatusTransitions() map[Status][]Status {
	return map[Status][]Status{
		StatusPending:        {StatusPreparing, StatusCancelled},
		StatusPreparing:      {StatusReady, StatusCancelled},
		StatusReady:          {StatusAssigned, StatusCancelled},
		StatusAssigned:       {StatusAccepted, StatusReady, StatusCancelled},
		StatusAccepted:       {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered},
		StatusDelivered:      {},
		StatusCancelled:      {},
	}
}

// Validate checks if the Status value is one of the defined lifecycle states.
// StatusUnknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the transition from s to next is allowed.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range getStatusTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo validates and performs the transition from s to next.
//
// Returns:
//   - (next, nil) when the transition is allowed
//   - (0, error) when it is not
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(next) {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("transition from %s to %s is not allowed", s.String(), next.String()),
		)
	}
	return next, nil
}
