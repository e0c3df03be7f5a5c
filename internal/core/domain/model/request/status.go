package request

import (
	"fmt"

	"supplyline/internal/pkg/errs"
)

// Status represents the lifecycle state of a fulfillment request.
//
// State transitions:
//
//	Pending ──> InRoute ──> Fulfilled
//	   │           │
//	   └───────────┴──> Cancelled
//
// A request becomes InRoute when a route stop picks it up, Fulfilled when
// that stop completes delivery, and can be cancelled from any non-terminal
// state.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status; the request awaits a route.
	StatusPending

	// StatusInRoute means a route stop has picked up the request.
	StatusInRoute

	// StatusFulfilled means the linked stop delivered. Final state.
	StatusFulfilled

	// StatusCancelled means the request was withdrawn. Final state.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusInRoute:   "InRoute",
		StatusFulfilled: "Fulfilled",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusInRoute:   "InRoute",
		StatusFulfilled: "Fulfilled",
		StatusCancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Attach transitions the status to InRoute. Only Pending requests can be
// attached to a stop.
func (s Status) Attach() (Status, error) {
	if s != StatusPending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to attach", s.String()),
		)
	}

	return StatusInRoute, nil
}

// Fulfill transitions the status to Fulfilled. Only InRoute requests can be
// fulfilled; the transition is driven by stop completion.
func (s Status) Fulfill() (Status, error) {
	if s != StatusInRoute {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to fulfill", s.String()),
		)
	}

	return StatusFulfilled, nil
}

// Cancel transitions the status to Cancelled from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if s != StatusPending && s != StatusInRoute {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return StatusCancelled, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusFulfilled || s == StatusCancelled
}
