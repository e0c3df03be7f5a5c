package route

import (
	"fmt"

	"supplyline/internal/pkg/errs"
)

// Status represents the lifecycle state of a route.
//
// State transitions:
//
//	Draft ──> Scheduled ──> InProgress ──> Completed
//	  │           │              │
//	  └───────────┴──────────────┴──> Cancelled
//
// A route is Scheduled once its stop sequence is finalized (typically after
// external optimization), InProgress once the first stop departs, and
// Completed when every active stop is terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusDraft is the initial status while stops are still being arranged.
	StatusDraft

	// StatusScheduled means the stop sequence is finalized.
	StatusScheduled

	// StatusInProgress means the driver is working the route.
	StatusInProgress

	// StatusCompleted means every active stop reached a terminal state.
	// Final state.
	StatusCompleted

	// StatusCancelled means the route was abandoned. Final state. Stock
	// movements already committed are not reversed.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusDraft:      "Draft",
		StatusScheduled:  "Scheduled",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusDraft:      "Draft",
		StatusScheduled:  "Scheduled",
		StatusInProgress: "InProgress",
		StatusCompleted:  "Completed",
		StatusCancelled:  "Cancelled",
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

// Schedule transitions the status to Scheduled. Only Draft routes can be
// scheduled.
func (s Status) Schedule() (Status, error) {
	if s != StatusDraft {
		return 0, NewInvalidTransitionError(s, StatusScheduled)
	}

	return StatusScheduled, nil
}

// Start transitions the status to InProgress when the first stop departs.
func (s Status) Start() (Status, error) {
	if s != StatusScheduled {
		return 0, NewInvalidTransitionError(s, StatusInProgress)
	}

	return StatusInProgress, nil
}

// Complete transitions the status to Completed.
func (s Status) Complete() (Status, error) {
	if s != StatusScheduled && s != StatusInProgress {
		return 0, NewInvalidTransitionError(s, StatusCompleted)
	}

	return StatusCompleted, nil
}

// Cancel transitions the status to Cancelled from any non-terminal state.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() {
		return 0, NewInvalidTransitionError(s, StatusCancelled)
	}

	if err := s.Validate(); err != nil {
		return 0, err
	}

	return StatusCancelled, nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
