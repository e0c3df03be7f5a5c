package route

import (
	"fmt"

	"supplyline/internal/pkg/errs"
)

// StopStatus represents the lifecycle state of a single route stop.
//
// State transitions:
//
//	Draft ──> EnRoute ──> Arrived ──> Delivered
//	              │           │
//	              └───────────┴──> Failed
//
// Delivered additionally requires OTP confirmation; Failed is an explicit
// operator decision, never an automatic fallback.
type StopStatus int

const (
	// StopStatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized StopStatus values.
	StopStatusUnknown StopStatus = iota

	// StopDraft is the initial status while the route is being arranged.
	StopDraft

	// StopEnRoute means the driver is heading to the location.
	StopEnRoute

	// StopArrived means the driver is at the location; the delivery OTP has
	// been issued.
	StopArrived

	// StopDelivered means the visit completed with OTP confirmation.
	// Final state.
	StopDelivered

	// StopFailed means the visit could not complete. Final state.
	StopFailed
)

func getStopStatusStrings() map[StopStatus]string {
	return map[StopStatus]string{
		StopStatusUnknown: "Unknown",
		StopDraft:         "Draft",
		StopEnRoute:       "EnRoute",
		StopArrived:       "Arrived",
		StopDelivered:     "Delivered",
		StopFailed:        "Failed",
	}
}

func getValidStopStatusStrings() map[StopStatus]string {
	//nolint:exhaustive // StopStatusUnknown is intentionally excluded as it's invalid
	return map[StopStatus]string{
		StopDraft:     "Draft",
		StopEnRoute:   "EnRoute",
		StopArrived:   "Arrived",
		StopDelivered: "Delivered",
		StopFailed:    "Failed",
	}
}

// Validate checks if the StopStatus value is valid.
func (s StopStatus) Validate() error {
	if _, ok := getValidStopStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"stop status is invalid",
			fmt.Errorf("%d is not a valid stop status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any StopStatus value.
func (s StopStatus) String() string {
	if str, ok := getStopStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Advance validates the move to target and returns it.
// Fails with InvalidTransitionError for any move outside the table above.
func (s StopStatus) Advance(target StopStatus) (StopStatus, error) {
	legal := map[StopStatus][]StopStatus{
		StopDraft:   {StopEnRoute},
		StopEnRoute: {StopArrived, StopFailed},
		StopArrived: {StopDelivered, StopFailed},
	}

	for _, allowed := range legal[s] {
		if allowed == target {
			return target, nil
		}
	}

	return 0, NewInvalidTransitionError(s, target)
}

// IsTerminal reports whether no further transitions are possible.
func (s StopStatus) IsTerminal() bool {
	return s == StopDelivered || s == StopFailed
}
