package transfer

import (
	"fmt"

	"supplyline/internal/pkg/errs"
)

// Status represents the lifecycle state of a van transfer.
//
// State transitions:
//
//	Loaded ──> Delivered
//
// A transfer is Loaded the moment the warehouse decrements commit, and
// Delivered once every item has been drained into location stock.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusLoaded means the van holds the items and warehouse stock has
	// been decremented.
	StatusLoaded

	// StatusDelivered means every item has been moved into location stock.
	// This is a final state.
	StatusDelivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusLoaded:    "Loaded",
		StatusDelivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusLoaded:    "Loaded",
		StatusDelivered: "Delivered",
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

// Deliver transitions the status to Delivered.
// Only Loaded transfers can be delivered.
func (s Status) Deliver() (Status, error) {
	if s != StatusLoaded {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return StatusDelivered, nil
}
