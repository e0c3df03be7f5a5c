package ledger

import (
	"fmt"

	"supplyline/internal/pkg/errs"
)

// Stage identifies one tier of the inventory chain. Stock flows
// Warehouse -> Van -> Location; outward usage leaves the chain at the
// Location stage.
type Stage int

const (
	// StageUnknown represents an invalid or undefined stage.
	// This value (0) helps catch uninitialized Stage values.
	StageUnknown Stage = iota

	// StageWarehouse holds stock before it is loaded into vans.
	StageWarehouse

	// StageVan holds stock while it travels with a driver.
	StageVan

	// StageLocation holds stock delivered to a customer site.
	StageLocation
)

func getStageStrings() map[Stage]string {
	return map[Stage]string{
		StageUnknown:   "Unknown",
		StageWarehouse: "Warehouse",
		StageVan:       "Van",
		StageLocation:  "Location",
	}
}

func getValidStageStrings() map[Stage]string {
	//nolint:exhaustive // StageUnknown is intentionally excluded as it's invalid
	return map[Stage]string{
		StageWarehouse: "Warehouse",
		StageVan:       "Van",
		StageLocation:  "Location",
	}
}

// Validate checks if the Stage value is one of Warehouse, Van, or Location.
// Used to guard values arriving from persistence or external callers.
func (s Stage) Validate() error {
	if _, ok := getValidStageStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("stage is invalid", fmt.Errorf("%d is not a valid stage", s))
	}
	return nil
}

// String returns the human-readable name of the stage.
// Implements fmt.Stringer and is safe on any Stage value.
func (s Stage) String() string {
	if str, ok := getStageStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the stage stock moves to during a transfer.
// The Location stage is terminal within the chain.
func (s Stage) Next() (Stage, error) {
	switch s {
	case StageWarehouse:
		return StageVan, nil
	case StageVan:
		return StageLocation, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"stage is invalid",
			fmt.Errorf("%s has no next stage", s.String()),
		)
	}
}
