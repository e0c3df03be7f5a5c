package ledger

import (
	"errors"
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
)

// ErrInsufficientStock is the sentinel for stock adjustments that would push
// a quantity below zero. Concrete failures are reported through
// InsufficientStockError, which unwraps to this sentinel.
var ErrInsufficientStock = errors.New("insufficient stock")

// InsufficientStockError reports the exact stock line that could not cover
// a requested decrement. The decrement is rejected, never clamped.
type InsufficientStockError struct {
	Stage      Stage
	EntityID   int64
	ProductKey kernel.ProductKey
	Available  int
	Requested  int
}

// NewInsufficientStockError creates an InsufficientStockError for the given
// stock line. Requested carries the absolute quantity asked for.
func NewInsufficientStockError(
	stage Stage,
	entityID int64,
	key kernel.ProductKey,
	available, requested int,
) *InsufficientStockError {
	return &InsufficientStockError{
		Stage:      stage,
		EntityID:   entityID,
		ProductKey: key,
		Available:  available,
		Requested:  requested,
	}
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: %s %d holds %d of product %s, requested %d",
		ErrInsufficientStock, e.Stage, e.EntityID, e.Available, e.ProductKey, e.Requested)
}

// Unwrap returns the sentinel ErrInsufficientStock for errors.Is classification.
func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}
