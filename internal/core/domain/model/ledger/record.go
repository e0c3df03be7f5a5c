package ledger

import (
	"errors"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

// ErrStockRecordIsNotConstructed is returned when a StockRecord instance was
// not created through NewStockRecord or RestoreStockRecord.
var ErrStockRecordIsNotConstructed = errors.New(
	"StockRecord must be created via NewStockRecord or RestoreStockRecord")

// StockRecord tracks the quantity of one product line held by one entity at
// one stage of the inventory chain. It is the unit of conservation: every
// transfer decrements a record at one stage and increments (or creates) the
// matching record at the next.
//
// StockRecord follows these invariants:
//   - Quantity is never negative; a decrement that would go below zero is
//     rejected with InsufficientStockError, not clamped
//   - Every mutation stamps the acting user and time
//   - Archived (inactive) records reject further adjustments
//   - Can only be created through its constructors
type StockRecord struct {
	// stage is the chain tier this record belongs to
	stage Stage

	// entityID is the warehouse, van, or location holding the stock
	entityID int64

	// productKey addresses the product line
	productKey kernel.ProductKey

	// quantity is the current on-hand amount, never negative
	quantity int

	createdAt time.Time
	createdBy kernel.UserID
	updatedAt *time.Time
	updatedBy *kernel.UserID

	// active is the soft-delete flag; rows are never physically removed
	active bool

	guard guard.ConstructorGuard
}

// NewStockRecord creates a stock record with an initial quantity.
// The initial quantity must not be negative.
func NewStockRecord(
	stage Stage,
	entityID int64,
	key kernel.ProductKey,
	quantity int,
	actor kernel.UserID,
	now time.Time,
) (*StockRecord, error) {
	if err := errors.Join(
		stage.Validate(),
		validateEntityID(entityID),
		key.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	if quantity < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	return &StockRecord{
		stage:      stage,
		entityID:   entityID,
		productKey: key,
		quantity:   quantity,
		createdAt:  now,
		createdBy:  actor,
		active:     true,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreStockRecord reconstructs a stock record from persistence,
// including its audit trail and soft-delete state.
func RestoreStockRecord(
	stage Stage,
	entityID int64,
	key kernel.ProductKey,
	quantity int,
	createdAt time.Time,
	createdBy kernel.UserID,
	updatedAt *time.Time,
	updatedBy *kernel.UserID,
	active bool,
) (*StockRecord, error) {
	record, err := NewStockRecord(stage, entityID, key, quantity, createdBy, createdAt)
	if err != nil {
		return nil, err
	}

	record.updatedAt = updatedAt
	record.updatedBy = updatedBy
	record.active = active
	return record, nil
}

// Stage returns the chain tier this record belongs to.
func (r *StockRecord) Stage() Stage {
	return r.stage
}

// EntityID returns the id of the warehouse, van, or location holding the stock.
func (r *StockRecord) EntityID() int64 {
	return r.entityID
}

// ProductKey returns the product line this record tracks.
func (r *StockRecord) ProductKey() kernel.ProductKey {
	return r.productKey
}

// Quantity returns the current on-hand amount.
func (r *StockRecord) Quantity() int {
	return r.quantity
}

// CreatedAt returns the creation timestamp.
func (r *StockRecord) CreatedAt() time.Time {
	return r.createdAt
}

// CreatedBy returns the user that created the record.
func (r *StockRecord) CreatedBy() kernel.UserID {
	return r.createdBy
}

// UpdatedAt returns the last mutation timestamp, nil if never adjusted.
func (r *StockRecord) UpdatedAt() *time.Time {
	return r.updatedAt
}

// UpdatedBy returns the last mutating user, nil if never adjusted.
func (r *StockRecord) UpdatedBy() *kernel.UserID {
	return r.updatedBy
}

// IsActive reports the soft-delete state.
func (r *StockRecord) IsActive() bool {
	return r.active
}

// Adjust applies a signed delta to the quantity and stamps the audit fields.
//
// Returns the new quantity on success. Fails with InsufficientStockError if
// the delta would push the quantity below zero; the record is left unchanged.
// Archived records reject all adjustments.
func (r *StockRecord) Adjust(delta int, actor kernel.UserID, now time.Time) (int, error) {
	if err := r.Validate(); err != nil {
		return 0, err
	}

	if err := actor.Validate(); err != nil {
		return 0, err
	}

	if !r.active {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"record is archived",
			fmt.Errorf("stock line %s at %s %d is inactive", r.productKey, r.stage, r.entityID),
		)
	}

	next := r.quantity + delta
	if next < 0 {
		return 0, NewInsufficientStockError(r.stage, r.entityID, r.productKey, r.quantity, -delta)
	}

	r.quantity = next
	r.updatedAt = &now
	r.updatedBy = &actor
	return next, nil
}

// Archive soft-deletes the record. Historical rows are never removed.
func (r *StockRecord) Archive(actor kernel.UserID, now time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}

	if err := actor.Validate(); err != nil {
		return err
	}

	r.active = false
	r.updatedAt = &now
	r.updatedBy = &actor
	return nil
}

// Validate ensures the record was properly constructed.
func (r *StockRecord) Validate() error {
	if r == nil {
		return ErrStockRecordIsNotConstructed
	}
	return r.guard.Validate(ErrStockRecordIsNotConstructed)
}

func validateEntityID(entityID int64) error {
	if entityID <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"entityID is invalid",
			fmt.Errorf("%d is not a positive reference key", entityID),
		)
	}
	return nil
}
