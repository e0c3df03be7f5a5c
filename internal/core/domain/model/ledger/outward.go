package ledger

import (
	"errors"
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

// ErrOutwardRecordIsNotConstructed is returned when an OutwardRecord was not
// created via NewOutwardRecord.
var ErrOutwardRecordIsNotConstructed = errors.New(
	"OutwardRecord must be created via NewOutwardRecord")

// OutwardRecord is an append-only row recording stock leaving a location
// (sold or consumed). It draws against the same product/variant space as the
// transfer chain but is decoupled from it: the matching location decrement
// happens in the same unit of work, the outward row itself is never mutated.
type OutwardRecord struct {
	id         kernel.UUID
	locationID kernel.LocationID
	productKey kernel.ProductKey
	quantity   int
	createdAt  time.Time
	createdBy  kernel.UserID
	active     bool

	guard guard.ConstructorGuard
}

// NewOutwardRecord creates an outward usage row. Quantity must be positive.
func NewOutwardRecord(
	id kernel.UUID,
	locationID kernel.LocationID,
	key kernel.ProductKey,
	quantity int,
	actor kernel.UserID,
	now time.Time,
) (*OutwardRecord, error) {
	if err := errors.Join(
		id.Validate(),
		locationID.Validate(),
		key.Validate(),
		actor.Validate(),
	); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return &OutwardRecord{
		id:         id,
		locationID: locationID,
		productKey: key,
		quantity:   quantity,
		createdAt:  now,
		createdBy:  actor,
		active:     true,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// ID returns the row identifier.
func (o *OutwardRecord) ID() kernel.UUID { return o.id }

// LocationID returns the location the stock left.
func (o *OutwardRecord) LocationID() kernel.LocationID { return o.locationID }

// ProductKey returns the product line consumed.
func (o *OutwardRecord) ProductKey() kernel.ProductKey { return o.productKey }

// Quantity returns the consumed amount.
func (o *OutwardRecord) Quantity() int { return o.quantity }

// CreatedAt returns the recording timestamp.
func (o *OutwardRecord) CreatedAt() time.Time { return o.createdAt }

// CreatedBy returns the recording user.
func (o *OutwardRecord) CreatedBy() kernel.UserID { return o.createdBy }

// IsActive reports the soft-delete state.
func (o *OutwardRecord) IsActive() bool { return o.active }

// Validate ensures the record was properly constructed.
func (o *OutwardRecord) Validate() error {
	if o == nil {
		return ErrOutwardRecordIsNotConstructed
	}
	return o.guard.Validate(ErrOutwardRecordIsNotConstructed)
}

// ErrUnlistedStockIsNotConstructed is returned when an UnlistedStock was not
// created via NewUnlistedStock.
var ErrUnlistedStockIsNotConstructed = errors.New(
	"UnlistedStock must be created via NewUnlistedStock")

// UnlistedStock records inventory found at a location that is not tied to
// any known product: only a scanned barcode identifies it. Rows are keyed by
// (barcode, location) and deliberately sit outside the conservation checks
// of the staged ledger.
type UnlistedStock struct {
	barcode    string
	locationID kernel.LocationID
	quantity   int
	recordedAt time.Time
	recordedBy kernel.UserID

	guard guard.ConstructorGuard
}

// NewUnlistedStock creates an unlisted stock row for a scanned barcode.
func NewUnlistedStock(
	barcode string,
	locationID kernel.LocationID,
	quantity int,
	actor kernel.UserID,
	now time.Time,
) (*UnlistedStock, error) {
	if barcode == "" {
		return nil, errs.NewValueIsRequiredError("barcode is required")
	}

	if err := errors.Join(locationID.Validate(), actor.Validate()); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return &UnlistedStock{
		barcode:    barcode,
		locationID: locationID,
		quantity:   quantity,
		recordedAt: now,
		recordedBy: actor,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Barcode returns the scanned code identifying the unknown product.
func (u *UnlistedStock) Barcode() string { return u.barcode }

// LocationID returns the location where the stock was found.
func (u *UnlistedStock) LocationID() kernel.LocationID { return u.locationID }

// Quantity returns the counted amount.
func (u *UnlistedStock) Quantity() int { return u.quantity }

// RecordedAt returns the recording timestamp.
func (u *UnlistedStock) RecordedAt() time.Time { return u.recordedAt }

// RecordedBy returns the recording user.
func (u *UnlistedStock) RecordedBy() kernel.UserID { return u.recordedBy }

// Validate ensures the record was properly constructed.
func (u *UnlistedStock) Validate() error {
	if u == nil {
		return ErrUnlistedStockIsNotConstructed
	}
	return u.guard.Validate(ErrUnlistedStockIsNotConstructed)
}
