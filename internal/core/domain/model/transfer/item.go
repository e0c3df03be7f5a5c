package transfer

import (
	"errors"
	"fmt"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed indicates an Item was not created through
	// NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem")

	// ErrItemAlreadyDrained indicates an attempt to drain an item with no
	// remaining quantity.
	ErrItemAlreadyDrained = errors.New("item has no remaining quantity")
)

// Item is one product line inside a van transfer. It carries the loaded
// quantity and the remaining quantity still on the van; draining moves the
// remainder into location stock.
//
// Items are exclusively owned by their VanTransfer header and cannot
// outlive it.
type Item struct {
	// id uniquely identifies the line within the transfer
	id kernel.UUID

	// productKey addresses the product line being moved
	productKey kernel.ProductKey

	// quantity is the amount loaded at the warehouse
	quantity int

	// remaining is the amount still on the van, 0 <= remaining <= quantity
	remaining int

	guard guard.ConstructorGuard
}

// NewItem creates a transfer line with the full loaded quantity remaining.
// Quantity must be positive.
func NewItem(id kernel.UUID, key kernel.ProductKey, quantity int) (*Item, error) {
	if err := errors.Join(id.Validate(), key.Validate()); err != nil {
		return nil, err
	}

	if quantity <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	return &Item{
		id:         id,
		productKey: key,
		quantity:   quantity,
		remaining:  quantity,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreItem reconstructs a transfer line from persistence with its
// current remaining quantity.
func RestoreItem(id kernel.UUID, key kernel.ProductKey, quantity, remaining int) (*Item, error) {
	item, err := NewItem(id, key, quantity)
	if err != nil {
		return nil, err
	}

	if remaining < 0 || remaining > quantity {
		return nil, errs.NewValueIsOutOfRangeError("remaining", remaining, 0, quantity)
	}

	item.remaining = remaining
	return item, nil
}

// IsEqual compares two items by identity.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the line identifier.
func (i *Item) ID() kernel.UUID { return i.id }

// ProductKey returns the product line being moved.
func (i *Item) ProductKey() kernel.ProductKey { return i.productKey }

// Quantity returns the amount loaded at the warehouse.
func (i *Item) Quantity() int { return i.quantity }

// Remaining returns the amount still on the van.
func (i *Item) Remaining() int { return i.remaining }

// Drain empties the line, returning the quantity that was remaining.
// Fails with ErrItemAlreadyDrained if nothing remains.
func (i *Item) Drain() (int, error) {
	if err := i.Validate(); err != nil {
		return 0, err
	}

	if i.remaining == 0 {
		return 0, ErrItemAlreadyDrained
	}

	drained := i.remaining
	i.remaining = 0
	return drained, nil
}

// Validate ensures the item was properly constructed.
func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}
