package transfer

import (
	"errors"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/pkg/errs"
	"supplyline/internal/pkg/guard"
)

var (
	// ErrVanTransferIsNotConstructed is returned when a VanTransfer instance
	// was not created through NewVanTransfer or RestoreVanTransfer.
	ErrVanTransferIsNotConstructed = errors.New(
		"VanTransfer must be created via NewVanTransfer or RestoreVanTransfer")

	// ErrTransferHasNoItems indicates an attempt to create a transfer with
	// an empty item list.
	ErrTransferHasNoItems = errors.New("transfer requires at least one item")

	// ErrTransferNotFullyDrained indicates an attempt to mark a transfer
	// delivered while some item still has remaining quantity.
	ErrTransferNotFullyDrained = errors.New("transfer still has undrained items")
)

// VanTransfer is the aggregate root for one warehouse-to-van load. The
// header exclusively owns its ordered item lines; items cannot outlive the
// header.
//
// VanTransfer follows these invariants:
//   - At least one item; item product keys are the lines decremented from
//     the source warehouse when the transfer was created
//   - Status moves Loaded -> Delivered only once every item is drained
//   - Soft-deleted via the active flag, never removed
type VanTransfer struct {
	// id is the unique identifier for the transfer
	id kernel.UUID

	// vanID is the van carrying the stock
	vanID kernel.VanID

	// sourceWarehouseID is the warehouse the stock was loaded from
	sourceWarehouseID kernel.WarehouseID

	// destinationLocationID is the planned drop-off, nil when the van
	// serves multiple stops
	destinationLocationID *kernel.LocationID

	// driverName is a display-only snapshot taken at load time
	driverName string

	// deliveryDate is the planned delivery day, nil if unscheduled
	deliveryDate *time.Time

	// status is the current lifecycle state
	status Status

	// items are the product lines on the van, exclusively owned
	items []*Item

	// active is the soft-delete flag
	active bool

	guard guard.ConstructorGuard
}

// NewVanTransfer creates a Loaded transfer owning the given items.
// Destination, driver name, and delivery date are optional.
func NewVanTransfer(
	id kernel.UUID,
	vanID kernel.VanID,
	sourceWarehouseID kernel.WarehouseID,
	destinationLocationID *kernel.LocationID,
	driverName string,
	deliveryDate *time.Time,
	items []*Item,
) (*VanTransfer, error) {
	t := &VanTransfer{
		status: StatusLoaded,
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setVanID(vanID),
		t.setSourceWarehouseID(sourceWarehouseID),
		t.setDestination(destinationLocationID),
		t.setItems(items),
	); err != nil {
		return nil, err
	}

	t.driverName = driverName
	t.deliveryDate = deliveryDate
	return t, nil
}

// RestoreVanTransfer reconstructs a transfer from persistence with its
// current status, item state, and soft-delete flag.
func RestoreVanTransfer(
	id kernel.UUID,
	vanID kernel.VanID,
	sourceWarehouseID kernel.WarehouseID,
	destinationLocationID *kernel.LocationID,
	driverName string,
	deliveryDate *time.Time,
	status Status,
	items []*Item,
	active bool,
) (*VanTransfer, error) {
	t, err := NewVanTransfer(id, vanID, sourceWarehouseID, destinationLocationID, driverName, deliveryDate, items)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	t.status = status
	t.active = active
	return t, nil
}

// IsEqual compares two transfers by their unique identifiers.
func (t *VanTransfer) IsEqual(other *VanTransfer) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the transfer's unique identifier.
func (t *VanTransfer) ID() kernel.UUID { return t.id }

// VanID returns the carrying van.
func (t *VanTransfer) VanID() kernel.VanID { return t.vanID }

// SourceWarehouseID returns the warehouse the stock was loaded from.
func (t *VanTransfer) SourceWarehouseID() kernel.WarehouseID { return t.sourceWarehouseID }

// DestinationLocationID returns the planned drop-off location, nil when the
// van serves multiple stops.
func (t *VanTransfer) DestinationLocationID() *kernel.LocationID { return t.destinationLocationID }

// DriverName returns the display snapshot of the driver's name.
func (t *VanTransfer) DriverName() string { return t.driverName }

// DeliveryDate returns the planned delivery day, nil if unscheduled.
func (t *VanTransfer) DeliveryDate() *time.Time { return t.deliveryDate }

// Status returns the current lifecycle state.
func (t *VanTransfer) Status() Status { return t.status }

// Items returns the owned product lines in load order.
func (t *VanTransfer) Items() []*Item { return t.items }

// IsActive reports the soft-delete state.
func (t *VanTransfer) IsActive() bool { return t.active }

// FindItem returns the line for the given product key, nil if absent.
func (t *VanTransfer) FindItem(key kernel.ProductKey) *Item {
	for _, item := range t.items {
		if item.ProductKey().IsEqual(key) {
			return item
		}
	}
	return nil
}

// IsFullyDrained reports whether every item's remaining quantity is zero.
func (t *VanTransfer) IsFullyDrained() bool {
	for _, item := range t.items {
		if item.Remaining() > 0 {
			return false
		}
	}
	return true
}

// Deliver marks the transfer delivered once every item has been drained.
// Fails with ErrTransferNotFullyDrained while stock remains on the van.
func (t *VanTransfer) Deliver() error {
	if err := t.Validate(); err != nil {
		return err
	}

	if !t.IsFullyDrained() {
		return ErrTransferNotFullyDrained
	}

	newStatus, err := t.status.Deliver()
	if err != nil {
		return err
	}

	t.status = newStatus
	return nil
}

// Validate ensures the VanTransfer instance was properly constructed.
func (t *VanTransfer) Validate() error {
	if t == nil {
		return ErrVanTransferIsNotConstructed
	}
	return t.guard.Validate(ErrVanTransferIsNotConstructed)
}

func (t *VanTransfer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *VanTransfer) setVanID(vanID kernel.VanID) error {
	if err := vanID.Validate(); err != nil {
		return err
	}
	t.vanID = vanID
	return nil
}

func (t *VanTransfer) setSourceWarehouseID(warehouseID kernel.WarehouseID) error {
	if err := warehouseID.Validate(); err != nil {
		return err
	}
	t.sourceWarehouseID = warehouseID
	return nil
}

func (t *VanTransfer) setDestination(locationID *kernel.LocationID) error {
	if locationID != nil {
		if err := locationID.Validate(); err != nil {
			return err
		}
	}
	t.destinationLocationID = locationID
	return nil
}

func (t *VanTransfer) setItems(items []*Item) error {
	if len(items) == 0 {
		return ErrTransferHasNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	for i, item := range items {
		for _, other := range items[i+1:] {
			if item.ProductKey().IsEqual(other.ProductKey()) {
				return errs.NewValueIsInvalidError("items contain duplicate product key " + item.ProductKey().String())
			}
		}
	}

	t.items = items
	return nil
}
