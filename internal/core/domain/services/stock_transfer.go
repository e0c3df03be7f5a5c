package services

import (
	"fmt"
	"time"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/core/domain/model/transfer"
	"supplyline/internal/pkg/errs"
)

// LoadLine is one requested product line for a warehouse-to-van load.
type LoadLine struct {
	Key      kernel.ProductKey
	Quantity int
}

// LoadResult reports how a warehouse-to-van load landed. The transfer header
// carries the moved lines; WarehouseUpdated holds the decremented source
// records; VanUpdated and VanCreated are the van stage records that absorbed
// them.
type LoadResult struct {
	Transfer         *transfer.VanTransfer
	WarehouseUpdated []*ledger.StockRecord
	VanUpdated       []*ledger.StockRecord
	VanCreated       []*ledger.StockRecord
}

// UnloadResult reports how a van unload landed. Van stage records were
// decremented, location records incremented or created.
type UnloadResult struct {
	VanUpdated      []*ledger.StockRecord
	LocationUpdated []*ledger.StockRecord
	LocationCreated []*ledger.StockRecord
}

// StockTransferService is a domain service responsible for moving stock
// along the warehouse, van, and location tiers of the inventory chain while
// preserving quantity conservation.
//
// Key responsibilities:
//   - Loading a van from warehouse stock as a single all-or-nothing operation
//   - Unloading a van into location stock, draining the transfer items
//   - Keeping the van stage ledger in step with the transfer items
//   - Ensuring no stock line ever goes negative
//
// Business rules:
//   - Every requested line is checked against warehouse stock before any
//     decrement is applied; the first shortfall aborts the whole load
//   - Total quantity is conserved at every step: warehouse decrements equal
//     van increments, and van decrements equal location increments
//   - A fully drained transfer is marked Delivered
//
// Example usage:
//
//	svc := NewStockTransferService()
//	lines := []LoadLine{{Key: key, Quantity: 10}}
//
//	result, err := svc.LoadVan(transferID, vanID, warehouseID, nil, "J. Albano", nil,
//	    lines, warehouseStock, vanStock, actor, time.Now())
//	if errors.Is(err, ledger.ErrInsufficientStock) {
//	    // Warehouse cannot cover the request, nothing was decremented
//	    return
//	}
type StockTransferService struct{}

// NewStockTransferService creates a new StockTransferService instance.
func NewStockTransferService() StockTransferService {
	return StockTransferService{}
}

// LoadVan decrements warehouse stock for every requested line, increments the
// van stage ledger by the same amounts, and builds a Loaded VanTransfer
// carrying the lines.
//
// Parameters:
//   - transferID: identifier for the new transfer
//   - vanID, warehouseID: the van being loaded and the source warehouse
//   - destination: optional planned drop-off location
//   - driverName, deliveryDate: optional header snapshot fields
//   - lines: the requested product lines, each with a positive quantity
//   - warehouseStock: the warehouse's active stock records
//   - vanStock: the van's active stock records
//   - actor, now: audit stamp for the movements
//
// Returns:
//   - LoadResult: the new transfer plus the van records it landed in
//   - error: InsufficientStockError for the first line the warehouse cannot
//     cover, validation errors otherwise
//
// The check phase runs over all lines before any record is mutated, so a
// failed load leaves both ledgers untouched.
func (s StockTransferService) LoadVan(
	transferID kernel.UUID,
	vanID kernel.VanID,
	warehouseID kernel.WarehouseID,
	destination *kernel.LocationID,
	driverName string,
	deliveryDate *time.Time,
	lines []LoadLine,
	warehouseStock []*ledger.StockRecord,
	vanStock []*ledger.StockRecord,
	actor kernel.UserID,
	now time.Time,
) (LoadResult, error) {
	if err := warehouseID.Validate(); err != nil {
		return LoadResult{}, err
	}

	if err := vanID.Validate(); err != nil {
		return LoadResult{}, err
	}

	if len(lines) == 0 {
		return LoadResult{}, transfer.ErrTransferHasNoItems
	}

	// Check phase: every line must be coverable before anything moves.
	seen := make(map[string]bool, len(lines))
	for _, line := range lines {
		if err := line.Key.Validate(); err != nil {
			return LoadResult{}, err
		}

		if line.Quantity <= 0 {
			return LoadResult{}, errs.NewValueIsInvalidErrorWithCause(
				"quantity is invalid",
				fmt.Errorf("%d is not greater than 0", line.Quantity),
			)
		}

		if seen[line.Key.String()] {
			return LoadResult{}, errs.NewValueIsInvalidError(
				"lines contain duplicate product key " + line.Key.String())
		}
		seen[line.Key.String()] = true

		record := findActiveRecord(warehouseStock, line.Key)
		available := 0
		if record != nil {
			available = record.Quantity()
		}
		if available < line.Quantity {
			return LoadResult{}, ledger.NewInsufficientStockError(
				ledger.StageWarehouse, int64(warehouseID), line.Key, available, line.Quantity)
		}
	}

	// Apply phase: move each line from the warehouse onto the van.
	var result LoadResult
	items := make([]*transfer.Item, 0, len(lines))
	for _, line := range lines {
		source := findActiveRecord(warehouseStock, line.Key)
		if _, err := source.Adjust(-line.Quantity, actor, now); err != nil {
			return LoadResult{}, err
		}
		result.WarehouseUpdated = append(result.WarehouseUpdated, source)

		vanRecord := findActiveRecord(vanStock, line.Key)
		if vanRecord != nil {
			if _, err := vanRecord.Adjust(line.Quantity, actor, now); err != nil {
				return LoadResult{}, err
			}
			result.VanUpdated = append(result.VanUpdated, vanRecord)
		} else {
			created, err := ledger.NewStockRecord(
				ledger.StageVan, int64(vanID), line.Key, line.Quantity, actor, now)
			if err != nil {
				return LoadResult{}, err
			}
			result.VanCreated = append(result.VanCreated, created)
		}

		item, err := transfer.NewItem(kernel.NewUUID(), line.Key, line.Quantity)
		if err != nil {
			return LoadResult{}, err
		}
		items = append(items, item)
	}

	vt, err := transfer.NewVanTransfer(
		transferID, vanID, warehouseID, destination, driverName, deliveryDate, items)
	if err != nil {
		return LoadResult{}, err
	}

	result.Transfer = vt
	return result, nil
}

// UnloadToLocation drains every remaining transfer item off the van stage
// ledger into location stock and marks the transfer Delivered.
//
// Parameters:
//   - vt: the Loaded transfer to drain
//   - locationID: the receiving location
//   - vanStock: the van's active stock records for the transfer's lines
//   - locationStock: the location's active stock records
//   - actor, now: audit stamp for the movements
//
// Returns:
//   - UnloadResult: the records touched on both tiers
//   - error: InsufficientStockError if the van stage ledger does not cover
//     a drained line, validation or transition errors otherwise; items
//     already drained are skipped, not failed
//
// Lines the location does not hold yet get a fresh StockRecord; the caller
// persists every record the result references.
func (s StockTransferService) UnloadToLocation(
	vt *transfer.VanTransfer,
	locationID kernel.LocationID,
	vanStock []*ledger.StockRecord,
	locationStock []*ledger.StockRecord,
	actor kernel.UserID,
	now time.Time,
) (UnloadResult, error) {
	if err := vt.Validate(); err != nil {
		return UnloadResult{}, err
	}

	if err := locationID.Validate(); err != nil {
		return UnloadResult{}, err
	}

	var result UnloadResult
	for _, item := range vt.Items() {
		if item.Remaining() == 0 {
			continue
		}

		vanRecord := findActiveRecord(vanStock, item.ProductKey())
		available := 0
		if vanRecord != nil {
			available = vanRecord.Quantity()
		}
		if available < item.Remaining() {
			return UnloadResult{}, ledger.NewInsufficientStockError(
				ledger.StageVan, int64(vt.VanID()), item.ProductKey(), available, item.Remaining())
		}

		drained, err := item.Drain()
		if err != nil {
			return UnloadResult{}, err
		}

		if _, err = vanRecord.Adjust(-drained, actor, now); err != nil {
			return UnloadResult{}, err
		}
		result.VanUpdated = append(result.VanUpdated, vanRecord)

		destination := findActiveRecord(locationStock, item.ProductKey())
		if destination != nil {
			if _, err = destination.Adjust(drained, actor, now); err != nil {
				return UnloadResult{}, err
			}
			result.LocationUpdated = append(result.LocationUpdated, destination)
			continue
		}

		created, err := ledger.NewStockRecord(
			ledger.StageLocation, int64(locationID), item.ProductKey(), drained, actor, now)
		if err != nil {
			return UnloadResult{}, err
		}
		result.LocationCreated = append(result.LocationCreated, created)
	}

	if err := vt.Deliver(); err != nil {
		return UnloadResult{}, err
	}

	return result, nil
}

// findActiveRecord returns the active record for the given product key,
// nil if the slice holds none.
func findActiveRecord(records []*ledger.StockRecord, key kernel.ProductKey) *ledger.StockRecord {
	for _, record := range records {
		if record.IsActive() && record.ProductKey().IsEqual(key) {
			return record
		}
	}
	return nil
}
