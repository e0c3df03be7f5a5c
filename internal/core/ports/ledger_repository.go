// Package ports defines repository and gateway interfaces for the supply core.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"
)

// LedgerRepository defines the persistence contract for stock records and the
// append-only usage rows that draw against location stock.
type LedgerRepository interface {
	// Add persists a new stock record.
	// The record must be valid and its (stage, entity, product) line must not
	// already hold an active record.
	Add(ctx context.Context, record *ledger.StockRecord) error

	// Update persists changes to an existing stock record.
	Update(ctx context.Context, record *ledger.StockRecord) error

	// Get retrieves the active stock record for one line, nil if the entity
	// holds no stock on that line.
	Get(ctx context.Context, stage ledger.Stage, entityID int64, key kernel.ProductKey) (*ledger.StockRecord, error)

	// GetForUpdate retrieves one line like Get but takes a row lock for the
	// lifetime of the surrounding transaction. Concurrent adjustments of the
	// same line serialize on this lock.
	GetForUpdate(ctx context.Context, stage ledger.Stage, entityID int64, key kernel.ProductKey) (*ledger.StockRecord, error)

	// GetAllForEntity retrieves every active stock record held by one entity
	// at one stage.
	GetAllForEntity(ctx context.Context, stage ledger.Stage, entityID int64) ([]*ledger.StockRecord, error)

	// GetAllForEntityForUpdate retrieves an entity's active records with row
	// locks, for multi-line movements that must see a consistent snapshot.
	GetAllForEntityForUpdate(ctx context.Context, stage ledger.Stage, entityID int64) ([]*ledger.StockRecord, error)

	// AddOutward appends an outward usage row. Rows are immutable once written.
	AddOutward(ctx context.Context, record *ledger.OutwardRecord) error

	// AddUnlisted records barcode-only stock found at a location. Rows
	// accumulate on the (barcode, location) key: recording the same barcode
	// twice adds the quantities.
	AddUnlisted(ctx context.Context, record *ledger.UnlistedStock) error
}
