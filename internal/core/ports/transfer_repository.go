package ports

import (
	"context"

	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/transfer"
)

// TransferRepository defines the persistence contract for van transfer
// aggregates. Transfers are stored with their item lines; the header and its
// items are always loaded and saved together.
type TransferRepository interface {
	// Add persists a new transfer aggregate with all of its items.
	Add(ctx context.Context, aggregate *transfer.VanTransfer) error

	// Update persists changes to an existing transfer and its items.
	Update(ctx context.Context, aggregate *transfer.VanTransfer) error

	// Get retrieves a transfer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*transfer.VanTransfer, error)

	// GetActiveByDestination retrieves the Loaded transfer destined for the
	// given location, nil if no van is currently carrying stock there.
	// At most one such transfer is expected per location at a time; with
	// several, the earliest loaded wins.
	GetActiveByDestination(ctx context.Context, locationID kernel.LocationID) (*transfer.VanTransfer, error)

	// GetAllLoadedByVan retrieves every Loaded transfer currently on the
	// given van.
	GetAllLoadedByVan(ctx context.Context, vanID kernel.VanID) ([]*transfer.VanTransfer, error)
}
