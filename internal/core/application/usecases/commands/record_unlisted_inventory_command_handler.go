package commands

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/ledger"
)

// RecordUnlistedInventoryCommandHandler handles the business logic for
// recording barcode-only stock found at a location. The row sits outside
// the conservation checks of the staged ledger.
type RecordUnlistedInventoryCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRecordUnlistedInventoryCommandHandler creates a handler for unlisted stock recording.
// Requires a LedgerUoWFactory for transactional persistence.
func NewRecordUnlistedInventoryCommandHandler(uowFactory LedgerUoWFactory) RecordUnlistedInventoryCommandHandler {
	return RecordUnlistedInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the unlisted stock command. The repository accumulates
// quantity on the (barcode, location) key.
func (h RecordUnlistedInventoryCommandHandler) Handle(ctx context.Context, cmd RecordUnlistedInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unlisted, err := ledger.NewUnlistedStock(
		cmd.Barcode(), cmd.LocationID(), cmd.Quantity(), cmd.ActorID(), time.Now().UTC())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.LedgerRepository().AddUnlisted(ctx, unlisted); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
