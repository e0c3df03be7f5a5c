package commands

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/core/domain/services"
)

// TransferVanToLocationCommandHandler handles the business logic for
// unloading a van transfer into location stock.
//
// Example:
//
//	handler := NewTransferVanToLocationCommandHandler(uowFactory)
//	cmd, _ := NewTransferVanToLocationCommand(transferID, locationID, actorID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("unload failed: %w", err)
//	}
//	// Transfer is now Delivered and the location holds the stock
type TransferVanToLocationCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewTransferVanToLocationCommandHandler creates a handler for van unload operations.
// Requires a TransferUoWFactory for transactional persistence.
func NewTransferVanToLocationCommandHandler(uowFactory TransferUoWFactory) TransferVanToLocationCommandHandler {
	return TransferVanToLocationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the van unload command.
// Loads the transfer, locks the van and location stock rows, drains every
// remaining item into the location through the stock transfer service, and
// persists the delivered transfer with every touched record.
func (h TransferVanToLocationCommandHandler) Handle(ctx context.Context, cmd TransferVanToLocationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	ledgerRepo := uow.LedgerRepository()
	transferRepo := uow.TransferRepository()

	vanTransfer, err := transferRepo.Get(ctx, cmd.TransferID())
	if err != nil {
		return err
	}

	vanStock, err := ledgerRepo.GetAllForEntityForUpdate(
		ctx, ledger.StageVan, int64(vanTransfer.VanID()))
	if err != nil {
		return err
	}

	locationStock, err := ledgerRepo.GetAllForEntityForUpdate(
		ctx, ledger.StageLocation, int64(cmd.LocationID()))
	if err != nil {
		return err
	}

	result, err := services.NewStockTransferService().UnloadToLocation(
		vanTransfer, cmd.LocationID(), vanStock, locationStock, cmd.ActorID(), time.Now().UTC())
	if err != nil {
		return err
	}

	for _, record := range result.VanUpdated {
		if err = ledgerRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	for _, record := range result.LocationUpdated {
		if err = ledgerRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	for _, record := range result.LocationCreated {
		if err = ledgerRepo.Add(ctx, record); err != nil {
			return err
		}
	}

	if err = transferRepo.Update(ctx, vanTransfer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
