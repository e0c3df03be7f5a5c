package commands

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/core/domain/services"
)

// TransferWarehouseToVanCommandHandler handles the business logic for
// loading a van from warehouse stock.
//
// The warehouse and van stock rows are read with row locks so concurrent
// loads against the same warehouse serialize; the whole movement commits or
// rolls back as one transaction.
//
// Example:
//
//	handler := NewTransferWarehouseToVanCommandHandler(uowFactory)
//	cmd, _ := NewTransferWarehouseToVanCommand(transferID, vanID, warehouseID, nil, "", nil, lines, actorID)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ledger.ErrInsufficientStock) {
//	    // Warehouse cannot cover the request, nothing was moved
//	}
type TransferWarehouseToVanCommandHandler struct {
	uowFactory TransferUoWFactory
}

// NewTransferWarehouseToVanCommandHandler creates a handler for van load operations.
// Requires a TransferUoWFactory for transactional persistence.
func NewTransferWarehouseToVanCommandHandler(uowFactory TransferUoWFactory) TransferWarehouseToVanCommandHandler {
	return TransferWarehouseToVanCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the van load command.
// Locks the warehouse and van stock rows, runs the all-or-nothing movement
// through the stock transfer service, and persists the transfer together
// with every touched stock record.
func (h TransferWarehouseToVanCommandHandler) Handle(ctx context.Context, cmd TransferWarehouseToVanCommand) error {
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

	warehouseStock, err := ledgerRepo.GetAllForEntityForUpdate(
		ctx, ledger.StageWarehouse, int64(cmd.WarehouseID()))
	if err != nil {
		return err
	}

	vanStock, err := ledgerRepo.GetAllForEntityForUpdate(
		ctx, ledger.StageVan, int64(cmd.VanID()))
	if err != nil {
		return err
	}

	result, err := services.NewStockTransferService().LoadVan(
		cmd.TransferID(),
		cmd.VanID(),
		cmd.WarehouseID(),
		cmd.DestinationLocationID(),
		cmd.DriverName(),
		cmd.DeliveryDate(),
		cmd.Lines(),
		warehouseStock,
		vanStock,
		cmd.ActorID(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	for _, record := range result.WarehouseUpdated {
		if err = ledgerRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	for _, record := range result.VanUpdated {
		if err = ledgerRepo.Update(ctx, record); err != nil {
			return err
		}
	}

	for _, record := range result.VanCreated {
		if err = ledgerRepo.Add(ctx, record); err != nil {
			return err
		}
	}

	if err = transferRepo.Add(ctx, result.Transfer); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
