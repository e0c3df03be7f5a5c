package commands

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/ledger"
)

// RecordOutwardUsageCommandHandler handles the business logic for recording
// stock leaving a location.
//
// The location decrement and the outward append happen in one transaction;
// usage that the location's stock cannot cover is rejected with
// ledger.ErrInsufficientStock.
type RecordOutwardUsageCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewRecordOutwardUsageCommandHandler creates a handler for outward usage recording.
// Requires a LedgerUoWFactory for transactional persistence.
func NewRecordOutwardUsageCommandHandler(uowFactory LedgerUoWFactory) RecordOutwardUsageCommandHandler {
	return RecordOutwardUsageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the outward usage command.
// Locks the location's stock line, decrements it, and appends the immutable
// outward row in the same transaction.
func (h RecordOutwardUsageCommandHandler) Handle(ctx context.Context, cmd RecordOutwardUsageCommand) error {
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
	now := time.Now().UTC()

	record, err := ledgerRepo.GetForUpdate(
		ctx, ledger.StageLocation, int64(cmd.LocationID()), cmd.ProductKey())
	if err != nil {
		return err
	}
	if record == nil {
		return ledger.NewInsufficientStockError(
			ledger.StageLocation, int64(cmd.LocationID()), cmd.ProductKey(), 0, cmd.Quantity())
	}

	if _, err = record.Adjust(-cmd.Quantity(), cmd.ActorID(), now); err != nil {
		return err
	}

	if err = ledgerRepo.Update(ctx, record); err != nil {
		return err
	}

	outward, err := ledger.NewOutwardRecord(
		cmd.RecordID(), cmd.LocationID(), cmd.ProductKey(), cmd.Quantity(), cmd.ActorID(), now)
	if err != nil {
		return err
	}

	if err = ledgerRepo.AddOutward(ctx, outward); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
