package commands

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/ledger"
)

// AdjustStockCommandHandler handles manual stock corrections.
//
// Adjustments against the same line serialize on a row lock, so concurrent
// corrections never lose updates and the non-negative quantity invariant
// holds under contention.
//
// Example:
//
//	handler := NewAdjustStockCommandHandler(uowFactory)
//	cmd, _ := NewAdjustStockCommand(ledger.StageLocation, 30, 341, nil, -2, actorID)
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ledger.ErrInsufficientStock) {
//	    // The line cannot cover the removal
//	}
type AdjustStockCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewAdjustStockCommandHandler creates a handler for stock adjustment operations.
// Requires a LedgerUoWFactory for transactional persistence.
func NewAdjustStockCommandHandler(uowFactory LedgerUoWFactory) AdjustStockCommandHandler {
	return AdjustStockCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stock adjustment command.
// A positive delta against a line the entity does not hold yet creates the
// record; a negative delta against a missing line is an insufficiency.
func (h AdjustStockCommandHandler) Handle(ctx context.Context, cmd AdjustStockCommand) error {
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

	record, err := ledgerRepo.GetForUpdate(ctx, cmd.Stage(), cmd.EntityID(), cmd.ProductKey())
	if err != nil {
		return err
	}

	switch {
	case record != nil:
		if _, err = record.Adjust(cmd.Delta(), cmd.ActorID(), now); err != nil {
			return err
		}
		if err = ledgerRepo.Update(ctx, record); err != nil {
			return err
		}

	case cmd.Delta() > 0:
		record, err = ledger.NewStockRecord(
			cmd.Stage(), cmd.EntityID(), cmd.ProductKey(), cmd.Delta(), cmd.ActorID(), now)
		if err != nil {
			return err
		}
		if err = ledgerRepo.Add(ctx, record); err != nil {
			return err
		}

	default:
		return ledger.NewInsufficientStockError(
			cmd.Stage(), cmd.EntityID(), cmd.ProductKey(), 0, -cmd.Delta())
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
