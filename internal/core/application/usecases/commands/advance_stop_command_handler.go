package commands

import (
	"context"
	"time"

	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/core/domain/services"
)

// AdvanceStopCommandHandler handles stop lifecycle transitions.
//
// The Delivered transition carries the heavy lifting: the van transfer
// destined for the stop's location is unloaded into location stock and the
// linked fulfillment request is marked Fulfilled, all in the same
// transaction as the status change. A stock shortfall rolls everything
// back, leaving the stop Arrived so the delivery can be retried.
//
// Example:
//
//	handler := NewAdvanceStopCommandHandler(uowFactory)
//	cmd, _ := NewAdvanceStopCommand(routeID, stopID, route.StopArrived, "", actorID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
//	// Stop is Arrived and its delivery OTP has been issued
type AdvanceStopCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceStopCommandHandler creates a handler for stop transitions.
// Requires the full UoWFactory: delivery touches routes, requests,
// transfers, and both ledgers.
func NewAdvanceStopCommandHandler(uowFactory UoWFactory) AdvanceStopCommandHandler {
	return AdvanceStopCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the stop transition command.
func (h AdvanceStopCommandHandler) Handle(ctx context.Context, cmd AdvanceStopCommand) error {
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

	routeRepo := uow.RouteRepository()
	now := time.Now().UTC()

	routeAggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = routeAggregate.AdvanceStop(cmd.StopID(), cmd.Target(), cmd.OtpCode(), now); err != nil {
		return err
	}

	if cmd.Target() == route.StopDelivered {
		stop, findErr := routeAggregate.FindStop(cmd.StopID())
		if findErr != nil {
			return findErr
		}

		if err = h.completeDelivery(ctx, uow, stop, cmd, now); err != nil {
			return err
		}
	}

	if err = routeRepo.Update(ctx, routeAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// completeDelivery performs the stock movement and request fulfillment tied
// to a delivered stop.
func (h AdvanceStopCommandHandler) completeDelivery(
	ctx context.Context,
	uow UoW,
	stop *route.Stop,
	cmd AdvanceStopCommand,
	now time.Time,
) error {
	if err := h.unloadTransfer(ctx, uow, stop, cmd, now); err != nil {
		return err
	}

	requestRepo := uow.RequestRepository()

	if restockID := stop.RestockRequestID(); restockID != nil {
		restock, err := requestRepo.GetRestock(ctx, *restockID)
		if err != nil {
			return err
		}
		if err = restock.MarkFulfilled(); err != nil {
			return err
		}
		if err = requestRepo.UpdateRestock(ctx, restock); err != nil {
			return err
		}
	}

	if followupID := stop.FollowupRequestID(); followupID != nil {
		followup, err := requestRepo.GetFollowup(ctx, *followupID)
		if err != nil {
			return err
		}
		if err = followup.MarkFulfilled(); err != nil {
			return err
		}
		if err = requestRepo.UpdateFollowup(ctx, followup); err != nil {
			return err
		}
	}

	return nil
}

// unloadTransfer moves the stock of the Loaded transfer destined for the
// stop's location into location stock. A stop without such a transfer is a
// visit without goods and needs no movement.
func (h AdvanceStopCommandHandler) unloadTransfer(
	ctx context.Context,
	uow UoW,
	stop *route.Stop,
	cmd AdvanceStopCommand,
	now time.Time,
) error {
	transferRepo := uow.TransferRepository()
	ledgerRepo := uow.LedgerRepository()

	vanTransfer, err := transferRepo.GetActiveByDestination(ctx, stop.LocationID())
	if err != nil {
		return err
	}
	if vanTransfer == nil {
		return nil
	}

	vanStock, err := ledgerRepo.GetAllForEntityForUpdate(
		ctx, ledger.StageVan, int64(vanTransfer.VanID()))
	if err != nil {
		return err
	}

	locationStock, err := ledgerRepo.GetAllForEntityForUpdate(
		ctx, ledger.StageLocation, int64(stop.LocationID()))
	if err != nil {
		return err
	}

	result, err := services.NewStockTransferService().UnloadToLocation(
		vanTransfer, stop.LocationID(), vanStock, locationStock, cmd.ActorID(), now)
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

	return transferRepo.Update(ctx, vanTransfer)
}
