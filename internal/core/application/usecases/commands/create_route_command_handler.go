package commands

import (
	"context"

	"supplyline/internal/core/domain/model/route"
)

// CreateRouteCommandHandler handles route planning.
//
// The route with its stops and the InRoute transition of every referenced
// request commit in one transaction; a duplicate attachment anywhere rolls
// the whole plan back.
type CreateRouteCommandHandler struct {
	uowFactory RouteRequestUoWFactory
}

// NewCreateRouteCommandHandler creates a handler for route creation operations.
// Requires a RouteRequestUoWFactory for transactional persistence.
func NewCreateRouteCommandHandler(uowFactory RouteRequestUoWFactory) CreateRouteCommandHandler {
	return CreateRouteCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the route creation command.
// Builds the Draft route, attaches every referenced fulfillment request to
// its stop, and persists everything together.
func (h CreateRouteCommandHandler) Handle(ctx context.Context, cmd CreateRouteCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	routeAggregate, err := route.NewRoute(
		cmd.RouteID(), cmd.DriverID(), cmd.WarehouseID(), cmd.DeliveryDate(), cmd.Stops())
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

	requestRepo := uow.RequestRepository()

	for _, stop := range routeAggregate.Stops() {
		if restockID := stop.RestockRequestID(); restockID != nil {
			restock, getErr := requestRepo.GetRestock(ctx, *restockID)
			if getErr != nil {
				return getErr
			}
			if err = restock.AttachToStop(stop.ID()); err != nil {
				return err
			}
			if err = requestRepo.UpdateRestock(ctx, restock); err != nil {
				return err
			}
		}

		if followupID := stop.FollowupRequestID(); followupID != nil {
			followup, getErr := requestRepo.GetFollowup(ctx, *followupID)
			if getErr != nil {
				return getErr
			}
			if err = followup.AttachToStop(stop.ID()); err != nil {
				return err
			}
			if err = requestRepo.UpdateFollowup(ctx, followup); err != nil {
				return err
			}
		}
	}

	if err = uow.RouteRepository().Add(ctx, routeAggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
