package commands

import (
	"context"
	"errors"

	"supplyline/internal/core/domain/model/kernel"
)

// CompleteFinishedRoutesCommandHandler sweeps in-progress routes and
// completes the ones whose active stops are all Delivered or Failed. Each
// route is completed in its own transaction so one failing route does not
// hold back the rest.
type CompleteFinishedRoutesCommandHandler struct {
	uowFactory   RouteUoWFactory
	routeHandler CompleteRouteCommandHandler
}

// NewCompleteFinishedRoutesCommandHandler creates a handler for the
// completion sweep. Requires a RouteUoWFactory for transactional persistence.
func NewCompleteFinishedRoutesCommandHandler(uowFactory RouteUoWFactory) CompleteFinishedRoutesCommandHandler {
	return CompleteFinishedRoutesCommandHandler{
		uowFactory:   uowFactory,
		routeHandler: NewCompleteRouteCommandHandler(uowFactory),
	}
}

// Handle processes the sweep command.
// Routes that still have open stops are left alone.
func (h CompleteFinishedRoutesCommandHandler) Handle(ctx context.Context, cmd CompleteFinishedRoutesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	routeIDs, err := h.collectFinishedRouteIDs(ctx)
	if err != nil {
		return err
	}

	var errs []error
	for _, routeID := range routeIDs {
		routeCmd, cmdErr := NewCompleteRouteCommand(routeID)
		if cmdErr != nil {
			errs = append(errs, cmdErr)
			continue
		}

		if handleErr := h.routeHandler.Handle(ctx, routeCmd); handleErr != nil {
			errs = append(errs, handleErr)
		}
	}

	return errors.Join(errs...)
}

func (h CompleteFinishedRoutesCommandHandler) collectFinishedRouteIDs(ctx context.Context) ([]kernel.UUID, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	routes, err := uow.RouteRepository().GetAllInProgress(ctx)
	if err != nil {
		return nil, err
	}

	routeIDs := make([]kernel.UUID, 0, len(routes))
	for _, r := range routes {
		if r.AllStopsTerminal() {
			routeIDs = append(routeIDs, r.ID())
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return routeIDs, nil
}
