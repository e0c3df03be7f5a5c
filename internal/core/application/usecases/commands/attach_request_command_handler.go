package commands

import (
	"context"
)

// AttachRequestCommandHandler handles linking fulfillment requests to route
// stops. The stop reference and the request transition to InRoute commit in
// one transaction, so a request can never point at a stop that does not
// reference it back.
type AttachRequestCommandHandler struct {
	uowFactory RouteRequestUoWFactory
}

// NewAttachRequestCommandHandler creates a handler for request attachment operations.
// Requires a RouteRequestUoWFactory for transactional persistence.
func NewAttachRequestCommandHandler(uowFactory RouteRequestUoWFactory) AttachRequestCommandHandler {
	return AttachRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the attachment command.
// Loads the route and the request, links both sides, and persists them
// together. Attaching an already attached request fails with
// request.DuplicateAttachmentError.
func (h AttachRequestCommandHandler) Handle(ctx context.Context, cmd AttachRequestCommand) error {
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
	requestRepo := uow.RequestRepository()

	routeAggregate, err := routeRepo.Get(ctx, cmd.RouteID())
	if err != nil {
		return err
	}

	if err = routeAggregate.AttachRequestToStop(
		cmd.StopID(), cmd.RestockRequestID(), cmd.FollowupRequestID()); err != nil {
		return err
	}

	if cmd.RestockRequestID() != nil {
		restock, getErr := requestRepo.GetRestock(ctx, *cmd.RestockRequestID())
		if getErr != nil {
			return getErr
		}
		if err = restock.AttachToStop(cmd.StopID()); err != nil {
			return err
		}
		if err = requestRepo.UpdateRestock(ctx, restock); err != nil {
			return err
		}
	} else {
		followup, getErr := requestRepo.GetFollowup(ctx, *cmd.FollowupRequestID())
		if getErr != nil {
			return getErr
		}
		if err = followup.AttachToStop(cmd.StopID()); err != nil {
			return err
		}
		if err = requestRepo.UpdateFollowup(ctx, followup); err != nil {
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
