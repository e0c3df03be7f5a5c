package commands

import (
	"context"

	"supplyline/internal/core/domain/model/request"
)

// CreateFollowupRequestCommandHandler handles followup request registration.
type CreateFollowupRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateFollowupRequestCommandHandler creates a handler for followup request creation.
// Requires a RequestUoWFactory for transactional persistence.
func NewCreateFollowupRequestCommandHandler(uowFactory RequestUoWFactory) CreateFollowupRequestCommandHandler {
	return CreateFollowupRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the followup request creation command.
func (h CreateFollowupRequestCommandHandler) Handle(ctx context.Context, cmd CreateFollowupRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := request.NewFollowupRequest(
		cmd.RequestID(), cmd.CustomerID(), cmd.LocationID(), cmd.RequestDate())
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

	if err = uow.RequestRepository().AddFollowup(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
