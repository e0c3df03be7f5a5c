package commands

import (
	"context"

	"supplyline/internal/core/domain/model/request"
)

// CreateRestockRequestCommandHandler handles restock request registration.
// New requests start Pending and become eligible for route planning.
type CreateRestockRequestCommandHandler struct {
	uowFactory RequestUoWFactory
}

// NewCreateRestockRequestCommandHandler creates a handler for restock request creation.
// Requires a RequestUoWFactory for transactional persistence.
func NewCreateRestockRequestCommandHandler(uowFactory RequestUoWFactory) CreateRestockRequestCommandHandler {
	return CreateRestockRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the restock request creation command.
func (h CreateRestockRequestCommandHandler) Handle(ctx context.Context, cmd CreateRestockRequestCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	aggregate, err := request.NewRestockRequest(
		cmd.RequestID(), cmd.CustomerID(), cmd.LocationID(), cmd.RequestDate(), cmd.Items())
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

	if err = uow.RequestRepository().AddRestock(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
