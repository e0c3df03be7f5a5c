package commands_test

import (
	"testing"
	"time"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/request"
	"supplyline/internal/core/domain/model/route"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPendingRestockRequest(t *testing.T) *request.RestockRequest {
	t.Helper()

	key, err := kernel.NewProductKey(341, nil)
	require.NoError(t, err)
	item, err := request.NewRequestItem(key, 6)
	require.NoError(t, err)

	restock, err := request.NewRestockRequest(
		kernel.NewUUID(), kernel.CustomerID(9), kernel.LocationID(30),
		time.Now(), []request.RequestItem{item})
	require.NoError(t, err)

	return restock
}

func TestCreateRouteCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	restock := newPendingRestockRequest(t)
	restockID := restock.ID()

	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), kernel.UserID(7), kernel.WarehouseID(1), time.Now().AddDate(0, 0, 1),
		[]commands.StopInput{
			{StopID: kernel.NewUUID(), LocationID: 30, StopOrder: 1,
				RestockRequestID: &restockID, Address: "12 Pier Rd"},
			{StopID: kernel.NewUUID(), LocationID: 31, StopOrder: 2, Address: "4 Dock Ln"},
		})
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("GetRestock", ctx, restockID).Return(restock, nil).Once(),
		requestRepo.On("UpdateRestock", ctx, restock).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Add", ctx, mock.AnythingOfType("*route.Route")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, request.StatusInRoute, restock.Status())
	requestRepo.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle_RequestAlreadyAttached(t *testing.T) {
	ctx := t.Context()
	restock := newPendingRestockRequest(t)
	restockID := restock.ID()
	require.NoError(t, restock.AttachToStop(kernel.NewUUID()))

	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), kernel.UserID(7), kernel.WarehouseID(1), time.Now().AddDate(0, 0, 1),
		[]commands.StopInput{
			{StopID: kernel.NewUUID(), LocationID: 30, StopOrder: 1,
				RestockRequestID: &restockID, Address: "12 Pier Rd"},
		})
	require.NoError(t, err)

	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		requestRepo.On("GetRestock", ctx, restockID).Return(restock, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, request.ErrDuplicateAttachment)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateRouteCommandHandler_Handle_OrderConflict(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateRouteCommand(
		kernel.NewUUID(), kernel.UserID(7), kernel.WarehouseID(1), time.Now().AddDate(0, 0, 1),
		[]commands.StopInput{
			{StopID: kernel.NewUUID(), LocationID: 30, StopOrder: 1, Address: "12 Pier Rd"},
			{StopID: kernel.NewUUID(), LocationID: 31, StopOrder: 1, Address: "4 Dock Ln"},
		})
	require.NoError(t, err)

	factory := new(MockRouteRequestUoWFactory)

	h := commands.NewCreateRouteCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, route.ErrOrderingConflict)
	factory.AssertNotCalled(t, "Create")
}
