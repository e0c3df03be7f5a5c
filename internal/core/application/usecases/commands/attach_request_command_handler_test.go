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

func newDraftRoute(t *testing.T, stops ...*route.Stop) *route.Route {
	t.Helper()

	r, err := route.NewRoute(
		kernel.NewUUID(), kernel.UserID(7), kernel.WarehouseID(1),
		time.Now().AddDate(0, 0, 1), stops)
	require.NoError(t, err)

	return r
}

func newDraftStop(t *testing.T, locationID kernel.LocationID, order int) *route.Stop {
	t.Helper()

	stop, err := route.NewStop(
		kernel.NewUUID(), locationID, order, nil, nil, nil, "12 Pier Rd", nil)
	require.NoError(t, err)

	return stop
}

func TestAttachRequestCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	stop := newDraftStop(t, 30, 1)
	routeAggregate := newDraftRoute(t, stop)
	restock := newPendingRestockRequest(t)
	restockID := restock.ID()

	cmd, err := commands.NewAttachRequestCommand(
		routeAggregate.ID(), stop.ID(), &restockID, nil)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		routeRepo.On("Get", ctx, routeAggregate.ID()).Return(routeAggregate, nil).Once(),
		requestRepo.On("GetRestock", ctx, restockID).Return(restock, nil).Once(),
		requestRepo.On("UpdateRestock", ctx, restock).Return(nil).Once(),
		routeRepo.On("Update", ctx, routeAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachRequestCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, request.StatusInRoute, restock.Status())
	require.NotNil(t, stop.RestockRequestID())
	require.True(t, restockID.IsEqual(*stop.RestockRequestID()))
	routeRepo.AssertExpectations(t)
	requestRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAttachRequestCommandHandler_Handle_StopAlreadyLinked(t *testing.T) {
	ctx := t.Context()
	existingID := kernel.NewUUID()
	stop, err := route.NewStop(
		kernel.NewUUID(), 30, 1, nil, &existingID, nil, "12 Pier Rd", nil)
	require.NoError(t, err)
	routeAggregate := newDraftRoute(t, stop)
	restockID := kernel.NewUUID()

	cmd, err := commands.NewAttachRequestCommand(
		routeAggregate.ID(), stop.ID(), &restockID, nil)
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	requestRepo := new(MockRequestRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		uow.On("RequestRepository").Return(requestRepo).Once(),
		routeRepo.On("Get", ctx, routeAggregate.ID()).Return(routeAggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockRouteRequestUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAttachRequestCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, route.ErrStopAlreadyLinked)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	requestRepo.AssertNotCalled(t, "GetRestock", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestAttachRequestCommand_RequiresExactlyOneRequest(t *testing.T) {
	restockID := kernel.NewUUID()
	followupID := kernel.NewUUID()

	_, err := commands.NewAttachRequestCommand(kernel.NewUUID(), kernel.NewUUID(), nil, nil)
	require.ErrorIs(t, err, commands.ErrExactlyOneRequestRequired)

	_, err = commands.NewAttachRequestCommand(kernel.NewUUID(), kernel.NewUUID(), &restockID, &followupID)
	require.ErrorIs(t, err, commands.ErrExactlyOneRequestRequired)
}
