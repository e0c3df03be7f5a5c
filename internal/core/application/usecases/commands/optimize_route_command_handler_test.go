package commands_test

import (
	"errors"
	"testing"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocatedStop(t *testing.T, locationID kernel.LocationID, order int, lat, long float64) *route.Stop {
	t.Helper()

	stop, err := route.NewStop(
		kernel.NewUUID(), locationID, order, nil, nil, nil, "12 Pier Rd",
		&route.GeoPoint{Lat: lat, Long: long})
	require.NoError(t, err)

	return stop
}

func TestOptimizeRouteCommandHandler_Handle_ReordersAndSchedules(t *testing.T) {
	ctx := t.Context()
	first := newLocatedStop(t, 30, 1, 51.51, -0.12)
	second := newLocatedStop(t, 31, 2, 51.53, -0.09)
	routeAggregate := newDraftRoute(t, first, second)

	cmd, err := commands.NewOptimizeRouteCommand(routeAggregate.ID(), "van")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, routeAggregate.ID()).Return(routeAggregate, nil).Once(),
		routeRepo.On("Update", ctx, routeAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	optimizer := new(MockRouteOptimizer)
	optimizer.On("Optimize", ctx, mock.MatchedBy(func(req ports.OptimizeRequest) bool {
		return req.Vehicle == "van" && len(req.Waypoints) == 2
	})).Return(ports.OptimizeResponse{
		Sequence: []kernel.UUID{second.ID(), first.ID()},
	}, nil).Once()

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOptimizeRouteCommandHandler(factory, optimizer)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, route.StatusScheduled, routeAggregate.Status())
	require.Equal(t, 1, second.StopOrder())
	require.Equal(t, 2, first.StopOrder())
	optimizer.AssertExpectations(t)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOptimizeRouteCommandHandler_Handle_OptimizerFailureStillSchedules(t *testing.T) {
	ctx := t.Context()
	first := newLocatedStop(t, 30, 1, 51.51, -0.12)
	second := newLocatedStop(t, 31, 2, 51.53, -0.09)
	routeAggregate := newDraftRoute(t, first, second)

	cmd, err := commands.NewOptimizeRouteCommand(routeAggregate.ID(), "van")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, routeAggregate.ID()).Return(routeAggregate, nil).Once(),
		routeRepo.On("Update", ctx, routeAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	optimizer := new(MockRouteOptimizer)
	optimizer.On("Optimize", ctx, mock.AnythingOfType("ports.OptimizeRequest")).
		Return(ports.OptimizeResponse{}, errors.New("gateway timeout")).Once()

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOptimizeRouteCommandHandler(factory, optimizer)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, route.StatusScheduled, routeAggregate.Status())
	require.Equal(t, 1, first.StopOrder())
	require.Equal(t, 2, second.StopOrder())
	optimizer.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestOptimizeRouteCommandHandler_Handle_SingleLocatedStopSkipsOptimizer(t *testing.T) {
	ctx := t.Context()
	first := newLocatedStop(t, 30, 1, 51.51, -0.12)
	second := newDraftStop(t, 31, 2)
	routeAggregate := newDraftRoute(t, first, second)

	cmd, err := commands.NewOptimizeRouteCommand(routeAggregate.ID(), "")
	require.NoError(t, err)

	routeRepo := new(MockRouteRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("RouteRepository").Return(routeRepo).Once(),
		routeRepo.On("Get", ctx, routeAggregate.ID()).Return(routeAggregate, nil).Once(),
		routeRepo.On("Update", ctx, routeAggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	optimizer := new(MockRouteOptimizer)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewOptimizeRouteCommandHandler(factory, optimizer)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, route.StatusScheduled, routeAggregate.Status())
	optimizer.AssertNotCalled(t, "Optimize", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}
