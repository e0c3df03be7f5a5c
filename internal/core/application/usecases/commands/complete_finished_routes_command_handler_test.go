package commands_test

import (
	"testing"
	"time"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/domain/model/route"

	"github.com/stretchr/testify/require"
)

func newFinishedRoute(t *testing.T) *route.Route {
	t.Helper()

	stop := newDraftStop(t, 30, 1)
	r := newDraftRoute(t, stop)
	require.NoError(t, r.Schedule())
	require.NoError(t, r.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now()))
	require.NoError(t, r.AdvanceStop(stop.ID(), route.StopFailed, "", time.Now()))

	return r
}

func TestCompleteFinishedRoutesCommandHandler_Handle_CompletesOnlyFinishedRoutes(t *testing.T) {
	ctx := t.Context()

	finishedRoute := newFinishedRoute(t)

	openStop := newDraftStop(t, 31, 1)
	pendingStop := newDraftStop(t, 32, 2)
	openRoute := newDraftRoute(t, openStop, pendingStop)
	require.NoError(t, openRoute.Schedule())
	require.NoError(t, openRoute.AdvanceStop(openStop.ID(), route.StopEnRoute, "", time.Now()))

	routeRepo := new(MockRouteRepository)
	routeRepo.On("GetAllInProgress", ctx).
		Return([]*route.Route{finishedRoute, openRoute}, nil).Once()
	routeRepo.On("Get", ctx, finishedRoute.ID()).Return(finishedRoute, nil).Once()
	routeRepo.On("Update", ctx, finishedRoute).Return(nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Times(2)
	uow.On("RouteRepository").Return(routeRepo).Times(2)
	uow.On("Commit", ctx).Return(nil).Times(2)
	uow.On("Rollback", ctx).Return(nil).Times(2)

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Times(2)

	h := commands.NewCompleteFinishedRoutesCommandHandler(factory)
	err := h.Handle(ctx, commands.NewCompleteFinishedRoutesCommand())
	require.NoError(t, err)
	require.Equal(t, route.StatusCompleted, finishedRoute.Status())
	require.Equal(t, route.StatusInProgress, openRoute.Status())
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteFinishedRoutesCommandHandler_Handle_NothingToComplete(t *testing.T) {
	ctx := t.Context()

	routeRepo := new(MockRouteRepository)
	routeRepo.On("GetAllInProgress", ctx).Return([]*route.Route{}, nil).Once()

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RouteRepository").Return(routeRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRouteUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompleteFinishedRoutesCommandHandler(factory)
	err := h.Handle(ctx, commands.NewCompleteFinishedRoutesCommand())
	require.NoError(t, err)
	routeRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCompleteFinishedRoutesCommand_RequiresConstructor(t *testing.T) {
	var cmd commands.CompleteFinishedRoutesCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrCompleteFinishedRoutesCommandIsNotConstructed)
}
