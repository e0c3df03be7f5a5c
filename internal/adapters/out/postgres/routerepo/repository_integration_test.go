package routerepo_test

import (
	"context"
	"testing"
	"time"

	"supplyline/internal/adapters/out/postgres/routerepo"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RouteRepositoryIntegrationTestSuite provides integration tests for the
// route repository using PostgreSQL containers.
type RouteRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *routerepo.GormRouteRepository
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&routerepo.RouteDTO{}, &routerepo.StopDTO{}))
}

func (suite *RouteRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE routes CASCADE").Error)
	suite.repository = routerepo.NewGormRouteRepository(suite.db)
}

func (suite *RouteRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RouteRepositoryIntegrationTestSuite) TestAdd_ThenGet_ReturnsStopsInVisitingOrder() {
	ctx := context.Background()
	customer := kernel.CustomerID(55)
	restockRef := kernel.NewUUID()
	geo := &route.GeoPoint{Lat: 51.5072, Long: -0.1276}

	second := suite.newStop(kernel.LocationID(31), 2, nil, nil, nil)
	first := suite.newStopWithGeo(kernel.LocationID(30), 1, &customer, &restockRef, geo)
	original := suite.newRoute(time.Now().AddDate(0, 0, 1), second, first)

	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal(kernel.UserID(7), retrieved.DriverID())
	suite.Equal(kernel.WarehouseID(1), retrieved.WarehouseID())
	suite.Equal(route.StatusDraft, retrieved.Status())

	stops := retrieved.Stops()
	suite.Require().Len(stops, 2)
	suite.Equal(1, stops[0].StopOrder())
	suite.Equal(kernel.LocationID(30), stops[0].LocationID())
	suite.Require().NotNil(stops[0].CustomerID())
	suite.Equal(customer, *stops[0].CustomerID())
	suite.Require().NotNil(stops[0].RestockRequestID())
	suite.True(restockRef.IsEqual(*stops[0].RestockRequestID()))
	suite.Require().NotNil(stops[0].Geo())
	suite.InDelta(51.5072, stops[0].Geo().Lat, 0.0001)
	suite.Equal(2, stops[1].StopOrder())
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RouteRepositoryIntegrationTestSuite) TestUpdate_PersistsProgressAndOtp() {
	ctx := context.Background()

	stop := suite.newStop(kernel.LocationID(30), 1, nil, nil, nil)
	original := suite.newRoute(time.Now().AddDate(0, 0, 1), stop)
	suite.Require().NoError(suite.repository.Add(ctx, original))

	suite.Require().NoError(original.Schedule())
	suite.Require().NoError(original.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now()))
	suite.Require().NoError(original.AdvanceStop(stop.ID(), route.StopArrived, "", time.Now()))
	suite.Require().NoError(suite.repository.Update(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(route.StatusInProgress, retrieved.Status())

	retrievedStop := retrieved.Stops()[0]
	suite.Equal(route.StopArrived, retrievedStop.Status())
	suite.Require().NotNil(retrievedStop.DeliveryOTP())
	suite.Equal(stop.DeliveryOTP().String(), retrievedStop.DeliveryOTP().String())

	otpCode := retrievedStop.DeliveryOTP().String()
	suite.Require().NoError(
		retrieved.AdvanceStop(retrievedStop.ID(), route.StopDelivered, otpCode, time.Now()),
	)
	suite.Require().NoError(suite.repository.Update(ctx, retrieved))

	delivered, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(route.StopDelivered, delivered.Stops()[0].Status())
	suite.NotNil(delivered.Stops()[0].CompletedAt())
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGetAllDraftForDate_AppliesDayBounds() {
	ctx := context.Background()
	day := time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC)

	onDay := suite.newRoute(day, suite.newStop(kernel.LocationID(30), 1, nil, nil, nil))
	suite.Require().NoError(suite.repository.Add(ctx, onDay))

	dayAfter := suite.newRoute(
		day.AddDate(0, 0, 1), suite.newStop(kernel.LocationID(31), 1, nil, nil, nil),
	)
	suite.Require().NoError(suite.repository.Add(ctx, dayAfter))

	scheduled := suite.newRoute(day, suite.newStop(kernel.LocationID(32), 1, nil, nil, nil))
	suite.Require().NoError(scheduled.Schedule())
	suite.Require().NoError(suite.repository.Add(ctx, scheduled))

	drafts, err := suite.repository.GetAllDraftForDate(ctx, day)
	suite.Require().NoError(err)
	suite.Require().Len(drafts, 1)
	suite.True(onDay.ID().IsEqual(drafts[0].ID()))
}

func (suite *RouteRepositoryIntegrationTestSuite) TestGetAllInProgress_FiltersByStatus() {
	ctx := context.Background()

	stop := suite.newStop(kernel.LocationID(30), 1, nil, nil, nil)
	inProgress := suite.newRoute(time.Now().AddDate(0, 0, 1), stop)
	suite.Require().NoError(inProgress.Schedule())
	suite.Require().NoError(inProgress.AdvanceStop(stop.ID(), route.StopEnRoute, "", time.Now()))
	suite.Require().NoError(suite.repository.Add(ctx, inProgress))

	draft := suite.newRoute(
		time.Now().AddDate(0, 0, 1), suite.newStop(kernel.LocationID(31), 1, nil, nil, nil),
	)
	suite.Require().NoError(suite.repository.Add(ctx, draft))

	routes, err := suite.repository.GetAllInProgress(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(routes, 1)
	suite.True(inProgress.ID().IsEqual(routes[0].ID()))
}

func (suite *RouteRepositoryIntegrationTestSuite) newStop(
	locationID kernel.LocationID,
	order int,
	customerID *kernel.CustomerID,
	restockRequestID *kernel.UUID,
	followupRequestID *kernel.UUID,
) *route.Stop {
	stop, err := route.NewStop(
		kernel.NewUUID(), locationID, order, customerID,
		restockRequestID, followupRequestID, "12 Pier Rd", nil,
	)
	suite.Require().NoError(err)
	return stop
}

func (suite *RouteRepositoryIntegrationTestSuite) newStopWithGeo(
	locationID kernel.LocationID,
	order int,
	customerID *kernel.CustomerID,
	restockRequestID *kernel.UUID,
	geo *route.GeoPoint,
) *route.Stop {
	stop, err := route.NewStop(
		kernel.NewUUID(), locationID, order, customerID, restockRequestID, nil, "12 Pier Rd", geo,
	)
	suite.Require().NoError(err)
	return stop
}

func (suite *RouteRepositoryIntegrationTestSuite) newRoute(
	deliveryDate time.Time,
	stops ...*route.Stop,
) *route.Route {
	r, err := route.NewRoute(
		kernel.NewUUID(), kernel.UserID(7), kernel.WarehouseID(1), deliveryDate, stops,
	)
	suite.Require().NoError(err)
	return r
}

func TestRouteRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RouteRepositoryIntegrationTestSuite))
}
