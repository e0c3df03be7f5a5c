package requestrepo_test

import (
	"context"
	"testing"
	"time"

	"supplyline/internal/adapters/out/postgres/requestrepo"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/request"
	"supplyline/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// RequestRepositoryIntegrationTestSuite provides integration tests for the
// fulfillment request repository using PostgreSQL containers.
type RequestRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *requestrepo.GormRequestRepository
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&requestrepo.RestockRequestDTO{},
		&requestrepo.RequestItemDTO{},
		&requestrepo.FollowupRequestDTO{},
	))
}

func (suite *RequestRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE restock_requests, followup_requests CASCADE").Error,
	)
	suite.repository = requestrepo.NewGormRequestRepository(suite.db)
}

func (suite *RequestRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RequestRepositoryIntegrationTestSuite) TestAddRestock_ThenGet_RoundTrips() {
	ctx := context.Background()

	original := suite.newRestockRequest(suite.newItem(100, 12), suite.newItem(200, 4))
	suite.Require().NoError(suite.repository.AddRestock(ctx, original))

	retrieved, err := suite.repository.GetRestock(ctx, original.ID())
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal(kernel.CustomerID(55), retrieved.CustomerID())
	suite.Equal(kernel.LocationID(30), retrieved.LocationID())
	suite.Equal(request.StatusPending, retrieved.Status())
	suite.Nil(retrieved.AttachedStopID())
	suite.Require().Len(retrieved.Items(), 2)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetRestock_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetRestock(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestUpdateRestock_PersistsLifecycle() {
	ctx := context.Background()
	stopID := kernel.NewUUID()

	original := suite.newRestockRequest(suite.newItem(100, 12))
	suite.Require().NoError(suite.repository.AddRestock(ctx, original))

	suite.Require().NoError(original.AttachToStop(stopID))
	suite.Require().NoError(suite.repository.UpdateRestock(ctx, original))

	retrieved, err := suite.repository.GetRestock(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(request.StatusInRoute, retrieved.Status())
	suite.Require().NotNil(retrieved.AttachedStopID())
	suite.True(stopID.IsEqual(*retrieved.AttachedStopID()))

	suite.Require().NoError(retrieved.MarkFulfilled())
	suite.Require().NoError(suite.repository.UpdateRestock(ctx, retrieved))

	fulfilled, err := suite.repository.GetRestock(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(request.StatusFulfilled, fulfilled.Status())
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetAllPendingRestock_SortsByRequestDate() {
	ctx := context.Background()

	later := suite.newRestockRequestAt(
		time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC), suite.newItem(100, 2),
	)
	suite.Require().NoError(suite.repository.AddRestock(ctx, later))

	earlier := suite.newRestockRequestAt(
		time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC), suite.newItem(200, 3),
	)
	suite.Require().NoError(suite.repository.AddRestock(ctx, earlier))

	attached := suite.newRestockRequest(suite.newItem(300, 1))
	suite.Require().NoError(attached.AttachToStop(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.AddRestock(ctx, attached))

	pending, err := suite.repository.GetAllPendingRestock(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 2)
	suite.True(earlier.ID().IsEqual(pending[0].ID()))
	suite.True(later.ID().IsEqual(pending[1].ID()))
}

func (suite *RequestRepositoryIntegrationTestSuite) TestFollowup_Lifecycle() {
	ctx := context.Background()
	stopID := kernel.NewUUID()

	original, err := request.NewFollowupRequest(
		kernel.NewUUID(), kernel.CustomerID(55), kernel.LocationID(30), time.Now(),
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AddFollowup(ctx, original))

	suite.Require().NoError(original.AttachToStop(stopID))
	suite.Require().NoError(suite.repository.UpdateFollowup(ctx, original))

	retrieved, err := suite.repository.GetFollowup(ctx, original.ID())
	suite.Require().NoError(err)
	suite.Equal(request.StatusInRoute, retrieved.Status())
	suite.Require().NotNil(retrieved.AttachedStopID())
	suite.True(stopID.IsEqual(*retrieved.AttachedStopID()))

	pending, err := suite.repository.GetAllPendingFollowup(ctx)
	suite.Require().NoError(err)
	suite.Empty(pending)
}

func (suite *RequestRepositoryIntegrationTestSuite) TestGetFollowup_NonExistent_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.GetFollowup(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *RequestRepositoryIntegrationTestSuite) newItem(
	productID kernel.ProductID,
	quantity int,
) request.RequestItem {
	key, err := kernel.NewProductKey(productID, nil)
	suite.Require().NoError(err)

	item, err := request.NewRequestItem(key, quantity)
	suite.Require().NoError(err)
	return item
}

func (suite *RequestRepositoryIntegrationTestSuite) newRestockRequest(
	items ...request.RequestItem,
) *request.RestockRequest {
	return suite.newRestockRequestAt(time.Now(), items...)
}

func (suite *RequestRepositoryIntegrationTestSuite) newRestockRequestAt(
	requestDate time.Time,
	items ...request.RequestItem,
) *request.RestockRequest {
	restock, err := request.NewRestockRequest(
		kernel.NewUUID(), kernel.CustomerID(55), kernel.LocationID(30), requestDate, items,
	)
	suite.Require().NoError(err)
	return restock
}

func TestRequestRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RequestRepositoryIntegrationTestSuite))
}
