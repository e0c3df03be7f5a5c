package directory_test

import (
	"context"
	"testing"
	"time"

	"supplyline/internal/adapters/out/directory"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// MockReferenceDirectory is a mock implementation of ports.ReferenceDirectory.
type MockReferenceDirectory struct {
	mock.Mock
}

func (m *MockReferenceDirectory) ResolveLocation(
	ctx context.Context,
	id kernel.LocationID,
) (ports.LocationInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.LocationInfo), args.Error(1)
}

func (m *MockReferenceDirectory) ResolveProduct(
	ctx context.Context,
	key kernel.ProductKey,
) (ports.ProductInfo, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(ports.ProductInfo), args.Error(1)
}

func (m *MockReferenceDirectory) ResolveUser(
	ctx context.Context,
	id kernel.UserID,
) (ports.UserInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.UserInfo), args.Error(1)
}

func (m *MockReferenceDirectory) ResolveCustomer(
	ctx context.Context,
	id kernel.CustomerID,
) (ports.CustomerInfo, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(ports.CustomerInfo), args.Error(1)
}

// CachedDirectoryIntegrationTestSuite verifies read-through caching against a
// real Redis instance.
type CachedDirectoryIntegrationTestSuite struct {
	suite.Suite
	container testcontainers.Container
	client    *redis.Client
	inner     *MockReferenceDirectory
	cached    *directory.CachedDirectory
}

func (suite *CachedDirectoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "redis:7-alpine",
			ExposedPorts: []string{"6379/tcp"},
			WaitingFor: wait.ForLog("Ready to accept connections").
				WithStartupTimeout(30 * time.Second),
		},
		Started: true,
	})
	suite.Require().NoError(err)
	suite.container = container

	endpoint, err := container.Endpoint(ctx, "")
	suite.Require().NoError(err)

	suite.client = redis.NewClient(&redis.Options{Addr: endpoint})
	suite.Require().NoError(suite.client.Ping(ctx).Err())
}

func (suite *CachedDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.client.FlushAll(context.Background()).Err())
	suite.inner = new(MockReferenceDirectory)
	suite.cached = directory.NewCachedDirectory(suite.inner, suite.client, time.Minute)
}

func (suite *CachedDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.client != nil {
		suite.Require().NoError(suite.client.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CachedDirectoryIntegrationTestSuite) TestResolveLocation_SecondLookupHitsCache() {
	ctx := context.Background()
	lat := 51.5072
	long := -0.1276
	info := ports.LocationInfo{
		ID:         kernel.LocationID(30),
		CustomerID: kernel.CustomerID(55),
		Name:       "Harbour Depot",
		Address:    "12 Pier Rd",
		Latitude:   &lat,
		Longitude:  &long,
	}

	suite.inner.On("ResolveLocation", ctx, kernel.LocationID(30)).Return(info, nil).Once()

	first, err := suite.cached.ResolveLocation(ctx, kernel.LocationID(30))
	suite.Require().NoError(err)
	suite.Equal(info, first)

	second, err := suite.cached.ResolveLocation(ctx, kernel.LocationID(30))
	suite.Require().NoError(err)
	suite.Equal(info, second)

	suite.inner.AssertExpectations(suite.T())
}

func (suite *CachedDirectoryIntegrationTestSuite) TestResolveProduct_RoundTripsThroughCache() {
	ctx := context.Background()
	variant := kernel.VariantID(3)
	key, err := kernel.NewProductKey(kernel.ProductID(100), &variant)
	suite.Require().NoError(err)

	info := ports.ProductInfo{Key: key, Name: "Coffee Beans 1kg", Barcode: "4006381333931"}
	suite.inner.On("ResolveProduct", ctx, key).Return(info, nil).Once()

	first, err := suite.cached.ResolveProduct(ctx, key)
	suite.Require().NoError(err)
	suite.Equal("Coffee Beans 1kg", first.Name)

	second, err := suite.cached.ResolveProduct(ctx, key)
	suite.Require().NoError(err)
	suite.True(key.IsEqual(second.Key))
	suite.Equal("4006381333931", second.Barcode)

	suite.inner.AssertExpectations(suite.T())
}

func (suite *CachedDirectoryIntegrationTestSuite) TestResolveUser_MissIsNotCached() {
	ctx := context.Background()
	resolveErr := context.DeadlineExceeded

	suite.inner.On("ResolveUser", ctx, kernel.UserID(7)).
		Return(ports.UserInfo{}, resolveErr).Once()
	suite.inner.On("ResolveUser", ctx, kernel.UserID(7)).
		Return(ports.UserInfo{ID: kernel.UserID(7), Name: "Riley"}, nil).Once()

	_, err := suite.cached.ResolveUser(ctx, kernel.UserID(7))
	suite.Require().ErrorIs(err, resolveErr)

	recovered, err := suite.cached.ResolveUser(ctx, kernel.UserID(7))
	suite.Require().NoError(err)
	suite.Equal("Riley", recovered.Name)

	suite.inner.AssertExpectations(suite.T())
}

func (suite *CachedDirectoryIntegrationTestSuite) TestResolveCustomer_ExpiredEntryRefetches() {
	ctx := context.Background()
	info := ports.CustomerInfo{ID: kernel.CustomerID(55), Name: "Northside Cafes"}

	shortLived := directory.NewCachedDirectory(suite.inner, suite.client, time.Second)
	suite.inner.On("ResolveCustomer", ctx, kernel.CustomerID(55)).Return(info, nil).Twice()

	_, err := shortLived.ResolveCustomer(ctx, kernel.CustomerID(55))
	suite.Require().NoError(err)

	time.Sleep(1500 * time.Millisecond)

	refetched, err := shortLived.ResolveCustomer(ctx, kernel.CustomerID(55))
	suite.Require().NoError(err)
	suite.Equal(info, refetched)

	suite.inner.AssertExpectations(suite.T())
}

func TestCachedDirectoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CachedDirectoryIntegrationTestSuite))
}
