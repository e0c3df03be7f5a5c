package commands_test

import (
	"context"
	"time"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/core/domain/model/request"
	"supplyline/internal/core/domain/model/route"
	"supplyline/internal/core/domain/model/transfer"
	"supplyline/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, record *ledger.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) Update(ctx context.Context, record *ledger.StockRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) Get(ctx context.Context, stage ledger.Stage, entityID int64, key kernel.ProductKey) (*ledger.StockRecord, error) {
	args := m.Called(ctx, stage, entityID, key)
	record, _ := args.Get(0).(*ledger.StockRecord)
	return record, args.Error(1)
}

func (m *MockLedgerRepository) GetForUpdate(ctx context.Context, stage ledger.Stage, entityID int64, key kernel.ProductKey) (*ledger.StockRecord, error) {
	args := m.Called(ctx, stage, entityID, key)
	record, _ := args.Get(0).(*ledger.StockRecord)
	return record, args.Error(1)
}

func (m *MockLedgerRepository) GetAllForEntity(ctx context.Context, stage ledger.Stage, entityID int64) ([]*ledger.StockRecord, error) {
	args := m.Called(ctx, stage, entityID)
	records, _ := args.Get(0).([]*ledger.StockRecord)
	return records, args.Error(1)
}

func (m *MockLedgerRepository) GetAllForEntityForUpdate(ctx context.Context, stage ledger.Stage, entityID int64) ([]*ledger.StockRecord, error) {
	args := m.Called(ctx, stage, entityID)
	records, _ := args.Get(0).([]*ledger.StockRecord)
	return records, args.Error(1)
}

func (m *MockLedgerRepository) AddOutward(ctx context.Context, record *ledger.OutwardRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockLedgerRepository) AddUnlisted(ctx context.Context, record *ledger.UnlistedStock) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

type MockTransferRepository struct{ mock.Mock }

func (m *MockTransferRepository) Add(ctx context.Context, aggregate *transfer.VanTransfer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransferRepository) Update(ctx context.Context, aggregate *transfer.VanTransfer) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockTransferRepository) Get(ctx context.Context, id kernel.UUID) (*transfer.VanTransfer, error) {
	args := m.Called(ctx, id)
	aggregate, _ := args.Get(0).(*transfer.VanTransfer)
	return aggregate, args.Error(1)
}

func (m *MockTransferRepository) GetActiveByDestination(ctx context.Context, locationID kernel.LocationID) (*transfer.VanTransfer, error) {
	args := m.Called(ctx, locationID)
	aggregate, _ := args.Get(0).(*transfer.VanTransfer)
	return aggregate, args.Error(1)
}

func (m *MockTransferRepository) GetAllLoadedByVan(ctx context.Context, vanID kernel.VanID) ([]*transfer.VanTransfer, error) {
	args := m.Called(ctx, vanID)
	aggregates, _ := args.Get(0).([]*transfer.VanTransfer)
	return aggregates, args.Error(1)
}

type MockRequestRepository struct{ mock.Mock }

func (m *MockRequestRepository) AddRestock(ctx context.Context, aggregate *request.RestockRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateRestock(ctx context.Context, aggregate *request.RestockRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) GetRestock(ctx context.Context, id kernel.UUID) (*request.RestockRequest, error) {
	args := m.Called(ctx, id)
	aggregate, _ := args.Get(0).(*request.RestockRequest)
	return aggregate, args.Error(1)
}

func (m *MockRequestRepository) GetAllPendingRestock(ctx context.Context) ([]*request.RestockRequest, error) {
	args := m.Called(ctx)
	aggregates, _ := args.Get(0).([]*request.RestockRequest)
	return aggregates, args.Error(1)
}

func (m *MockRequestRepository) AddFollowup(ctx context.Context, aggregate *request.FollowupRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) UpdateFollowup(ctx context.Context, aggregate *request.FollowupRequest) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRequestRepository) GetFollowup(ctx context.Context, id kernel.UUID) (*request.FollowupRequest, error) {
	args := m.Called(ctx, id)
	aggregate, _ := args.Get(0).(*request.FollowupRequest)
	return aggregate, args.Error(1)
}

func (m *MockRequestRepository) GetAllPendingFollowup(ctx context.Context) ([]*request.FollowupRequest, error) {
	args := m.Called(ctx)
	aggregates, _ := args.Get(0).([]*request.FollowupRequest)
	return aggregates, args.Error(1)
}

type MockRouteRepository struct{ mock.Mock }

func (m *MockRouteRepository) Add(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRouteRepository) Update(ctx context.Context, aggregate *route.Route) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockRouteRepository) Get(ctx context.Context, id kernel.UUID) (*route.Route, error) {
	args := m.Called(ctx, id)
	aggregate, _ := args.Get(0).(*route.Route)
	return aggregate, args.Error(1)
}

func (m *MockRouteRepository) GetAllDraftForDate(ctx context.Context, date time.Time) ([]*route.Route, error) {
	args := m.Called(ctx, date)
	aggregates, _ := args.Get(0).([]*route.Route)
	return aggregates, args.Error(1)
}

func (m *MockRouteRepository) GetAllInProgress(ctx context.Context) ([]*route.Route, error) {
	args := m.Called(ctx)
	aggregates, _ := args.Get(0).([]*route.Route)
	return aggregates, args.Error(1)
}

// MockUoW implements the full unit of work surface, so the same mock serves
// every factory flavor the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

func (m *MockUoW) TransferRepository() ports.TransferRepository {
	args := m.Called()
	return args.Get(0).(ports.TransferRepository)
}

func (m *MockUoW) RequestRepository() ports.RequestRepository {
	args := m.Called()
	return args.Get(0).(ports.RequestRepository)
}

func (m *MockUoW) RouteRepository() ports.RouteRepository {
	args := m.Called()
	return args.Get(0).(ports.RouteRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockTransferUoWFactory struct{ mock.Mock }

func (m *MockTransferUoWFactory) Create() commands.TransferUoW {
	args := m.Called()
	return args.Get(0).(commands.TransferUoW)
}

type MockRequestUoWFactory struct{ mock.Mock }

func (m *MockRequestUoWFactory) Create() commands.RequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RequestUoW)
}

type MockRouteUoWFactory struct{ mock.Mock }

func (m *MockRouteUoWFactory) Create() commands.RouteUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteUoW)
}

type MockRouteRequestUoWFactory struct{ mock.Mock }

func (m *MockRouteRequestUoWFactory) Create() commands.RouteRequestUoW {
	args := m.Called()
	return args.Get(0).(commands.RouteRequestUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockRouteOptimizer struct{ mock.Mock }

func (m *MockRouteOptimizer) Optimize(ctx context.Context, req ports.OptimizeRequest) (ports.OptimizeResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(ports.OptimizeResponse)
	return resp, args.Error(1)
}
