package commands_test

import (
	"testing"
	"time"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newWarehouseRecord(t *testing.T, key kernel.ProductKey, quantity int) *ledger.StockRecord {
	t.Helper()
	record, err := ledger.NewStockRecord(
		ledger.StageWarehouse, 1, key, quantity, kernel.UserID(7), time.Now())
	require.NoError(t, err)
	return record
}

func TestTransferWarehouseToVanCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	key, _ := kernel.NewProductKey(100, nil)
	cmd, err := commands.NewTransferWarehouseToVanCommand(
		kernel.NewUUID(), 2, 1, nil, "J. Albano", nil,
		[]commands.ProductLine{{ProductID: 100, Quantity: 10}}, 7)
	require.NoError(t, err)

	warehouseStock := []*ledger.StockRecord{newWarehouseRecord(t, key, 25)}

	ledgerRepo := new(MockLedgerRepository)
	transferRepo := new(MockTransferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		ledgerRepo.On("GetAllForEntityForUpdate", ctx, ledger.StageWarehouse, int64(1)).
			Return(warehouseStock, nil).Once(),
		ledgerRepo.On("GetAllForEntityForUpdate", ctx, ledger.StageVan, int64(2)).
			Return(nil, nil).Once(),
		ledgerRepo.On("Update", ctx, warehouseStock[0]).Return(nil).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.StockRecord")).Return(nil).Once(),
		transferRepo.On("Add", ctx, mock.AnythingOfType("*transfer.VanTransfer")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferWarehouseToVanCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 15, warehouseStock[0].Quantity())
	ledgerRepo.AssertExpectations(t)
	transferRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestTransferWarehouseToVanCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	key, _ := kernel.NewProductKey(100, nil)
	cmd, err := commands.NewTransferWarehouseToVanCommand(
		kernel.NewUUID(), 2, 1, nil, "", nil,
		[]commands.ProductLine{{ProductID: 100, Quantity: 30}}, 7)
	require.NoError(t, err)

	warehouseStock := []*ledger.StockRecord{newWarehouseRecord(t, key, 25)}

	ledgerRepo := new(MockLedgerRepository)
	transferRepo := new(MockTransferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		ledgerRepo.On("GetAllForEntityForUpdate", ctx, ledger.StageWarehouse, int64(1)).
			Return(warehouseStock, nil).Once(),
		ledgerRepo.On("GetAllForEntityForUpdate", ctx, ledger.StageVan, int64(2)).
			Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferWarehouseToVanCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, ledger.ErrInsufficientStock)

	// Nothing persisted and the warehouse untouched
	require.Equal(t, 25, warehouseStock[0].Quantity())
	ledgerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	transferRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestTransferWarehouseToVanCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.TransferWarehouseToVanCommand{} // not constructed properly
	factory := new(MockTransferUoWFactory)
	h := commands.NewTransferWarehouseToVanCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}
