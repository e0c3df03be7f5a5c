package commands_test

import (
	"testing"
	"time"

	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/domain/model/kernel"
	"supplyline/internal/core/domain/model/ledger"
	"supplyline/internal/core/domain/model/transfer"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLoadedTransfer(t *testing.T, key kernel.ProductKey, quantity int) *transfer.VanTransfer {
	t.Helper()

	item, err := transfer.NewItem(kernel.NewUUID(), key, quantity)
	require.NoError(t, err)

	vt, err := transfer.NewVanTransfer(
		kernel.NewUUID(), kernel.VanID(4), kernel.WarehouseID(1), nil, "", nil,
		[]*transfer.Item{item},
	)
	require.NoError(t, err)

	return vt
}

func TestTransferVanToLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	key, err := kernel.NewProductKey(341, nil)
	require.NoError(t, err)

	vt := newLoadedTransfer(t, key, 12)
	vanRecord, err := ledger.NewStockRecord(ledger.StageVan, 4, key, 12, kernel.UserID(7), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewTransferVanToLocationCommand(vt.ID(), 30, 7)
	require.NoError(t, err)

	ledgerRepo := new(MockLedgerRepository)
	transferRepo := new(MockTransferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Get", ctx, vt.ID()).Return(vt, nil).Once(),
		ledgerRepo.On("GetAllForEntityForUpdate", ctx, ledger.StageVan, int64(4)).
			Return([]*ledger.StockRecord{vanRecord}, nil).Once(),
		ledgerRepo.On("GetAllForEntityForUpdate", ctx, ledger.StageLocation, int64(30)).
			Return(nil, nil).Once(),
		ledgerRepo.On("Update", ctx, vanRecord).Return(nil).Once(),
		ledgerRepo.On("Add", ctx, mock.AnythingOfType("*ledger.StockRecord")).Return(nil).Once(),
		transferRepo.On("Update", ctx, vt).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferVanToLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 0, vanRecord.Quantity())
	require.Equal(t, transfer.StatusDelivered, vt.Status())
	ledgerRepo.AssertExpectations(t)
	transferRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestTransferVanToLocationCommandHandler_Handle_VanLedgerShortfall(t *testing.T) {
	ctx := t.Context()
	key, err := kernel.NewProductKey(341, nil)
	require.NoError(t, err)

	vt := newLoadedTransfer(t, key, 12)
	vanRecord, err := ledger.NewStockRecord(ledger.StageVan, 4, key, 5, kernel.UserID(7), time.Now())
	require.NoError(t, err)

	cmd, err := commands.NewTransferVanToLocationCommand(vt.ID(), 30, 7)
	require.NoError(t, err)

	ledgerRepo := new(MockLedgerRepository)
	transferRepo := new(MockTransferRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LedgerRepository").Return(ledgerRepo).Once(),
		uow.On("TransferRepository").Return(transferRepo).Once(),
		transferRepo.On("Get", ctx, vt.ID()).Return(vt, nil).Once(),
		ledgerRepo.On("GetAllForEntityForUpdate", ctx, ledger.StageVan, int64(4)).
			Return([]*ledger.StockRecord{vanRecord}, nil).Once(),
		ledgerRepo.On("GetAllForEntityForUpdate", ctx, ledger.StageLocation, int64(30)).
			Return(nil, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockTransferUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewTransferVanToLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, ledger.ErrInsufficientStock)
	require.Equal(t, transfer.StatusLoaded, vt.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	ledgerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
