package cmd

import (
	"supplyline/internal/adapters/out/directory"
	"supplyline/internal/adapters/out/optimizer"
	"supplyline/internal/adapters/out/postgres"
	"supplyline/internal/core/application/usecases/commands"
	"supplyline/internal/core/application/usecases/queries"
	"supplyline/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	optimizer  ports.RouteOptimizer
	directory  ports.ReferenceDirectory
}

func NewCompositionRoot(configs Config, gormDB *gorm.DB, redisClient *redis.Client) CompositionRoot {
	var refDirectory ports.ReferenceDirectory = directory.NewGormDirectory(gormDB)
	if redisClient != nil {
		refDirectory = directory.NewCachedDirectory(refDirectory, redisClient, directory.DefaultCacheTTL)
	}

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		optimizer:  optimizer.NewClient(configs.OptimizerURL),
		directory:  refDirectory,
	}
}

func (c *CompositionRoot) ReferenceDirectory() ports.ReferenceDirectory {
	return c.directory
}

func (c *CompositionRoot) CreateAdjustStockCommandHandler() commands.AdjustStockCommandHandler {
	return commands.NewAdjustStockCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateRecordOutwardUsageCommandHandler() commands.RecordOutwardUsageCommandHandler {
	return commands.NewRecordOutwardUsageCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateRecordUnlistedInventoryCommandHandler() commands.RecordUnlistedInventoryCommandHandler {
	return commands.NewRecordUnlistedInventoryCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateTransferWarehouseToVanCommandHandler() commands.TransferWarehouseToVanCommandHandler {
	return commands.NewTransferWarehouseToVanCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateTransferVanToLocationCommandHandler() commands.TransferVanToLocationCommandHandler {
	return commands.NewTransferVanToLocationCommandHandler(c.transferUoWFactory())
}

func (c *CompositionRoot) CreateCreateRestockRequestCommandHandler() commands.CreateRestockRequestCommandHandler {
	return commands.NewCreateRestockRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateCreateFollowupRequestCommandHandler() commands.CreateFollowupRequestCommandHandler {
	return commands.NewCreateFollowupRequestCommandHandler(c.requestUoWFactory())
}

func (c *CompositionRoot) CreateCreateRouteCommandHandler() commands.CreateRouteCommandHandler {
	return commands.NewCreateRouteCommandHandler(c.routeRequestUoWFactory())
}

func (c *CompositionRoot) CreateAttachRequestCommandHandler() commands.AttachRequestCommandHandler {
	return commands.NewAttachRequestCommandHandler(c.routeRequestUoWFactory())
}

func (c *CompositionRoot) CreateReorderStopsCommandHandler() commands.ReorderStopsCommandHandler {
	return commands.NewReorderStopsCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateOptimizeRouteCommandHandler() commands.OptimizeRouteCommandHandler {
	return commands.NewOptimizeRouteCommandHandler(c.routeUoWFactory(), c.optimizer)
}

func (c *CompositionRoot) CreateOptimizeDueRoutesCommandHandler() commands.OptimizeDueRoutesCommandHandler {
	return commands.NewOptimizeDueRoutesCommandHandler(c.routeUoWFactory(), c.optimizer)
}

func (c *CompositionRoot) CreateAdvanceStopCommandHandler() commands.AdvanceStopCommandHandler {
	return commands.NewAdvanceStopCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateCompleteRouteCommandHandler() commands.CompleteRouteCommandHandler {
	return commands.NewCompleteRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCompleteFinishedRoutesCommandHandler() commands.CompleteFinishedRoutesCommandHandler {
	return commands.NewCompleteFinishedRoutesCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateCancelRouteCommandHandler() commands.CancelRouteCommandHandler {
	return commands.NewCancelRouteCommandHandler(c.routeUoWFactory())
}

func (c *CompositionRoot) CreateGetStockQueryHandler() queries.GetStockQueryHandler {
	return queries.NewGetStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLocationStockQueryHandler() queries.GetLocationStockQueryHandler {
	return queries.NewGetLocationStockQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRouteQueryHandler() queries.GetRouteQueryHandler {
	return queries.NewGetRouteQueryHandler(c.gormDB)
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) transferUoWFactory() commands.TransferUoWFactory {
	return FuncTransferUoWFactory(func() commands.TransferUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) requestUoWFactory() commands.RequestUoWFactory {
	return FuncRequestUoWFactory(func() commands.RequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeUoWFactory() commands.RouteUoWFactory {
	return FuncRouteUoWFactory(func() commands.RouteUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) routeRequestUoWFactory() commands.RouteRequestUoWFactory {
	return FuncRouteRequestUoWFactory(func() commands.RouteRequestUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncTransferUoWFactory func() commands.TransferUoW

func (f FuncTransferUoWFactory) Create() commands.TransferUoW {
	return f()
}

type FuncRequestUoWFactory func() commands.RequestUoW

func (f FuncRequestUoWFactory) Create() commands.RequestUoW {
	return f()
}

type FuncRouteUoWFactory func() commands.RouteUoW

func (f FuncRouteUoWFactory) Create() commands.RouteUoW {
	return f()
}

type FuncRouteRequestUoWFactory func() commands.RouteRequestUoW

func (f FuncRouteRequestUoWFactory) Create() commands.RouteRequestUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
