// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"supplyline/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// TransferRepoFactory provides access to the transfer repository within a transaction.
	TransferRepoFactory interface {
		TransferRepository() ports.TransferRepository
	}

	// RequestRepoFactory provides access to the request repository within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// RouteRepoFactory provides access to the route repository within a transaction.
	RouteRepoFactory interface {
		RouteRepository() ports.RouteRepository
	}

	// LedgerUoW manages transactions for ledger-only operations.
	// Used by stock adjustments and usage recording.
	LedgerUoW interface {
		TxManager
		LedgerRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// TransferUoW manages transactions spanning the ledger and the transfer
	// aggregate. Used by the warehouse-to-van and van-to-location movements,
	// which must update both atomically.
	TransferUoW interface {
		TxManager
		LedgerRepoFactory
		TransferRepoFactory
	}

	// TransferUoWFactory creates new transfer unit of work instances.
	TransferUoWFactory interface {
		Create() TransferUoW
	}

	// RequestUoW manages transactions for request-only operations.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// RouteUoW manages transactions for route-only operations.
	RouteUoW interface {
		TxManager
		RouteRepoFactory
	}

	// RouteUoWFactory creates new route unit of work instances.
	RouteUoWFactory interface {
		Create() RouteUoW
	}

	// RouteRequestUoW manages transactions spanning routes and requests.
	// Used by route creation and request attachment, which move the linked
	// requests to InRoute in the same transaction.
	RouteRequestUoW interface {
		TxManager
		RouteRepoFactory
		RequestRepoFactory
	}

	// RouteRequestUoWFactory creates new route/request unit of work instances.
	RouteRequestUoWFactory interface {
		Create() RouteRequestUoW
	}

	// UoW manages transactions across every aggregate of the core.
	// Used by stop advancement, which can touch the route, the linked
	// request, the van transfer, and both ledgers in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   routeRepo := uow.RouteRepository()
	//   ledgerRepo := uow.LedgerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		LedgerRepoFactory
		TransferRepoFactory
		RequestRepoFactory
		RouteRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
