// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"atelier/internal/core/ports"
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

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BillRepoFactory provides access to bill repository within a transaction.
	BillRepoFactory interface {
		BillRepository() ports.BillRepository
	}

	// ActorRepoFactory provides access to actor repository within a transaction.
	ActorRepoFactory interface {
		ActorRepository() ports.ActorRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// BillUoW manages transactions for bill-only operations.
	// Used when commands only modify the payment ledger.
	BillUoW interface {
		TxManager
		BillRepoFactory
	}

	// BillUoWFactory creates new bill unit of work instances.
	BillUoWFactory interface {
		Create() BillUoW
	}

	// ActorUoW manages transactions for actor registration.
	ActorUoW interface {
		TxManager
		ActorRepoFactory
	}

	// ActorUoWFactory creates new actor unit of work instances.
	ActorUoWFactory interface {
		Create() ActorUoW
	}

	// OrderActorUoW manages transactions that read actors while modifying
	// orders, such as order creation and tailor assignment.
	OrderActorUoW interface {
		TxManager
		OrderRepoFactory
		ActorRepoFactory
	}

	// OrderActorUoWFactory creates new order/actor unit of work instances.
	OrderActorUoWFactory interface {
		Create() OrderActorUoW
	}

	// OrderBillUoW manages transactions that span the order and its bill,
	// such as bill generation.
	OrderBillUoW interface {
		TxManager
		OrderRepoFactory
		BillRepoFactory
	}

	// OrderBillUoWFactory creates new order/bill unit of work instances.
	OrderBillUoWFactory interface {
		Create() OrderBillUoW
	}
)
