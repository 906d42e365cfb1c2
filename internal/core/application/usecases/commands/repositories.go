// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"produzione/internal/core/ports"
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

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PlanningRepoFactory provides access to the planning repository within a transaction.
	PlanningRepoFactory interface {
		PlanningRepository() ports.PlanningRepository
	}

	// ProcessingRepoFactory provides access to the processing repository within a transaction.
	ProcessingRepoFactory interface {
		ProcessingRepository() ports.ProcessingRepository
	}

	// SequenceFactory provides access to the sequence generator within a
	// transaction, so issued codes commit or roll back with it.
	SequenceFactory interface {
		SequenceGenerator() ports.SequenceGenerator
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CreateOrderUoW manages transactions for order creation, where the
	// production number reservation and the order insert must commit as one.
	CreateOrderUoW interface {
		TxManager
		OrderRepoFactory
		SequenceFactory
	}

	// CreateOrderUoWFactory creates new order creation unit of work instances.
	CreateOrderUoWFactory interface {
		Create() CreateOrderUoW
	}

	// ProcessingUoW manages transactions spanning orders and their
	// processing event log. Used by commands that append events or make
	// lifecycle decisions on the reconciled event sum.
	ProcessingUoW interface {
		TxManager
		OrderRepoFactory
		ProcessingRepoFactory
	}

	// ProcessingUoWFactory creates new processing unit of work instances.
	ProcessingUoWFactory interface {
		Create() ProcessingUoW
	}

	// PlanningUoW manages transactions spanning orders and the scheduling
	// grid. A plan save rewrites allocation cells and their date summaries
	// atomically.
	PlanningUoW interface {
		TxManager
		OrderRepoFactory
		PlanningRepoFactory
	}

	// PlanningUoWFactory creates new planning unit of work instances.
	PlanningUoWFactory interface {
		Create() PlanningUoW
	}
)
