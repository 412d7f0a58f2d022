// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"appcenar/internal/core/ports"
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

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// CatalogRepoFactory provides access to the catalog read repositories
	// (products, addresses, tax configuration) within a transaction.
	CatalogRepoFactory interface {
		ProductRepository() ports.ProductRepository
		AddressRepository() ports.AddressRepository
		TaxConfigRepository() ports.TaxConfigRepository
	}

	// OrderCreationUoW manages transactions for order creation: the order
	// aggregate plus the catalog reads it prices against.
	OrderCreationUoW interface {
		TxManager
		OrderRepoFactory
		CatalogRepoFactory
	}

	// OrderCreationUoWFactory creates new order creation unit of work instances.
	OrderCreationUoWFactory interface {
		Create() OrderCreationUoW
	}

	// DispatchUoW manages transactions across order and courier aggregates.
	// Used for commands that move an order through its lifecycle together
	// with the courier's availability.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   courierRepo := uow.CourierRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	DispatchUoW interface {
		TxManager
		OrderRepoFactory
		CourierRepoFactory
	}

	// DispatchUoWFactory creates new dispatch unit of work instances.
	DispatchUoWFactory interface {
		Create() DispatchUoW
	}
)
