// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends only on the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ProductRepoFactory provides access to product repository within a transaction.
	ProductRepoFactory interface {
		ProductRepository() ports.ProductRepository
	}

	// DeliveryConfigRepoFactory provides access to the delivery config repository
	// within a transaction.
	DeliveryConfigRepoFactory interface {
		DeliveryConfigRepository() ports.DeliveryConfigRepository
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

	// ProductUoW manages transactions for catalog operations.
	ProductUoW interface {
		TxManager
		ProductRepoFactory
	}

	// ProductUoWFactory creates new product unit of work instances.
	ProductUoWFactory interface {
		Create() ProductUoW
	}

	// DeliveryConfigUoW manages transactions for delivery config replacement.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   err = uow.DeliveryConfigRepository().Replace(ctx, replacement)
	//   err = uow.Commit(ctx)
	DeliveryConfigUoW interface {
		TxManager
		DeliveryConfigRepoFactory
	}

	// DeliveryConfigUoWFactory creates new delivery config unit of work instances.
	DeliveryConfigUoWFactory interface {
		Create() DeliveryConfigUoW
	}
)

// DeliveryConfigProvider returns the delivery configuration in effect right now.
// Implementations never fail; an unreadable configuration degrades to
// delivery.EmptyConfig.
type DeliveryConfigProvider interface {
	Current(ctx context.Context) delivery.Config
}
