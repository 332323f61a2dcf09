// Package ports defines the persistence contracts the storefront core depends on.
// Adapters in internal/adapters/out implement them.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// An order and its items are always written and removed together.
type OrderRepository interface {
	// Add persists a new order with its items.
	// Returns ObjectAlreadyExistsError when the id is taken.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists status and screenshot changes of an existing order.
	// Items and frozen amounts are never rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its items. Within a unit of work the order stays
	// locked against concurrent writers until the unit of work ends.
	// Returns ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id string) (*order.Order, error)

	// Delete removes an order and its items.
	// Returns ObjectNotFoundError when no order has the id.
	Delete(ctx context.Context, id string) error

	// FindByLegacyScreenshot returns orders whose screenshot marker references
	// filename: an exact "/uploads/<filename>" match, or, when there is none, any
	// marker containing filename. Orders that already hold binary data are skipped.
	FindByLegacyScreenshot(ctx context.Context, filename string) ([]*order.Order, error)
}
