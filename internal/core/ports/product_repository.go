package ports

import (
	"context"

	"storefront/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for catalog entries.
type ProductRepository interface {
	// Add inserts the product and assigns its generated id.
	Add(ctx context.Context, p *product.Product) error

	// Update overwrites every field of an existing product.
	// Returns ObjectNotFoundError when no product has the id.
	Update(ctx context.Context, p *product.Product) error

	Get(ctx context.Context, id int64) (*product.Product, error)

	// Delete removes a product. Returns ObjectIsInUseError when order items
	// still reference it.
	Delete(ctx context.Context, id int64) error
}
