package commands

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/guard"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
)

// UpdateProductCommand overwrites an existing catalog entry.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	product *product.Product

	guard guard.ConstructorGuard
}

func NewUpdateProductCommand(id int64, in ProductInput) (UpdateProductCommand, error) {
	p, err := in.toProduct()
	if err != nil {
		return UpdateProductCommand{}, err
	}
	if err = p.AssignID(id); err != nil {
		return UpdateProductCommand{}, err
	}

	return UpdateProductCommand{product: p, guard: guard.NewConstructorGuard()}, nil
}

func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

func (c UpdateProductCommand) Product() *product.Product {
	return c.product
}
