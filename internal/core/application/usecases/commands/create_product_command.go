package commands

import (
	"errors"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
)

// ProductInput carries the editable catalog fields.
type ProductInput struct {
	Name          string
	Price         decimal.Decimal
	Unit          string
	Category      string
	Image         string
	StockQuantity int
}

func (in ProductInput) toProduct() (*product.Product, error) {
	return product.NewProduct(in.Name, in.Price, in.Unit, in.Category, in.Image, in.StockQuantity)
}

// CreateProductCommand adds an entry to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	product *product.Product

	guard guard.ConstructorGuard
}

func NewCreateProductCommand(in ProductInput) (CreateProductCommand, error) {
	p, err := in.toProduct()
	if err != nil {
		return CreateProductCommand{}, err
	}

	return CreateProductCommand{product: p, guard: guard.NewConstructorGuard()}, nil
}

func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

func (c CreateProductCommand) Product() *product.Product {
	return c.product
}
