package product

import (
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is a catalog entry. The id is assigned by storage on insert.
type Product struct {
	id            int64
	name          string
	price         decimal.Decimal
	unit          string
	category      string
	image         string
	stockQuantity int

	isConstructed bool
}

// NewProduct validates catalog input: name is required, price and stock must not be
// negative. Unit, category and image are free text.
func NewProduct(name string, price decimal.Decimal, unit, category, image string, stockQuantity int) (*Product, error) {
	p := &Product{
		unit:          strings.TrimSpace(unit),
		category:      strings.TrimSpace(category),
		image:         strings.TrimSpace(image),
		isConstructed: true,
	}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
		p.setStockQuantity(stockQuantity),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestoreProduct rebuilds a persisted product.
func RestoreProduct(
	id int64,
	name string,
	price decimal.Decimal,
	unit, category, image string,
	stockQuantity int,
) *Product {
	return &Product{
		id:            id,
		name:          name,
		price:         price,
		unit:          unit,
		category:      category,
		image:         image,
		stockQuantity: stockQuantity,
		isConstructed: true,
	}
}

func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// AssignID sets the storage identifier. It fails for non-positive ids.
func (p *Product) AssignID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("product id", fmt.Errorf("%d is not greater than 0", id))
	}
	p.id = id
	return nil
}

func (p *Product) ID() int64 {
	return p.id
}

func (p *Product) Name() string {
	return p.name
}

func (p *Product) Price() decimal.Decimal {
	return p.price
}

func (p *Product) Unit() string {
	return p.unit
}

func (p *Product) Category() string {
	return p.category
}

func (p *Product) Image() string {
	return p.image
}

func (p *Product) StockQuantity() int {
	return p.stockQuantity
}

func (p *Product) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setPrice(price decimal.Decimal) error {
	price = kernel.Money(price)
	if err := kernel.RequireNonNegative("price", price); err != nil {
		return err
	}
	p.price = price
	return nil
}

func (p *Product) setStockQuantity(stockQuantity int) error {
	if stockQuantity < 0 {
		return errs.NewValueIsOutOfRangeError("stock quantity", stockQuantity, 0, nil)
	}
	p.stockQuantity = stockQuantity
	return nil
}
