package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one order line. The price is a snapshot taken at checkout and stays
// fixed even if the catalog price changes later.
type Item struct {
	productID       int64
	quantity        int
	priceAtPurchase decimal.Decimal

	guard guard.ConstructorGuard
}

func NewItem(productID int64, quantity int, priceAtPurchase decimal.Decimal) (Item, error) {
	priceAtPurchase = kernel.Money(priceAtPurchase)

	var errList []error
	if productID <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"product id", fmt.Errorf("%d is not greater than 0", productID),
		))
	}
	if quantity < 1 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, nil))
	}
	errList = append(errList, kernel.RequireNonNegative("price", priceAtPurchase))

	if err := errors.Join(errList...); err != nil {
		return Item{}, err
	}

	return Item{
		productID:       productID,
		quantity:        quantity,
		priceAtPurchase: priceAtPurchase,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i Item) ProductID() int64 {
	return i.productID
}

func (i Item) Quantity() int {
	return i.quantity
}

func (i Item) PriceAtPurchase() decimal.Decimal {
	return i.priceAtPurchase
}

// Subtotal is price × quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.priceAtPurchase.Mul(decimal.NewFromInt(int64(i.quantity)))
}
