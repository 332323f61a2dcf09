package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrQuoteDeliveryChargeQueryIsNotConstructed = errors.New(
		"QuoteDeliveryChargeQuery must be created via NewQuoteDeliveryChargeQuery constructor",
	)
)

// QuoteDeliveryChargeQuery previews the delivery charge for a cart subtotal.
// The quote is advisory; checkout resolves the charge again.
type QuoteDeliveryChargeQuery struct {
	subtotal decimal.Decimal

	guard guard.ConstructorGuard
}

func NewQuoteDeliveryChargeQuery(subtotal decimal.Decimal) (QuoteDeliveryChargeQuery, error) {
	subtotal = kernel.Money(subtotal)
	if err := kernel.RequireNonNegative("subtotal", subtotal); err != nil {
		return QuoteDeliveryChargeQuery{}, err
	}

	return QuoteDeliveryChargeQuery{subtotal: subtotal, guard: guard.NewConstructorGuard()}, nil
}

func (q QuoteDeliveryChargeQuery) Validate() error {
	return q.guard.Validate(ErrQuoteDeliveryChargeQueryIsNotConstructed)
}

func (q QuoteDeliveryChargeQuery) Subtotal() decimal.Decimal {
	return q.subtotal
}

type QuoteDeliveryChargeQueryResponse struct {
	Subtotal       decimal.Decimal
	DeliveryCharge decimal.Decimal
	Total          decimal.Decimal
}
