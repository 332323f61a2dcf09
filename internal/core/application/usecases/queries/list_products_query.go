package queries

import (
	"errors"

	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListProductsQueryIsNotConstructed = errors.New(
		"ListProductsQuery must be created via NewListProductsQuery constructor",
	)
)

// ListProductsQuery returns the whole catalog ordered by id.
type ListProductsQuery struct {
	guard guard.ConstructorGuard
}

func NewListProductsQuery() ListProductsQuery {
	return ListProductsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListProductsQuery) Validate() error {
	return q.guard.Validate(ErrListProductsQueryIsNotConstructed)
}

type ListProductsQueryResponse struct {
	ID            int64
	Name          string
	Price         decimal.Decimal
	Unit          string
	Category      string
	Image         string
	StockQuantity int
}
