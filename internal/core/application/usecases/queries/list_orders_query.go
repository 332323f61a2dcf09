package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery returns orders for the admin panel, newest first. An empty
// status lists every order.
type ListOrdersQuery struct {
	status order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(status string) (ListOrdersQuery, error) {
	q := ListOrdersQuery{guard: guard.NewConstructorGuard()}

	status = strings.TrimSpace(status)
	if status == "" {
		return q, nil
	}

	parsed, err := order.ParseStatus(status)
	if err != nil {
		return ListOrdersQuery{}, err
	}
	q.status = parsed
	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

// Status returns the filter, order.StatusUnknown when unfiltered.
func (q ListOrdersQuery) Status() order.Status {
	return q.status
}

// ListOrdersQueryResponse is one order of the listing. Screenshot data is never
// loaded here; PaymentScreenshot holds the display label only.
type ListOrdersQueryResponse struct {
	ID                string
	Date              time.Time
	Status            string
	TotalAmount       decimal.Decimal
	DeliveryCharge    decimal.Decimal
	PaymentScreenshot string
	Customer          CustomerView
	Items             []OrderItemView
}
