package queries

import (
	"errors"
	"strings"
	"time"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery looks up one order for customer-facing tracking.
type GetOrderQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID string) (GetOrderQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() string {
	return q.orderID
}

// GetOrderQueryResponse carries what a customer needs to follow an order. Contact
// details are left out; the tracking endpoint is public.
type GetOrderQueryResponse struct {
	ID                string
	Date              time.Time
	Status            string
	TotalAmount       decimal.Decimal
	DeliveryCharge    decimal.Decimal
	PaymentScreenshot string
	Items             []OrderItemView
}
