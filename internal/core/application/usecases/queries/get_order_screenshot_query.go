package queries

import (
	"errors"
	"strings"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderScreenshotQueryIsNotConstructed = errors.New(
		"GetOrderScreenshotQuery must be created via NewGetOrderScreenshotQuery constructor",
	)
)

type GetOrderScreenshotQuery struct {
	orderID string

	guard guard.ConstructorGuard
}

func NewGetOrderScreenshotQuery(orderID string) (GetOrderScreenshotQuery, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return GetOrderScreenshotQuery{}, errs.NewValueIsRequiredError("order id")
	}
	return GetOrderScreenshotQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderScreenshotQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderScreenshotQueryIsNotConstructed)
}

func (q GetOrderScreenshotQuery) OrderID() string {
	return q.orderID
}

// GetOrderScreenshotQueryResponse is either binary content (Data non-empty, with
// its MIME type) or a bare marker string to be returned wrapped in JSON.
type GetOrderScreenshotQueryResponse struct {
	Data   []byte
	MIME   string
	Marker string
}

func (r GetOrderScreenshotQueryResponse) IsBinary() bool {
	return len(r.Data) > 0
}
