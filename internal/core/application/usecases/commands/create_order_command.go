package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderItem is one cart line as submitted at checkout.
type CreateOrderItem struct {
	ProductID int64
	Quantity  int
	Price     decimal.Decimal
}

// CreateOrderCustomer is the contact block submitted at checkout.
type CreateOrderCustomer struct {
	Name         string
	Address      string
	MobileNumber string
	UPI          string
}

// CreateOrderCommand represents a checkout.
//
// The client-supplied status and total are not part of the command: a new order
// always starts in NewOrder and its total is recomputed from the items.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand("", "2026-01-15T10:00:00Z", customer, items, "data:image/png;base64,AAAA", time.Now())
//	if err != nil {
//	    return fmt.Errorf("invalid checkout: %w", err)
//	}
//
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    string
	date       time.Time
	customer   order.Customer
	items      []order.Item
	screenshot order.PaymentScreenshot

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates checkout input.
//
// An empty orderID is replaced with a generated ORD-XXXXXXXXX identifier. A date
// that is empty or not RFC 3339 falls back to now.
func NewCreateOrderCommand(
	orderID string,
	date string,
	customer CreateOrderCustomer,
	items []CreateOrderItem,
	paymentScreenshot string,
	now time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	cmd.setOrderID(orderID)
	cmd.setDate(date, now)

	if err := errors.Join(
		cmd.setCustomer(customer),
		cmd.setItems(items),
		cmd.setScreenshot(paymentScreenshot),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() string {
	return c.orderID
}

func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

func (c CreateOrderCommand) Items() []order.Item {
	return c.items
}

func (c CreateOrderCommand) Screenshot() order.PaymentScreenshot {
	return c.screenshot
}

func (c *CreateOrderCommand) setOrderID(orderID string) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		orderID = order.NewOrderID()
	}
	c.orderID = orderID
}

func (c *CreateOrderCommand) setDate(date string, now time.Time) {
	parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(date))
	if err != nil {
		parsed = now
	}
	c.date = parsed
}

func (c *CreateOrderCommand) setCustomer(customer CreateOrderCustomer) error {
	value, err := order.NewCustomer(customer.Name, customer.Address, customer.MobileNumber, customer.UPI)
	if err != nil {
		return err
	}
	c.customer = value
	return nil
}

func (c *CreateOrderCommand) setItems(items []CreateOrderItem) error {
	result := make([]order.Item, 0, len(items))
	var errList []error
	for idx, item := range items {
		value, err := order.NewItem(item.ProductID, item.Quantity, item.Price)
		if err != nil {
			errList = append(errList, fmt.Errorf("item %d: %w", idx, err))
			continue
		}
		result = append(result, value)
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}
	c.items = result
	return nil
}

func (c *CreateOrderCommand) setScreenshot(raw string) error {
	screenshot, err := order.ParsePaymentScreenshot(raw)
	if err != nil {
		return err
	}
	c.screenshot = screenshot
	return nil
}
