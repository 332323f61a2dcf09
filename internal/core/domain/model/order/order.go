package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

const (
	// MaxIDLength bounds the client-supplied order identifier.
	MaxIDLength = 64

	generatedIDPrefix = "ORD-"
	generatedIDLength = 9
)

// Order is the aggregate root of a checkout. It owns its items and carries the
// amounts frozen at creation.
//
// Order follows these invariants:
//   - id is a non-empty opaque token of at most MaxIDLength characters
//   - items is non-empty
//   - totalAmount is the sum of item subtotals and never changes afterwards
//   - deliveryCharge is resolved once against the delivery config passed to NewOrder
//   - status only moves forward through the lifecycle
type Order struct {
	id             string
	date           time.Time
	status         Status
	customer       Customer
	items          []Item
	totalAmount    decimal.Decimal
	deliveryCharge decimal.Decimal
	screenshot     PaymentScreenshot

	isConstructed bool
}

// NewOrder creates an order in StatusNewOrder status.
//
// The total is computed from items, never taken from the client, and the delivery
// charge is resolved against cfg at this instant. Later changes to the delivery
// config do not affect the returned order.
//
// Example:
//
//	customer, _ := order.NewCustomer("Asha", "12 Market Rd", "9876543210", "asha@upi")
//	item, _ := order.NewItem(1, 5, decimal.NewFromInt(120))
//	o, err := order.NewOrder("ORD-1", time.Now(), customer, []order.Item{item}, order.PaymentScreenshot{}, cfg)
func NewOrder(
	id string,
	date time.Time,
	customer Customer,
	items []Item,
	screenshot PaymentScreenshot,
	cfg delivery.Config,
) (*Order, error) {
	o := &Order{
		date:          date,
		status:        StatusNewOrder,
		screenshot:    screenshot,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomer(customer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	o.totalAmount = o.itemsTotal()
	o.deliveryCharge = cfg.Resolve(o.totalAmount)

	return o, nil
}

// RestoreOrder rebuilds an order from persisted state without recomputing the frozen
// amounts. Intended for repositories only.
func RestoreOrder(
	id string,
	date time.Time,
	status Status,
	customer Customer,
	items []Item,
	totalAmount decimal.Decimal,
	deliveryCharge decimal.Decimal,
	screenshot PaymentScreenshot,
) *Order {
	return &Order{
		id:             id,
		date:           date,
		status:         status,
		customer:       customer,
		items:          items,
		totalAmount:    totalAmount,
		deliveryCharge: deliveryCharge,
		screenshot:     screenshot,
		isConstructed:  true,
	}
}

// NewOrderID generates an identifier of the form ORD-XXXXXXXXX for checkouts that
// did not supply one.
func NewOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return generatedIDPrefix + strings.ToUpper(raw[:generatedIDLength])
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

func (o *Order) ID() string {
	return o.id
}

func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

func (o *Order) DeliveryCharge() decimal.Decimal {
	return o.deliveryCharge
}

func (o *Order) Screenshot() PaymentScreenshot {
	return o.screenshot
}

// ChangeStatus moves the order to target. Only the immediate successor is allowed;
// requesting the current status is accepted and changes nothing.
//
// Returns:
//   - ValueIsInvalidError for a target outside the lifecycle
//   - InvalidTransitionError when the move skips a step or goes backwards
func (o *Order) ChangeStatus(target Status) error {
	next, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = next
	return nil
}

// ValidateDeletion returns ErrDeletionNotAllowed unless the order is processed.
func (o *Order) ValidateDeletion() error {
	return o.status.ValidateDeletion()
}

// AttachMigratedScreenshot replaces a legacy /uploads/ marker with the file contents.
func (o *Order) AttachMigratedScreenshot(data []byte, mime string) error {
	screenshot, err := MigratedFromUploads(data, mime)
	if err != nil {
		return err
	}

	o.screenshot = screenshot
	return nil
}

func (o *Order) itemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

func (o *Order) setID(id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return errs.NewValueIsRequiredError("order id")
	}
	if len(id) > MaxIDLength {
		return errs.NewValueIsOutOfRangeErrorWithCause(
			"order id", len(id), 1, MaxIDLength,
			fmt.Errorf("length must not exceed %d characters", MaxIDLength),
		)
	}
	o.id = id
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	for idx, item := range items {
		if err := item.Validate(); err != nil {
			return fmt.Errorf("item %d: %w", idx, err)
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
