// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"storefront/internal/adapters/out/postgres/productrepo"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Customer fields are flattened into columns and the
// screenshot is stored inline as bytes plus its MIME type and status label.
type OrderDTO struct {
	ID                      string          `gorm:"type:varchar(64);primaryKey"`
	Date                    time.Time       `gorm:"not null;index"`
	Status                  string          `gorm:"type:varchar(50);not null;default:'New Order';index"`
	CustomerName            string          `gorm:"type:varchar(255);not null"`
	CustomerAddress         string          `gorm:"type:text;not null"`
	CustomerMobile          string          `gorm:"type:varchar(10);not null"`
	CustomerUPI             string          `gorm:"column:customer_upi;type:varchar(255)"`
	TotalAmount             decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DeliveryCharge          decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	PaymentScreenshot       []byte          `gorm:"type:bytea"`
	PaymentScreenshotMIME   *string         `gorm:"column:payment_screenshot_mime;type:varchar(100)"`
	PaymentScreenshotStatus *string         `gorm:"type:text"`
	Items                   []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt               time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order_items row. The product reference is restricted so
// products with order history cannot be deleted.
type OrderItemDTO struct {
	ID              int64                   `gorm:"primaryKey"`
	OrderID         string                  `gorm:"type:varchar(64);not null;index"`
	ProductID       int64                   `gorm:"not null;index"`
	Product         *productrepo.ProductDTO `gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity        int                     `gorm:"not null"`
	PriceAtPurchase decimal.Decimal         `gorm:"type:numeric(10,2);not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	customer := o.Customer()
	shot := o.Screenshot()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		items = append(items, OrderItemDTO{
			OrderID:         o.ID(),
			ProductID:       item.ProductID(),
			Quantity:        item.Quantity(),
			PriceAtPurchase: item.PriceAtPurchase(),
		})
	}

	return OrderDTO{
		ID:                      o.ID(),
		Date:                    o.Date(),
		Status:                  o.Status().String(),
		CustomerName:            customer.Name(),
		CustomerAddress:         customer.Address(),
		CustomerMobile:          customer.MobileNumber(),
		CustomerUPI:             customer.UPI(),
		TotalAmount:             o.TotalAmount(),
		DeliveryCharge:          o.DeliveryCharge(),
		PaymentScreenshot:       shot.Data(),
		PaymentScreenshotMIME:   optional(shot.MIME()),
		PaymentScreenshotStatus: optional(shot.Status()),
		Items:                   items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	customer := order.RestoreCustomer(dto.CustomerName, dto.CustomerAddress, dto.CustomerMobile, dto.CustomerUPI)

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.ProductID, itemDTO.Quantity, itemDTO.PriceAtPurchase)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	screenshot := order.RestorePaymentScreenshot(
		dto.PaymentScreenshot,
		deref(dto.PaymentScreenshotMIME),
		deref(dto.PaymentScreenshotStatus),
	)

	return order.RestoreOrder(
		dto.ID,
		dto.Date,
		status,
		customer,
		items,
		dto.TotalAmount,
		dto.DeliveryCharge,
		screenshot,
	), nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
