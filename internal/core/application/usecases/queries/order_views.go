package queries

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerView struct {
	Name         string
	Address      string
	MobileNumber string
	UPI          string
}

// OrderItemView is an order line joined with the current catalog entry. Name, unit
// and category are empty when the product no longer exists.
type OrderItemView struct {
	ProductID int64
	Name      string
	Unit      string
	Category  string
	Price     decimal.Decimal
	Quantity  int
}

// loadOrderItems fetches the lines of the given orders keyed by order id, in
// insertion order.
func loadOrderItems(ctx context.Context, db *gorm.DB, orderIDs []string) (map[string][]OrderItemView, error) {
	items := make(map[string][]OrderItemView, len(orderIDs))
	if len(orderIDs) == 0 {
		return items, nil
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			oi.order_id,
			oi.product_id,
			COALESCE(p.name, ''),
			COALESCE(p.unit, ''),
			COALESCE(p.category, ''),
			oi.price_at_purchase,
			oi.quantity
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id IN ?
		ORDER BY oi.id
	`, orderIDs).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID string
		var item OrderItemView
		if err = rows.Scan(
			&orderID,
			&item.ProductID,
			&item.Name,
			&item.Unit,
			&item.Category,
			&item.Price,
			&item.Quantity,
		); err != nil {
			return nil, err
		}
		items[orderID] = append(items[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

type orderRow struct {
	ID               string
	Date             time.Time
	Status           string
	TotalAmount      decimal.Decimal
	DeliveryCharge   decimal.Decimal
	ScreenshotStatus string
	ScreenshotMIME   string
	Customer         CustomerView
}
