package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler builds the admin order listing.
//
// Example:
//
//	query, _ := NewListOrdersQuery("Payment Done")
//	orders, err := NewListOrdersQueryHandler(db).Handle(ctx, query)
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListOrdersQuery,
) ([]ListOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			date,
			status,
			total_amount,
			delivery_charge,
			COALESCE(payment_screenshot_status, ''),
			COALESCE(payment_screenshot_mime, ''),
			customer_name,
			customer_address,
			customer_mobile,
			COALESCE(customer_upi, '')
		FROM orders`
	args := make([]any, 0, 1)
	if query.Status() != order.StatusUnknown {
		sql += ` WHERE status = ?`
		args = append(args, query.Status().String())
	}
	sql += ` ORDER BY date DESC, id`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orderRows := make([]orderRow, 0)
	for rows.Next() {
		var r orderRow
		if err = rows.Scan(
			&r.ID,
			&r.Date,
			&r.Status,
			&r.TotalAmount,
			&r.DeliveryCharge,
			&r.ScreenshotStatus,
			&r.ScreenshotMIME,
			&r.Customer.Name,
			&r.Customer.Address,
			&r.Customer.MobileNumber,
			&r.Customer.UPI,
		); err != nil {
			return nil, err
		}
		orderRows = append(orderRows, r)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(orderRows))
	for _, r := range orderRows {
		ids = append(ids, r.ID)
	}
	items, err := loadOrderItems(ctx, h.db, ids)
	if err != nil {
		return nil, err
	}

	orders := make([]ListOrdersQueryResponse, 0, len(orderRows))
	for _, r := range orderRows {
		orderItems := items[r.ID]
		if orderItems == nil {
			orderItems = []OrderItemView{}
		}
		orders = append(orders, ListOrdersQueryResponse{
			ID:                r.ID,
			Date:              r.Date,
			Status:            r.Status,
			TotalAmount:       r.TotalAmount,
			DeliveryCharge:    r.DeliveryCharge,
			PaymentScreenshot: order.DisplayScreenshot(r.ScreenshotStatus, r.ScreenshotMIME),
			Customer:          r.Customer,
			Items:             orderItems,
		})
	}

	return orders, nil
}
