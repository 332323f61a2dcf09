package queries

import (
	"context"

	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError for unknown ids.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			date,
			status,
			total_amount,
			delivery_charge,
			COALESCE(payment_screenshot_status, ''),
			COALESCE(payment_screenshot_mime, '')
		FROM orders
		WHERE id = ?
	`, query.OrderID()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}

	var r orderRow
	if err = rows.Scan(
		&r.ID,
		&r.Date,
		&r.Status,
		&r.TotalAmount,
		&r.DeliveryCharge,
		&r.ScreenshotStatus,
		&r.ScreenshotMIME,
	); err != nil {
		return GetOrderQueryResponse{}, err
	}
	_ = rows.Close()

	items, err := loadOrderItems(ctx, h.db, []string{r.ID})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	orderItems := items[r.ID]
	if orderItems == nil {
		orderItems = []OrderItemView{}
	}

	return GetOrderQueryResponse{
		ID:                r.ID,
		Date:              r.Date,
		Status:            r.Status,
		TotalAmount:       r.TotalAmount,
		DeliveryCharge:    r.DeliveryCharge,
		PaymentScreenshot: order.DisplayScreenshot(r.ScreenshotStatus, r.ScreenshotMIME),
		Items:             orderItems,
	}, nil
}
