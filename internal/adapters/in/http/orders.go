package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

const defaultScreenshotMIME = "application/octet-stream"

// CreateOrder handles POST /api/orders - places a storefront checkout.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.respondError(ctx, invalidRequest(err))
	}
	if err := ctx.Validate(&body); err != nil {
		return s.respondError(ctx, err)
	}

	items, err := s.toOrderItems(body.Items)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		deref(body.Id),
		deref(body.Date),
		commands.CreateOrderCustomer{
			Name:         body.Customer.Name,
			Address:      body.Customer.Address,
			MobileNumber: body.Customer.MobileNumber,
			UPI:          deref(body.Customer.Upi),
		},
		items,
		deref(body.PaymentScreenshot),
		time.Now().UTC(),
	)
	if err != nil {
		return s.respondError(ctx, err)
	}

	result, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	screenshot := cmd.Screenshot()
	s.logger.InfoContext(ctx.Request().Context(), "order placed",
		"order_id", result.OrderID,
		"items", len(items),
		"screenshot_mime", screenshot.MIME(),
		"screenshot_bytes", len(screenshot.Data()),
		"screenshot_status", screenshot.Status(),
		"delivery_charge", result.DeliveryCharge.StringFixed(2),
	)

	return ctx.JSON(http.StatusCreated, servers.OrderCreated{
		Message:        "Order placed successfully",
		OrderId:        result.OrderID,
		DeliveryCharge: amount(result.DeliveryCharge),
	})
}

// ListOrders handles GET /api/orders - the admin panel listing.
func (s *Server) ListOrders(ctx echo.Context, params servers.ListOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		upi := o.Customer.UPI
		response[i] = servers.Order{
			Id:                o.ID,
			Date:              o.Date,
			Status:            o.Status,
			TotalAmount:       amount(o.TotalAmount),
			DeliveryCharge:    amount(o.DeliveryCharge),
			PaymentScreenshot: o.PaymentScreenshot,
			Customer: servers.Customer{
				Name:         o.Customer.Name,
				Address:      o.Customer.Address,
				MobileNumber: o.Customer.MobileNumber,
				Upi:          &upi,
			},
			Items: toOrderItems(o.Items),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/{orderId} - storefront order tracking.
func (s *Server) GetOrder(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	o, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.TrackedOrder{
		Id:                o.ID,
		Date:              o.Date,
		Status:            o.Status,
		TotalAmount:       amount(o.TotalAmount),
		DeliveryCharge:    amount(o.DeliveryCharge),
		PaymentScreenshot: o.PaymentScreenshot,
		Items:             toOrderItems(o.Items),
	})
}

// UpdateOrderStatus handles PUT /api/orders/{orderId}/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context, orderID servers.OrderId) error {
	var body servers.UpdateOrderStatusJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.respondError(ctx, invalidRequest(err))
	}
	if err := ctx.Validate(&body); err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, body.Status)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Order status updated successfully"})
}

// DeleteOrder handles DELETE /api/orders/{orderId}.
func (s *Server) DeleteOrder(ctx echo.Context, orderID servers.OrderId) error {
	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "order deleted", "order_id", orderID)

	return ctx.JSON(http.StatusOK, servers.Message{Message: "Order deleted successfully"})
}

// GetOrderScreenshot handles GET /api/orders/{orderId}/screenshot. Binary proofs
// are sent as is; any other stored marker is wrapped in JSON.
func (s *Server) GetOrderScreenshot(ctx echo.Context, orderID servers.OrderId) error {
	query, err := queries.NewGetOrderScreenshotQuery(orderID)
	if err != nil {
		return s.respondError(ctx, err)
	}

	shot, err := s.handlers.GetOrderScreenshot.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if shot.IsBinary() {
		mime := shot.MIME
		if mime == "" {
			mime = defaultScreenshotMIME
		}
		return ctx.Blob(http.StatusOK, mime, shot.Data)
	}

	return ctx.JSON(http.StatusOK, servers.ScreenshotMarker{Screenshot: shot.Marker})
}

func (s *Server) toOrderItems(in []servers.NewOrderItem) ([]commands.CreateOrderItem, error) {
	items := make([]commands.CreateOrderItem, 0, len(in))
	var itemErrs []error
	for i, item := range in {
		price, err := s.amounts.Parse("price", item.Price.Raw())
		if err != nil {
			itemErrs = append(itemErrs, fmt.Errorf("items[%d]: %w", i, err))
			continue
		}
		items = append(items, commands.CreateOrderItem{
			ProductID: item.Id,
			Quantity:  item.Quantity,
			Price:     price,
		})
	}
	if len(itemErrs) > 0 {
		return nil, errors.Join(itemErrs...)
	}

	return items, nil
}

func toOrderItems(views []queries.OrderItemView) []servers.OrderItem {
	items := make([]servers.OrderItem, len(views))
	for i, v := range views {
		items[i] = servers.OrderItem{
			Id:       v.ProductID,
			Name:     v.Name,
			Price:    amount(v.Price),
			Unit:     v.Unit,
			Category: v.Category,
			Quantity: v.Quantity,
		}
	}
	return items
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
