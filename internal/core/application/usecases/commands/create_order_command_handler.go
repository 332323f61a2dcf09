package commands

import (
	"context"

	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// CreateOrderResult is returned to the storefront after checkout.
type CreateOrderResult struct {
	OrderID        string
	DeliveryCharge decimal.Decimal
}

// CreateOrderCommandHandler persists a checkout as a new order.
//
// The delivery config is read once, before the transaction starts, and the charge
// it yields is frozen into the order.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory, deliveryConfigQuery)
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Printf("order %s, delivery %s", result.OrderID, result.DeliveryCharge)
type CreateOrderCommandHandler struct {
	uowFactory     OrderUoWFactory
	configProvider DeliveryConfigProvider
}

func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	configProvider DeliveryConfigProvider,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory:     uowFactory,
		configProvider: configProvider,
	}
}

// Handle resolves the delivery charge and stores the order with its items in one
// transaction.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	cfg := h.configProvider.Current(ctx)

	aggregate, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Date(),
		cmd.Customer(),
		cmd.Items(),
		cmd.Screenshot(),
		cfg,
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID:        aggregate.ID(),
		DeliveryCharge: aggregate.DeliveryCharge(),
	}, nil
}
