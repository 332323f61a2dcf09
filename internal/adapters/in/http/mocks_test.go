package http_test

import (
	"context"
	"sync/atomic"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/mock"
)

type fakeGate struct {
	down atomic.Bool
}

func (g *fakeGate) IsAvailable() bool {
	return !g.down.Load()
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.CreateOrderResult), args.Error(1)
}

type MockChangeOrderStatusHandler struct{ mock.Mock }

func (m *MockChangeOrderStatusHandler) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteOrderHandler struct{ mock.Mock }

func (m *MockDeleteOrderHandler) Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockReplaceDeliveryConfigHandler struct{ mock.Mock }

func (m *MockReplaceDeliveryConfigHandler) Handle(ctx context.Context, cmd commands.ReplaceDeliveryConfigCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockCreateProductHandler struct{ mock.Mock }

func (m *MockCreateProductHandler) Handle(ctx context.Context, cmd commands.CreateProductCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

type MockUpdateProductHandler struct{ mock.Mock }

func (m *MockUpdateProductHandler) Handle(ctx context.Context, cmd commands.UpdateProductCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockDeleteProductHandler struct{ mock.Mock }

func (m *MockDeleteProductHandler) Handle(ctx context.Context, cmd commands.DeleteProductCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetDeliveryConfigHandler struct{ mock.Mock }

func (m *MockGetDeliveryConfigHandler) Handle(
	ctx context.Context,
	query queries.GetDeliveryConfigQuery,
) (queries.GetDeliveryConfigQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetDeliveryConfigQueryResponse), args.Error(1)
}

type MockQuoteDeliveryChargeHandler struct{ mock.Mock }

func (m *MockQuoteDeliveryChargeHandler) Handle(
	ctx context.Context,
	query queries.QuoteDeliveryChargeQuery,
) (queries.QuoteDeliveryChargeQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.QuoteDeliveryChargeQueryResponse), args.Error(1)
}

type MockListOrdersHandler struct{ mock.Mock }

func (m *MockListOrdersHandler) Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]queries.ListOrdersQueryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type MockGetOrderScreenshotHandler struct{ mock.Mock }

func (m *MockGetOrderScreenshotHandler) Handle(
	ctx context.Context,
	query queries.GetOrderScreenshotQuery,
) (queries.GetOrderScreenshotQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderScreenshotQueryResponse), args.Error(1)
}

type MockListProductsHandler struct{ mock.Mock }

func (m *MockListProductsHandler) Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ListProductsQueryResponse, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]queries.ListProductsQueryResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
