package http

import (
	"context"
	"log/slog"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/generated/servers"
)

type CreateOrderHandler interface {
	Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
}

type ChangeOrderStatusHandler interface {
	Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) error
}

type DeleteOrderHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteOrderCommand) error
}

type ReplaceDeliveryConfigHandler interface {
	Handle(ctx context.Context, cmd commands.ReplaceDeliveryConfigCommand) error
}

type CreateProductHandler interface {
	Handle(ctx context.Context, cmd commands.CreateProductCommand) (int64, error)
}

type UpdateProductHandler interface {
	Handle(ctx context.Context, cmd commands.UpdateProductCommand) error
}

type DeleteProductHandler interface {
	Handle(ctx context.Context, cmd commands.DeleteProductCommand) error
}

type GetDeliveryConfigHandler interface {
	Handle(ctx context.Context, query queries.GetDeliveryConfigQuery) (queries.GetDeliveryConfigQueryResponse, error)
}

type QuoteDeliveryChargeHandler interface {
	Handle(ctx context.Context, query queries.QuoteDeliveryChargeQuery) (queries.QuoteDeliveryChargeQueryResponse, error)
}

type ListOrdersHandler interface {
	Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
}

type GetOrderHandler interface {
	Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
}

type GetOrderScreenshotHandler interface {
	Handle(ctx context.Context, query queries.GetOrderScreenshotQuery) (queries.GetOrderScreenshotQueryResponse, error)
}

type ListProductsHandler interface {
	Handle(ctx context.Context, query queries.ListProductsQuery) ([]queries.ListProductsQueryResponse, error)
}

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	// Command handlers
	CreateOrder           CreateOrderHandler
	ChangeOrderStatus     ChangeOrderStatusHandler
	DeleteOrder           DeleteOrderHandler
	ReplaceDeliveryConfig ReplaceDeliveryConfigHandler
	CreateProduct         CreateProductHandler
	UpdateProduct         UpdateProductHandler
	DeleteProduct         DeleteProductHandler

	// Query handlers
	GetDeliveryConfig   GetDeliveryConfigHandler
	QuoteDeliveryCharge QuoteDeliveryChargeHandler
	ListOrders          ListOrdersHandler
	GetOrder            GetOrderHandler
	GetOrderScreenshot  GetOrderScreenshotHandler
	ListProducts        ListProductsHandler
}

// Server implements servers.ServerInterface. It turns wire payloads into commands
// and queries and use-case results back into wire payloads.
type Server struct {
	handlers Handlers
	amounts  kernel.AmountParser
	logger   *slog.Logger
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer creates a new HTTP server. amounts decides how loosely monetary input
// is read.
func NewServer(handlers Handlers, amounts kernel.AmountParser, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		amounts:  amounts,
		logger:   logger.With("component", "http.Server"),
	}
}
