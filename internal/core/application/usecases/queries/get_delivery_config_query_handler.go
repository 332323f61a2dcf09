package queries

import (
	"context"
	"log/slog"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/ports"

	"github.com/shopspring/decimal"
)

// GetDeliveryConfigQueryHandler serves the delivery configuration to the storefront,
// the admin panel and the checkout.
//
// A failed read never reaches the caller: the handler logs it and answers with
// delivery.EmptyConfig, so pricing display degrades to a zero charge instead of
// failing.
//
// Example:
//
//	handler := NewGetDeliveryConfigQueryHandler(repo, logger)
//	resp, _ := handler.Handle(ctx, NewGetDeliveryConfigQuery())
//	charge := resp.Config.Resolve(subtotal)
type GetDeliveryConfigQueryHandler struct {
	repo   ports.DeliveryConfigRepository
	logger *slog.Logger
}

func NewGetDeliveryConfigQueryHandler(
	repo ports.DeliveryConfigRepository,
	logger *slog.Logger,
) GetDeliveryConfigQueryHandler {
	return GetDeliveryConfigQueryHandler{
		repo:   repo,
		logger: logger.With("component", "GetDeliveryConfigQueryHandler"),
	}
}

func (h GetDeliveryConfigQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryConfigQuery,
) (GetDeliveryConfigQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetDeliveryConfigQueryResponse{}, err
	}

	cfg, err := h.repo.Get(ctx)
	degraded := false
	if err != nil {
		h.logger.WarnContext(ctx, "delivery config unavailable, using empty config", "error", err)
		cfg = delivery.EmptyConfig()
		degraded = true
	}

	resp := GetDeliveryConfigQueryResponse{Config: cfg, Degraded: degraded}
	if threshold, ok := cfg.FreeDeliveryThreshold(); ok {
		resp.FreeDeliveryThreshold = decimal.NewNullDecimal(threshold)
	}

	return resp, nil
}

// Current returns the configuration in effect now. It satisfies the provider
// contract the checkout uses.
func (h GetDeliveryConfigQueryHandler) Current(ctx context.Context) delivery.Config {
	resp, _ := h.Handle(ctx, NewGetDeliveryConfigQuery())
	return resp.Config
}
