package queries

import (
	"context"

	"storefront/internal/core/domain/model/delivery"
)

type deliveryConfigSource interface {
	Current(ctx context.Context) delivery.Config
}

// QuoteDeliveryChargeQueryHandler runs the same resolver the checkout uses.
type QuoteDeliveryChargeQueryHandler struct {
	source deliveryConfigSource
}

func NewQuoteDeliveryChargeQueryHandler(source deliveryConfigSource) QuoteDeliveryChargeQueryHandler {
	return QuoteDeliveryChargeQueryHandler{source: source}
}

func (h QuoteDeliveryChargeQueryHandler) Handle(
	ctx context.Context,
	query QuoteDeliveryChargeQuery,
) (QuoteDeliveryChargeQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return QuoteDeliveryChargeQueryResponse{}, err
	}

	charge := h.source.Current(ctx).Resolve(query.Subtotal())

	return QuoteDeliveryChargeQueryResponse{
		Subtotal:       query.Subtotal(),
		DeliveryCharge: charge,
		Total:          query.Subtotal().Add(charge),
	}, nil
}
