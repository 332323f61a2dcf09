package http

import (
	"errors"
	"fmt"
	"net/http"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// GetDeliveryConfig handles GET /api/delivery.
func (s *Server) GetDeliveryConfig(ctx echo.Context) error {
	return s.deliveryConfig(ctx)
}

// GetAdminDeliveryConfig handles GET /api/admin/delivery.
func (s *Server) GetAdminDeliveryConfig(ctx echo.Context) error {
	return s.deliveryConfig(ctx)
}

func (s *Server) deliveryConfig(ctx echo.Context) error {
	resp, err := s.handlers.GetDeliveryConfig.Handle(ctx.Request().Context(), queries.NewGetDeliveryConfigQuery())
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toDeliveryConfig(resp))
}

// ReplaceDeliveryConfig handles PUT /api/admin/delivery.
func (s *Server) ReplaceDeliveryConfig(ctx echo.Context) error {
	var body servers.ReplaceDeliveryConfigJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return s.respondError(ctx, invalidRequest(err))
	}
	if err := ctx.Validate(&body); err != nil {
		return s.respondError(ctx, err)
	}

	replacement, err := s.toReplacement(body)
	if err != nil {
		return s.respondError(ctx, err)
	}

	cmd, err := commands.NewReplaceDeliveryConfigCommand(replacement)
	if err != nil {
		return s.respondError(ctx, err)
	}

	if err = s.handlers.ReplaceDeliveryConfig.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	s.logger.InfoContext(ctx.Request().Context(), "delivery config replaced",
		"tiers", len(replacement.Tiers()),
		"default_charge_set", replacement.DefaultCharge() != nil,
		"note_set", replacement.Note() != nil,
	)

	return ctx.JSON(http.StatusOK, servers.Ok{Ok: true})
}

// QuoteDeliveryCharge handles GET /api/delivery/quote.
func (s *Server) QuoteDeliveryCharge(ctx echo.Context, params servers.QuoteDeliveryChargeParams) error {
	subtotal, err := s.amounts.Parse("subtotal", params.Subtotal)
	if err != nil {
		return s.respondError(ctx, err)
	}

	query, err := queries.NewQuoteDeliveryChargeQuery(subtotal)
	if err != nil {
		return s.respondError(ctx, err)
	}

	quote, err := s.handlers.QuoteDeliveryCharge.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, servers.DeliveryQuote{
		Subtotal:       amount(quote.Subtotal),
		DeliveryCharge: amount(quote.DeliveryCharge),
		Total:          amount(quote.Total),
	})
}

func (s *Server) toReplacement(body servers.DeliveryConfigInput) (delivery.Replacement, error) {
	var inputs []servers.DeliveryTierInput
	if body.Tiers != nil {
		inputs = *body.Tiers
	}

	tiers := make([]delivery.Tier, 0, len(inputs))
	var tierErrs []error
	for i, in := range inputs {
		tier, err := s.toTier(in)
		if err != nil {
			tierErrs = append(tierErrs, fmt.Errorf("tiers[%d]: %w", i, err))
			continue
		}
		tiers = append(tiers, tier)
	}
	if len(tierErrs) > 0 {
		return delivery.Replacement{}, errors.Join(tierErrs...)
	}

	var defaultCharge *decimal.Decimal
	if body.DefaultCharge.IsSet() {
		charge, err := s.amounts.Parse("default_charge", body.DefaultCharge.Raw())
		if err != nil {
			return delivery.Replacement{}, err
		}
		defaultCharge = &charge
	}

	return delivery.NewReplacement(tiers, defaultCharge, body.Note)
}

func (s *Server) toTier(in servers.DeliveryTierInput) (delivery.Tier, error) {
	minAmount, minErr := s.amounts.Parse("min_amount", in.MinAmount.Raw())
	maxAmount, maxErr := s.amounts.ParseOptional("max_amount", in.MaxAmount.Raw(), in.MaxAmount.IsNull())
	charge, chargeErr := s.amounts.Parse("charge", in.Charge.Raw())
	if err := errors.Join(minErr, maxErr, chargeErr); err != nil {
		return delivery.Tier{}, err
	}

	return delivery.NewTier(minAmount, maxAmount, charge)
}

func toDeliveryConfig(resp queries.GetDeliveryConfigQueryResponse) servers.DeliveryConfig {
	tiers := make([]servers.DeliveryTier, 0, len(resp.Config.Tiers()))
	for _, t := range resp.Config.Tiers() {
		tiers = append(tiers, servers.DeliveryTier{
			MinAmount: amount(t.MinAmount()),
			MaxAmount: optionalAmount(t.MaxAmount()),
			Charge:    amount(t.Charge()),
		})
	}

	return servers.DeliveryConfig{
		Tiers:                 tiers,
		DefaultCharge:         amount(resp.Config.DefaultCharge()),
		Note:                  resp.Config.Note(),
		FreeDeliveryThreshold: optionalAmount(resp.FreeDeliveryThreshold),
	}
}

func amount(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func optionalAmount(d decimal.NullDecimal) *float64 {
	if !d.Valid {
		return nil
	}
	v := d.Decimal.InexactFloat64()
	return &v
}
