// Package queries contains read-only operations.
// Handlers read straight from storage and return flat response structs.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetDeliveryConfigQueryIsNotConstructed = errors.New(
		"GetDeliveryConfigQuery must be created via NewGetDeliveryConfigQuery constructor",
	)
)

// GetDeliveryConfigQuery reads the active delivery rules.
type GetDeliveryConfigQuery struct {
	guard guard.ConstructorGuard
}

func NewGetDeliveryConfigQuery() GetDeliveryConfigQuery {
	return GetDeliveryConfigQuery{guard: guard.NewConstructorGuard()}
}

func (q GetDeliveryConfigQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryConfigQueryIsNotConstructed)
}

// GetDeliveryConfigQueryResponse is the active configuration. Degraded is set when
// storage could not be read and the empty configuration was substituted.
type GetDeliveryConfigQueryResponse struct {
	Config                delivery.Config
	FreeDeliveryThreshold decimal.NullDecimal
	Degraded              bool
}
