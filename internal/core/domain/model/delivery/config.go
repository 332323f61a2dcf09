package delivery

import (
	"errors"
	"slices"

	"storefront/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Config is the active delivery rule set. It is read at the start of every
// operation that needs it and passed explicitly; nothing caches it.
type Config struct {
	tiers         []Tier
	defaultCharge decimal.Decimal
	note          string
}

func NewConfig(tiers []Tier, defaultCharge decimal.Decimal, note string) (Config, error) {
	defaultCharge = kernel.Money(defaultCharge)

	var tierErrs []error
	for _, t := range tiers {
		tierErrs = append(tierErrs, t.Validate())
	}
	if err := errors.Join(append(tierErrs, kernel.RequireNonNegative("default_charge", defaultCharge))...); err != nil {
		return Config{}, err
	}

	return Config{
		tiers:         slices.Clone(tiers),
		defaultCharge: defaultCharge,
		note:          note,
	}, nil
}

// EmptyConfig has no tiers and a zero default charge. It is the degraded
// configuration used when the stored rules cannot be read.
func EmptyConfig() Config {
	return Config{defaultCharge: decimal.Zero}
}

// Tiers returns a copy of the tiers in evaluation order.
func (c Config) Tiers() []Tier {
	return slices.Clone(c.tiers)
}

func (c Config) DefaultCharge() decimal.Decimal {
	return c.defaultCharge
}

func (c Config) Note() string {
	return c.note
}

// Resolve applies ResolveCharge with this configuration.
func (c Config) Resolve(subtotal decimal.Decimal) decimal.Decimal {
	return ResolveCharge(subtotal, c.tiers, c.defaultCharge)
}

// FreeDeliveryThreshold returns the lowest min amount among zero-charge tiers.
// ok is false when there is no such tier or when delivery is free from zero.
func (c Config) FreeDeliveryThreshold() (threshold decimal.Decimal, ok bool) {
	for _, t := range c.tiers {
		if !t.charge.IsZero() {
			continue
		}
		if !ok || t.minAmount.LessThan(threshold) {
			threshold, ok = t.minAmount, true
		}
	}
	if ok && !threshold.IsPositive() {
		return decimal.Zero, false
	}
	return threshold, ok
}
