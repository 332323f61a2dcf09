package delivery

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrTierIsNotConstructed = errors.New("Tier must be created via NewTier constructor")

// Tier maps the inclusive subtotal range [minAmount, maxAmount] to a delivery charge.
// An invalid maxAmount means the range is unbounded above.
//
// Overlapping or non-contiguous tiers are allowed; overlap is resolved by
// evaluation order.
type Tier struct {
	minAmount decimal.Decimal
	maxAmount decimal.NullDecimal
	charge    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewTier validates that every amount is non-negative and rounds them to cents.
func NewTier(minAmount decimal.Decimal, maxAmount decimal.NullDecimal, charge decimal.Decimal) (Tier, error) {
	t := Tier{
		minAmount: kernel.Money(minAmount),
		charge:    kernel.Money(charge),
		guard:     guard.NewConstructorGuard(),
	}
	if maxAmount.Valid {
		t.maxAmount = decimal.NewNullDecimal(kernel.Money(maxAmount.Decimal))
	}

	var maxErr error
	if t.maxAmount.Valid {
		maxErr = kernel.RequireNonNegative("max_amount", t.maxAmount.Decimal)
	}

	if err := errors.Join(
		kernel.RequireNonNegative("min_amount", t.minAmount),
		maxErr,
		kernel.RequireNonNegative("charge", t.charge),
	); err != nil {
		return Tier{}, err
	}

	return t, nil
}

// MustNewTier is NewTier for literals known to be valid; it panics otherwise.
func MustNewTier(minAmount decimal.Decimal, maxAmount decimal.NullDecimal, charge decimal.Decimal) Tier {
	t, err := NewTier(minAmount, maxAmount, charge)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Tier) Validate() error {
	return t.guard.Validate(ErrTierIsNotConstructed)
}

func (t Tier) MinAmount() decimal.Decimal {
	return t.minAmount
}

// MaxAmount returns the upper bound; Valid is false when the tier is unbounded.
func (t Tier) MaxAmount() decimal.NullDecimal {
	return t.maxAmount
}

func (t Tier) IsUnbounded() bool {
	return !t.maxAmount.Valid
}

func (t Tier) Charge() decimal.Decimal {
	return t.charge
}

// Contains reports whether minAmount <= subtotal <= maxAmount.
func (t Tier) Contains(subtotal decimal.Decimal) bool {
	if subtotal.LessThan(t.minAmount) {
		return false
	}
	return !t.maxAmount.Valid || subtotal.LessThanOrEqual(t.maxAmount.Decimal)
}
