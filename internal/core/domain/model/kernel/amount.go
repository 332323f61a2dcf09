package kernel

import (
	"fmt"
	"strings"

	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of fractional digits kept for monetary values.
const MoneyScale = 2

// ParseMode selects how AmountParser treats empty or malformed input.
type ParseMode int

const (
	// Lenient coerces empty and unparsable amounts to zero.
	Lenient ParseMode = iota
	// Strict rejects empty and unparsable amounts.
	Strict
)

func (m ParseMode) String() string {
	switch m {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("ParseMode(%d)", int(m))
	}
}

// ParseModeFromString accepts "lenient" or "strict", case-insensitively.
// An empty string selects Lenient.
func ParseModeFromString(s string) (ParseMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return Lenient, errs.NewValueIsInvalidErrorWithCause(
			"amount parse mode",
			fmt.Errorf("%q is not one of lenient, strict", s),
		)
	}
}

// AmountParser turns raw textual amounts into rounded decimals.
type AmountParser struct {
	mode ParseMode
}

func NewAmountParser(mode ParseMode) AmountParser {
	return AmountParser{mode: mode}
}

func (p AmountParser) Mode() ParseMode {
	return p.mode
}

// Parse converts raw into a decimal rounded to MoneyScale.
//
// Lenient: "" and unparsable input yield zero.
// Strict: "" yields ValueIsRequiredError, unparsable input ValueIsInvalidError.
//
// Sign is not checked here; see RequireNonNegative.
func (p AmountParser) Parse(name, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if p.mode == Strict {
			return decimal.Zero, errs.NewValueIsRequiredError(name)
		}
		return decimal.Zero, nil
	}

	d, err := decimal.NewFromString(raw)
	if err != nil {
		if p.mode == Strict {
			return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(name, err)
		}
		return decimal.Zero, nil
	}

	return d.Round(MoneyScale), nil
}

// ParseOptional is Parse for values where null means "unbounded". A null or empty
// raw value yields an invalid NullDecimal in both modes.
func (p AmountParser) ParseOptional(name, raw string, isNull bool) (decimal.NullDecimal, error) {
	if isNull || strings.TrimSpace(raw) == "" {
		return decimal.NullDecimal{}, nil
	}

	d, err := p.Parse(name, raw)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NewNullDecimal(d), nil
}

// RequireNonNegative returns ValueIsOutOfRangeError when value < 0.
func RequireNonNegative(name string, value decimal.Decimal) error {
	if value.IsNegative() {
		return errs.NewValueIsOutOfRangeError(name, value.String(), "0", nil)
	}
	return nil
}

// Money rounds value to MoneyScale.
func Money(value decimal.Decimal) decimal.Decimal {
	return value.Round(MoneyScale)
}
