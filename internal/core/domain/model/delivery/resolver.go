package delivery

import "github.com/shopspring/decimal"

// ResolveCharge returns the charge of the first tier, in slice order, whose range
// contains subtotal, or defaultCharge when none does. Tiers are not sorted here.
func ResolveCharge(subtotal decimal.Decimal, tiers []Tier, defaultCharge decimal.Decimal) decimal.Decimal {
	for _, t := range tiers {
		if t.Contains(subtotal) {
			return t.charge
		}
	}
	return defaultCharge
}
