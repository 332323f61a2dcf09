package delivery

import (
	"errors"
	"slices"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrReplacementIsNotConstructed = errors.New("Replacement must be created via NewReplacement constructor")

// Replacement describes an administrator update of the rule set. Tiers are always
// replaced wholesale; the default charge and the note change only when set.
type Replacement struct {
	tiers         []Tier
	defaultCharge *decimal.Decimal
	note          *string

	guard guard.ConstructorGuard
}

func NewReplacement(tiers []Tier, defaultCharge *decimal.Decimal, note *string) (Replacement, error) {
	r := Replacement{tiers: slices.Clone(tiers), note: note, guard: guard.NewConstructorGuard()}

	var errList []error
	for _, t := range tiers {
		errList = append(errList, t.Validate())
	}
	if defaultCharge != nil {
		dc := kernel.Money(*defaultCharge)
		errList = append(errList, kernel.RequireNonNegative("default_charge", dc))
		r.defaultCharge = &dc
	}
	if err := errors.Join(errList...); err != nil {
		return Replacement{}, err
	}

	return r, nil
}

func (r Replacement) Validate() error {
	return r.guard.Validate(ErrReplacementIsNotConstructed)
}

func (r Replacement) Tiers() []Tier {
	return slices.Clone(r.tiers)
}

// DefaultCharge returns the new default charge, or nil to keep the current one.
func (r Replacement) DefaultCharge() *decimal.Decimal {
	return r.defaultCharge
}

// Note returns the new note, or nil to keep the current one.
func (r Replacement) Note() *string {
	return r.note
}

// SortByMinAmount returns the tiers ordered by ascending min amount, keeping the
// relative order of equal minimums.
func SortByMinAmount(tiers []Tier) []Tier {
	sorted := slices.Clone(tiers)
	slices.SortStableFunc(sorted, func(a, b Tier) int {
		return a.minAmount.Cmp(b.minAmount)
	})
	return sorted
}
