package delivery_test

import (
	"testing"

	"storefront/internal/core/domain/model/delivery"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func bounded(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(dec(s))
}

func defaultTiers() []delivery.Tier {
	return []delivery.Tier{
		delivery.MustNewTier(dec("0"), bounded("499.99"), dec("50")),
		delivery.MustNewTier(dec("500"), decimal.NullDecimal{}, dec("0")),
	}
}

func TestResolveCharge_DefaultTiers(t *testing.T) {
	tiers := defaultTiers()
	defaultCharge := dec("50")

	testCases := []struct {
		subtotal string
		expected string
	}{
		{"0", "50"},
		{"300", "50"},
		{"499.99", "50"},
		{"500", "0"},
		{"600", "0"},
		{"1000000", "0"},
	}

	for _, tc := range testCases {
		t.Run(tc.subtotal, func(t *testing.T) {
			got := delivery.ResolveCharge(dec(tc.subtotal), tiers, defaultCharge)

			assert.True(t, dec(tc.expected).Equal(got), "expected %s, got %s", tc.expected, got)
		})
	}
}

func TestResolveCharge_NoTiersReturnsDefault(t *testing.T) {
	for _, d := range []string{"0", "25", "99.5"} {
		got := delivery.ResolveCharge(dec("123"), nil, dec(d))
		assert.True(t, dec(d).Equal(got))

		got = delivery.ResolveCharge(dec("0"), []delivery.Tier{}, dec(d))
		assert.True(t, dec(d).Equal(got))
	}
}

func TestResolveCharge_GapFallsBackToDefault(t *testing.T) {
	tiers := []delivery.Tier{
		delivery.MustNewTier(dec("0"), bounded("100"), dec("40")),
		delivery.MustNewTier(dec("200"), decimal.NullDecimal{}, dec("0")),
	}

	assert.True(t, dec("40").Equal(delivery.ResolveCharge(dec("100"), tiers, dec("75"))))
	assert.True(t, dec("75").Equal(delivery.ResolveCharge(dec("150"), tiers, dec("75"))))
	assert.True(t, dec("0").Equal(delivery.ResolveCharge(dec("200"), tiers, dec("75"))))
}

func TestResolveCharge_OverlapFirstMatchWins(t *testing.T) {
	tiers := []delivery.Tier{
		delivery.MustNewTier(dec("0"), bounded("300"), dec("30")),
		delivery.MustNewTier(dec("100"), bounded("500"), dec("10")),
	}

	assert.True(t, dec("30").Equal(delivery.ResolveCharge(dec("200"), tiers, dec("99"))))
	assert.True(t, dec("10").Equal(delivery.ResolveCharge(dec("301"), tiers, dec("99"))))
}

func TestResolveCharge_DoesNotSort(t *testing.T) {
	// The unbounded tier listed first shadows the narrower one.
	tiers := []delivery.Tier{
		delivery.MustNewTier(dec("0"), decimal.NullDecimal{}, dec("5")),
		delivery.MustNewTier(dec("0"), bounded("10"), dec("1")),
	}

	assert.True(t, dec("5").Equal(delivery.ResolveCharge(dec("3"), tiers, dec("0"))))
}

func TestResolveCharge_IsDeterministic(t *testing.T) {
	tiers := defaultTiers()

	first := delivery.ResolveCharge(dec("499.99"), tiers, dec("50"))
	second := delivery.ResolveCharge(dec("499.99"), tiers, dec("50"))

	assert.True(t, first.Equal(second))
}

func TestResolveCharge_ContiguousTiersExactlyOneMatch(t *testing.T) {
	tiers := []delivery.Tier{
		delivery.MustNewTier(dec("0"), bounded("99.99"), dec("80")),
		delivery.MustNewTier(dec("100"), bounded("249.99"), dec("60")),
		delivery.MustNewTier(dec("250"), bounded("499.99"), dec("30")),
		delivery.MustNewTier(dec("500"), decimal.NullDecimal{}, dec("0")),
	}

	for cents := int64(0); cents <= 60000; cents += 137 {
		subtotal := decimal.New(cents, -2)

		matches := 0
		var matched delivery.Tier
		for _, tier := range tiers {
			if tier.Contains(subtotal) {
				matches++
				matched = tier
			}
		}

		assert.Equal(t, 1, matches, "subtotal %s", subtotal)
		assert.True(t, matched.Charge().Equal(delivery.ResolveCharge(subtotal, tiers, dec("999"))))
	}
}
