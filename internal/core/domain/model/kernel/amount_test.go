package kernel_test

import (
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseModeFromString(t *testing.T) {
	testCases := []struct {
		in       string
		expected kernel.ParseMode
	}{
		{"", kernel.Lenient},
		{"lenient", kernel.Lenient},
		{"LENIENT", kernel.Lenient},
		{" strict ", kernel.Strict},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			mode, err := kernel.ParseModeFromString(tc.in)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, mode)
		})
	}

	t.Run("unknown mode is rejected", func(t *testing.T) {
		_, err := kernel.ParseModeFromString("loose")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAmountParser_Lenient(t *testing.T) {
	p := kernel.NewAmountParser(kernel.Lenient)

	testCases := []struct {
		name     string
		raw      string
		expected string
	}{
		{"integer", "500", "500"},
		{"fraction", "499.99", "499.99"},
		{"rounds to cents", "10.005", "10.01"},
		{"surrounding spaces", " 42 ", "42"},
		{"empty coerces to zero", "", "0"},
		{"garbage coerces to zero", "abc", "0"},
		{"negative is kept", "-3", "-3"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := p.Parse("amount", tc.raw)

			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tc.expected).Equal(d), "got %s", d)
		})
	}
}

func TestAmountParser_Strict(t *testing.T) {
	p := kernel.NewAmountParser(kernel.Strict)

	t.Run("valid amount", func(t *testing.T) {
		d, err := p.Parse("charge", "50")

		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(50).Equal(d))
	})

	t.Run("empty is required", func(t *testing.T) {
		_, err := p.Parse("charge", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "charge")
	})

	t.Run("garbage is invalid", func(t *testing.T) {
		_, err := p.Parse("charge", "fifty")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestAmountParser_ParseOptional(t *testing.T) {
	for _, mode := range []kernel.ParseMode{kernel.Lenient, kernel.Strict} {
		p := kernel.NewAmountParser(mode)

		t.Run(mode.String()+" null is unbounded", func(t *testing.T) {
			d, err := p.ParseOptional("max_amount", "", true)

			require.NoError(t, err)
			assert.False(t, d.Valid)
		})

		t.Run(mode.String()+" empty is unbounded", func(t *testing.T) {
			d, err := p.ParseOptional("max_amount", "  ", false)

			require.NoError(t, err)
			assert.False(t, d.Valid)
		})

		t.Run(mode.String()+" value is bounded", func(t *testing.T) {
			d, err := p.ParseOptional("max_amount", "499.99", false)

			require.NoError(t, err)
			require.True(t, d.Valid)
			assert.Equal(t, "499.99", d.Decimal.StringFixed(2))
		})
	}
}

func TestRequireNonNegative(t *testing.T) {
	require.NoError(t, kernel.RequireNonNegative("price", decimal.Zero))
	require.NoError(t, kernel.RequireNonNegative("price", decimal.NewFromInt(1)))

	err := kernel.RequireNonNegative("price", decimal.NewFromInt(-1))
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "price is -1")
}
