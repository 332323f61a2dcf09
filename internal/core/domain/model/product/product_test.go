package product_test

import (
	"testing"

	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		p, err := product.NewProduct(" Premium Basmati Rice ", decimal.RequireFromString("120.004"), "kg", "Grains", "", 50)

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.Equal(t, "Premium Basmati Rice", p.Name())
		assert.True(t, decimal.NewFromInt(120).Equal(p.Price()))
		assert.Equal(t, "kg", p.Unit())
		assert.Equal(t, 50, p.StockQuantity())
		assert.Zero(t, p.ID())
	})

	t.Run("invalid fields are joined", func(t *testing.T) {
		p, err := product.NewProduct("", decimal.NewFromInt(-1), "", "", "", -3)

		assert.Nil(t, p)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "stock quantity")
		assert.Contains(t, err.Error(), "price")
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		_, err := product.NewProduct("Sample", decimal.Zero, "", "", "", 0)

		require.NoError(t, err)
	})
}

func TestProduct_AssignID(t *testing.T) {
	p, err := product.NewProduct("Turmeric Powder", decimal.NewFromInt(220), "kg", "Spices", "", 40)
	require.NoError(t, err)

	require.ErrorIs(t, p.AssignID(0), errs.ErrValueIsInvalid)
	require.NoError(t, p.AssignID(7))
	assert.Equal(t, int64(7), p.ID())
}

func TestProduct_Validate(t *testing.T) {
	var p *product.Product
	require.ErrorIs(t, p.Validate(), product.ErrProductIsNotConstructed)
	require.ErrorIs(t, (&product.Product{}).Validate(), product.ErrProductIsNotConstructed)
}
