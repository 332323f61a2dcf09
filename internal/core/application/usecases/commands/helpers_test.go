package commands_test

import (
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/delivery"
	"storefront/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func defaultDeliveryConfig(t *testing.T) delivery.Config {
	t.Helper()
	cfg, err := delivery.NewConfig([]delivery.Tier{
		delivery.MustNewTier(dec("0"), decimal.NewNullDecimal(dec("499.99")), dec("50")),
		delivery.MustNewTier(dec("500"), decimal.NullDecimal{}, dec("0")),
	}, dec("50"), "")
	require.NoError(t, err)
	return cfg
}

func validCheckoutCustomer() commands.CreateOrderCustomer {
	return commands.CreateOrderCustomer{
		Name:         "Asha Rao",
		Address:      "12 Market Road, Pune",
		MobileNumber: "9876543210",
		UPI:          "asha@upi",
	}
}

func storedOrder(t *testing.T, id string, status order.Status) *order.Order {
	t.Helper()
	customer, err := order.NewCustomer("Asha Rao", "12 Market Road, Pune", "9876543210", "")
	require.NoError(t, err)
	item, err := order.NewItem(1, 5, dec("120"))
	require.NoError(t, err)
	return order.RestoreOrder(id, time.Now(), status, customer, []order.Item{item},
		dec("600"), dec("0"), order.PaymentScreenshot{})
}
