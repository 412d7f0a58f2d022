package services_test

import (
	"testing"
	"time"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"
	"appcenar/internal/core/domain/services"
	"appcenar/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func lineItem(t *testing.T, name, price string) order.LineItem {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), name, money(t, price), "")
	require.NoError(t, err)
	return item
}

func TestPricingEngine_Price(t *testing.T) {
	engine := services.NewPricingEngine()

	t.Run("two_at_100_and_one_at_50_with_default_rate", func(t *testing.T) {
		pizza := lineItem(t, "Pizza", "100")
		items := []order.LineItem{pizza, pizza, lineItem(t, "Soda", "50")}

		quote, err := engine.Price(items, kernel.DefaultTaxRate())

		require.NoError(t, err)
		assert.Equal(t, "250.00", quote.Subtotal.StringFixed())
		assert.Equal(t, "45.00", quote.Tax.StringFixed())
		assert.Equal(t, "295.00", quote.Total.StringFixed())
	})

	t.Run("single_unit_at_40", func(t *testing.T) {
		quote, err := engine.Price([]order.LineItem{lineItem(t, "Tacos", "40")}, kernel.DefaultTaxRate())

		require.NoError(t, err)
		assert.Equal(t, "40.00", quote.Subtotal.StringFixed())
		assert.Equal(t, "7.20", quote.Tax.StringFixed())
		assert.Equal(t, "47.20", quote.Total.StringFixed())
	})

	t.Run("fractional_prices_stay_exact", func(t *testing.T) {
		dime := lineItem(t, "Gum", "0.10")
		quote, err := engine.Price([]order.LineItem{dime, dime, dime}, kernel.DefaultTaxRate())

		require.NoError(t, err)
		assert.Equal(t, "0.30", quote.Subtotal.StringFixed())
		// 0.30 * 18 / 100 = 0.054, rounded half-up to 0.05
		assert.Equal(t, "0.05", quote.Tax.StringFixed())
		assert.Equal(t, "0.35", quote.Total.StringFixed())
	})

	t.Run("zero_rate_yields_no_tax", func(t *testing.T) {
		rate, err := kernel.NewTaxRate(decimal.Zero)
		require.NoError(t, err)

		quote, err := engine.Price([]order.LineItem{lineItem(t, "Pizza", "100")}, rate)

		require.NoError(t, err)
		assert.True(t, quote.Tax.IsZero())
		assert.Equal(t, "100.00", quote.Total.StringFixed())
	})

	t.Run("quote_totals_satisfy_order_invariants", func(t *testing.T) {
		items := []order.LineItem{lineItem(t, "Pizza", "99.99"), lineItem(t, "Soda", "2.50")}

		quote, err := engine.Price(items, kernel.DefaultTaxRate())
		require.NoError(t, err)

		_, err = order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			items,
			quote.Subtotal, quote.Tax, quote.Total,
			time.Now(),
		)
		require.NoError(t, err)
	})

	t.Run("rejects_empty_items", func(t *testing.T) {
		_, err := engine.Price(nil, kernel.DefaultTaxRate())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_unconstructed_item", func(t *testing.T) {
		_, err := engine.Price([]order.LineItem{{}}, kernel.DefaultTaxRate())
		require.ErrorIs(t, err, order.ErrLineItemIsNotConstructed)
	})
}
