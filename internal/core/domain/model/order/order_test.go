package order_test

import (
	"testing"
	"time"

	"appcenar/internal/core/domain/model/kernel"
	"appcenar/internal/core/domain/model/order"
	"appcenar/internal/core/domain/model/product"
	"appcenar/internal/pkg/errs"

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
	item, err := order.NewLineItem(kernel.NewUUID(), name, money(t, price), "/uploads/item.png")
	require.NoError(t, err)
	return item
}

// newPendingOrder builds a valid order: 2 units at 100 plus 1 unit at 50,
// 18% tax.
func newPendingOrder(t *testing.T) *order.Order {
	t.Helper()

	a := lineItem(t, "Pizza", "100")
	items := []order.LineItem{a, a, lineItem(t, "Soda", "50")}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		kernel.NewUUID(),
		items,
		money(t, "250"),
		money(t, "45"),
		money(t, "295"),
		time.Now(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("creates_pending_order_without_courier", func(t *testing.T) {
		o := newPendingOrder(t)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Pending, o.Status())
		assert.Nil(t, o.Courier())
		assert.Equal(t, 3, o.UnitCount())
		assert.Equal(t, "295.00", o.Total().StringFixed())
	})

	t.Run("rejects_empty_line_items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			nil,
			money(t, "0"), money(t, "0"), money(t, "0"),
			time.Now(),
		)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects_total_not_equal_subtotal_plus_tax", func(t *testing.T) {
		item := lineItem(t, "Pizza", "100")
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{item},
			money(t, "100"), money(t, "18"), money(t, "117"),
			time.Now(),
		)
		require.ErrorIs(t, err, order.ErrTotalsMismatch)
	})

	t.Run("rejects_subtotal_not_matching_line_items", func(t *testing.T) {
		item := lineItem(t, "Pizza", "100")
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{item},
			money(t, "90"), money(t, "16.20"), money(t, "106.20"),
			time.Now(),
		)
		require.ErrorIs(t, err, order.ErrTotalsMismatch)
	})

	t.Run("rejects_invalid_identifiers", func(t *testing.T) {
		item := lineItem(t, "Pizza", "100")
		_, err := order.NewOrder(
			kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
			[]order.LineItem{item},
			money(t, "100"), money(t, "18"), money(t, "118"),
			time.Now(),
		)
		require.Error(t, err)
	})
}

func TestSnapshotOf(t *testing.T) {
	productID := kernel.NewUUID()
	p, err := product.NewProduct(
		productID, kernel.NewUUID(), kernel.NewUUID(),
		"Tacos", money(t, "100"), "/uploads/tacos.png",
	)
	require.NoError(t, err)

	item, err := order.SnapshotOf(p)
	require.NoError(t, err)
	assert.Equal(t, productID, item.ProductID())
	assert.Equal(t, "Tacos", item.Name())
	assert.Equal(t, "100.00", item.UnitPrice().StringFixed())
	assert.Equal(t, "/uploads/tacos.png", item.ImageURL())
}

func TestOrder_SnapshotImmutability(t *testing.T) {
	// Changing a product after order creation must not change the order:
	// the line item holds its own captured copy of the price.
	p, err := product.NewProduct(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"Burger", money(t, "100"), "/uploads/burger.png",
	)
	require.NoError(t, err)

	item, err := order.SnapshotOf(p)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.LineItem{item},
		money(t, "100"), money(t, "18"), money(t, "118"),
		time.Now(),
	)
	require.NoError(t, err)

	relisted, err := product.NewProduct(
		p.ID(), p.MerchantID(), p.CategoryID(),
		"Burger", money(t, "200"), p.ImageURL(),
	)
	require.NoError(t, err)
	assert.Equal(t, "200.00", relisted.Price().StringFixed())

	assert.Equal(t, "100.00", o.Items()[0].UnitPrice().StringFixed())
	assert.Equal(t, "118.00", o.Total().StringFixed())
}

func TestOrder_Assign(t *testing.T) {
	t.Run("pending_order_becomes_in_progress", func(t *testing.T) {
		o := newPendingOrder(t)
		courierID := kernel.NewUUID()

		require.NoError(t, o.Assign(courierID))
		assert.Equal(t, order.InProgress, o.Status())
		require.NotNil(t, o.Courier())
		assert.True(t, o.Courier().IsEqual(courierID))
	})

	t.Run("in_progress_order_reports_already_assigned", func(t *testing.T) {
		o := newPendingOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Assign(first))

		err := o.Assign(kernel.NewUUID())
		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.True(t, o.Courier().IsEqual(first), "courier must not be reassigned")
	})

	t.Run("completed_order_reports_already_completed", func(t *testing.T) {
		o := newPendingOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Assign(courierID))
		require.NoError(t, o.Complete(courierID))

		require.ErrorIs(t, o.Assign(kernel.NewUUID()), order.ErrAlreadyCompleted)
	})

	t.Run("rejects_invalid_courier_id", func(t *testing.T) {
		o := newPendingOrder(t)
		require.Error(t, o.Assign(kernel.UUID{}))
		assert.Equal(t, order.Pending, o.Status())
	})
}

func TestOrder_Complete(t *testing.T) {
	t.Run("assigned_courier_completes_order", func(t *testing.T) {
		o := newPendingOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Assign(courierID))

		require.NoError(t, o.Complete(courierID))
		assert.Equal(t, order.Completed, o.Status())
		assert.True(t, o.Courier().IsEqual(courierID), "courier reference survives completion")
	})

	t.Run("other_courier_cannot_complete", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.Assign(kernel.NewUUID()))

		require.ErrorIs(t, o.Complete(kernel.NewUUID()), order.ErrNotAssignee)
		assert.Equal(t, order.InProgress, o.Status())
	})

	t.Run("pending_order_cannot_be_completed", func(t *testing.T) {
		o := newPendingOrder(t)
		require.ErrorIs(t, o.Complete(kernel.NewUUID()), order.ErrNotAssigned)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("completing_twice_is_an_error", func(t *testing.T) {
		o := newPendingOrder(t)
		courierID := kernel.NewUUID()
		require.NoError(t, o.Assign(courierID))
		require.NoError(t, o.Complete(courierID))

		require.ErrorIs(t, o.Complete(courierID), order.ErrAlreadyCompleted)
		assert.Equal(t, order.Completed, o.Status())
	})
}

func TestRestoreOrder(t *testing.T) {
	item := func() order.LineItem { return lineItem(t, "Pizza", "100") }

	t.Run("restores_in_progress_order_with_courier", func(t *testing.T) {
		courierID := kernel.NewUUID()
		o, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &courierID, kernel.NewUUID(),
			[]order.LineItem{item()},
			money(t, "100"), money(t, "18"), money(t, "118"),
			order.InProgress,
			time.Now(),
		)
		require.NoError(t, err)
		assert.Equal(t, order.InProgress, o.Status())
		require.NotNil(t, o.Courier())
	})

	t.Run("rejects_pending_order_with_courier", func(t *testing.T) {
		courierID := kernel.NewUUID()
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), &courierID, kernel.NewUUID(),
			[]order.LineItem{item()},
			money(t, "100"), money(t, "18"), money(t, "118"),
			order.Pending,
			time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("rejects_in_progress_order_without_courier", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(),
			[]order.LineItem{item()},
			money(t, "100"), money(t, "18"), money(t, "118"),
			order.InProgress,
			time.Now(),
		)
		require.Error(t, err)
	})

	t.Run("rejects_unknown_status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil, kernel.NewUUID(),
			[]order.LineItem{item()},
			money(t, "100"), money(t, "18"), money(t, "118"),
			order.Unknown,
			time.Now(),
		)
		require.Error(t, err)
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("nil_order_fails", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("zero_value_order_fails", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
