package order_test

import (
	"testing"
	"time"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLine(t *testing.T, productID int64, quantity int, unitPrice string) order.Line {
	t.Helper()
	line, err := order.NewLine(productID, quantity, decimal.RequireFromString(unitPrice))
	require.NoError(t, err)
	return line
}

func TestNewOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should create valid pending order with computed totals", func(t *testing.T) {
		lines := []order.Line{
			mustLine(t, 1, 2, "10.00"),
			mustLine(t, 2, 1, "20.00"),
		}

		o, err := order.NewOrder(42, lines, nil, now)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(42), o.CustomerID())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, uint64(1), o.Version())
		assert.Nil(t, o.DiscountPercent())
		assert.True(t, o.SubTotal().Equal(decimal.RequireFromString("40.00")), "subtotal was %s", o.SubTotal())
		assert.True(t, o.Total().Equal(decimal.RequireFromString("40.00")), "total was %s", o.Total())
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("should sum line totals in line order", func(t *testing.T) {
		lines := []order.Line{
			mustLine(t, 3, 3, "1.99"),
			mustLine(t, 1, 1, "100.00"),
			mustLine(t, 2, 2, "0.50"),
		}

		o, err := order.NewOrder(1, lines, nil, now)

		require.NoError(t, err)
		assert.True(t, o.SubTotal().Equal(decimal.RequireFromString("106.97")), "subtotal was %s", o.SubTotal())
		assert.Equal(t, int64(3), o.Lines()[0].ProductID())
		assert.Equal(t, int64(1), o.Lines()[1].ProductID())
		assert.Equal(t, int64(2), o.Lines()[2].ProductID())
	})

	t.Run("should apply discount formula replacing the subtotal", func(t *testing.T) {
		// Two lines of 2x10.00 and 1x20.00 give a subtotal of 40.00.
		// A 10 percent discount produces a total of 4.00, not 36.00:
		// the formula is subtotal * (discount / 100).
		lines := []order.Line{
			mustLine(t, 1, 2, "10.00"),
			mustLine(t, 2, 1, "20.00"),
		}
		discount := decimal.RequireFromString("10")

		o, err := order.NewOrder(1, lines, &discount, now)

		require.NoError(t, err)
		assert.True(t, o.SubTotal().Equal(decimal.RequireFromString("40.00")), "subtotal was %s", o.SubTotal())
		assert.True(t, o.Total().Equal(decimal.RequireFromString("4.00")), "total was %s", o.Total())
	})

	t.Run("should keep total equal to subtotal for zero discount", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, 1, "15.00")}
		discount := decimal.Zero

		o, err := order.NewOrder(1, lines, &discount, now)

		require.NoError(t, err)
		assert.True(t, o.Total().Equal(o.SubTotal()))
	})

	t.Run("should fail with zero customer id", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, 1, "10.00")}

		o, err := order.NewOrder(0, lines, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Equal(t, errs.Validation, errs.KindOf(err))
		assert.Contains(t, err.Error(), "customerId is invalid")
		assert.Contains(t, err.Error(), "0 is not greater than 0")
	})

	t.Run("should fail with negative customer id", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, 1, "10.00")}

		o, err := order.NewOrder(-5, lines, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "customerId is invalid")
		assert.Contains(t, err.Error(), "-5 is not greater than 0")
	})

	t.Run("should fail without lines", func(t *testing.T) {
		o, err := order.NewOrder(1, nil, nil, now)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Equal(t, errs.Validation, errs.KindOf(err))
		assert.Contains(t, err.Error(), "Order must have at least one line item.")
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("should fail for zero value order", func(t *testing.T) {
		var o order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should fail for nil order", func(t *testing.T) {
		var o *order.Order

		err := o.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})

	t.Run("should pass for constructed order", func(t *testing.T) {
		lines := []order.Line{mustLine(t, 1, 1, "10.00")}
		o, err := order.NewOrder(1, lines, nil, time.Now().UTC())

		require.NoError(t, err)
		assert.NoError(t, o.Validate())
	})
}

func TestRestoreOrder(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should restore persisted order with identity and version", func(t *testing.T) {
		lines := []order.Line{order.RestoreLine(10, 7, 1, 2, decimal.RequireFromString("10.00"))}

		o, err := order.RestoreOrder(7, 42, now, order.Paid, nil,
			decimal.RequireFromString("20.00"), decimal.RequireFromString("20.00"), 3, lines)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, int64(7), o.ID())
		assert.Equal(t, order.Paid, o.Status())
		assert.Equal(t, uint64(3), o.Version())
		assert.Equal(t, int64(10), o.Lines()[0].ID())
	})

	t.Run("should fail for invalid status", func(t *testing.T) {
		o, err := order.RestoreOrder(7, 42, now, order.Unknown, nil,
			decimal.Zero, decimal.Zero, 1, nil)

		require.Error(t, err)
		assert.Nil(t, o)
		assert.Contains(t, err.Error(), "status is invalid")
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	now := time.Now().UTC()
	newPendingOrder := func(t *testing.T) *order.Order {
		t.Helper()
		o, err := order.NewOrder(1, []order.Line{mustLine(t, 1, 1, "10.00")}, nil, now)
		require.NoError(t, err)
		return o
	}

	t.Run("should transition pending order to paid", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.ChangeStatus(order.Paid)

		require.NoError(t, err)
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should transition pending order to cancelled", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.ChangeStatus(order.Cancelled)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
	})

	t.Run("should reject transition from paid order", func(t *testing.T) {
		o := newPendingOrder(t)
		require.NoError(t, o.ChangeStatus(order.Paid))

		err := o.ChangeStatus(order.Cancelled)

		require.Error(t, err)
		assert.Equal(t, errs.BusinessRule, errs.KindOf(err))
		assert.Contains(t, err.Error(), "Order with status Paid can only transition from Pending status")
		assert.Equal(t, order.Paid, o.Status())
	})

	t.Run("should reject invalid target status", func(t *testing.T) {
		o := newPendingOrder(t)

		err := o.ChangeStatus(order.Pending)

		require.Error(t, err)
		assert.Equal(t, errs.Validation, errs.KindOf(err))
		assert.Contains(t, err.Error(), "Invalid target status Pending. Only Paid or Cancelled allowed")
		assert.Equal(t, order.Pending, o.Status())
	})
}
