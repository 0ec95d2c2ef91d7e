package commands_test

import (
	"testing"

	"orders/internal/core/application/usecases/commands"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	validLines := []commands.OrderLineInput{{ProductID: 1, Quantity: 2}}

	t.Run("should create valid command", func(t *testing.T) {
		discount := decimal.RequireFromString("10")

		cmd, err := commands.NewCreateOrderCommand(42, validLines, &discount)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(42), cmd.CustomerID())
		assert.Equal(t, validLines, cmd.Lines())
		assert.True(t, cmd.DiscountPercent().Equal(discount))
	})

	t.Run("should fail with non positive customer id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(0, validLines, nil)

		require.Error(t, err)
		assert.Equal(t, errs.Validation, errs.KindOf(err))
		assert.Contains(t, err.Error(), "CustomerId must be greater than 0.")
	})

	t.Run("should fail without lines", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(42, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Order must have at least one line item.")
	})

	t.Run("should fail with non positive product id", func(t *testing.T) {
		lines := []commands.OrderLineInput{{ProductID: 0, Quantity: 2}}

		_, err := commands.NewCreateOrderCommand(42, lines, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ProductId must be greater than 0.")
	})

	t.Run("should fail with non positive quantity", func(t *testing.T) {
		lines := []commands.OrderLineInput{{ProductID: 1, Quantity: 0}}

		_, err := commands.NewCreateOrderCommand(42, lines, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Quantity must be greater than 0.")
	})

	t.Run("should fail with quantity at limit", func(t *testing.T) {
		lines := []commands.OrderLineInput{{ProductID: 1, Quantity: 10_000}}

		_, err := commands.NewCreateOrderCommand(42, lines, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Quantity must not exceed 10,000.")
	})

	t.Run("should accept quantity just under limit", func(t *testing.T) {
		lines := []commands.OrderLineInput{{ProductID: 1, Quantity: 9_999}}

		_, err := commands.NewCreateOrderCommand(42, lines, nil)

		require.NoError(t, err)
	})

	t.Run("should join all violations", func(t *testing.T) {
		lines := []commands.OrderLineInput{{ProductID: 0, Quantity: -1}}

		_, err := commands.NewCreateOrderCommand(-1, lines, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "CustomerId must be greater than 0.")
		assert.Contains(t, err.Error(), "ProductId must be greater than 0.")
		assert.Contains(t, err.Error(), "Quantity must be greater than 0.")
		assert.Contains(t, err.Error(), "; ")
	})

	t.Run("should reject zero value command in validate", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
