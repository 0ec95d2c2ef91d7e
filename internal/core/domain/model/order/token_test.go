package order_test

import (
	"testing"

	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeToken(t *testing.T) {
	t.Run("should round trip versions", func(t *testing.T) {
		for _, version := range []uint64{0, 1, 42, 1<<32 + 7, ^uint64(0)} {
			token := order.EncodeToken(version)

			got, err := order.DecodeToken(token)

			require.NoError(t, err)
			assert.Equal(t, version, got)
		}
	})

	t.Run("should produce distinct tokens for distinct versions", func(t *testing.T) {
		assert.NotEqual(t, order.EncodeToken(1), order.EncodeToken(2))
	})
}

func TestDecodeToken(t *testing.T) {
	t.Run("should reject non base64 input", func(t *testing.T) {
		got, err := order.DecodeToken("not a token!!!")

		require.Error(t, err)
		assert.Zero(t, got)
		assert.Equal(t, errs.Validation, errs.KindOf(err))
		assert.Contains(t, err.Error(), "Invalid concurrency token")
	})

	t.Run("should reject base64 of wrong length", func(t *testing.T) {
		got, err := order.DecodeToken("AAAA") // 3 decoded bytes, not 8

		require.Error(t, err)
		assert.Zero(t, got)
		assert.Equal(t, errs.Validation, errs.KindOf(err))
		assert.Contains(t, err.Error(), "Invalid concurrency token")
	})

	t.Run("should reject empty token", func(t *testing.T) {
		got, err := order.DecodeToken("")

		require.Error(t, err)
		assert.Zero(t, got)
	})
}
