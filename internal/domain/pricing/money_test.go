//go:build unit

package pricing_test

import (
	"testing"

	"lushquote/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyFormat(t *testing.T) {
	tests := []struct {
		name  string
		cents int64
		want  string
	}{
		{name: "zero", cents: 0, want: "0.00"},
		{name: "whole dollars", cents: 2500, want: "25.00"},
		{name: "cents only", cents: 5, want: "0.05"},
		{name: "dollars and cents", cents: 12345, want: "123.45"},
		{name: "single digit cents pad", cents: 101, want: "1.01"},
		{name: "negative amount", cents: -2550, want: "-25.50"},
		{name: "large total", cents: 100000000, want: "1000000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pricing.NewMoney(tt.cents).Format())
		})
	}
}

func TestMoneyArithmetic(t *testing.T) {
	t.Run("add accumulates cents exactly", func(t *testing.T) {
		total := pricing.NewMoney(1050).Add(pricing.NewMoney(2025))
		assert.Equal(t, int64(3075), total.Cents())
	})

	t.Run("multiply by quantity", func(t *testing.T) {
		total := pricing.NewMoney(1500).MultiplyQuantity(3)
		assert.Equal(t, int64(4500), total.Cents())
	})

	t.Run("zero value", func(t *testing.T) {
		assert.True(t, pricing.Money{}.IsZero())
		assert.False(t, pricing.NewMoney(1).IsZero())
	})
}

func TestNewNonNegativeMoney(t *testing.T) {
	m, err := pricing.NewNonNegativeMoney(100)
	require.NoError(t, err)
	assert.Equal(t, int64(100), m.Cents())

	_, err = pricing.NewNonNegativeMoney(-1)
	assert.Error(t, err)
}
