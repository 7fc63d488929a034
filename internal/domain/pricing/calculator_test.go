//go:build unit

package pricing_test

import (
	"testing"

	"lushquote/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
)

// stubService is a minimal catalog entry for calculator tests: quantity
// normalization mirrors the checkbox/stepper behavior of real services.
type stubService struct {
	id       string
	cents    int64
	checkbox bool
	max      int
}

func (s stubService) ServiceID() string          { return s.id }
func (s stubService) UnitPrice() pricing.Money   { return pricing.NewMoney(s.cents) }
func (s stubService) EffectiveQuantity(requested int) int {
	if requested <= 0 {
		return 0
	}
	if s.checkbox {
		return 1
	}
	if s.max > 0 && requested > s.max {
		return s.max
	}
	return requested
}

func TestCalculate(t *testing.T) {
	catalog := []pricing.Service{
		stubService{id: "mow", cents: 5000, checkbox: true},
		stubService{id: "hedge", cents: 1500},
		stubService{id: "weed", cents: 2500, max: 4},
	}

	tests := []struct {
		name       string
		selections pricing.SelectionSet
		wantCents  int64
	}{
		{
			name:       "empty selection is zero",
			selections: pricing.SelectionSet{},
			wantCents:  0,
		},
		{
			name:       "single checkbox service",
			selections: pricing.SelectionSet{"mow": 1},
			wantCents:  5000,
		},
		{
			name:       "checkbox quantity above one still counts once",
			selections: pricing.SelectionSet{"mow": 7},
			wantCents:  5000,
		},
		{
			name:       "per unit quantity multiplies",
			selections: pricing.SelectionSet{"hedge": 3},
			wantCents:  4500,
		},
		{
			name:       "quantity clamped to service maximum",
			selections: pricing.SelectionSet{"weed": 10},
			wantCents:  10000,
		},
		{
			name:       "unknown service ids are ignored",
			selections: pricing.SelectionSet{"mow": 1, "ghost": 5},
			wantCents:  5000,
		},
		{
			name:       "negative quantity contributes nothing",
			selections: pricing.SelectionSet{"hedge": -2},
			wantCents:  0,
		},
		{
			name:       "mixed selection sums all lines",
			selections: pricing.SelectionSet{"mow": 1, "hedge": 2, "weed": 1},
			wantCents:  5000 + 3000 + 2500,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := pricing.Calculate(catalog, tt.selections)
			assert.Equal(t, tt.wantCents, total.Cents())
		})
	}
}

func TestCalculateIsMonotonic(t *testing.T) {
	catalog := []pricing.Service{stubService{id: "hedge", cents: 1500}}

	prev := int64(-1)
	for quantity := 0; quantity <= 10; quantity++ {
		total := pricing.Calculate(catalog, pricing.SelectionSet{"hedge": quantity}).Cents()
		assert.GreaterOrEqual(t, total, prev, "adding quantity must never lower the total")
		prev = total
	}
}
