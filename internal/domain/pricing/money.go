package pricing

import (
	"errors"
	"fmt"
)

// Money is an integer cent amount. Totals accumulate in cents so that no
// rounding ever happens mid-calculation; formatting to two decimal places
// is a display concern at the edge.
type Money struct {
	cents int64
}

func NewMoney(cents int64) Money {
	return Money{cents: cents}
}

func NewNonNegativeMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errors.New("money cannot be negative")
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) MultiplyQuantity(quantity int) Money {
	return Money{cents: m.cents * int64(quantity)}
}

func (m Money) IsZero() bool {
	return m.cents == 0
}

// Format renders a dollar string with exactly two decimals, e.g. "25.00".
func (m Money) Format() string {
	cents := m.cents
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
