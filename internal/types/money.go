// README: Common money value object used across modules.
package types

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount in the caller's currency unit.
type Money struct {
	Amount decimal.Decimal
}

func NewMoney(v float64) Money {
	return Money{Amount: decimal.NewFromFloat(v)}
}

// ParseMoney accepts the textual form of a number ("1200", "99.5").
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, err
	}
	return Money{Amount: d}, nil
}

func Zero() Money {
	return Money{Amount: decimal.Zero}
}

func (m Money) Sub(o Money) Money {
	return Money{Amount: m.Amount.Sub(o.Amount)}
}

// Percent returns m multiplied by rate, e.g. rate 0.07 for 7%.
func (m Money) Percent(rate decimal.Decimal) Money {
	return Money{Amount: m.Amount.Mul(rate)}
}

// Cap returns the smaller of m and limit.
func (m Money) Cap(limit Money) Money {
	if m.Amount.GreaterThan(limit.Amount) {
		return limit
	}
	return m
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

func (m Money) Equal(o Money) bool {
	return m.Amount.Equal(o.Amount)
}

func (m Money) String() string {
	return m.Amount.String()
}

func (m Money) Float64() float64 {
	return m.Amount.InexactFloat64()
}

// MarshalJSON writes the amount as a bare JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Amount.String()), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	var d decimal.Decimal
	if err := json.Unmarshal(b, &d); err != nil {
		return err
	}
	m.Amount = d
	return nil
}
