package pricing

import (
	"github.com/shopspring/decimal"

	"travelcalc/internal/types"
)

type childBracket struct {
	below int // exclusive upper age bound
	rate  decimal.Decimal
	limit *types.Money
}

func moneyPtr(v float64) *types.Money {
	m := types.NewMoney(v)
	return &m
}

// childBrackets is checked in ascending order; first bracket with age < below wins.
// Ages past the last bracket get no discount.
var childBrackets = []childBracket{
	{below: 3, rate: decimal.Zero},
	{below: 6, rate: decimal.RequireFromString("0.80")},
	{below: 12, rate: decimal.RequireFromString("0.30"), limit: moneyPtr(4500)},
	{below: 18, rate: decimal.RequireFromString("0.10")},
}

// ChildDiscount returns the age-based discount off price. No rounding is applied.
func ChildDiscount(price types.Money, age int) types.Money {
	for _, b := range childBrackets {
		if age >= b.below {
			continue
		}
		d := price.Percent(b.rate)
		if b.limit != nil {
			d = d.Cap(*b.limit)
		}
		return d
	}
	return types.Zero()
}
