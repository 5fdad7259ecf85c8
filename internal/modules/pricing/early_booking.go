package pricing

import (
	"time"

	"github.com/shopspring/decimal"

	"travelcalc/internal/types"
)

// earlyBookingCap bounds every early-booking tier.
var earlyBookingCap = types.NewMoney(1500)

var (
	rateTier1 = decimal.RequireFromString("0.07")
	rateTier2 = decimal.RequireFromString("0.05")
	rateTier3 = decimal.RequireFromString("0.03")
)

type bookingTier struct {
	Cutoff types.Date // inclusive
	Rate   decimal.Decimal
}

// earlyBookingTable returns the ordered cutoff tiers for a season given the
// calendar year of the travel start date.
//
// High season cutoffs use travelYear itself while low and shoulder use
// travelYear-1. The asymmetry is intentional in the published rules; do not
// shift it without product sign-off.
func earlyBookingTable(season Season, travelYear int) []bookingTier {
	switch season {
	case SeasonHigh:
		return []bookingTier{
			{Cutoff: types.NewDate(travelYear, time.November, 30), Rate: rateTier1},
			{Cutoff: types.NewDate(travelYear, time.December, 31), Rate: rateTier2},
			{Cutoff: types.NewDate(travelYear+1, time.January, 31), Rate: rateTier3},
		}
	case SeasonLow:
		prev := travelYear - 1
		return []bookingTier{
			{Cutoff: types.NewDate(prev, time.March, 31), Rate: rateTier1},
			{Cutoff: types.NewDate(prev, time.April, 30), Rate: rateTier2},
			{Cutoff: types.NewDate(prev, time.May, 31), Rate: rateTier3},
		}
	case SeasonShoulder:
		prev := travelYear - 1
		return []bookingTier{
			{Cutoff: types.NewDate(prev, time.August, 31), Rate: rateTier1},
			{Cutoff: types.NewDate(prev, time.September, 30), Rate: rateTier2},
			{Cutoff: types.NewDate(prev, time.October, 31), Rate: rateTier3},
		}
	}
	return nil
}

// EarlyBookingDiscount applies the first tier whose cutoff the payment date
// does not pass. The rate is taken of the discounted price and capped at 1500.
func EarlyBookingDiscount(season Season, payment types.Date, discounted types.Money, travelYear int) types.Money {
	for _, tier := range earlyBookingTable(season, travelYear) {
		if payment.NotAfter(tier.Cutoff) {
			return discounted.Percent(tier.Rate).Cap(earlyBookingCap)
		}
	}
	return types.Zero()
}
