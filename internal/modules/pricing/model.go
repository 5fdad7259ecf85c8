// README: Travel pricing request/result and season definitions.
package pricing

import (
	"errors"

	"travelcalc/internal/types"
)

type Season string

const (
	SeasonHigh     Season = "high"
	SeasonLow      Season = "low"
	SeasonShoulder Season = "shoulder"
)

var ErrPaymentAfterTravelStart = errors.New("payment date cannot be later than the travel start date")

// PricingRequest is expected to be structurally valid: price and age non-negative,
// both dates real calendar days.
type PricingRequest struct {
	Price       types.Money
	StartDate   types.Date
	PaymentDate types.Date
	Age         int
}

type PricingResult struct {
	Price                types.Money
	ChildDiscount        types.Money
	EarlyBookingDiscount types.Money
	FinalPrice           types.Money

	// Not part of the wire result; kept for explain output and metrics.
	Season          Season
	DiscountedPrice types.Money
}
