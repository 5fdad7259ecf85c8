package pricing

import (
	"errors"
	"testing"
	"time"

	"travelcalc/internal/types"
)

func date(y int, m time.Month, d int) types.Date {
	return types.NewDate(y, m, d)
}

func money(v float64) types.Money {
	return types.NewMoney(v)
}

func TestService_Calculate(t *testing.T) {
	// High season start: 2027-05-01, booked early in the previous autumn.
	highStart := date(2027, time.May, 1)
	earlyPayment := date(2026, time.November, 15)

	tests := []struct {
		name             string
		req              PricingRequest
		wantChild        float64
		wantEarlyBooking float64
		wantFinal        float64
		wantSeason       Season
	}{
		{
			name:             "Adult with early booking",
			req:              PricingRequest{Price: money(10000), StartDate: highStart, PaymentDate: earlyPayment, Age: 30},
			wantChild:        0,
			wantEarlyBooking: 700, // 10000 * 0.07
			wantFinal:        9300,
			wantSeason:       SeasonHigh,
		},
		{
			name:             "Infant under 3",
			req:              PricingRequest{Price: money(5000), StartDate: highStart, PaymentDate: earlyPayment, Age: 2},
			wantChild:        0,
			wantEarlyBooking: 350,
			wantFinal:        4650,
			wantSeason:       SeasonHigh,
		},
		{
			name: "Child 8 -> 30% then early booking on discounted price",
			req:  PricingRequest{Price: money(6000), StartDate: highStart, PaymentDate: earlyPayment, Age: 8},
			// Child: 6000 * 0.30 = 1800. Discounted: 4200.
			// Early: 4200 * 0.07 = 294.
			wantChild:        1800,
			wantEarlyBooking: 294,
			wantFinal:        3906,
			wantSeason:       SeasonHigh,
		},
		{
			name: "Child 4 -> 80%",
			req:  PricingRequest{Price: money(10000), StartDate: highStart, PaymentDate: earlyPayment, Age: 4},
			// Discounted: 2000. Early: 140.
			wantChild:        8000,
			wantEarlyBooking: 140,
			wantFinal:        1860,
			wantSeason:       SeasonHigh,
		},
		{
			name: "Child 10 -> 30% capped at 4500",
			req:  PricingRequest{Price: money(20000), StartDate: highStart, PaymentDate: earlyPayment, Age: 10},
			// 20000 * 0.30 = 6000 -> 4500. Discounted: 15500. Early: 1085.
			wantChild:        4500,
			wantEarlyBooking: 1085,
			wantFinal:        14415,
			wantSeason:       SeasonHigh,
		},
		{
			name:             "Teen 15 -> 10%",
			req:              PricingRequest{Price: money(10000), StartDate: highStart, PaymentDate: earlyPayment, Age: 15},
			wantChild:        1000,
			wantEarlyBooking: 630,
			wantFinal:        8370,
			wantSeason:       SeasonHigh,
		},
		{
			name: "Early booking capped at 1500",
			req:  PricingRequest{Price: money(30000), StartDate: highStart, PaymentDate: earlyPayment, Age: 40},
			// 30000 * 0.07 = 2100 -> 1500.
			wantChild:        0,
			wantEarlyBooking: 1500,
			wantFinal:        28500,
			wantSeason:       SeasonHigh,
		},
		{
			name:             "Payment on travel start day is allowed",
			req:              PricingRequest{Price: money(10000), StartDate: highStart, PaymentDate: highStart, Age: 30},
			wantEarlyBooking: 700,
			wantFinal:        9300,
			wantSeason:       SeasonHigh,
		},
		{
			name: "Low season, payment after last cutoff",
			req:  PricingRequest{Price: money(10000), StartDate: date(2027, time.December, 1), PaymentDate: date(2027, time.November, 1), Age: 30},
			// Last low-season cutoff is 2026-05-31.
			wantEarlyBooking: 0,
			wantFinal:        10000,
			wantSeason:       SeasonLow,
		},
		{
			name: "Low season, second tier",
			req:  PricingRequest{Price: money(10000), StartDate: date(2027, time.October, 10), PaymentDate: date(2026, time.April, 15), Age: 30},
			// 10000 * 0.05 = 500.
			wantEarlyBooking: 500,
			wantFinal:        9500,
			wantSeason:       SeasonLow,
		},
		{
			name: "Shoulder season, third tier",
			req:  PricingRequest{Price: money(10000), StartDate: date(2027, time.February, 10), PaymentDate: date(2026, time.October, 31), Age: 30},
			// 10000 * 0.03 = 300.
			wantEarlyBooking: 300,
			wantFinal:        9700,
			wantSeason:       SeasonShoulder,
		},
		{
			name:             "Zero price",
			req:              PricingRequest{Price: money(0), StartDate: highStart, PaymentDate: earlyPayment, Age: 5},
			wantChild:        0,
			wantEarlyBooking: 0,
			wantFinal:        0,
			wantSeason:       SeasonHigh,
		},
		{
			name: "Fractional price stays exact",
			req:  PricingRequest{Price: money(999.99), StartDate: highStart, PaymentDate: earlyPayment, Age: 30},
			// 999.99 * 0.07 = 69.9993
			wantEarlyBooking: 69.9993,
			wantFinal:        929.9907,
			wantSeason:       SeasonHigh,
		},
	}

	s := NewService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Calculate(tt.req)
			if err != nil {
				t.Fatalf("Calculate() error = %v", err)
			}
			if !got.Price.Equal(tt.req.Price) {
				t.Errorf("Price = %s, want %s", got.Price, tt.req.Price)
			}
			if !got.ChildDiscount.Equal(money(tt.wantChild)) {
				t.Errorf("ChildDiscount = %s, want %v", got.ChildDiscount, tt.wantChild)
			}
			if !got.EarlyBookingDiscount.Equal(money(tt.wantEarlyBooking)) {
				t.Errorf("EarlyBookingDiscount = %s, want %v", got.EarlyBookingDiscount, tt.wantEarlyBooking)
			}
			if !got.FinalPrice.Equal(money(tt.wantFinal)) {
				t.Errorf("FinalPrice = %s, want %v", got.FinalPrice, tt.wantFinal)
			}
			if got.Season != tt.wantSeason {
				t.Errorf("Season = %s, want %s", got.Season, tt.wantSeason)
			}
		})
	}
}

func TestService_Calculate_PaymentAfterTravelStart(t *testing.T) {
	s := NewService()
	start := date(2027, time.May, 1)

	for _, age := range []int{0, 4, 8, 15, 30} {
		for _, payment := range []types.Date{date(2027, time.May, 2), date(2027, time.June, 1), date(2030, time.January, 1)} {
			_, err := s.Calculate(PricingRequest{Price: money(10000), StartDate: start, PaymentDate: payment, Age: age})
			if !errors.Is(err, ErrPaymentAfterTravelStart) {
				t.Errorf("age=%d payment=%s: err = %v, want ErrPaymentAfterTravelStart", age, payment, err)
			}
		}
	}
}

func TestService_Calculate_BreakdownIdentity(t *testing.T) {
	s := NewService()
	starts := []types.Date{
		date(2027, time.January, 14), date(2027, time.January, 15), date(2027, time.March, 31),
		date(2027, time.April, 1), date(2027, time.September, 30), date(2027, time.October, 1),
	}
	payments := []types.Date{
		date(2026, time.January, 1), date(2026, time.March, 31), date(2026, time.April, 30),
		date(2026, time.May, 31), date(2026, time.August, 31), date(2026, time.September, 30),
		date(2026, time.October, 31), date(2026, time.December, 31),
	}
	prices := []float64{0, 1, 1234.56, 10000, 50000}

	for _, start := range starts {
		for _, payment := range payments {
			for _, p := range prices {
				for age := 0; age <= 20; age++ {
					req := PricingRequest{Price: money(p), StartDate: start, PaymentDate: payment, Age: age}
					got, err := s.Calculate(req)
					if err != nil {
						t.Fatalf("%+v: %v", req, err)
					}
					want := got.Price.Sub(got.ChildDiscount).Sub(got.EarlyBookingDiscount)
					if !got.FinalPrice.Equal(want) {
						t.Fatalf("%+v: final %s != %s", req, got.FinalPrice, want)
					}
					if got.ChildDiscount.IsNegative() || got.Price.Sub(got.ChildDiscount).IsNegative() {
						t.Fatalf("%+v: child discount %s out of range", req, got.ChildDiscount)
					}
					if got.EarlyBookingDiscount.IsNegative() || got.FinalPrice.IsNegative() {
						t.Fatalf("%+v: early booking %s out of range", req, got.EarlyBookingDiscount)
					}

					again, _ := s.Calculate(req)
					if !again.FinalPrice.Equal(got.FinalPrice) {
						t.Fatalf("%+v: not deterministic", req)
					}
				}
			}
		}
	}
}
