// README: Pricing service computes the travel price breakdown.
package pricing

// Service is stateless; a single instance may be shared by any number of callers.
type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Calculate applies the child discount, then the early-booking discount on the
// already discounted price.
func (s *Service) Calculate(req PricingRequest) (PricingResult, error) {
	if req.PaymentDate.After(req.StartDate) {
		return PricingResult{}, ErrPaymentAfterTravelStart
	}

	childDiscount := ChildDiscount(req.Price, req.Age)
	discounted := req.Price.Sub(childDiscount)

	season := ClassifySeason(req.StartDate)
	earlyBooking := EarlyBookingDiscount(season, req.PaymentDate, discounted, req.StartDate.Year)

	return PricingResult{
		Price:                req.Price,
		ChildDiscount:        childDiscount,
		EarlyBookingDiscount: earlyBooking,
		FinalPrice:           discounted.Sub(earlyBooking),
		Season:               season,
		DiscountedPrice:      discounted,
	}, nil
}
