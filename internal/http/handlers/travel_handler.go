// README: Travel price handler (POST /api/travel/calculate).
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"travelcalc/internal/http/middleware"
	"travelcalc/internal/modules/pricing"
	"travelcalc/internal/types"
)

//go:generate mockgen -destination=mocks/mock_calculator.go -package=mocks travelcalc/internal/http/handlers Calculator

// Calculator is the pricing core as seen by the HTTP layer.
type Calculator interface {
	Calculate(req pricing.PricingRequest) (pricing.PricingResult, error)
}

// maxBodyBytes bounds the calculate payload; a valid request is well under 1 KiB.
const maxBodyBytes = 16 << 10

type TravelHandler struct {
	calc         Calculator
	calculations *prometheus.CounterVec
}

// NewTravelHandler registers the calculation counter on reg; reg may be nil.
func NewTravelHandler(calc Calculator, reg prometheus.Registerer) *TravelHandler {
	h := &TravelHandler{calc: calc}
	if reg != nil {
		h.calculations = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_price_calculations_total",
			Help: "Price calculations by outcome and season.",
		}, []string{"outcome", "season"})
		reg.MustRegister(h.calculations)
	}
	return h
}

type calculateResponse struct {
	Price                types.Money  `json:"price"`
	ChildDiscount        types.Money  `json:"childDiscount"`
	EarlyBookingDiscount types.Money  `json:"earlyBookingDiscount"`
	FinalPrice           types.Money  `json:"finalPrice"`
	Season               string       `json:"season,omitempty"`
	DiscountedPrice      *types.Money `json:"discountedPrice,omitempty"`
}

func (h *TravelHandler) Calculate(c *gin.Context) {
	var body map[string]json.RawMessage
	dec := json.NewDecoder(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err := dec.Decode(&body); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(c, http.StatusRequestEntityTooLarge, "request body too large")
			return
		}
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req, violations := parseCalculateRequest(body)
	if violations != nil {
		h.observe("invalid", "")
		writeValidationErrors(c, violations)
		return
	}

	res, err := h.calc.Calculate(req)
	if err != nil {
		if errors.Is(err, pricing.ErrPaymentAfterTravelStart) {
			h.observe("rejected", "")
		} else {
			h.observe("error", "")
		}
		writeCalculateError(c, err)
		return
	}
	h.observe("ok", string(res.Season))
	middleware.LoggerFromContext(c.Request.Context()).Debug("price calculated",
		zap.String("season", string(res.Season)),
		zap.Stringer("price", res.Price),
		zap.Stringer("final_price", res.FinalPrice),
	)

	resp := calculateResponse{
		Price:                res.Price,
		ChildDiscount:        res.ChildDiscount,
		EarlyBookingDiscount: res.EarlyBookingDiscount,
		FinalPrice:           res.FinalPrice,
	}
	if c.Query("explain") == "true" {
		resp.Season = string(res.Season)
		resp.DiscountedPrice = &res.DiscountedPrice
	}
	writeJSON(c, http.StatusOK, resp)
}

func (h *TravelHandler) observe(outcome, season string) {
	if h.calculations != nil {
		h.calculations.WithLabelValues(outcome, season).Inc()
	}
}
