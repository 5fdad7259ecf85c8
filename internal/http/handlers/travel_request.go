// README: Structural validation of the travel calculate payload.
package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/shopspring/decimal"

	"travelcalc/internal/modules/pricing"
	"travelcalc/internal/types"
)

const (
	msgMissing     = "This field is missing."
	msgUnexpected  = "This field was not expected."
	msgBlank       = "This value should not be blank."
	msgNotNumeric  = "This value should be of type numeric."
	msgNotInteger  = "This value should be of type integer."
	msgNotPositive = "This value should be either positive or zero."
	msgInvalidDate = "This value is not a valid date."
	msgTooLarge    = "This value should be less than or equal to 1000000000000."
	msgTooPrecise  = "This value should have at most 12 decimal places."
)

// The exponent is checked before any arithmetic so that inputs such as
// 1e30000000 never get expanded into their full digit form.
const maxPriceScale = 12

var maxPrice = decimal.New(1, 12)

const (
	fieldPrice     = "price"
	fieldStartDate = "startDate"
	fieldPayment   = "paymentDate"
	fieldAge       = "age"
)

var calculateFields = []string{fieldPrice, fieldStartDate, fieldPayment, fieldAge}

// parseCalculateRequest turns the decoded JSON object into a core request.
// Every violation is reported at once, keyed by field name.
func parseCalculateRequest(body map[string]json.RawMessage) (pricing.PricingRequest, map[string]string) {
	errs := map[string]string{}
	var req pricing.PricingRequest

	for key := range body {
		if !isCalculateField(key) {
			errs[key] = msgUnexpected
		}
	}

	for _, f := range calculateFields {
		raw, ok := body[f]
		if !ok {
			errs[f] = msgMissing
			continue
		}
		if isBlank(raw) {
			errs[f] = msgBlank
			continue
		}

		var msg string
		switch f {
		case fieldPrice:
			req.Price, msg = parsePrice(raw)
		case fieldStartDate:
			req.StartDate, msg = parseDate(raw)
		case fieldPayment:
			req.PaymentDate, msg = parseDate(raw)
		case fieldAge:
			req.Age, msg = parseAge(raw)
		}
		if msg != "" {
			errs[f] = msg
		}
	}

	if len(errs) > 0 {
		return pricing.PricingRequest{}, errs
	}
	return req, nil
}

func isCalculateField(key string) bool {
	for _, f := range calculateFields {
		if f == key {
			return true
		}
	}
	return false
}

func isBlank(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	return len(v) == 0 || string(v) == "null" || string(v) == `""`
}

// parsePrice accepts a JSON number or a numeric string.
func parsePrice(raw json.RawMessage) (types.Money, string) {
	text := string(bytes.TrimSpace(raw))
	if text[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return types.Money{}, msgNotNumeric
		}
		text = s
	} else if !isJSONNumber(text) {
		return types.Money{}, msgNotNumeric
	}

	m, err := types.ParseMoney(text)
	if err != nil {
		return types.Money{}, msgNotNumeric
	}
	if m.IsNegative() {
		return types.Money{}, msgNotPositive
	}
	switch exp := m.Amount.Exponent(); {
	case exp < -maxPriceScale:
		return types.Money{}, msgTooPrecise
	case exp > maxPriceScale, m.Amount.GreaterThan(maxPrice):
		return types.Money{}, msgTooLarge
	}
	return m, ""
}

func isJSONNumber(text string) bool {
	c := text[0]
	return c == '-' || (c >= '0' && c <= '9')
}

func parseAge(raw json.RawMessage) (int, string) {
	n, err := strconv.Atoi(string(bytes.TrimSpace(raw)))
	if err != nil {
		return 0, msgNotInteger
	}
	if n < 0 {
		return 0, msgNotPositive
	}
	return n, ""
}

func parseDate(raw json.RawMessage) (types.Date, string) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return types.Date{}, msgInvalidDate
	}
	d, err := types.ParseDate(s)
	if err != nil {
		return types.Date{}, msgInvalidDate
	}
	return d, ""
}
