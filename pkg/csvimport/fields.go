package csvimport

import (
	"math"
	"strconv"
	"strings"
)

var serviceKinds = map[string]struct{}{
	"service":  {},
	"services": {},
	"rental":   {},
	"bookable": {},
}

// decimalChars are the only characters a price may contain. strconv also
// takes underscores, hex floats and spelled-out infinities.
const decimalChars = "0123456789.eE+-"

var truthyValues = map[string]struct{}{
	"true": {},
	"1":    {},
	"yes":  {},
}

func optional(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}

func isTruthy(value string) bool {
	_, ok := truthyValues[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

func isServiceKind(value string) bool {
	_, ok := serviceKinds[strings.ToLower(strings.TrimSpace(value))]
	return ok
}

func unitFor(kind Kind) string {
	if kind == KindService {
		return "hour"
	}
	return "piece"
}

func availabilityState(available bool) string {
	if available {
		return AvailabilityInStock
	}
	return AvailabilityOutOfStock
}

// parsePrice returns the price or a rejection reason. Prices must be finite
// and non-negative.
func parsePrice(raw string) (float64, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ReasonMissingPrice
	}
	if strings.Trim(raw, decimalChars) != "" {
		return 0, ReasonInvalidPrice
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, ReasonInvalidPrice
	}
	if price < 0 {
		return 0, ReasonNegativePrice
	}
	return price, ""
}

// parseQuantity returns nil unless raw is a non-negative integer.
func parseQuantity(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	quantity, err := strconv.Atoi(raw)
	if err != nil || quantity < 0 {
		return nil
	}
	return &quantity
}
