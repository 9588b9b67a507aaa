package csvimport

import "strings"

// TemplateHeaders is the header line of the partnerhub catalog template.
var TemplateHeaders = []string{
	"name", "description", "price", "currency", "kind", "unit", "brand", "image_url", "available", "quantity",
}

var physicalKinds = map[string]struct{}{
	"":              {},
	"physical_good": {},
	"physical":      {},
	"product":       {},
	"good":          {},
	"goods":         {},
}

func normalizePartnerhubTemplate(row Row) Outcome {
	name := strings.TrimSpace(row.Get("name"))
	if name == "" {
		return Reject(ReasonMissingName)
	}
	price, reason := parsePrice(row.Get("price"))
	if reason != "" {
		return Reject(reason)
	}

	currency, ok := parseCurrency(row.Get("currency"))
	if !ok {
		return Reject(ReasonInvalidCurrency)
	}

	kindValue := strings.ToLower(strings.TrimSpace(row.Get("kind")))
	kind := KindPhysicalGood
	if isServiceKind(kindValue) {
		kind = KindService
	} else if _, known := physicalKinds[kindValue]; !known {
		return Reject(ReasonInvalidKind)
	}

	unit := strings.TrimSpace(row.Get("unit"))
	if unit == "" {
		unit = unitFor(kind)
	}

	available := true
	if raw := strings.TrimSpace(row.Get("available")); raw != "" {
		available = isTruthy(raw)
	}

	return Accept(Record{
		Name:              name,
		Description:       optional(row.Get("description")),
		Price:             price,
		Currency:          currency,
		Kind:              kind,
		Unit:              unit,
		Brand:             optional(row.Get("brand")),
		ImageURL:          optional(row.Get("image_url")),
		IsAvailable:       available,
		SearchEligible:    true,
		CheckoutEligible:  false,
		AvailabilityState: availabilityState(available),
		InitialQuantity:   parseQuantity(row.Get("quantity")),
	})
}

// parseCurrency accepts an empty value (default currency) or a three letter
// code in any case.
func parseCurrency(raw string) (string, bool) {
	raw = strings.ToUpper(strings.TrimSpace(raw))
	if raw == "" {
		return DefaultCurrency, true
	}
	if len(raw) != 3 {
		return "", false
	}
	for i := 0; i < len(raw); i++ {
		if raw[i] < 'A' || raw[i] > 'Z' {
			return "", false
		}
	}
	return raw, true
}
