package csvimport

import "strings"

// Storefront export column names. Lookups are exact: a header with different
// case or padding reads as empty.
const (
	colTitle        = "Title"
	colVariantPrice = "Variant Price"
	colBody         = "Body (HTML)"
	colVendor       = "Vendor"
	colType         = "Type"
	colPublished    = "Published"
	colStatus       = "Status"
	colImageSrc     = "Image Src"
	colInventory    = "Variant Inventory Qty"
)

// normalizeStorefrontExport maps one storefront export row. Imported items are
// searchable but not orderable until someone reviews them.
func normalizeStorefrontExport(row Row) Outcome {
	name := strings.TrimSpace(row.Get(colTitle))
	if name == "" {
		return Reject(ReasonMissingName)
	}
	price, reason := parsePrice(row.Get(colVariantPrice))
	if reason != "" {
		return Reject(reason)
	}

	kind := KindPhysicalGood
	if isServiceKind(row.Get(colType)) {
		kind = KindService
	}

	available := isTruthy(row.Get(colPublished)) ||
		strings.ToLower(strings.TrimSpace(row.Get(colStatus))) == "active"

	return Accept(Record{
		Name:              name,
		Description:       optional(row.Get(colBody)),
		Price:             price,
		Currency:          DefaultCurrency,
		Kind:              kind,
		Unit:              unitFor(kind),
		Brand:             optional(row.Get(colVendor)),
		ImageURL:          optional(row.Get(colImageSrc)),
		IsAvailable:       available,
		SearchEligible:    true,
		CheckoutEligible:  false,
		AvailabilityState: availabilityState(available),
		InitialQuantity:   parseQuantity(row.Get(colInventory)),
	})
}
