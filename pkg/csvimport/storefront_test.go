package csvimport

import "testing"

// rowOf builds a row from alternating header/value pairs.
func rowOf(pairs ...string) Row {
	headers := make([]string, 0, len(pairs)/2)
	values := make([]string, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		headers = append(headers, pairs[i])
		values = append(values, pairs[i+1])
	}
	return NewRow(headers, values)
}

func TestStorefrontRejectsRows(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		row    Row
		reason string
	}{
		{"empty title", rowOf("Title", "", "Variant Price", "5"), ReasonMissingName},
		{"blank title", rowOf("Title", "   ", "Variant Price", "5"), ReasonMissingName},
		{"empty price", rowOf("Title", "Widget", "Variant Price", ""), ReasonMissingPrice},
		{"missing price column", rowOf("Title", "Widget"), ReasonMissingPrice},
		{"non-numeric price", rowOf("Title", "Widget", "Variant Price", "cheap"), ReasonInvalidPrice},
		{"nan price", rowOf("Title", "Widget", "Variant Price", "NaN"), ReasonInvalidPrice},
		{"infinite price", rowOf("Title", "Widget", "Variant Price", "Inf"), ReasonInvalidPrice},
		{"negative price", rowOf("Title", "Widget", "Variant Price", "-0.01"), ReasonNegativePrice},
		{"digit separator price", rowOf("Title", "Widget", "Variant Price", "1_000"), ReasonInvalidPrice},
		{"thousands comma price", rowOf("Title", "Widget", "Variant Price", "1,000.00"), ReasonInvalidPrice},
		{"hex float price", rowOf("Title", "Widget", "Variant Price", "0x1p4"), ReasonInvalidPrice},
		{"currency symbol price", rowOf("Title", "Widget", "Variant Price", "$5"), ReasonInvalidPrice},
		{"header case mismatch", rowOf("title", "Widget", "Variant Price", "5"), ReasonMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			outcome := normalizeStorefrontExport(tt.row)
			if _, ok := outcome.Record(); ok {
				t.Fatal("expected rejection")
			}
			if outcome.Reason() != tt.reason {
				t.Fatalf("unexpected reason: got=%q want=%q", outcome.Reason(), tt.reason)
			}
		})
	}
}

func TestStorefrontClassifiesServices(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{"service", "Services", " RENTAL ", "bookable"} {
		record, ok := normalizeStorefrontExport(rowOf("Title", "Massage", "Type", typ, "Variant Price", "80")).Record()
		if !ok {
			t.Fatalf("type %q: expected accepted row", typ)
		}
		if record.Kind != KindService || record.Unit != "hour" {
			t.Fatalf("type %q: expected service/hour, got %s/%s", typ, record.Kind, record.Unit)
		}
	}

	record, ok := normalizeStorefrontExport(rowOf("Title", "Mug", "Type", "Kitchen", "Variant Price", "12.50")).Record()
	if !ok {
		t.Fatal("expected accepted row")
	}
	if record.Kind != KindPhysicalGood || record.Unit != "piece" {
		t.Fatalf("expected physical_good/piece, got %s/%s", record.Kind, record.Unit)
	}
	if record.Price != 12.5 {
		t.Fatalf("unexpected price: %v", record.Price)
	}
}

func TestStorefrontAvailability(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		published string
		status    string
		want      bool
	}{
		{"status active overrides published false", "false", "active", true},
		{"published true", "TRUE", "", true},
		{"published yes", " yes ", "draft", true},
		{"published 1", "1", "", true},
		{"neither", "false", "archived", false},
		{"status case-insensitive", "", "Active", true},
		{"status padded", "", " Active ", true},
		{"status only prefixed with active", "", "inactive", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			record, ok := normalizeStorefrontExport(rowOf(
				"Title", "X", "Variant Price", "1", "Published", tt.published, "Status", tt.status,
			)).Record()
			if !ok {
				t.Fatal("expected accepted row")
			}
			if record.IsAvailable != tt.want {
				t.Fatalf("unexpected availability: got=%v want=%v", record.IsAvailable, tt.want)
			}
			wantState := AvailabilityOutOfStock
			if tt.want {
				wantState = AvailabilityInStock
			}
			if record.AvailabilityState != wantState {
				t.Fatalf("unexpected availability state: %q", record.AvailabilityState)
			}
		})
	}
}

func TestStorefrontMapsOptionalFieldsAndPolicy(t *testing.T) {
	t.Parallel()

	record, ok := normalizeStorefrontExport(rowOf(
		"Title", "  Widget  ",
		"Body (HTML)", "<p>Sturdy</p>",
		"Vendor", "Acme",
		"Image Src", " https://cdn.example.com/w.png ",
		"Variant Price", "9.99",
	)).Record()
	if !ok {
		t.Fatal("expected accepted row")
	}
	if record.Name != "Widget" {
		t.Fatalf("expected trimmed name, got %q", record.Name)
	}
	if record.Description == nil || *record.Description != "<p>Sturdy</p>" {
		t.Fatalf("unexpected description: %v", record.Description)
	}
	if record.Brand == nil || *record.Brand != "Acme" {
		t.Fatalf("unexpected brand: %v", record.Brand)
	}
	if record.ImageURL == nil || *record.ImageURL != "https://cdn.example.com/w.png" {
		t.Fatalf("unexpected image url: %v", record.ImageURL)
	}
	if record.Currency != DefaultCurrency {
		t.Fatalf("unexpected currency: %q", record.Currency)
	}
	if !record.SearchEligible || record.CheckoutEligible {
		t.Fatalf("unexpected eligibility: search=%v checkout=%v", record.SearchEligible, record.CheckoutEligible)
	}

	bare, ok := normalizeStorefrontExport(rowOf("Title", "Widget", "Body (HTML)", "  ", "Variant Price", "0")).Record()
	if !ok {
		t.Fatal("expected accepted row with zero price")
	}
	if bare.Description != nil || bare.Brand != nil || bare.ImageURL != nil {
		t.Fatalf("expected absent optional fields, got %+v", bare)
	}
}

func TestStorefrontInitialQuantity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want *int
	}{
		{"", nil},
		{"abc", nil},
		{"-2", nil},
		{"1.5", nil},
		{"0", intPtr(0)},
		{" 17 ", intPtr(17)},
	}

	for _, tt := range tests {
		record, ok := normalizeStorefrontExport(rowOf(
			"Title", "Widget", "Variant Price", "1", "Variant Inventory Qty", tt.raw,
		)).Record()
		if !ok {
			t.Fatalf("qty %q: expected accepted row", tt.raw)
		}
		switch {
		case tt.want == nil && record.InitialQuantity != nil:
			t.Fatalf("qty %q: expected absent quantity, got %d", tt.raw, *record.InitialQuantity)
		case tt.want != nil && record.InitialQuantity == nil:
			t.Fatalf("qty %q: expected %d, got absent", tt.raw, *tt.want)
		case tt.want != nil && *record.InitialQuantity != *tt.want:
			t.Fatalf("qty %q: expected %d, got %d", tt.raw, *tt.want, *record.InitialQuantity)
		}
	}
}

func intPtr(value int) *int {
	return &value
}

func TestParsePriceAcceptsPlainDecimals(t *testing.T) {
	t.Parallel()

	for raw, want := range map[string]float64{"19.99": 19.99, " 5 ": 5, "+3.5": 3.5, "1e2": 100, "0": 0, ".5": 0.5} {
		got, reason := parsePrice(raw)
		if reason != "" {
			t.Fatalf("price %q: unexpected rejection %q", raw, reason)
		}
		if got != want {
			t.Fatalf("price %q: got=%v want=%v", raw, got, want)
		}
	}
}
