package csvimport

import (
	"strings"
	"testing"
)

func TestTemplateAdapter(t *testing.T) {
	t.Parallel()

	text := strings.Join(TemplateHeaders, ",") + "\n" +
		"Haircut,Quick trim,25,eur,service,,Salon One,,yes,\n" +
		"Lamp,,40.5,,,box,,https://img.example.com/lamp.jpg,no,3\n" +
		"Chair,,10,,furniture,,,,,\n" +
		"Desk,,10,EURO,,,,,,\n"

	result, err := Ingest(text, SourcePartnerhubTemplate)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.TotalRows != 4 || len(result.Accepted) != 2 || result.RejectedCount != 2 {
		t.Fatalf("unexpected counts: total=%d accepted=%d rejected=%d", result.TotalRows, len(result.Accepted), result.RejectedCount)
	}

	haircut := result.Accepted[0]
	if haircut.Kind != KindService || haircut.Unit != "hour" || haircut.Currency != "EUR" {
		t.Fatalf("unexpected haircut record: %+v", haircut)
	}
	if !haircut.IsAvailable || haircut.InitialQuantity != nil {
		t.Fatalf("unexpected haircut availability/quantity: %+v", haircut)
	}

	lamp := result.Accepted[1]
	if lamp.Kind != KindPhysicalGood || lamp.Unit != "box" || lamp.Currency != DefaultCurrency {
		t.Fatalf("unexpected lamp record: %+v", lamp)
	}
	if lamp.IsAvailable || lamp.AvailabilityState != AvailabilityOutOfStock {
		t.Fatalf("expected lamp unavailable, got %+v", lamp)
	}
	if lamp.InitialQuantity == nil || *lamp.InitialQuantity != 3 {
		t.Fatalf("expected lamp quantity 3, got %v", lamp.InitialQuantity)
	}

	if result.Rejections[0].Reason != ReasonInvalidKind || result.Rejections[1].Reason != ReasonInvalidCurrency {
		t.Fatalf("unexpected rejection reasons: %+v", result.Rejections)
	}
}

func TestParseCurrency(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"", DefaultCurrency, true},
		{"gbp", "GBP", true},
		{" Jpy ", "JPY", true},
		{"US", "", false},
		{"U$D", "", false},
	}
	for _, tt := range tests {
		got, ok := parseCurrency(tt.raw)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("parseCurrency(%q) = %q, %v; want %q, %v", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}
