package csvimport

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const storefrontSample = "Title,Body (HTML),Vendor,Type,Published,Status,Image Src,Variant Price,Variant Inventory Qty\n" +
	"Widget,<p>Blue</p>,Acme,Gadgets,true,active,https://cdn.example.com/w.png,19.99,5\n" +
	",,Acme,,true,,,4,\n" +
	"Massage,,Spa Co,service,false,active,,80,\n"

func TestIngestRejectsUnknownSourceBeforeReadingRows(t *testing.T) {
	t.Parallel()

	result, err := Ingest(storefrontSample, "unknown_source")
	if err == nil {
		t.Fatal("expected error for unknown source")
	}
	if !errors.Is(err, ErrUnknownSource) {
		t.Fatalf("expected ErrUnknownSource, got %v", err)
	}
	var unknown *UnknownSourceError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownSourceError, got %T", err)
	}
	if unknown.Requested != "unknown_source" {
		t.Fatalf("unexpected requested source: %q", unknown.Requested)
	}
	if diff := cmp.Diff(SupportedSources(), unknown.Supported); diff != "" {
		t.Fatalf("unexpected supported list (-want +got):\n%s", diff)
	}
	if result.TotalRows != 0 || result.Accepted != nil {
		t.Fatalf("expected zero result, got %+v", result)
	}
}

func TestIngestPreservesOrderAndCountsRejections(t *testing.T) {
	t.Parallel()

	result, err := Ingest(storefrontSample, SourceStorefrontExport)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.TotalRows != 3 {
		t.Fatalf("expected 3 rows, got %d", result.TotalRows)
	}
	if result.RejectedCount != 1 || len(result.Accepted) != 2 {
		t.Fatalf("unexpected counts: accepted=%d rejected=%d", len(result.Accepted), result.RejectedCount)
	}
	if result.Accepted[0].Name != "Widget" || result.Accepted[1].Name != "Massage" {
		t.Fatalf("unexpected order: %q, %q", result.Accepted[0].Name, result.Accepted[1].Name)
	}
	if diff := cmp.Diff([]Rejection{{Line: 3, Reason: ReasonMissingName}}, result.Rejections); diff != "" {
		t.Fatalf("unexpected rejections (-want +got):\n%s", diff)
	}

	widget := result.Accepted[0]
	if widget.InitialQuantity == nil || *widget.InitialQuantity != 5 {
		t.Fatalf("expected widget quantity 5, got %v", widget.InitialQuantity)
	}
	massage := result.Accepted[1]
	if massage.Kind != KindService || !massage.IsAvailable || massage.InitialQuantity != nil {
		t.Fatalf("unexpected massage record: %+v", massage)
	}
}

func TestIngestIsIdempotent(t *testing.T) {
	t.Parallel()

	first, err := Ingest(storefrontSample, SourceStorefrontExport)
	if err != nil {
		t.Fatalf("first ingest: %v", err)
	}
	second, err := Ingest(storefrontSample, SourceStorefrontExport)
	if err != nil {
		t.Fatalf("second ingest: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("results differ between calls (-first +second):\n%s", diff)
	}
}

func TestIngestBlankRowsAreInvisible(t *testing.T) {
	t.Parallel()

	result, err := Ingest("Title,Variant Price\n\nWidget,1\n  \n\nGadget,2\n\n", SourceStorefrontExport)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.TotalRows != 2 || result.RejectedCount != 0 {
		t.Fatalf("expected blank lines to be ignored, got total=%d rejected=%d", result.TotalRows, result.RejectedCount)
	}
}

func TestIngestEmptyInput(t *testing.T) {
	t.Parallel()

	result, err := Ingest("", SourceStorefrontExport)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if result.TotalRows != 0 || len(result.Accepted) != 0 || result.RejectedCount != 0 {
		t.Fatalf("expected empty result, got %+v", result)
	}
	if result.Accepted == nil || result.Rejections == nil {
		t.Fatal("expected non-nil slices in empty result")
	}
}

func TestIngestTableMatchesIngest(t *testing.T) {
	t.Parallel()

	fromText, err := Ingest(storefrontSample, SourceStorefrontExport)
	if err != nil {
		t.Fatalf("ingest: %v", err)
	}
	fromTable, err := IngestTable(Parse(storefrontSample), SourceStorefrontExport)
	if err != nil {
		t.Fatalf("ingest table: %v", err)
	}
	if diff := cmp.Diff(fromText, fromTable); diff != "" {
		t.Fatalf("results differ (-text +table):\n%s", diff)
	}
}

func TestResolveEverySupportedSource(t *testing.T) {
	t.Parallel()

	for _, source := range SupportedSources() {
		adapter, err := Resolve(source)
		if err != nil || adapter == nil {
			t.Fatalf("expected adapter for %q, got err=%v", source, err)
		}
	}
}

func TestParseSourceType(t *testing.T) {
	t.Parallel()

	if got := ParseSourceType("  Storefront_Export "); got != SourceStorefrontExport {
		t.Fatalf("unexpected source type: %q", got)
	}
}

func TestOutcomeRejectionHasNoRecord(t *testing.T) {
	t.Parallel()

	outcome := Reject("nope")
	record, ok := outcome.Record()
	if ok || outcome.Accepted() {
		t.Fatal("expected rejection")
	}
	if record != (Record{}) {
		t.Fatalf("expected zero record, got %+v", record)
	}
	if outcome.Reason() != "nope" {
		t.Fatalf("unexpected reason: %q", outcome.Reason())
	}
}
