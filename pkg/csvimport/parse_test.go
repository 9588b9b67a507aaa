package csvimport

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseSingleRow(t *testing.T) {
	t.Parallel()

	table := Parse("A,B\n1,2")
	if diff := cmp.Diff([]string{"A", "B"}, table.Headers); diff != "" {
		t.Fatalf("unexpected headers (-want +got):\n%s", diff)
	}
	if len(table.Rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(table.Rows))
	}
	if diff := cmp.Diff(map[string]string{"A": "1", "B": "2"}, table.Rows[0].Map()); diff != "" {
		t.Fatalf("unexpected row (-want +got):\n%s", diff)
	}
}

func TestParseQuotedFields(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  map[string]string
	}{
		{
			name:  "embedded comma",
			input: "Name,Qty\n\"Acme, Inc.\",42",
			want:  map[string]string{"Name": "Acme, Inc.", "Qty": "42"},
		},
		{
			name:  "escaped quote",
			input: "Name,Qty\n\"She said \"\"hi\"\"\",1",
			want:  map[string]string{"Name": `She said "hi"`, "Qty": "1"},
		},
		{
			name:  "quoted keeps whitespace, unquoted is trimmed",
			input: "A,B\n\"  padded  \",  trimmed  ",
			want:  map[string]string{"A": "  padded  ", "B": "trimmed"},
		},
		{
			name:  "unterminated quote reads to end of line",
			input: "A,B\n\"open, ended",
			want:  map[string]string{"A": "open, ended", "B": ""},
		},
		{
			name:  "space before opening quote",
			input: "A,B\nx, \"y,z\"",
			want:  map[string]string{"A": "x", "B": "y,z"},
		},
		{
			name:  "quoted header",
			input: "\"Body (HTML)\",Title\n<p>hi</p>,Widget",
			want:  map[string]string{"Body (HTML)": "<p>hi</p>", "Title": "Widget"},
		},
		{
			name:  "empty quoted field",
			input: "A,B\n\"\",2",
			want:  map[string]string{"A": "", "B": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			table := Parse(tt.input)
			if len(table.Rows) != 1 {
				t.Fatalf("expected 1 row, got %d", len(table.Rows))
			}
			if diff := cmp.Diff(tt.want, table.Rows[0].Map()); diff != "" {
				t.Fatalf("unexpected row (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseDropsBlankLinesAndAcceptsCRLF(t *testing.T) {
	t.Parallel()

	table := Parse("A,B\r\n\r\n1,2\r\n   \r\n3,4\r\n")
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if got := table.Rows[1].Get("B"); got != "4" {
		t.Fatalf("expected CR stripped from last field, got %q", got)
	}
	if table.Rows[0].Line != 3 || table.Rows[1].Line != 5 {
		t.Fatalf("unexpected line numbers: %d, %d", table.Rows[0].Line, table.Rows[1].Line)
	}
}

func TestParseEmptyInput(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "\n\n", "  \r\n\t\n", "\uFEFF"} {
		table := Parse(input)
		if table.Headers == nil || table.Rows == nil {
			t.Fatalf("expected non-nil empty slices for %q", input)
		}
		if len(table.Headers) != 0 || len(table.Rows) != 0 {
			t.Fatalf("expected empty table for %q, got %+v", input, table)
		}
	}
}

func TestParseHeaderOnly(t *testing.T) {
	t.Parallel()

	table := Parse("Title,Variant Price\n")
	if len(table.Headers) != 2 || len(table.Rows) != 0 {
		t.Fatalf("unexpected table: %+v", table)
	}
}

func TestParseAlignsRowsToHeaders(t *testing.T) {
	t.Parallel()

	table := Parse("A,B,C\n1\n1,2,3,4,5")
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if diff := cmp.Diff(map[string]string{"A": "1", "B": "", "C": ""}, table.Rows[0].Map()); diff != "" {
		t.Fatalf("short row not padded (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string]string{"A": "1", "B": "2", "C": "3"}, table.Rows[1].Map()); diff != "" {
		t.Fatalf("long row not truncated (-want +got):\n%s", diff)
	}
	for _, row := range table.Rows {
		if row.Len() != len(table.Headers) {
			t.Fatalf("row has %d values for %d headers", row.Len(), len(table.Headers))
		}
	}
}

func TestParseRowsCarryExactlyHeaderKeys(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"a,b\n1,2\n3,4\n5,6",
		"x,y,z\n,,\n\"q\",\"r\",\"s\"",
		"name,price\n\nWidget,1\n\n\nGadget,2\n",
	}
	wantRows := []int{3, 2, 2}

	for i, input := range inputs {
		table := Parse(input)
		if len(table.Rows) != wantRows[i] {
			t.Fatalf("input %d: expected %d rows, got %d", i, wantRows[i], len(table.Rows))
		}
		for _, row := range table.Rows {
			fields := row.Map()
			if len(fields) != len(table.Headers) {
				t.Fatalf("input %d: expected %d keys, got %d", i, len(table.Headers), len(fields))
			}
			for _, header := range table.Headers {
				if _, ok := fields[header]; !ok {
					t.Fatalf("input %d: missing key %q", i, header)
				}
			}
		}
	}
}

func TestParseStripsByteOrderMark(t *testing.T) {
	t.Parallel()

	table := Parse("\uFEFFTitle,Variant Price\nWidget,3")
	if table.Headers[0] != "Title" {
		t.Fatalf("expected BOM stripped from first header, got %q", table.Headers[0])
	}
}

func TestRowLookupIsExactAndLaterDuplicateWins(t *testing.T) {
	t.Parallel()

	table := Parse("Title,Tag,Tag\nWidget,first,second")
	row := table.Rows[0]

	if got := row.Get("Tag"); got != "second" {
		t.Fatalf("expected later duplicate to win, got %q", got)
	}
	if got := row.Map()["Tag"]; got != "second" {
		t.Fatalf("expected later duplicate to win in map, got %q", got)
	}
	if got := row.Get("title"); got != "" {
		t.Fatalf("expected case-sensitive lookup to miss, got %q", got)
	}
	if _, ok := row.Lookup(" Title"); ok {
		t.Fatal("expected whitespace-sensitive lookup to miss")
	}
}
