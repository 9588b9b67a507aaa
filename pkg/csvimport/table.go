package csvimport

// Table is one tokenized upload: the header line plus every data row.
type Table struct {
	Headers []string
	Rows    []Row
}

// Row pairs the values of one data line with the table headers by position.
type Row struct {
	// Line is the 1-based physical line number of the row in the upload.
	Line    int
	headers []string
	values  []string
}

// NewRow aligns values with headers. Missing trailing values read as "" and
// values beyond the header count are dropped.
func NewRow(headers []string, values []string) Row {
	aligned := make([]string, len(headers))
	copy(aligned, values)
	return Row{headers: headers, values: aligned}
}

// Get returns the value under the exact header name, or "" when no column has
// that name. With duplicate headers the right-most column wins.
func (r Row) Get(name string) string {
	value, _ := r.Lookup(name)
	return value
}

// Lookup is Get that also reports whether the header exists.
func (r Row) Lookup(name string) (string, bool) {
	for i := len(r.headers) - 1; i >= 0; i-- {
		if r.headers[i] == name {
			return r.values[i], true
		}
	}
	return "", false
}

// Len returns the number of columns in the row.
func (r Row) Len() int {
	return len(r.values)
}

// Map flattens the row into a header-keyed map.
func (r Row) Map() map[string]string {
	out := make(map[string]string, len(r.headers))
	for i, header := range r.headers {
		out[header] = r.values[i]
	}
	return out
}
