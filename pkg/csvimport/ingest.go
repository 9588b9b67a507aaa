package csvimport

// Rejection explains why one data row produced no record.
type Rejection struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// Result aggregates one ingestion call. Accepted keeps the relative order of
// the source rows.
type Result struct {
	Source        SourceType  `json:"source"`
	Accepted      []Record    `json:"accepted"`
	RejectedCount int         `json:"rejected_count"`
	TotalRows     int         `json:"total_rows"`
	Rejections    []Rejection `json:"rejections"`
}

// Ingest tokenizes text and normalizes every row with the adapter registered
// for source. The only error is an *UnknownSourceError, returned before any row
// is read. Row failures are counted, never returned.
func Ingest(text string, source SourceType) (Result, error) {
	adapter, err := Resolve(source)
	if err != nil {
		return Result{}, err
	}
	return apply(Parse(text), source, adapter), nil
}

// IngestTable is Ingest for an already tokenized table.
func IngestTable(table Table, source SourceType) (Result, error) {
	adapter, err := Resolve(source)
	if err != nil {
		return Result{}, err
	}
	return apply(table, source, adapter), nil
}

func apply(table Table, source SourceType, adapter Adapter) Result {
	result := Result{
		Source:     source,
		Accepted:   make([]Record, 0, len(table.Rows)),
		TotalRows:  len(table.Rows),
		Rejections: []Rejection{},
	}
	for _, row := range table.Rows {
		outcome := adapter(row)
		if record, ok := outcome.Record(); ok {
			result.Accepted = append(result.Accepted, record)
			continue
		}
		result.RejectedCount++
		result.Rejections = append(result.Rejections, Rejection{Line: row.Line, Reason: outcome.Reason()})
	}
	return result
}
