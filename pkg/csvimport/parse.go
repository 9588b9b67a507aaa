// Package csvimport turns uploaded catalog exports into normalized product
// records.
//
// The flow is Parse → Resolve → Adapter per row → Result. Everything here is
// pure and in-memory; persistence belongs to the caller.
package csvimport

import "strings"

const byteOrderMark = "\uFEFF"

// Parse tokenizes delimited text into a header and data rows.
//
// Lines are split on LF with an optional trailing CR. Lines that are blank
// after trimming are dropped wherever they appear, so quoted fields cannot span
// lines. Unterminated quotes are read to the end of the line instead of
// failing. Parse never fails; empty input yields an empty Table.
func Parse(text string) Table {
	text = strings.TrimPrefix(text, byteOrderMark)

	table := Table{Headers: []string{}, Rows: []Row{}}
	haveHeader := false
	for index, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := splitLine(line)
		if !haveHeader {
			table.Headers = fields
			haveHeader = true
			continue
		}
		row := NewRow(table.Headers, fields)
		row.Line = index + 1
		table.Rows = append(table.Rows, row)
	}
	return table
}

func splitLine(line string) []string {
	fields := make([]string, 0, strings.Count(line, ",")+1)
	pos := 0
	for {
		value, next, more := readField(line, pos)
		fields = append(fields, value)
		if !more {
			return fields
		}
		pos = next
	}
}

// readField reads one field starting at pos. It returns the field value, the
// offset of the next field and whether a separator followed.
func readField(line string, pos int) (string, int, bool) {
	start := pos
	for start < len(line) && (line[start] == ' ' || line[start] == '\t') {
		start++
	}
	if start < len(line) && line[start] == '"' {
		return readQuoted(line, start+1)
	}

	if comma := strings.IndexByte(line[pos:], ','); comma >= 0 {
		return strings.TrimSpace(line[pos : pos+comma]), pos + comma + 1, true
	}
	return strings.TrimSpace(line[pos:]), len(line), false
}

// readQuoted reads a quoted field body starting just after the opening quote.
// Quoted content keeps its whitespace; "" is an escaped quote. Stray text
// between the closing quote and the next separator is appended trimmed.
func readQuoted(line string, pos int) (string, int, bool) {
	var b strings.Builder
	for pos < len(line) {
		c := line[pos]
		if c != '"' {
			b.WriteByte(c)
			pos++
			continue
		}
		if pos+1 < len(line) && line[pos+1] == '"' {
			b.WriteByte('"')
			pos += 2
			continue
		}

		pos++
		rest := line[pos:]
		comma := strings.IndexByte(rest, ',')
		if comma >= 0 {
			rest = rest[:comma]
		}
		b.WriteString(strings.TrimSpace(rest))
		if comma >= 0 {
			return b.String(), pos + comma + 1, true
		}
		return b.String(), len(line), false
	}
	return b.String(), len(line), false
}
