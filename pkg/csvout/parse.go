package csvout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmpty is returned by Parse when the input has no header line.
var ErrEmpty = errors.New("empty csv input")

// Parse reads text produced by Render with the same policy and returns the
// header and the original data values. Literal quotes added by the policy are
// removed; any other quotes are content.
//
// A field starting with a quote runs until a quote directly followed by a
// delimiter or the end of the line, so commas inside quoted fields survive.
func Parse(text string, p Policy) (header []string, rows [][]string, err error) {
	lines := splitRecords(text)
	if len(lines) == 0 {
		return nil, nil, ErrEmpty
	}
	header = lines[0]
	for n, fields := range lines[1:] {
		if len(fields) != len(header) {
			return nil, nil, fmt.Errorf("%w: line %d has %d fields, header has %d", ErrColumnCount, n+2, len(fields), len(header))
		}
		for i, v := range fields {
			if inner, ok := unwrap(v); ok && p != nil && p.ShouldQuote(i, inner) {
				fields[i] = inner
			}
		}
		rows = append(rows, fields)
	}
	return header, rows, nil
}

func unwrap(v string) (string, bool) {
	if len(v) >= 2 && v[0] == Quote && v[len(v)-1] == Quote {
		return v[1 : len(v)-1], true
	}
	return v, false
}

func splitRecords(text string) [][]string {
	var (
		records   [][]string
		fields    []string
		field     strings.Builder
		escaped   bool
		pending   bool
		atStart   = true
		quoted    bool
		lastQuote bool
	)
	endField := func() {
		fields = append(fields, field.String())
		field.Reset()
		atStart, quoted, lastQuote = true, false, false
	}
	for _, r := range text {
		if escaped {
			field.WriteRune(r)
			escaped, lastQuote, pending = false, false, true
			continue
		}
		if r == '\n' {
			endField()
			records = append(records, fields)
			fields, pending = nil, false
			continue
		}
		if r == '\r' {
			continue
		}
		pending = true
		if r == Escape {
			escaped = true
			atStart = false
			continue
		}
		if atStart {
			atStart = false
			if r == Quote {
				quoted, lastQuote = true, true
				field.WriteRune(r)
				continue
			}
		}
		switch {
		case r == Quote:
			field.WriteRune(r)
			lastQuote = true
		case r == Delimiter && (!quoted || lastQuote):
			endField()
		default:
			field.WriteRune(r)
			lastQuote = false
		}
	}
	if pending {
		endField()
		records = append(records, fields)
	}
	return records
}
