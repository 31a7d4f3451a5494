// Package csvout writes and reads the directory import CSV dialect.
//
// The dialect never quotes automatically. A quoting policy wraps selected
// fields of the data row in literal double quotes, and the writer escapes
// only the escape character and line breaks with a backslash. Delimiters are
// not escaped: a comma inside a field the policy left unquoted splits the
// field on import. The import tooling expects exactly this layout.
package csvout

import (
	"errors"
	"fmt"
	"strings"
)

const (
	Delimiter  = ','
	Escape     = '\\'
	Quote      = '"'
	Terminator = "\r\n"
)

// ErrColumnCount is returned when a row does not match its header.
var ErrColumnCount = errors.New("column count does not match header")

// Policy decides which data fields are wrapped in literal quotes.
type Policy interface {
	ShouldQuote(col int, value string) bool
}

// QuoteIfSpace wraps every field that contains a space.
type QuoteIfSpace struct{}

func (QuoteIfSpace) ShouldQuote(_ int, value string) bool {
	return strings.Contains(value, " ")
}

// FixedColumns wraps a static set of columns regardless of content.
type FixedColumns map[int]bool

func (f FixedColumns) ShouldQuote(col int, _ string) bool {
	return f[col]
}

// NewFixedColumns builds a FixedColumns policy from column positions.
func NewFixedColumns(cols ...int) FixedColumns {
	f := make(FixedColumns, len(cols))
	for _, c := range cols {
		f[c] = true
	}
	return f
}

// Render writes the header line and one data line.
func Render(header, row []string, p Policy) (string, error) {
	if len(header) != len(row) {
		return "", fmt.Errorf("%w: header has %d, row has %d", ErrColumnCount, len(header), len(row))
	}
	var b strings.Builder
	writeLine(&b, header)

	quoted := make([]string, len(row))
	for i, v := range row {
		if p != nil && p.ShouldQuote(i, v) {
			v = string(Quote) + v + string(Quote)
		}
		quoted[i] = v
	}
	writeLine(&b, quoted)
	return b.String(), nil
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteRune(Delimiter)
		}
		for _, r := range f {
			switch r {
			case Escape, '\r', '\n':
				b.WriteRune(Escape)
			}
			b.WriteRune(r)
		}
	}
	b.WriteString(Terminator)
}
