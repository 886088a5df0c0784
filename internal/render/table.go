package render

import (
	"io"
	"strings"

	"golang.org/x/text/width"
)

const columnGap = 2

// Table lays out rows in columns padded to terminal display width, so
// full-width Japanese text lines up with ASCII. The last cell of a row is
// never padded.
type Table struct {
	indent string
	rows   [][]string
}

// NewTable returns an empty table whose rows start with indent.
func NewTable(indent string) *Table {
	return &Table{indent: indent}
}

// Row appends a row of cells.
func (t *Table) Row(cells ...string) {
	t.rows = append(t.rows, cells)
}

// WriteTo writes the aligned rows to w.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	var widths []int
	for _, row := range t.rows {
		for i, cell := range row {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], DisplayWidth(cell))
		}
	}

	var b strings.Builder
	for _, row := range t.rows {
		b.WriteString(t.indent)
		for i, cell := range row {
			b.WriteString(cell)
			if i < len(row)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-DisplayWidth(cell)+columnGap))
			}
		}
		b.WriteByte('\n')
	}

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// DisplayWidth returns the number of terminal columns s occupies. East Asian
// wide and full-width runes take two columns; everything else takes one.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
