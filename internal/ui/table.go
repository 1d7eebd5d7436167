package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of data in aligned columns under a header row.
type Table struct {
	w       *tabwriter.Writer
	columns int
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return &Table{w: tw, columns: len(headers)}
}

// Row appends a row of values, padding or truncating to the header width.
func (t *Table) Row(values ...any) {
	parts := make([]string, t.columns)
	for i := range parts {
		if i < len(values) {
			parts[i] = fmt.Sprintf("%v", values[i])
		}
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}
