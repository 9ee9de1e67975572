// Package table writes rows as a text table with whitespace aligned columns.
package table

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Formatter writes rows as a text table.
type Formatter struct {
	out       io.Writer
	tabWriter *tabwriter.Writer
}

// New returns a Formatter that writes the table to out.
// If headers is not empty, it is written as the first row.
func New(headers []string, out io.Writer) *Formatter {
	f := Formatter{
		out:       out,
		tabWriter: tabwriter.NewWriter(out, 0, 0, 8, ' ', 0),
	}

	if len(headers) > 0 {
		_ = f.writeHeader(headers)
	}

	return &f
}

func (f *Formatter) writeHeader(headers []string) error {
	header := strings.Join(headers, "\t")

	_, err := fmt.Fprintln(f.tabWriter, header)

	return err
}

// WriteRow buffers a table row, the columns are separated by tabs.
func (f *Formatter) WriteRow(row ...any) error {
	var sb strings.Builder

	for i, col := range row {
		if col != nil {
			fmt.Fprintf(&sb, "%v", col)
		}

		if i+1 < len(row) {
			sb.WriteRune('\t')
		}
	}

	_, err := fmt.Fprintln(f.tabWriter, sb.String())
	return err
}

// Flush writes the buffered rows to the output.
// It must be called after the last row was written, the column widths are
// calculated over all buffered rows.
func (f *Formatter) Flush() error {
	return f.tabWriter.Flush()
}
