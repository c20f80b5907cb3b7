package cli

import (
	"fmt"
	"io"
	"strings"

	"meshnodes/internal/view"
)

// PlainTableWriter provides kubectl-style plain table output without box-drawing characters.
// This format is optimized for:
//   - Easy copy/paste operations
//   - Piping to grep, awk, cut and other command-line tools
//   - Terminals that draw box characters badly
//
// Column widths are measured in terminal cells, so wide runes are padded correctly.
type PlainTableWriter struct {
	// headers contains the column header names
	headers []string
	// rows contains the table data rows
	rows [][]string
	// columnWidths tracks the maximum display width of each column
	columnWidths []int
	// minPadding is the minimum space between columns
	minPadding int
	// showHeaders controls whether to display the header row
	showHeaders bool
	// output is the writer to output to
	output io.Writer
}

// NewPlainTableWriter creates a new plain table writer.
// By default, headers are shown. Use SetNoHeaders(true) to suppress them.
func NewPlainTableWriter(output io.Writer) *PlainTableWriter {
	return &PlainTableWriter{
		headers:      []string{},
		rows:         [][]string{},
		columnWidths: []int{},
		minPadding:   3,
		showHeaders:  true,
		output:       output,
	}
}

// SetHeaders sets the column headers for the table.
func (w *PlainTableWriter) SetHeaders(headers []string) {
	w.headers = make([]string, len(headers))
	w.columnWidths = make([]int, len(headers))
	for i, h := range headers {
		w.headers[i] = h
		w.columnWidths[i] = view.DisplayWidth(h)
	}
}

// SetNoHeaders controls whether to suppress the header row.
func (w *PlainTableWriter) SetNoHeaders(noHeaders bool) {
	w.showHeaders = !noHeaders
}

// AppendRow adds a row to the table.
func (w *PlainTableWriter) AppendRow(row []string) {
	// Ensure row has same number of columns as headers
	normalizedRow := make([]string, len(w.headers))
	for i := range w.headers {
		if i < len(row) {
			normalizedRow[i] = row[i]
			if width := view.DisplayWidth(row[i]); width > w.columnWidths[i] {
				w.columnWidths[i] = width
			}
		}
	}
	w.rows = append(w.rows, normalizedRow)
}

// Render outputs the table.
func (w *PlainTableWriter) Render() {
	if len(w.headers) == 0 {
		return
	}

	// Don't output anything if no rows and headers are suppressed
	if len(w.rows) == 0 && !w.showHeaders {
		return
	}

	if w.showHeaders {
		w.printRow(w.headers)
	}

	for _, row := range w.rows {
		w.printRow(row)
	}
}

// printRow prints a single row with proper column alignment.
func (w *PlainTableWriter) printRow(row []string) {
	var sb strings.Builder
	for i, cell := range row {
		sb.WriteString(cell)
		if i == len(row)-1 {
			// Last column: no padding needed
			break
		}
		sb.WriteString(strings.Repeat(" ", w.columnWidths[i]-view.DisplayWidth(cell)+w.minPadding))
	}
	fmt.Fprintln(w.output, strings.TrimRight(sb.String(), " "))
}
