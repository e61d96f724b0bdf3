package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 4

// ListWriter builds a column-aligned tabular list view.
//
// Usage:
//
//	lw := output.NewListWriter(w, "DATE", "PHASE", "ILLUMINATION")
//	lw.Row("2024-02-09", "New Moon", "0%")
//	lw.Row("2024-02-10", "Waxing Crescent", "2%")
//	lw.FlushWithFooter("29 days")
//
// Column widths are measured in terminal cells, so values may contain
// block characters or ANSI color.
type ListWriter struct {
	w       io.Writer
	headers []string
	rows    [][]string
}

// NewListWriter creates a ListWriter with the given column headers.
// Headers should be in ALL CAPS.
func NewListWriter(w io.Writer, headers ...string) *ListWriter {
	return &ListWriter{
		w:       w,
		headers: headers,
	}
}

// Row adds a row of values. The number of values should match the number of headers.
func (lw *ListWriter) Row(values ...string) {
	lw.rows = append(lw.rows, values)
}

// Len returns the number of rows added so far.
func (lw *ListWriter) Len() int {
	return len(lw.rows)
}

// Flush renders the table to the writer: headers, separator, rows.
func (lw *ListWriter) Flush() {
	lw.FlushWithFooter("")
}

// FlushWithFooter renders the table and appends a footer line (e.g. "29 days").
// Pass an empty string to omit the footer.
func (lw *ListWriter) FlushWithFooter(footer string) {
	colCount := len(lw.headers)
	if colCount == 0 {
		return
	}

	widths := make([]int, colCount)
	for i, h := range lw.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range lw.rows {
		for i := 0; i < colCount && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	lw.printRow(lw.headers, widths, true)

	totalWidth := 0
	for i, w := range widths {
		totalWidth += w
		if i < colCount-1 {
			totalWidth += columnGap
		}
	}
	fmt.Fprintln(lw.w, strings.Repeat("─", max(totalWidth, separatorWidth)))

	for _, row := range lw.rows {
		lw.printRow(row, widths, false)
	}

	if footer != "" {
		fmt.Fprintln(lw.w)
		fmt.Fprintln(lw.w, footer)
	}
}

func (lw *ListWriter) printRow(values []string, widths []int, isHeader bool) {
	colCount := len(widths)
	var b strings.Builder
	for i := 0; i < colCount; i++ {
		raw := ""
		if i < len(values) {
			raw = values[i]
		}
		val := raw
		if isHeader {
			val = Bold(raw)
		}
		b.WriteString(val)
		if i < colCount-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(raw)+columnGap))
		}
	}
	fmt.Fprintln(lw.w, b.String())
}
