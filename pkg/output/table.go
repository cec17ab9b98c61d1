// Package output provides the aligned multi-column accumulator used for
// per-package version tables.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/ajxudir/aptshow/pkg/utils"
)

// entry is one accumulated output line: either a fixed-width row of cells
// or a verbatim free-text line.
type entry struct {
	cells []string
	text  string
	free  bool
}

// TablePrinter accumulates rows and free-text lines and renders them with
// aligned columns.
//
// Column widths are not known until every row has been inserted, so the
// printer is strictly two-phase: collect everything, then render. Row
// order is preserved, and free-text lines keep their place in the stream
// without participating in alignment.
//
// Fields:
//   - columns: Number of cells per row
type TablePrinter struct {
	columns int
	widths  []int
	entries []entry
}

// NewTablePrinter creates an accumulator for rows of n columns.
//
// Parameters:
//   - n: Number of cells per row
//
// Returns:
//   - *TablePrinter: The empty accumulator
func NewTablePrinter(n int) *TablePrinter {
	return &TablePrinter{
		columns: n,
		widths:  make([]int, n),
	}
}

// Insert adds one fixed-width row and updates the running column widths.
//
// Missing cells are treated as empty; extra cells are dropped.
//
// Parameters:
//   - cells: One string per column
//
// Returns:
//   - *TablePrinter: The printer for method chaining
func (t *TablePrinter) Insert(cells ...string) *TablePrinter {
	row := make([]string, t.columns)
	for i := 0; i < t.columns && i < len(cells); i++ {
		row[i] = cells[i]
		if w := utils.DisplayWidth(cells[i]); w > t.widths[i] {
			t.widths[i] = w
		}
	}
	t.entries = append(t.entries, entry{cells: row})
	return t
}

// AddLine adds a free-text line emitted verbatim, without alignment.
//
// Parameters:
//   - text: The line to emit (without trailing newline)
//
// Returns:
//   - *TablePrinter: The printer for method chaining
func (t *TablePrinter) AddLine(text string) *TablePrinter {
	t.entries = append(t.entries, entry{text: text, free: true})
	return t
}

// Len returns the number of accumulated entries (rows and free lines).
//
// Returns:
//   - int: Entry count
func (t *TablePrinter) Len() int {
	return len(t.entries)
}

// ColumnWidth returns the running maximum width of a column.
//
// Parameters:
//   - index: Zero-based column index
//
// Returns:
//   - int: The column's width; 0 if index is out of bounds
func (t *TablePrinter) ColumnWidth(index int) int {
	if index < 0 || index >= t.columns {
		return 0
	}
	return t.widths[index]
}

// Render writes every accumulated entry to w in insertion order.
//
// Each row cell is left-justified and padded to its column's maximum
// width, with a single space between columns; the last column is written
// unpadded. Free-text lines are written verbatim.
//
// Parameters:
//   - w: Destination writer
//
// Returns:
//   - error: First write error encountered
func (t *TablePrinter) Render(w io.Writer) error {
	for _, e := range t.entries {
		if e.free {
			if _, err := fmt.Fprintln(w, e.text); err != nil {
				return err
			}
			continue
		}
		var sb strings.Builder
		for i, cell := range e.cells {
			if i < t.columns-1 {
				sb.WriteString(utils.ToWidth(cell, t.widths[i]))
				sb.WriteString(" ")
			} else {
				sb.WriteString(cell)
			}
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}
	return nil
}

// String renders the accumulated entries to a string.
//
// Returns:
//   - string: The rendered output
func (t *TablePrinter) String() string {
	var sb strings.Builder
	_ = t.Render(&sb)
	return sb.String()
}
