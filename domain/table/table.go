// Package table defines the in-memory tabular dataset produced by one
// upload: an ordered sequence of named columns of scalar cells. A Table is
// immutable after construction; every analysis reads it without copying.
package table

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Cell is a single scalar value: text, something that parses as a number,
// or null. The raw text form is preserved so duplicate detection and
// previews can compare values exactly as they were uploaded.
type Cell struct {
	raw  string
	null bool
}

// NullCell returns the null cell
func NullCell() Cell {
	return Cell{null: true}
}

// NewCell creates a cell from raw text. The loader is responsible for
// mapping empty input to NullCell; NewCell stores the text verbatim.
func NewCell(raw string) Cell {
	return Cell{raw: raw}
}

// IsNull reports whether the cell is null
func (c Cell) IsNull() bool {
	return c.null
}

// String returns the raw text form; null cells return ""
func (c Cell) String() string {
	return c.raw
}

// Float parses the cell as a number. Null cells, non-numeric text, and
// non-finite spellings ("NaN", "Inf") return ok=false; every numeric value
// in the system is finite, which keeps results JSON-encodable.
func (c Cell) Float() (float64, bool) {
	if c.null {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(c.raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Value returns the cell as a JSON-friendly scalar: nil for null,
// the raw string otherwise.
func (c Cell) Value() interface{} {
	if c.null {
		return nil
	}
	return c.raw
}

// Column is an ordered sequence of cells under a name
type Column struct {
	Name  string
	Cells []Cell
}

// Table is an ordered collection of equally sized, uniquely named columns
type Table struct {
	cols []Column
	rows int
}

// New validates and constructs a table. All columns must have the same
// length and distinct names.
func New(cols []Column) (*Table, error) {
	rows := 0
	if len(cols) > 0 {
		rows = len(cols[0].Cells)
	}

	seen := make(map[string]bool, len(cols))
	for _, col := range cols {
		if col.Name == "" {
			return nil, fmt.Errorf("column name cannot be empty")
		}
		if seen[col.Name] {
			return nil, fmt.Errorf("duplicate column name: %s", col.Name)
		}
		seen[col.Name] = true

		if len(col.Cells) != rows {
			return nil, fmt.Errorf("column %s has %d cells, expected %d", col.Name, len(col.Cells), rows)
		}
	}

	return &Table{cols: cols, rows: rows}, nil
}

// Empty returns a table with no columns and no rows
func Empty() *Table {
	return &Table{}
}

// RowCount returns the number of data rows
func (t *Table) RowCount() int {
	return t.rows
}

// ColumnCount returns the number of columns
func (t *Table) ColumnCount() int {
	return len(t.cols)
}

// ColumnNames returns the column names in original order
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.cols))
	for i, col := range t.cols {
		names[i] = col.Name
	}
	return names
}

// Columns returns the columns in original order
func (t *Table) Columns() []Column {
	return t.cols
}

// Column looks up a column by name
func (t *Table) Column(name string) (Column, bool) {
	for _, col := range t.cols {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// Row returns the cells of row i across all columns, in column order
func (t *Table) Row(i int) []Cell {
	row := make([]Cell, len(t.cols))
	for j, col := range t.cols {
		row[j] = col.Cells[i]
	}
	return row
}

// RowValues returns row i as JSON-friendly scalars (nil for nulls)
func (t *Table) RowValues(i int) []interface{} {
	row := make([]interface{}, len(t.cols))
	for j, col := range t.cols {
		row[j] = col.Cells[i].Value()
	}
	return row
}
