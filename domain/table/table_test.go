package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func col(name string, values ...string) Column {
	cells := make([]Cell, len(values))
	for i, v := range values {
		if v == "" {
			cells[i] = NullCell()
		} else {
			cells[i] = NewCell(v)
		}
	}
	return Column{Name: name, Cells: cells}
}

func TestNewValidatesColumnLengths(t *testing.T) {
	_, err := New([]Column{
		col("a", "1", "2"),
		col("b", "1"),
	})
	assert.Error(t, err)
}

func TestNewRejectsDuplicateNames(t *testing.T) {
	_, err := New([]Column{
		col("a", "1"),
		col("a", "2"),
	})
	assert.Error(t, err)
}

func TestNewRejectsEmptyName(t *testing.T) {
	_, err := New([]Column{col("", "1")})
	assert.Error(t, err)
}

func TestTableAccessors(t *testing.T) {
	tbl, err := New([]Column{
		col("a", "1", "2"),
		col("b", "x", ""),
	})
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.RowCount())
	assert.Equal(t, 2, tbl.ColumnCount())
	assert.Equal(t, []string{"a", "b"}, tbl.ColumnNames())

	c, ok := tbl.Column("b")
	require.True(t, ok)
	assert.True(t, c.Cells[1].IsNull())

	_, ok = tbl.Column("missing")
	assert.False(t, ok)

	row := tbl.RowValues(1)
	assert.Equal(t, "2", row[0])
	assert.Nil(t, row[1])
}

func TestCellFloat(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
		ok   bool
	}{
		{"1", 1, true},
		{"2.5", 2.5, true},
		{"-3e2", -300, true},
		{" 7 ", 7, true},
		{"abc", 0, false},
		{"1,5", 0, false},
		// Non-finite spellings parse in strconv but are not data values
		{"NaN", 0, false},
		{"nan", 0, false},
		{"Inf", 0, false},
		{"-Inf", 0, false},
	}
	for _, tt := range tests {
		v, ok := NewCell(tt.raw).Float()
		assert.Equal(t, tt.ok, ok, "raw %q", tt.raw)
		if tt.ok {
			assert.Equal(t, tt.want, v, "raw %q", tt.raw)
		}
	}

	_, ok := NullCell().Float()
	assert.False(t, ok)
}

func TestEmptyTable(t *testing.T) {
	tbl := Empty()
	assert.Equal(t, 0, tbl.RowCount())
	assert.Equal(t, 0, tbl.ColumnCount())
	assert.Empty(t, tbl.ColumnNames())
}
