package eda

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goeda/domain/eda"
	"goeda/domain/table"
)

func col(name string, values ...string) table.Column {
	cells := make([]table.Cell, len(values))
	for i, v := range values {
		if v == "" {
			cells[i] = table.NullCell()
		} else {
			cells[i] = table.NewCell(v)
		}
	}
	return table.Column{Name: name, Cells: cells}
}

func mustTable(t *testing.T, cols ...table.Column) *table.Table {
	t.Helper()
	tbl, err := table.New(cols)
	require.NoError(t, err)
	return tbl
}

// scenarioTable is the two-column dataset [(1,10),(2,20),(1,10),(100,5)]
func scenarioTable(t *testing.T) *table.Table {
	return mustTable(t,
		col("A", "1", "2", "1", "100"),
		col("B", "10", "20", "10", "5"),
	)
}

func TestOverviewCounts(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t,
		col("A", "1", "2", "3", "4"),
		col("B", "1.5", "", "3.5", "4.5"),
		col("C", "x", "y", "z", "w"),
	)

	o := a.Overview(tbl)
	assert.Equal(t, 4, o.RowCount)
	assert.Equal(t, 3, o.ColumnCount)
	assert.Equal(t, 2, o.NumericCount)
	assert.Equal(t, 1, o.NonNumericCount)
	assert.Equal(t, o.ColumnCount, o.NumericCount+o.NonNumericCount)
	assert.Equal(t, []string{"A", "B", "C"}, o.Columns)

	// Preview holds all four rows in original order, nulls as nil
	require.Len(t, o.PreviewRows, 4)
	assert.Equal(t, eda.PreviewRow{"1", "1.5", "x"}, o.PreviewRows[0])
	assert.Nil(t, o.PreviewRows[1][1])

	require.Len(t, o.Summaries, 2)
	assert.Equal(t, "A", o.Summaries[0].Name)
	assert.Equal(t, 4, o.Summaries[0].NonNull)
	assert.InDelta(t, 2.5, o.Summaries[0].Mean, 1e-12)
	assert.Equal(t, 1.0, o.Summaries[0].Min)
	assert.Equal(t, 4.0, o.Summaries[0].Max)
	assert.Equal(t, 3, o.Summaries[1].NonNull)
}

func TestOverviewPreviewLimit(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t, col("A", "1", "2", "3", "4", "5", "6", "7"))

	o := a.Overview(tbl)
	assert.Len(t, o.PreviewRows, 5)
	assert.Equal(t, eda.PreviewRow{"1"}, o.PreviewRows[0])
	assert.Equal(t, eda.PreviewRow{"5"}, o.PreviewRows[4])
}

func TestOverviewEmptyDataset(t *testing.T) {
	a := NewAnalyzer()
	o := a.Overview(table.Empty())
	assert.Equal(t, 0, o.RowCount)
	assert.Equal(t, 0, o.ColumnCount)
	assert.Empty(t, o.PreviewRows)
}

func TestCorrelationDiagonalAndSymmetry(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t,
		col("x", "1", "2", "3", "4"),
		col("y", "2", "4", "6", "8"),
		col("z", "4", "3", "2", "1"),
		col("label", "a", "b", "c", "d"),
	)

	m, err := a.Correlation(tbl)
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, m.Columns)

	for i := range m.Values {
		assert.Equal(t, 1.0, m.Values[i][i])
		for j := range m.Values {
			assert.Equal(t, m.Values[i][j], m.Values[j][i])
		}
	}

	assert.InDelta(t, 1.0, m.Values[0][1], 1e-9)
	assert.InDelta(t, -1.0, m.Values[0][2], 1e-9)
}

func TestCorrelationPairwiseNonNull(t *testing.T) {
	a := NewAnalyzer()
	// Complete pairs are rows 1 and 2 only; over those x and y move together
	tbl := mustTable(t,
		col("x", "1", "2", "3", ""),
		col("y", "", "4", "6", "8"),
	)

	m, err := a.Correlation(tbl)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, m.Values[0][1], 1e-9)
}

func TestCorrelationUndefinedEntriesAreNaN(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t,
		col("x", "1", "2", "3"),
		col("const", "5", "5", "5"),
	)

	m, err := a.Correlation(tbl)
	require.NoError(t, err)
	// Zero variance makes Pearson undefined off the diagonal
	assert.True(t, math.IsNaN(m.Values[0][1]))
	assert.Equal(t, 1.0, m.Values[1][1])
}

func TestCorrelationNoNumericColumns(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t, col("name", "ann", "bob"))

	_, err := a.Correlation(tbl)
	assert.ErrorIs(t, err, eda.ErrNoNumericColumns)
}

func TestCorrelationZeroRows(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t, col("x"), col("y"))

	m, err := a.Correlation(tbl)
	require.NoError(t, err)
	assert.Equal(t, 1.0, m.Values[0][0])
	assert.True(t, math.IsNaN(m.Values[0][1]))
}

func TestOutliersScenario(t *testing.T) {
	a := NewAnalyzer()
	rep, err := a.Outliers(scenarioTable(t), "A")
	require.NoError(t, err)

	// Sorted A = [1,1,2,100]; rank interpolation: Q1 idx 0.75 -> 1,
	// Q3 idx 2.25 -> 2 + 0.25*98 = 26.5
	assert.InDelta(t, 1.0, rep.Q1, 1e-12)
	assert.InDelta(t, 26.5, rep.Q3, 1e-12)
	assert.InDelta(t, 25.5, rep.IQR, 1e-12)
	assert.InDelta(t, -37.25, rep.LowerFence, 1e-12)
	assert.InDelta(t, 64.75, rep.UpperFence, 1e-12)

	assert.Equal(t, []float64{1, 2, 1, 100}, rep.Values)
	require.Len(t, rep.Outliers, 1)
	assert.Equal(t, 3, rep.Outliers[0].RowIndex)
	assert.Equal(t, 100.0, rep.Outliers[0].Value)
	assert.Equal(t, eda.PreviewRow{"100", "5"}, rep.Outliers[0].Row)
}

func TestOutliersIdempotent(t *testing.T) {
	a := NewAnalyzer()
	tbl := scenarioTable(t)

	first, err := a.Outliers(tbl, "A")
	require.NoError(t, err)
	second, err := a.Outliers(tbl, "A")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestOutliersConstantColumn(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t, col("c", "5", "5", "5", "5"))

	rep, err := a.Outliers(tbl, "c")
	require.NoError(t, err)
	assert.Equal(t, 0.0, rep.IQR)
	assert.Equal(t, rep.LowerFence, rep.UpperFence)
	assert.Equal(t, 5.0, rep.LowerFence)
	assert.Empty(t, rep.Outliers)
}

func TestOutliersExcludesNulls(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t, col("v", "1", "", "2", "", "3"))

	rep, err := a.Outliers(tbl, "v")
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, rep.Values)
	assert.Empty(t, rep.Outliers)
}

func TestOutliersInvalidColumn(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t,
		col("num", "1", "2"),
		col("text", "x", "y"),
	)

	_, err := a.Outliers(tbl, "text")
	assert.ErrorIs(t, err, eda.ErrInvalidColumn)

	_, err = a.Outliers(tbl, "nope")
	assert.ErrorIs(t, err, eda.ErrInvalidColumn)
}

func TestOutliersEmptyColumn(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t, col("blank", "", ""))

	rep, err := a.Outliers(tbl, "blank")
	require.NoError(t, err)
	assert.Empty(t, rep.Values)
	assert.Empty(t, rep.Outliers)
}

func TestMissingValuesReport(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t,
		col("A", "1", "2", "3", "4"),
		col("B", "", "x", "", "y"),
		col("C", "1", "2", "3", ""),
	)

	r := a.MissingValues(tbl)
	require.Len(t, r.Counts, 3)
	assert.Equal(t, eda.MissingCount{Column: "A", Missing: 0}, r.Counts[0])
	assert.Equal(t, eda.MissingCount{Column: "B", Missing: 2}, r.Counts[1])
	assert.Equal(t, eda.MissingCount{Column: "C", Missing: 1}, r.Counts[2])

	// Sum of counts equals total cells minus non-null cells
	nonNull := 0
	for _, c := range tbl.Columns() {
		for _, cell := range c.Cells {
			if !cell.IsNull() {
				nonNull++
			}
		}
	}
	assert.Equal(t, tbl.RowCount()*tbl.ColumnCount()-nonNull, r.Total())
}

func TestMissingValuesEmptyDataset(t *testing.T) {
	a := NewAnalyzer()
	r := a.MissingValues(table.Empty())
	assert.Empty(t, r.Counts)
	assert.Equal(t, 0, r.Total())
}

func TestDuplicatesScenario(t *testing.T) {
	a := NewAnalyzer()
	r := a.Duplicates(scenarioTable(t))

	assert.Equal(t, 1, r.DuplicateCount)
	require.Len(t, r.Rows, 1)
	// The third row repeats the first; only the later occurrence is flagged
	assert.Equal(t, 2, r.Rows[0].RowIndex)
	assert.Equal(t, eda.PreviewRow{"1", "10"}, r.Rows[0].Row)
}

func TestDuplicatesNoneWithoutRepeats(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t,
		col("A", "1", "2", "3"),
		col("B", "x", "y", "z"),
	)
	r := a.Duplicates(tbl)
	assert.Equal(t, 0, r.DuplicateCount)
	assert.Empty(t, r.Rows)
}

func TestDuplicatesMatchNullPositions(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t,
		col("A", "1", "1", "1"),
		col("B", "", "", "x"),
	)
	r := a.Duplicates(tbl)
	// Rows 0 and 1 are identical including the null; row 2 differs
	assert.Equal(t, 1, r.DuplicateCount)
	assert.Equal(t, 1, r.Rows[0].RowIndex)
}

func TestDuplicatesCellBoundariesAreUnambiguous(t *testing.T) {
	a := NewAnalyzer()
	// Cell content containing the encoder's separator byte must not shift
	// cell boundaries: ("a\x1fb","c") and ("a","b\x1fc") are distinct rows.
	tbl := mustTable(t,
		col("A", "a\x1fb", "a"),
		col("B", "c", "b\x1fc"),
	)
	r := a.Duplicates(tbl)
	assert.Equal(t, 0, r.DuplicateCount)
}

func TestDuplicatesNullDistinctFromNulByte(t *testing.T) {
	a := NewAnalyzer()
	// A text cell spelling a NUL byte is data, not a missing value
	tbl := mustTable(t, col("A", "", "\x00"))
	r := a.Duplicates(tbl)
	assert.Equal(t, 0, r.DuplicateCount)
}

func TestDuplicatesDistinguishNullFromText(t *testing.T) {
	a := NewAnalyzer()
	tbl := mustTable(t,
		col("A", "", "x"),
		col("B", "x", ""),
	)
	r := a.Duplicates(tbl)
	assert.Equal(t, 0, r.DuplicateCount)
}

func TestRankInterpolatedPercentile(t *testing.T) {
	sorted := []float64{1, 1, 2, 100}
	assert.InDelta(t, 1.0, rankInterpolatedPercentile(sorted, 0.25), 1e-12)
	assert.InDelta(t, 1.5, rankInterpolatedPercentile(sorted, 0.5), 1e-12)
	assert.InDelta(t, 26.5, rankInterpolatedPercentile(sorted, 0.75), 1e-12)
	assert.Equal(t, 1.0, rankInterpolatedPercentile(sorted, 0))
	assert.Equal(t, 100.0, rankInterpolatedPercentile(sorted, 1))

	assert.Equal(t, 7.0, rankInterpolatedPercentile([]float64{7}, 0.75))
	assert.True(t, math.IsNaN(rankInterpolatedPercentile(nil, 0.5)))
}
