// Package eda implements the five exploratory analyses over a loaded
// table: overview, correlation matrix, IQR outliers, missing values, and
// duplicate rows. Every operation is a pure function of its input; nothing
// here mutates the table or holds state between calls, so concurrent calls
// against the same table need no synchronization.
package eda

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"goeda/domain/core"
	"goeda/domain/eda"
	"goeda/domain/table"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// previewLimit caps the number of rows in the overview preview
const previewLimit = 5

// fenceMultiplier is the IQR rule constant: values outside
// [Q1 - 1.5*IQR, Q3 + 1.5*IQR] are outliers.
const fenceMultiplier = 1.5

// Analyzer computes analysis results from a table
type Analyzer struct{}

// NewAnalyzer creates a new analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Overview returns exact cardinalities, the numeric/non-numeric split, the
// first min(5, rows) rows, and descriptive statistics per numeric column.
func (a *Analyzer) Overview(t *table.Table) eda.Overview {
	class := table.Classify(t)

	previewCount := t.RowCount()
	if previewCount > previewLimit {
		previewCount = previewLimit
	}
	preview := make([]eda.PreviewRow, previewCount)
	for i := 0; i < previewCount; i++ {
		preview[i] = t.RowValues(i)
	}

	summaries := make([]eda.ColumnSummary, 0, len(class.Numeric))
	for _, name := range class.Numeric {
		col, _ := t.Column(name)
		values := columnValues(col)
		if len(values) == 0 {
			continue
		}
		mean, _ := stats.Mean(values)
		stdDev, _ := stats.StandardDeviation(values)
		min, _ := stats.Min(values)
		max, _ := stats.Max(values)
		median, _ := stats.Median(values)
		summaries = append(summaries, eda.ColumnSummary{
			Name:    name,
			NonNull: len(values),
			Mean:    mean,
			StdDev:  stdDev,
			Min:     min,
			Max:     max,
			Median:  median,
		})
	}

	return eda.Overview{
		RowCount:        t.RowCount(),
		ColumnCount:     t.ColumnCount(),
		NumericCount:    len(class.Numeric),
		NonNumericCount: len(class.NonNumeric),
		Columns:         t.ColumnNames(),
		PreviewRows:     preview,
		Summaries:       summaries,
		ComputedAt:      core.Now(),
	}
}

// Correlation computes the pairwise Pearson matrix over the numeric
// columns. Each entry uses only the rows where both values are non-null.
// The diagonal is always 1.0; entries with fewer than two complete pairs
// or zero variance are NaN.
func (a *Analyzer) Correlation(t *table.Table) (*eda.CorrelationMatrix, error) {
	class := table.Classify(t)
	if len(class.Numeric) == 0 {
		return nil, eda.ErrNoNumericColumns
	}

	cols := make([]table.Column, len(class.Numeric))
	for i, name := range class.Numeric {
		cols[i], _ = t.Column(name)
	}

	n := len(cols)
	values := make([][]float64, n)
	for i := range values {
		values[i] = make([]float64, n)
		values[i][i] = 1.0
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			r := pairwiseCorrelation(cols[i], cols[j])
			values[i][j] = r
			values[j][i] = r
		}
	}

	return &eda.CorrelationMatrix{
		Columns: class.Numeric,
		Values:  values,
	}, nil
}

// Outliers computes the IQR report for one numeric column. Null values are
// excluded from both the quartile computation and the outlier set; a row
// is flagged when its value is strictly outside the fences.
func (a *Analyzer) Outliers(t *table.Table, column string) (*eda.OutlierReport, error) {
	class := table.Classify(t)
	if !class.IsNumeric(column) {
		return nil, fmt.Errorf("%w: %s", eda.ErrInvalidColumn, column)
	}
	col, _ := t.Column(column)

	values := make([]float64, 0, len(col.Cells))
	for _, cell := range col.Cells {
		if v, ok := cell.Float(); ok {
			values = append(values, v)
		}
	}

	report := &eda.OutlierReport{
		Column:   column,
		Values:   values,
		Outliers: []eda.OutlierRow{},
	}
	if len(values) == 0 {
		return report, nil
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	q1 := rankInterpolatedPercentile(sorted, 0.25)
	q3 := rankInterpolatedPercentile(sorted, 0.75)
	iqr := q3 - q1

	report.Q1 = q1
	report.Q3 = q3
	report.IQR = iqr
	report.LowerFence = q1 - fenceMultiplier*iqr
	report.UpperFence = q3 + fenceMultiplier*iqr

	for i, cell := range col.Cells {
		v, ok := cell.Float()
		if !ok {
			continue
		}
		if v < report.LowerFence || v > report.UpperFence {
			report.Outliers = append(report.Outliers, eda.OutlierRow{
				RowIndex: i,
				Value:    v,
				Row:      t.RowValues(i),
			})
		}
	}

	return report, nil
}

// MissingValues counts null entries per column, in original column order
func (a *Analyzer) MissingValues(t *table.Table) eda.MissingValueReport {
	counts := make([]eda.MissingCount, 0, t.ColumnCount())
	for _, col := range t.Columns() {
		missing := 0
		for _, cell := range col.Cells {
			if cell.IsNull() {
				missing++
			}
		}
		counts = append(counts, eda.MissingCount{Column: col.Name, Missing: missing})
	}
	return eda.MissingValueReport{Counts: counts}
}

// Duplicates flags every row for which an identical earlier row exists,
// comparing all columns including null positions. The first occurrence of
// a repeated pattern is the original and is never flagged.
func (a *Analyzer) Duplicates(t *table.Table) eda.DuplicateReport {
	report := eda.DuplicateReport{
		Columns: t.ColumnNames(),
		Rows:    []eda.DuplicateRow{},
	}

	seen := make(map[string]bool, t.RowCount())
	for i := 0; i < t.RowCount(); i++ {
		key := rowKey(t.Row(i))
		if seen[key] {
			report.DuplicateCount++
			report.Rows = append(report.Rows, eda.DuplicateRow{
				RowIndex: i,
				Row:      t.RowValues(i),
			})
			continue
		}
		seen[key] = true
	}

	return report
}

// columnValues extracts the non-null numeric values of a column in
// original row order.
func columnValues(col table.Column) []float64 {
	values := make([]float64, 0, len(col.Cells))
	for _, cell := range col.Cells {
		if v, ok := cell.Float(); ok {
			values = append(values, v)
		}
	}
	return values
}

// pairwiseCorrelation computes Pearson r over the rows where both cells
// are non-null numeric. Returns NaN when fewer than two complete pairs
// exist; gonum yields NaN itself for zero-variance inputs.
func pairwiseCorrelation(x, y table.Column) float64 {
	xs := make([]float64, 0, len(x.Cells))
	ys := make([]float64, 0, len(y.Cells))
	for i := range x.Cells {
		xv, xok := x.Cells[i].Float()
		yv, yok := y.Cells[i].Float()
		if xok && yok {
			xs = append(xs, xv)
			ys = append(ys, yv)
		}
	}
	if len(xs) < 2 {
		return math.NaN()
	}
	return stat.Correlation(xs, ys, nil)
}

// rankInterpolatedPercentile computes the p-th percentile of a sorted
// slice by linear interpolation between closest ranks: the index is
// p*(n-1), interpolating linearly between the two bracketing entries.
func rankInterpolatedPercentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}
	idx := p * float64(n-1)
	lo := int(math.Floor(idx))
	hi := int(math.Ceil(idx))
	if lo == hi {
		return sorted[lo]
	}
	frac := idx - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// rowKey encodes a row for duplicate comparison. Each value cell is
// length-prefixed so the encoding is injective: no cell content can shift
// a boundary, and the null token can never be spelled by a value cell
// (value cells always start with a digit).
func rowKey(row []table.Cell) string {
	var b strings.Builder
	for _, cell := range row {
		if cell.IsNull() {
			b.WriteString("n;")
			continue
		}
		s := cell.String()
		fmt.Fprintf(&b, "%d:%s;", len(s), s)
	}
	return b.String()
}
