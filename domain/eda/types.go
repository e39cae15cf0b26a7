// Package eda defines the analysis result values produced by the EDA
// analyzer. Results are stateless: each one is recomputed on demand from
// the current dataset and carries only the data a presentation layer needs
// to render it.
package eda

import (
	"encoding/json"
	"math"

	"goeda/domain/core"
)

// PreviewRow is one dataset row as JSON-friendly scalars: nil for null
// cells, the raw string otherwise.
type PreviewRow []interface{}

// ColumnSummary holds descriptive statistics for one numeric column
type ColumnSummary struct {
	Name    string  `json:"name"`
	NonNull int     `json:"non_null"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Median  float64 `json:"median"`
}

// Overview summarizes a dataset: exact cardinalities, the numeric /
// non-numeric split, the first min(5, rows) rows, and per-numeric-column
// descriptive statistics.
type Overview struct {
	RowCount        int             `json:"row_count"`
	ColumnCount     int             `json:"column_count"`
	NumericCount    int             `json:"numeric_count"`
	NonNumericCount int             `json:"non_numeric_count"`
	Columns         []string        `json:"columns"`
	PreviewRows     []PreviewRow    `json:"preview_rows"`
	Summaries       []ColumnSummary `json:"summaries,omitempty"`
	ComputedAt      core.Timestamp  `json:"computed_at"`
}

// CorrelationMatrix is a square Pearson matrix indexed by the numeric
// column names. The diagonal is always 1.0; entries that are undefined
// (fewer than two complete pairs, or zero variance) are NaN and encode to
// JSON null.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// MarshalJSON encodes NaN entries as null so the matrix survives
// encoding/json, which rejects NaN.
func (m CorrelationMatrix) MarshalJSON() ([]byte, error) {
	values := make([][]interface{}, len(m.Values))
	for i, row := range m.Values {
		values[i] = make([]interface{}, len(row))
		for j, v := range row {
			if math.IsNaN(v) {
				values[i][j] = nil
			} else {
				values[i][j] = v
			}
		}
	}
	return json.Marshal(struct {
		Columns []string        `json:"columns"`
		Values  [][]interface{} `json:"values"`
	}{Columns: m.Columns, Values: values})
}

// OutlierRow is one flagged row: its zero-based position in the dataset,
// the offending value, and the full row for display.
type OutlierRow struct {
	RowIndex int        `json:"row_index"`
	Value    float64    `json:"value"`
	Row      PreviewRow `json:"row"`
}

// OutlierReport carries the IQR fences and flagged rows for one numeric
// column. Values holds every non-null value in original row order so a
// box-and-whisker figure can be drawn with the outlier points overlaid;
// the fences are exposed rather than hidden inside a chart object.
type OutlierReport struct {
	Column     string       `json:"column"`
	Q1         float64      `json:"q1"`
	Q3         float64      `json:"q3"`
	IQR        float64      `json:"iqr"`
	LowerFence float64      `json:"lower_fence"`
	UpperFence float64      `json:"upper_fence"`
	Values     []float64    `json:"values"`
	Outliers   []OutlierRow `json:"outliers"`
}

// MissingCount pairs a column with its null-entry count
type MissingCount struct {
	Column  string `json:"column"`
	Missing int    `json:"missing"`
}

// MissingValueReport lists the missing-entry count for every column, in
// the dataset's original column order.
type MissingValueReport struct {
	Counts []MissingCount `json:"counts"`
}

// Total returns the sum of all missing counts. It always equals
// row_count*column_count minus the number of non-null cells.
func (r MissingValueReport) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c.Missing
	}
	return total
}

// DuplicateRow is one flagged duplicate: the zero-based row index and the
// row itself.
type DuplicateRow struct {
	RowIndex int        `json:"row_index"`
	Row      PreviewRow `json:"row"`
}

// DuplicateReport lists every row for which an identical earlier row
// exists. The first occurrence of a repeated pattern is the original and
// is never flagged; only the second and later occurrences appear here.
type DuplicateReport struct {
	Columns        []string       `json:"columns"`
	DuplicateCount int            `json:"duplicate_count"`
	Rows           []DuplicateRow `json:"duplicate_rows"`
}
