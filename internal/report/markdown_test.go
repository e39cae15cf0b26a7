package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goeda/domain/table"
	analyzer "goeda/internal/eda"
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

func TestBuildMarkdownSections(t *testing.T) {
	tbl, err := table.New([]table.Column{
		col("A", "1", "2", "1", "100"),
		col("B", "10", "20", "10", "5"),
		col("label", "x", "y", "x", ""),
	})
	require.NoError(t, err)

	b := NewBuilder(analyzer.NewAnalyzer())
	md := b.BuildMarkdown(tbl, "sample.csv")

	assert.Contains(t, md, "# EDA Report: sample.csv")
	assert.Contains(t, md, "Total Rows: 4 | Total Columns: 3")
	assert.Contains(t, md, "Numerical Columns: 2")
	assert.Contains(t, md, "Categorical Columns: 1")
	assert.Contains(t, md, "## Numeric Summaries")
	assert.Contains(t, md, "## Correlation Matrix")
	assert.Contains(t, md, "## Outliers")
	assert.Contains(t, md, "## Missing Values")
	assert.Contains(t, md, "## Duplicate Records")

	// Scenario numbers from the A column
	assert.Contains(t, md, "| A | 1 | 26.5 | 25.5 | -37.25 | 64.75 | 1 |")
	assert.Contains(t, md, "Total missing entries: 1")
	assert.Contains(t, md, "Total Duplicate Records: 1")
}

func TestBuildMarkdownNoNumericColumns(t *testing.T) {
	tbl, err := table.New([]table.Column{col("name", "ann", "bob")})
	require.NoError(t, err)

	b := NewBuilder(analyzer.NewAnalyzer())
	md := b.BuildMarkdown(tbl, "names.csv")

	assert.Contains(t, md, "No numerical columns available for correlation.")
	assert.Contains(t, md, "No numerical columns available for outlier detection.")
	assert.NotContains(t, md, "## Numeric Summaries")
}

func TestBuildMarkdownNoDuplicates(t *testing.T) {
	tbl, err := table.New([]table.Column{col("A", "1", "2", "3")})
	require.NoError(t, err)

	md := NewBuilder(analyzer.NewAnalyzer()).BuildMarkdown(tbl, "a.csv")
	assert.Contains(t, md, "No duplicate records found.")
}

func TestBuildMarkdownUndefinedCorrelationAsDash(t *testing.T) {
	tbl, err := table.New([]table.Column{
		col("x", "1", "2", "3"),
		col("const", "5", "5", "5"),
	})
	require.NoError(t, err)

	md := NewBuilder(analyzer.NewAnalyzer()).BuildMarkdown(tbl, "c.csv")
	assert.Contains(t, md, "| x | 1.000 | - |")
}

func TestRenderHTML(t *testing.T) {
	out := string(RenderHTML("# Title\n\n| a | b |\n|---|---|\n| 1 | 2 |\n"))
	assert.True(t, strings.Contains(out, "<h1"), "expected a heading, got %q", out)
	assert.Contains(t, out, "<table>")
}
