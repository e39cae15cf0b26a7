// Package report assembles the five analyses into a single markdown
// summary and renders it to HTML for the report view.
package report

import (
	"fmt"
	"math"
	"strings"

	"goeda/domain/eda"
	"goeda/domain/table"
	analyzer "goeda/internal/eda"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Builder produces markdown EDA summaries
type Builder struct {
	analyzer *analyzer.Analyzer
}

// NewBuilder creates a report builder
func NewBuilder(a *analyzer.Analyzer) *Builder {
	return &Builder{analyzer: a}
}

// BuildMarkdown assembles the full EDA summary for a dataset. Datasets
// without numeric columns get a warning line in place of the correlation
// table, matching the dashboard behavior.
func (b *Builder) BuildMarkdown(t *table.Table, name string) string {
	var md strings.Builder

	overview := b.analyzer.Overview(t)
	fmt.Fprintf(&md, "# EDA Report: %s\n\n", name)
	fmt.Fprintf(&md, "Total Rows: %d | Total Columns: %d\n\n", overview.RowCount, overview.ColumnCount)
	fmt.Fprintf(&md, "Numerical Columns: %d\n\n", overview.NumericCount)
	fmt.Fprintf(&md, "Categorical Columns: %d\n\n", overview.NonNumericCount)

	if len(overview.Summaries) > 0 {
		md.WriteString("## Numeric Summaries\n\n")
		md.WriteString("| Column | Non-null | Mean | Std Dev | Min | Median | Max |\n")
		md.WriteString("|---|---|---|---|---|---|---|\n")
		for _, s := range overview.Summaries {
			fmt.Fprintf(&md, "| %s | %d | %.4g | %.4g | %.4g | %.4g | %.4g |\n",
				s.Name, s.NonNull, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
		}
		md.WriteString("\n")
	}

	md.WriteString("## Correlation Matrix\n\n")
	matrix, err := b.analyzer.Correlation(t)
	if err != nil {
		md.WriteString("No numerical columns available for correlation.\n\n")
	} else {
		md.WriteString("| |")
		for _, c := range matrix.Columns {
			fmt.Fprintf(&md, " %s |", c)
		}
		md.WriteString("\n|---|")
		md.WriteString(strings.Repeat("---|", len(matrix.Columns)))
		md.WriteString("\n")
		for i, row := range matrix.Values {
			fmt.Fprintf(&md, "| %s |", matrix.Columns[i])
			for _, v := range row {
				if math.IsNaN(v) {
					md.WriteString(" - |")
				} else {
					fmt.Fprintf(&md, " %.3f |", v)
				}
			}
			md.WriteString("\n")
		}
		md.WriteString("\n")
	}

	md.WriteString("## Outliers\n\n")
	class := table.Classify(t)
	if len(class.Numeric) == 0 {
		md.WriteString("No numerical columns available for outlier detection.\n\n")
	} else {
		md.WriteString("| Column | Q1 | Q3 | IQR | Lower Fence | Upper Fence | Outliers |\n")
		md.WriteString("|---|---|---|---|---|---|---|\n")
		for _, name := range class.Numeric {
			rep, err := b.analyzer.Outliers(t, name)
			if err != nil {
				continue
			}
			fmt.Fprintf(&md, "| %s | %.4g | %.4g | %.4g | %.4g | %.4g | %d |\n",
				rep.Column, rep.Q1, rep.Q3, rep.IQR, rep.LowerFence, rep.UpperFence, len(rep.Outliers))
		}
		md.WriteString("\n")
	}

	md.WriteString("## Missing Values\n\n")
	missing := b.analyzer.MissingValues(t)
	md.WriteString("| Feature | Missing Values |\n|---|---|\n")
	for _, c := range missing.Counts {
		fmt.Fprintf(&md, "| %s | %d |\n", c.Column, c.Missing)
	}
	fmt.Fprintf(&md, "\nTotal missing entries: %d\n\n", missing.Total())

	md.WriteString("## Duplicate Records\n\n")
	dup := b.analyzer.Duplicates(t)
	if dup.DuplicateCount == 0 {
		md.WriteString("No duplicate records found.\n")
	} else {
		fmt.Fprintf(&md, "Total Duplicate Records: %d\n\n", dup.DuplicateCount)
		writeRowTable(&md, dup.Columns, dup.Rows)
	}

	return md.String()
}

// RenderHTML renders a markdown report to HTML
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(md))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.Render(doc, renderer)
}

func writeRowTable(md *strings.Builder, columns []string, rows []eda.DuplicateRow) {
	md.WriteString("| # |")
	for _, c := range columns {
		fmt.Fprintf(md, " %s |", c)
	}
	md.WriteString("\n|---|")
	md.WriteString(strings.Repeat("---|", len(columns)))
	md.WriteString("\n")
	for _, r := range rows {
		fmt.Fprintf(md, "| %d |", r.RowIndex)
		for _, v := range r.Row {
			if v == nil {
				md.WriteString(" |")
			} else {
				fmt.Fprintf(md, " %v |", v)
			}
		}
		md.WriteString("\n")
	}
	md.WriteString("\n")
}
