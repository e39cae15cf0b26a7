// Command edacli runs the full exploratory analysis for one file and
// prints the markdown report to stdout.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"goeda/adapters/tabular"
	analyzer "goeda/internal/eda"
	"goeda/internal/report"
)

func main() {
	column := flag.String("column", "", "numeric column for a standalone outlier report")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: edacli [-column NAME] FILE")
		os.Exit(2)
	}
	path := flag.Arg(0)

	loader := tabular.NewLoader()
	t, err := loader.LoadFile(path)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", path, err)
	}

	a := analyzer.NewAnalyzer()

	if *column != "" {
		rep, err := a.Outliers(t, *column)
		if err != nil {
			log.Fatalf("Outlier report failed: %v", err)
		}
		fmt.Printf("Column %s: Q1=%.6g Q3=%.6g IQR=%.6g fences=[%.6g, %.6g]\n",
			rep.Column, rep.Q1, rep.Q3, rep.IQR, rep.LowerFence, rep.UpperFence)
		for _, o := range rep.Outliers {
			fmt.Printf("  row %d: %.6g\n", o.RowIndex, o.Value)
		}
		return
	}

	fmt.Print(report.NewBuilder(a).BuildMarkdown(t, path))
}
