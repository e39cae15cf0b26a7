package eda

import (
	"errors"
)

// Domain errors - centralized error definitions
var (
	// ErrNoNumericColumns: correlation requested on a dataset with zero
	// numeric columns. The caller should show a warning, not a chart.
	ErrNoNumericColumns = errors.New("no numeric columns available")

	// ErrInvalidColumn: outlier report requested for a non-numeric or
	// non-existent column name.
	ErrInvalidColumn = errors.New("column is not numeric or does not exist")

	// ErrMalformedInput: uploaded bytes could not be decoded as tabular
	// data. Surfaced by the loader, never by the analyzer.
	ErrMalformedInput = errors.New("input could not be decoded as tabular data")

	// ErrNoDataset: an analysis was requested before any upload
	ErrNoDataset = errors.New("no dataset loaded")
)

// Error checking helpers
func IsNoNumericColumns(err error) bool {
	return errors.Is(err, ErrNoNumericColumns)
}

func IsInvalidColumn(err error) bool {
	return errors.Is(err, ErrInvalidColumn)
}

func IsMalformedInput(err error) bool {
	return errors.Is(err, ErrMalformedInput)
}
