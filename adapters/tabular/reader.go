// Package tabular decodes uploaded CSV and XLSX bytes into the domain
// table. Decoding rules: first row is the header, subsequent rows are
// data, text is UTF-8, and empty cells (after trimming) become null.
package tabular

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"goeda/domain/eda"
	"goeda/domain/table"
	apperrors "goeda/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Loader reads CSV and XLSX inputs into tables
type Loader struct{}

// NewLoader creates a new loader
func NewLoader() *Loader {
	return &Loader{}
}

// LoadFile reads a file from disk, choosing the decoder by extension.
// Anything that is not .xlsx is treated as CSV.
func (l *Loader) LoadFile(path string) (*table.Table, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".xlsx" {
		f, err := excelize.OpenFile(path)
		if err != nil {
			return nil, apperrors.MalformedInput("failed to open XLSX file", eda.ErrMalformedInput)
		}
		defer f.Close()
		return l.fromWorkbook(f)
	}

	f, err := openFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.LoadCSV(f)
}

// Load decodes an upload stream, choosing the decoder by filename
func (l *Loader) Load(r io.Reader, filename string) (*table.Table, error) {
	if strings.ToLower(filepath.Ext(filename)) == ".xlsx" {
		return l.LoadXLSX(r)
	}
	return l.LoadCSV(r)
}

// LoadCSV decodes CSV bytes. A header-only file yields a valid zero-row
// table; a file with no rows at all is malformed.
func (l *Loader) LoadCSV(r io.Reader) (*table.Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; short rows pad with nulls

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.MalformedInput("failed to read CSV data", eda.ErrMalformedInput)
	}
	if len(records) == 0 {
		return nil, apperrors.MalformedInput("file has no header row", eda.ErrMalformedInput)
	}

	return l.buildTable(records)
}

// LoadXLSX decodes an XLSX workbook from a stream, reading the first sheet
func (l *Loader) LoadXLSX(r io.Reader) (*table.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, apperrors.MalformedInput("failed to open XLSX data", eda.ErrMalformedInput)
	}
	defer f.Close()
	return l.fromWorkbook(f)
}

func (l *Loader) fromWorkbook(f *excelize.File) (*table.Table, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.MalformedInput("workbook has no sheets", eda.ErrMalformedInput)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.MalformedInput("failed to read worksheet", eda.ErrMalformedInput)
	}
	if len(rows) == 0 {
		return nil, apperrors.MalformedInput("worksheet has no header row", eda.ErrMalformedInput)
	}

	return l.buildTable(rows)
}

// buildTable converts raw string records into a column-oriented table.
// Headers are trimmed; cells are trimmed and empty cells become null, as
// do non-finite numeric spellings ("NaN", "Inf"), which mark missing
// values rather than data. Rows shorter than the header are padded with
// nulls.
func (l *Loader) buildTable(records [][]string) (*table.Table, error) {
	headerRow := records[0]
	headers := make([]string, len(headerRow))
	for i, header := range headerRow {
		headers[i] = strings.TrimSpace(header)
	}

	dataRows := records[1:]
	cols := make([]table.Column, len(headers))
	for i, header := range headers {
		cells := make([]table.Cell, len(dataRows))
		for j, row := range dataRows {
			if i >= len(row) {
				cells[j] = table.NullCell()
				continue
			}
			value := strings.TrimSpace(row[i])
			if value == "" || isNonFinite(value) {
				cells[j] = table.NullCell()
			} else {
				cells[j] = table.NewCell(value)
			}
		}
		cols[i] = table.Column{Name: header, Cells: cells}
	}

	t, err := table.New(cols)
	if err != nil {
		return nil, apperrors.MalformedInput(err.Error(), eda.ErrMalformedInput)
	}
	return t, nil
}

// isNonFinite reports whether value spells a non-finite float ("NaN",
// "Inf", "-Inf", and case variants accepted by strconv).
func isNonFinite(value string) bool {
	v, err := strconv.ParseFloat(value, 64)
	return err == nil && (math.IsNaN(v) || math.IsInf(v, 0))
}

func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrapf(err, "failed to open file %s", path)
	}
	return f, nil
}
