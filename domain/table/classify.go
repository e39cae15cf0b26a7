package table

// Classification partitions a table's column names into numeric and
// non-numeric sets. Both slices follow the table's original column order
// and together cover every column exactly once.
type Classification struct {
	Numeric    []string `json:"numeric"`
	NonNumeric []string `json:"non_numeric"`
}

// Classify derives the column classification for a table. A column is
// numeric when every non-null cell parses as an integer or float; a column
// with no non-null cells is numeric by the same rule. The rule is explicit
// so classification is reproducible rather than dependent on a library's
// type-inference heuristics.
func Classify(t *Table) Classification {
	c := Classification{
		Numeric:    []string{},
		NonNumeric: []string{},
	}

	for _, col := range t.Columns() {
		if isNumericColumn(col) {
			c.Numeric = append(c.Numeric, col.Name)
		} else {
			c.NonNumeric = append(c.NonNumeric, col.Name)
		}
	}

	return c
}

// IsNumeric reports whether name is in the numeric set
func (c Classification) IsNumeric(name string) bool {
	for _, n := range c.Numeric {
		if n == name {
			return true
		}
	}
	return false
}

func isNumericColumn(col Column) bool {
	for _, cell := range col.Cells {
		if cell.IsNull() {
			continue
		}
		if _, ok := cell.Float(); !ok {
			return false
		}
	}
	return true
}
