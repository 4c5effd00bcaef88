// Package parser provides sheet parsing utilities for governance workbooks.
package parser

import "sort"

// Table is a header-indexed view over the raw rows of one sheet, as
// returned by excelize GetRows. The first row is the header; the rest are
// data rows. Trailing empty cells are absent from GetRows output, so a
// data row may be shorter than the header; Cell reports such cells as
// missing.
type Table struct {
	columns map[string]int
	rows    [][]string
}

// NewTable builds a Table from raw sheet rows.
func NewTable(rows [][]string) *Table {
	t := &Table{columns: make(map[string]int)}
	if len(rows) == 0 {
		return t
	}
	// Header names are indexed verbatim; "Checkpoint " with trailing
	// whitespace is a different column than "Checkpoint".
	for idx, name := range rows[0] {
		if name == "" {
			continue
		}
		if _, ok := t.columns[name]; !ok {
			t.columns[name] = idx
		}
	}
	t.rows = rows[1:]
	return t
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// HasColumn reports whether the header defines the named column.
func (t *Table) HasColumn(name string) bool {
	_, ok := t.columns[name]
	return ok
}

// MissingColumns returns the required columns absent from the header,
// sorted by name.
func (t *Table) MissingColumns(required ...string) []string {
	var missing []string
	for _, name := range required {
		if !t.HasColumn(name) {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Cell returns the value of the named column in data row i. ok is false
// when the column is undefined or the row does not reach it.
func (t *Table) Cell(i int, column string) (value string, ok bool) {
	idx, ok := t.columns[column]
	if !ok || i < 0 || i >= len(t.rows) {
		return "", false
	}
	row := t.rows[i]
	if idx >= len(row) {
		return "", false
	}
	return row[idx], true
}
