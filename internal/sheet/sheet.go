// Package sheet loads and saves tabular spreadsheet data.
//
// It is the only package that touches the workbook file format; everything
// downstream works on Sheet values with cells already parsed into tagged
// cell.Value form.
package sheet

import (
	"errors"

	"github.com/example/mailsheet/internal/cell"
)

// ErrNoSheets is returned when a workbook contains no sheets at all.
var ErrNoSheets = errors.New("workbook has no sheets")

// ErrOpenFailed wraps failures to open the workbook file at all. Both
// conditions are data-source problems a user can fix, as opposed to read
// failures mid-sheet.
var ErrOpenFailed = errors.New("workbook cannot be opened")

// Row is one data row. Number is the 1-based display row number as a user
// would see it in a spreadsheet application: the header is row 1, so the
// first data row is 2. Numbers are preserved through filtering.
type Row struct {
	Number int
	Cells  map[string]cell.Value
}

// Value returns the cell for the named column, or Missing when the column
// is absent from the row.
func (r Row) Value(column string) cell.Value {
	if v, ok := r.Cells[column]; ok {
		return v
	}
	return cell.Missing()
}

// Sheet is an ordered sequence of rows sharing a column set.
type Sheet struct {
	Name    string
	Columns []string
	Rows    []Row
}

// HasColumn reports whether the sheet's header contains the named column.
func (s *Sheet) HasColumn(name string) bool {
	for _, c := range s.Columns {
		if c == name {
			return true
		}
	}
	return false
}
