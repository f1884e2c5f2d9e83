package sheet

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/mailsheet/internal/cell"
)

// LoadInfo describes how the requested sheet name was resolved.
type LoadInfo struct {
	Requested string
	Resolved  string
	// Fallback is true when the requested sheet was absent and the first
	// sheet was used instead. Callers should surface this as a warning.
	Fallback bool
}

// Load opens the workbook at path and materializes the named sheet.
//
// Sheet-name resolution: an empty requested name means the first sheet; a
// requested name that is absent falls back to the first sheet, with
// Fallback set on the returned LoadInfo. A workbook with no sheets yields
// ErrNoSheets.
func Load(path, requested string) (*Sheet, LoadInfo, error) {
	info := LoadInfo{Requested: requested}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, info, fmt.Errorf("%w: %s: %v", ErrOpenFailed, path, err)
	}
	defer f.Close()

	names := f.GetSheetList()
	if len(names) == 0 {
		return nil, info, ErrNoSheets
	}

	name := requested
	if name == "" {
		name = names[0]
	} else if !containsName(names, name) {
		info.Fallback = true
		name = names[0]
	}
	info.Resolved = name

	raw, err := f.GetRows(name)
	if err != nil {
		return nil, info, fmt.Errorf("reading sheet %q: %w", name, err)
	}

	s := &Sheet{Name: name}
	if len(raw) == 0 {
		return s, info, nil
	}

	for _, h := range raw[0] {
		s.Columns = append(s.Columns, strings.TrimSpace(h))
	}

	for i, rawRow := range raw[1:] {
		// Display row number: header is row 1, first data row is 2.
		num := i + 2

		if blankRow(rawRow) {
			continue
		}

		cells := make(map[string]cell.Value, len(s.Columns))
		for j, col := range s.Columns {
			if col == "" {
				continue
			}
			if j < len(rawRow) {
				cells[col] = cell.Parse(rawRow[j])
			} else {
				// GetRows truncates trailing empty cells.
				cells[col] = cell.Missing()
			}
		}
		s.Rows = append(s.Rows, Row{Number: num, Cells: cells})
	}

	return s, info, nil
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
