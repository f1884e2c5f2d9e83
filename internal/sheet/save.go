package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Save writes the sheet's rows to the named sheet in the workbook at path,
// replacing any existing sheet of that name. The workbook must already
// exist; Save never creates a new file.
func Save(path, name string, s *Sheet) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	if idx, _ := f.GetSheetIndex(name); idx >= 0 {
		if err := f.DeleteSheet(name); err != nil {
			return fmt.Errorf("replacing sheet %q: %w", name, err)
		}
	}
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("creating sheet %q: %w", name, err)
	}

	header := make([]interface{}, len(s.Columns))
	for i, c := range s.Columns {
		header[i] = c
	}
	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, row := range s.Rows {
		out := make([]interface{}, len(s.Columns))
		for j, col := range s.Columns {
			out[j] = row.Value(col).String()
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(name, addr, &out); err != nil {
			return fmt.Errorf("writing row %d: %w", row.Number, err)
		}
	}

	if err := f.Save(); err != nil {
		return fmt.Errorf("saving workbook: %w", err)
	}
	return nil
}
