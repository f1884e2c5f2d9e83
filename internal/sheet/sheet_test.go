package sheet

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/example/mailsheet/internal/cell"
)

// writeWorkbook creates a workbook with one sheet holding the given rows.
func writeWorkbook(t *testing.T, name string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if name != "Sheet1" {
		if err := f.SetSheetName("Sheet1", name); err != nil {
			t.Fatalf("renaming sheet: %v", err)
		}
	}
	for i, row := range rows {
		addr, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell address: %v", err)
		}
		if err := f.SetSheetRow(name, addr, &row); err != nil {
			t.Fatalf("writing row %d: %v", i+1, err)
		}
	}

	path := filepath.Join(t.TempDir(), "test.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("saving workbook: %v", err)
	}
	return path
}

func TestLoad_RowNumbersAndKinds(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"TORICO", "販売価格", "受付日"},
		{"G1", "100000", "2024-05-01"},
		{"", "", ""}, // blank row, skipped
		{"G2", "99.5", ""},
	})

	s, info, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if info.Fallback {
		t.Error("unexpected fallback for the default sheet")
	}
	if len(s.Rows) != 2 {
		t.Fatalf("expected 2 data rows, got %d", len(s.Rows))
	}

	// Blank row 3 is skipped but display numbering is preserved.
	if s.Rows[0].Number != 2 || s.Rows[1].Number != 4 {
		t.Errorf("expected row numbers 2 and 4, got %d and %d",
			s.Rows[0].Number, s.Rows[1].Number)
	}

	if got := s.Rows[0].Value("販売価格"); got.Kind != cell.KindInteger || got.Int != 100000 {
		t.Errorf("expected integer 100000, got %s %q", got.Kind.Name(), got.String())
	}
	if got := s.Rows[0].Value("受付日"); got.Kind != cell.KindTimestamp {
		t.Errorf("expected timestamp, got %s", got.Kind.Name())
	}
	if got := s.Rows[1].Value("受付日"); !got.IsMissing() {
		t.Errorf("expected missing, got %s", got.Kind.Name())
	}
}

func TestLoad_SheetNameFallback(t *testing.T) {
	path := writeWorkbook(t, "Master", [][]interface{}{
		{"TORICO"},
		{"G1"},
	})

	s, info, err := Load(path, "NoSuchSheet")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !info.Fallback {
		t.Error("expected fallback to the first sheet")
	}
	if info.Resolved != "Master" {
		t.Errorf("expected resolved sheet Master, got %q", info.Resolved)
	}
	if len(s.Rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(s.Rows))
	}
}

func TestLoad_RequestedSheetByName(t *testing.T) {
	path := writeWorkbook(t, "Master", [][]interface{}{
		{"TORICO"},
		{"G1"},
	})

	_, info, err := Load(path, "Master")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if info.Fallback {
		t.Error("unexpected fallback when the requested sheet exists")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "nope.xlsx"), "")
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !errors.Is(err, ErrOpenFailed) {
		t.Errorf("expected ErrOpenFailed, got %v", err)
	}
}

func TestRow_ValueAbsentColumn(t *testing.T) {
	r := Row{Number: 2, Cells: map[string]cell.Value{"A": cell.Text("x")}}
	if got := r.Value("B"); !got.IsMissing() {
		t.Errorf("expected missing for an absent column, got %s", got.Kind.Name())
	}
}

func TestSave_ReplacesExistingSheet(t *testing.T) {
	path := writeWorkbook(t, "Sheet1", [][]interface{}{
		{"TORICO", "TO"},
		{"G1", "a@x.com"},
		{"G2", "b@x.com"},
	})

	s, _, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if err := Save(path, "Filtered", s); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	// Saving again must replace, not duplicate or append.
	s.Rows = s.Rows[:1]
	if err := Save(path, "Filtered", s); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	out, _, err := Load(path, "Filtered")
	if err != nil {
		t.Fatalf("reloading failed: %v", err)
	}
	if out.Name != "Filtered" {
		t.Errorf("expected sheet Filtered, got %q", out.Name)
	}
	if len(out.Rows) != 1 {
		t.Fatalf("expected 1 row after replacement, got %d", len(out.Rows))
	}
	if got := out.Rows[0].Value("TO").String(); got != "a@x.com" {
		t.Errorf("expected a@x.com, got %q", got)
	}
}
