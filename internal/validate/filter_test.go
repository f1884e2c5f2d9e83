package validate

import (
	"testing"

	"github.com/example/mailsheet/internal/cell"
	"github.com/example/mailsheet/internal/sheet"
)

// mkSheet builds a sheet for checker tests. Rows get display numbers
// starting at 2, matching how the loader numbers them.
func mkSheet(columns []string, rows ...map[string]cell.Value) *sheet.Sheet {
	s := &sheet.Sheet{Name: "Sheet1", Columns: columns}
	for i, cells := range rows {
		s.Rows = append(s.Rows, sheet.Row{Number: i + 2, Cells: cells})
	}
	return s
}

func TestFilterByKey_KeepsNonMissing(t *testing.T) {
	s := mkSheet([]string{"TORICO", "会社名"},
		map[string]cell.Value{"TORICO": cell.Text("A"), "会社名": cell.Text("x")},
		map[string]cell.Value{"TORICO": cell.Missing(), "会社名": cell.Text("y")},
		map[string]cell.Value{"TORICO": cell.Text("B"), "会社名": cell.Text("z")},
	)

	out, status, violations := FilterByKey(s, "TORICO")
	if status != StatusNormal {
		t.Fatalf("expected NORMAL, got %s", status)
	}
	if len(violations) != 0 {
		t.Fatalf("expected no violations, got %d", len(violations))
	}
	if len(out.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(out.Rows))
	}
	if out.Rows[0].Number != 2 || out.Rows[1].Number != 4 {
		t.Errorf("expected rows 2 and 4, got %d and %d", out.Rows[0].Number, out.Rows[1].Number)
	}
}

func TestFilterByKey_Idempotent(t *testing.T) {
	s := mkSheet([]string{"TORICO"},
		map[string]cell.Value{"TORICO": cell.Text("A")},
		map[string]cell.Value{"TORICO": cell.Missing()},
		map[string]cell.Value{"TORICO": cell.Integer(7)},
	)

	once, _, _ := FilterByKey(s, "TORICO")
	twice, status, _ := FilterByKey(once, "TORICO")
	if status != StatusNormal {
		t.Fatalf("expected NORMAL, got %s", status)
	}
	if len(twice.Rows) != len(once.Rows) {
		t.Fatalf("filtering a filtered sheet changed it: %d vs %d rows",
			len(twice.Rows), len(once.Rows))
	}
	for i := range once.Rows {
		if twice.Rows[i].Number != once.Rows[i].Number {
			t.Errorf("row %d: number changed %d -> %d", i, once.Rows[i].Number, twice.Rows[i].Number)
		}
	}
}

func TestFilterByKey_MissingColumn(t *testing.T) {
	s := mkSheet([]string{"会社名"},
		map[string]cell.Value{"会社名": cell.Text("x")},
	)

	out, status, violations := FilterByKey(s, "TORICO")
	if status != StatusUserError {
		t.Fatalf("expected USER_ERROR, got %s", status)
	}
	if out != nil {
		t.Errorf("expected no filtered sheet, got %v", out)
	}
	if len(violations) != 1 {
		t.Fatalf("expected 1 violation, got %d", len(violations))
	}
	if violations[0].Kind != KindMissingColumn {
		t.Errorf("expected missing_column, got %s", violations[0].Kind)
	}
	if violations[0].Column != "TORICO" {
		t.Errorf("expected column TORICO, got %q", violations[0].Column)
	}
}

func TestFilterByKey_EmptyResultIsWarning(t *testing.T) {
	s := mkSheet([]string{"TORICO"},
		map[string]cell.Value{"TORICO": cell.Missing()},
		map[string]cell.Value{"TORICO": cell.Missing()},
	)

	out, status, violations := FilterByKey(s, "TORICO")
	if status != StatusWarning {
		t.Fatalf("expected WARNING, got %s", status)
	}
	if len(violations) != 0 {
		t.Errorf("expected no violations, got %d", len(violations))
	}
	if len(out.Rows) != 0 {
		t.Errorf("expected empty filtered sheet, got %d rows", len(out.Rows))
	}
}
