package validate

import (
	"fmt"

	"github.com/example/mailsheet/internal/sheet"
)

// FilterByKey selects the rows whose key column holds a non-missing value.
//
// A sheet without the key column is a user error (violation kind
// missing_column) and yields no filtered sheet. An empty result set is a
// warning: the run can continue but has nothing to validate. Row order and
// display row numbers are preserved, so filtering is idempotent.
func FilterByKey(s *sheet.Sheet, keyColumn string) (*sheet.Sheet, Status, []Violation) {
	if !s.HasColumn(keyColumn) {
		v := Violation{
			Kind:    KindMissingColumn,
			Column:  keyColumn,
			Message: fmt.Sprintf("missing required column %q", keyColumn),
		}
		return nil, StatusUserError, []Violation{v}
	}

	out := &sheet.Sheet{Name: s.Name, Columns: s.Columns}
	for _, row := range s.Rows {
		if row.Value(keyColumn).IsMissing() {
			continue
		}
		out.Rows = append(out.Rows, row)
	}

	if len(out.Rows) == 0 {
		return out, StatusWarning, nil
	}
	return out, StatusNormal, nil
}
