package validate

import (
	"fmt"
	"strings"

	"github.com/example/mailsheet/internal/sheet"
)

// CheckPresence flags rows with missing or blank values in required
// columns. Columns in exempt may legitimately be empty (CC/BCC); columns
// in skip are validated elsewhere (TO belongs to the email policy check).
//
// Every violation is collected before the status decision; a stage never
// stops at the first blank cell.
func CheckPresence(s *sheet.Sheet, exempt, skip map[string]bool) (Status, []Violation) {
	var violations []Violation

	for _, col := range s.Columns {
		if col == "" || exempt[col] || skip[col] {
			continue
		}
		for _, row := range s.Rows {
			v := row.Value(col)
			if v.IsMissing() || strings.TrimSpace(v.String()) == "" {
				violations = append(violations, Violation{
					Kind:    KindEmptyCell,
					Row:     row.Number,
					Column:  col,
					Message: fmt.Sprintf("required field %q is empty", col),
				})
			}
		}
	}

	return statusFor(violations), violations
}
