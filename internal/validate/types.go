package validate

import (
	"fmt"
	"strings"

	"github.com/example/mailsheet/internal/cell"
	"github.com/example/mailsheet/internal/sheet"
)

// ColumnRule is the allowed-kind set for one governed column.
type ColumnRule struct {
	Kinds []cell.Kind
}

// Rule builds a ColumnRule from allowed kinds.
func Rule(kinds ...cell.Kind) ColumnRule {
	return ColumnRule{Kinds: kinds}
}

// Allows reports whether a cell of kind k satisfies the rule. Integer and
// float are normalized to a single numeric category: an integer cell
// satisfies a rule that allows float, since a whole number in a numeric
// column is just a number without a fractional part.
func (r ColumnRule) Allows(k cell.Kind) bool {
	for _, allowed := range r.Kinds {
		if k == allowed {
			return true
		}
		if k == cell.KindInteger && allowed == cell.KindFloat {
			return true
		}
	}
	return false
}

// Expected returns the human-readable list of allowed type names.
func (r ColumnRule) Expected() string {
	names := make([]string, len(r.Kinds))
	for i, k := range r.Kinds {
		names[i] = k.Name()
	}
	return strings.Join(names, " or ")
}

// CheckTypes validates each cell of each governed column against its rule.
//
// Missing values always pass: presence is CheckPresence's job, and
// type-checking an absent cell would double-report every blank. Columns
// named in rules but absent from the sheet are skipped, not errors.
// All violations are collected before the status decision.
func CheckTypes(s *sheet.Sheet, rules map[string]ColumnRule) (Status, []Violation) {
	var violations []Violation

	for _, col := range s.Columns {
		rule, governed := rules[col]
		if !governed {
			continue
		}
		for _, row := range s.Rows {
			v := row.Value(col)
			if v.IsMissing() {
				continue
			}
			if !rule.Allows(v.Kind) {
				violations = append(violations, Violation{
					Kind:   KindWrongType,
					Row:    row.Number,
					Column: col,
					Message: fmt.Sprintf("expected %s, got %s %q",
						rule.Expected(), v.Kind.Name(), v.String()),
				})
			}
		}
	}

	return statusFor(violations), violations
}
