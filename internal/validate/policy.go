package validate

import (
	"fmt"

	"github.com/example/mailsheet/internal/sheet"
)

// EmailPolicy holds the recipient-address rules.
type EmailPolicy struct {
	// KeyColumn groups rows for the group-presence rule.
	KeyColumn string
	// Recipients are the columns carrying delimited address lists, in
	// order. The first entry is the primary recipient column used by the
	// group rule.
	Recipients []string
	// MaxPerCell is the largest allowed address count in one cell.
	MaxPerCell int
}

// Check applies two independent sub-checks over the filtered sheet and
// returns their combined violations:
//
//  1. Count & format: per recipient cell, more than MaxPerCell parsed
//     addresses is a count violation, and each syntactically invalid
//     address is a format violation. Neither short-circuits the other,
//     even for the same cell.
//  2. Group presence: rows grouped by key-column value must contain at
//     least one primary-recipient cell that parses to at least one valid
//     address.
//
// All three violation classes are fully collected before the status
// decision.
func (p EmailPolicy) Check(s *sheet.Sheet) (Status, []Violation) {
	var violations []Violation

	for _, col := range p.Recipients {
		if !s.HasColumn(col) {
			continue
		}
		for _, row := range s.Rows {
			v := row.Value(col)
			if v.IsMissing() {
				continue
			}
			addrs := SplitAddresses(v.String())

			if len(addrs) > p.MaxPerCell {
				violations = append(violations, Violation{
					Kind:      KindEmailCount,
					Row:       row.Number,
					Column:    col,
					Count:     len(addrs),
					Addresses: addrs,
					Message: fmt.Sprintf("%d addresses exceeds the limit of %d",
						len(addrs), p.MaxPerCell),
				})
			}

			for _, addr := range addrs {
				if !ValidAddress(addr) {
					violations = append(violations, Violation{
						Kind:    KindEmailFormat,
						Row:     row.Number,
						Column:  col,
						Message: fmt.Sprintf("malformed address %q", addr),
					})
				}
			}
		}
	}

	violations = append(violations, p.checkGroups(s)...)

	return statusFor(violations), violations
}

// emailGroup accumulates one key-value bucket while iterating in order.
type emailGroup struct {
	key    string
	rows   []int
	values []string
}

// checkGroups verifies that every key-column group has at least one
// primary-recipient value containing a valid address.
func (p EmailPolicy) checkGroups(s *sheet.Sheet) []Violation {
	if len(p.Recipients) == 0 {
		return nil
	}
	primary := p.Recipients[0]

	var order []string
	groups := make(map[string]*emailGroup)

	for _, row := range s.Rows {
		keyVal := row.Value(p.KeyColumn)
		if keyVal.IsMissing() {
			// Already excluded by the filter; skip defensively.
			continue
		}
		key := keyVal.String()

		g, ok := groups[key]
		if !ok {
			g = &emailGroup{key: key}
			groups[key] = g
			order = append(order, key)
		}
		g.rows = append(g.rows, row.Number)

		if v := row.Value(primary); !v.IsMissing() {
			g.values = append(g.values, v.String())
		}
	}

	var violations []Violation
	for _, key := range order {
		g := groups[key]
		if groupHasValidAddress(g.values) {
			continue
		}
		violations = append(violations, Violation{
			Kind:      KindEmailGroup,
			Column:    primary,
			GroupKey:  g.key,
			GroupRows: g.rows,
			Message: fmt.Sprintf("no valid %s address in any of rows %v",
				primary, g.rows),
		})
	}
	return violations
}

func groupHasValidAddress(values []string) bool {
	for _, raw := range values {
		for _, addr := range SplitAddresses(raw) {
			if ValidAddress(addr) {
				return true
			}
		}
	}
	return false
}
