package validate

import "github.com/example/mailsheet/internal/cell"

// rules.go defines the default business column set for campaign sheets.
// The key column selects and groups rows; the recipient columns carry
// comma-delimited address lists; the remaining columns are governed by
// per-column type rules.

const (
	// DefaultKeyColumn is the designator column. Some sheet templates in
	// the wild spell it TOROCO; the spelling is configuration, not a rule.
	DefaultKeyColumn = "TORICO"

	// DefaultMaxRecipients is the largest allowed address count per cell.
	// The rule is strictly greater-than: six or more addresses fail.
	DefaultMaxRecipients = 5
)

// DefaultRecipientColumns lists the address-list columns in order. The
// first entry is the primary recipient column used by the group rule.
func DefaultRecipientColumns() []string {
	return []string{"TO", "CC", "BCC"}
}

// DefaultExemptColumns are recipient-adjacent columns that may
// legitimately be blank and are excluded from the presence check.
func DefaultExemptColumns() map[string]bool {
	return map[string]bool{"CC": true, "BCC": true}
}

// DefaultSkipColumns are columns validated by the email policy check
// rather than the presence check.
func DefaultSkipColumns() map[string]bool {
	return map[string]bool{"TO": true}
}

// DefaultColumnRules maps each governed business column to its allowed
// type set. Columns absent from a given sheet are simply not checked.
func DefaultColumnRules(keyColumn string) map[string]ColumnRule {
	return map[string]ColumnRule{
		keyColumn: Rule(cell.KindText, cell.KindInteger),
		"会社名":     Rule(cell.KindText),
		"販売価格":    Rule(cell.KindInteger, cell.KindFloat),
		"仕入金額":    Rule(cell.KindInteger, cell.KindFloat),
		"エリア":     Rule(cell.KindText),
		"施設ID":    Rule(cell.KindText, cell.KindInteger),
		"施設名":     Rule(cell.KindText),
		"所在地":     Rule(cell.KindText),
		"収容人数":    Rule(cell.KindInteger),
		"受付日":     Rule(cell.KindTimestamp),
	}
}
