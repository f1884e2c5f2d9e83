package validate

import "fmt"

// ViolationKind classifies a single business-rule violation.
type ViolationKind string

const (
	KindMissingColumn ViolationKind = "missing_column"
	KindEmptyCell     ViolationKind = "empty_cell"
	KindWrongType     ViolationKind = "wrong_type"
	KindEmailCount    ViolationKind = "email_count"
	KindEmailFormat   ViolationKind = "email_format"
	KindEmailGroup    ViolationKind = "email_group"
)

// Violation is one business-rule violation found by a checker.
// Row is the 1-based display row number; it is zero for violations that
// are not scoped to a single row (missing column, group rule).
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Row     int           `json:"row,omitempty"`
	Column  string        `json:"column,omitempty"`
	Message string        `json:"message"`

	// Count and Addresses are set for email_count violations.
	Count     int      `json:"count,omitempty"`
	Addresses []string `json:"addresses,omitempty"`

	// GroupKey and GroupRows are set for email_group violations.
	GroupKey  string `json:"groupKey,omitempty"`
	GroupRows []int  `json:"groupRows,omitempty"`
}

func (v Violation) Error() string {
	switch {
	case v.Kind == KindEmailGroup:
		return fmt.Sprintf("group %q: %s", v.GroupKey, v.Message)
	case v.Row > 0 && v.Column != "":
		return fmt.Sprintf("row %d, column %q: %s", v.Row, v.Column, v.Message)
	case v.Column != "":
		return fmt.Sprintf("column %q: %s", v.Column, v.Message)
	default:
		return v.Message
	}
}

// statusFor derives a stage status from its collected violations.
func statusFor(violations []Violation) Status {
	if len(violations) > 0 {
		return StatusUserError
	}
	return StatusNormal
}
