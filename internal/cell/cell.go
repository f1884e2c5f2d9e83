// Package cell provides the typed value model for spreadsheet cells.
// Every cell is tagged with its kind exactly once, at load time, so the
// validation layer compares tags instead of sniffing runtime types.
package cell

import (
	"strconv"
	"time"
)

// Kind identifies the data type carried by a Value.
type Kind int

const (
	KindMissing Kind = iota
	KindText
	KindInteger
	KindFloat
	KindTimestamp
)

// Name returns a human-readable name for the kind, used in type-violation
// messages.
func (k Kind) Name() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindFloat:
		return "float"
	case KindTimestamp:
		return "timestamp"
	default:
		return "value"
	}
}

// Value is a single cell value. Exactly one payload field is meaningful,
// selected by Kind. Values are immutable once constructed.
type Value struct {
	Kind  Kind
	Text  string
	Int   int64
	Float float64
	Time  time.Time
}

// Missing returns the absent-cell value.
func Missing() Value {
	return Value{Kind: KindMissing}
}

// Text returns a text value.
func Text(s string) Value {
	return Value{Kind: KindText, Text: s}
}

// Integer returns an integer value.
func Integer(i int64) Value {
	return Value{Kind: KindInteger, Int: i}
}

// Float returns a floating-point value.
func Float(f float64) Value {
	return Value{Kind: KindFloat, Float: f}
}

// Timestamp returns a timestamp value.
func Timestamp(t time.Time) Value {
	return Value{Kind: KindTimestamp, Time: t}
}

// IsMissing reports whether the value is absent.
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// String renders the value for reports and for the save sink.
// Missing renders as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindInteger:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindTimestamp:
		return v.Time.Format("2006-01-02")
	default:
		return ""
	}
}
