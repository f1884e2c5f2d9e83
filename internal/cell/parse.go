package cell

// parse.go assigns type tags to raw cell strings.
//
// Spreadsheet readers hand back strings, and user-entered data is messy:
//   - Currency symbols and thousand separators in numbers
//   - Accounting negatives "(123.45)"
//   - A zoo of date formats, including 2-digit years
//
// Parse tries the narrowest interpretation first (integer, then float,
// then timestamp) and falls back to text. Empty or whitespace-only input
// is Missing.

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// integerRegex matches plain integers with an optional sign.
var integerRegex = regexp.MustCompile(`^[+-]?\d+$`)

// numericRegex validates that a string is a valid numeric format after cleanup.
// Matches integers, decimals, and scientific notation.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// TwoDigitYearPivot defines how 2-digit years are interpreted.
// Years that would result in dates more than this many years in the future
// are assumed to be in the previous century.
var TwoDigitYearPivot = 20

// Date layouts split by year format for proper 2-digit year handling
var (
	twoDigitYearLayouts = []string{
		"1/2/06", "01/02/06", "1-2-06", "1.2.06", "01.02.06",
	}
	fourDigitYearLayouts = []string{
		"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006", "1.2.2006", "01.02.2006",
		"2006-01-02", "2006/01/02", "2006.01.02",
		"Jan 2, 2006", "2 Jan 2006",
		"20060102",
	}
)

// Parse converts a raw cell string into a tagged Value.
func Parse(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Missing()
	}

	if integerRegex.MatchString(s) {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Integer(i)
		}
		// Overflows int64; still a number.
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return Float(f)
		}
	}

	if f, ok := parseNumeric(s); ok {
		return Float(f)
	}

	if t, ok := parseDate(s); ok {
		return Timestamp(t)
	}

	return Text(s)
}

// parseNumeric strips currency artifacts and parses the remainder as a float.
// Handles currency symbols, thousands separators, and accounting format
// (parentheses for negative).
func parseNumeric(s string) (float64, bool) {
	// Detect negative accounting format "(123.45)"
	isNegative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		isNegative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}

	// Remove common currency symbols and thousands separators
	s = strings.ReplaceAll(s, "$", "")
	s = strings.ReplaceAll(s, "¥", "") // Yen
	s = strings.ReplaceAll(s, "€", "") // Euro
	s = strings.ReplaceAll(s, "£", "") // Pound
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimSpace(s)

	if isNegative {
		s = "-" + s
	}

	if !numericRegex.MatchString(s) {
		return 0, false
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// parseDate tries the known date layouts.
// 4-digit year layouts are tried first (unambiguous), then 2-digit year
// layouts with pivot adjustment.
func parseDate(s string) (time.Time, bool) {
	for _, layout := range fourDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, true
		}
	}

	currentYear := time.Now().Year()
	pivotYear := currentYear + TwoDigitYearPivot

	for _, layout := range twoDigitYearLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			if t.Year() > pivotYear {
				t = t.AddDate(-100, 0, 0)
			}
			return t, true
		}
	}

	return time.Time{}, false
}
