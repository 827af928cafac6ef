package fwparse

import (
	"strings"
	"time"

	"github.com/cobolimport/flatfileimport/layout"
)

func isAllSpaces(s string) bool {
	for _, c := range s {
		if c != ' ' {
			return false
		}
	}
	return true
}

func isAllZeros(s string) bool {
	sawZero := false
	for _, c := range s {
		switch c {
		case ' ':
			return false
		case '0':
			sawZero = true
		case '.':
		default:
			return false
		}
	}
	return sawZero
}

func collapseSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

func applyTrim(s string, mode layout.TrimMode) string {
	switch mode {
	case layout.TrimLeft:
		return strings.TrimLeft(s, " ")
	case layout.TrimRight:
		return strings.TrimRight(s, " ")
	case layout.TrimNone:
		return s
	case layout.TrimBoth:
		return strings.TrimSpace(s)
	default:
		return strings.TrimSpace(s)
	}
}

func applyCase(s string, mode layout.CaseMode) string {
	switch mode {
	case layout.CaseUpper:
		return strings.ToUpper(s)
	case layout.CaseLower:
		return strings.ToLower(s)
	case layout.CaseNone:
		return s
	default:
		return s
	}
}

// goDateFormats are the named Go reference-time layouts fallbackParseDate
// tries, in order, when none of a field's configured formats match. This
// is the "permissive locale-invariant parse" spec.md 4.4 calls for.
var goDateFormats = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"01/02/2006",
	"20060102",
}

// tryParseExactDate tries each configured format in order and returns the
// first successful match. formats use Go's reference-time layout syntax
// (e.g. "20060102" for yyyyMMdd).
func tryParseExactDate(s string, formats []string) (time.Time, bool) {
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func fallbackParseDate(s string) (time.Time, bool) {
	for _, f := range goDateFormats {
		if t, err := time.Parse(f, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
