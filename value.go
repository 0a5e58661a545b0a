package xbrl

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// dateLayouts lists the layouts tried, in order, when parsing a context or
// filename date. Companies House contexts are almost always plain ISO
// 8601; the extra layouts are a defensive fallback for the handful of
// older filings that don't quite conform.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"02/01/2006",
}

// preParse applies the pre-parse gate shared by every Value Parser:
// nil, empty-after-trim, or the single character "-" become null without
// invoking the parser.
func preParse(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || trimmed == "-" {
		return "", false
	}
	return trimmed, true
}

// parseString implements the String value parser: newlines become
// a single space, double quotes are deleted.
func parseString(text string, _ map[string]string) (string, bool) {
	trimmed, ok := preParse(text)
	if !ok {
		return "", false
	}
	s := strings.ReplaceAll(trimmed, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	s = strings.ReplaceAll(s, "\"", "")
	return s, true
}

// parseDecimal implements the Decimal value parser: sign and scale
// attributes, comma-stripped arbitrary-precision decimal text.
func parseDecimal(text string, attrs map[string]string) (decimal.Decimal, bool) {
	trimmed, ok := preParse(text)
	if !ok {
		return decimal.Decimal{}, false
	}

	cleaned := strings.ReplaceAll(trimmed, ",", "")
	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}

	if attrs["sign"] == "-" {
		value = value.Neg()
	}

	scale := 0
	if s := attrs["scale"]; s != "" {
		if parsed, err := strconv.Atoi(s); err == nil {
			scale = parsed
		}
	}
	if scale != 0 {
		value = value.Shift(int32(scale))
	}

	return value, true
}

// parseDecimalWithColon implements the DecimalWithColon value parser:
// strip everything up to and including the rightmost ": ", then apply
// Decimal to the remainder.
func parseDecimalWithColon(text string, attrs map[string]string) (decimal.Decimal, bool) {
	trimmed, ok := preParse(text)
	if !ok {
		return decimal.Decimal{}, false
	}
	if idx := strings.LastIndex(trimmed, ": "); idx >= 0 {
		trimmed = trimmed[idx+len(": "):]
	}
	return parseDecimal(trimmed, attrs)
}

// parseDate implements the Date value parser: a permissive parser
// accepting ISO 8601 and a couple of common variants, returning the date
// portion only.
func parseDate(text string, _ map[string]string) (time.Time, bool) {
	trimmed, ok := preParse(text)
	if !ok {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// parseBool implements the Bool value parser.
func parseBool(text string, _ map[string]string) (bool, bool) {
	trimmed, ok := preParse(text)
	if !ok {
		return false, false
	}
	switch trimmed {
	case "true":
		return true, true
	case "false":
		return false, true
	default:
		return false, false
	}
}

// parseReversedBool implements the ReversedBool value parser: same two
// literals as Bool, with the result inverted.
func parseReversedBool(text string, _ map[string]string) (bool, bool) {
	trimmed, ok := preParse(text)
	if !ok {
		return false, false
	}
	switch trimmed {
	case "true":
		return false, true
	case "false":
		return true, true
	default:
		return false, false
	}
}

// parseYYYYMMDD parses the 8-digit date embedded in filenames.
func parseYYYYMMDD(text string) (time.Time, bool) {
	t, err := time.Parse("20060102", text)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
