// Package format holds the form-field formatting helpers used by the CARF
// handlers and validation.
package format

import (
	"strings"

	"github.com/shopspring/decimal"
)

// TIN formats a taxpayer identification number as "123-456-789-012".
// Non-digits are stripped first; output is capped at 15 characters
// including dashes.
func TIN(value string) string {
	var digits strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}

	d := digits.String()
	if d == "" {
		return ""
	}

	var out strings.Builder
	for i, r := range d {
		if i > 0 && i%3 == 0 {
			out.WriteByte('-')
		}
		out.WriteRune(r)
	}

	s := out.String()
	if len(s) > 15 {
		s = s[:15]
	}
	return s
}

// NumberWithCommas renders a numeric string with thousands separators.
// Invalid input yields an empty string.
func NumberWithCommas(value string) string {
	cleaned := strings.ReplaceAll(value, ",", "")
	if cleaned == "" {
		return ""
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return ""
	}

	intPart := d.Truncate(0).String()
	frac := ""
	if !d.Equal(d.Truncate(0)) {
		s := d.String()
		if idx := strings.IndexByte(s, '.'); idx >= 0 {
			frac = s[idx:]
		}
	}

	neg := strings.HasPrefix(intPart, "-")
	intPart = strings.TrimPrefix(intPart, "-")

	var out strings.Builder
	n := len(intPart)
	for i, r := range intPart {
		if i > 0 && (n-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}

	result := out.String() + frac
	if neg {
		result = "-" + result
	}
	return result
}

// ParseNumber strips separators and parses value as a decimal. Invalid input
// yields zero, matching the form's lenient number handling.
func ParseNumber(value string) decimal.Decimal {
	cleaned := strings.ReplaceAll(value, ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}
