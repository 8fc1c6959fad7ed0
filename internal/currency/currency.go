// Package currency formats monetary amounts for display.
package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Recognized currency codes.
const (
	USD = "USD"
	INR = "INR"
)

// Glyph returns the prefix symbol for a currency code. Every code other
// than INR uses the dollar glyph; this fallback is deliberate, not an
// error.
func Glyph(code string) string {
	if code == INR {
		return "₹"
	}
	return "$"
}

// Format renders an amount with the currency glyph, thousands
// separators, and exactly two decimal places: Format(1234.5, "INR")
// yields "₹1,234.50".
func Format(amount decimal.Decimal, code string) string {
	return Glyph(code) + group(amount.StringFixed(2))
}

// FormatPercent renders a fractional rate as a percentage with two
// decimal places: 0.1 becomes "10.00%".
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

// group inserts comma separators into the integer part of a fixed-point
// decimal string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + "." + fracPart
}
