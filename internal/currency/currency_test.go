package currency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/shivohini/invoicegen/internal/currency"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		code   string
		want   string
	}{
		{"inr", "1234.5", "INR", "₹1,234.50"},
		{"usd", "1234.5", "USD", "$1,234.50"},
		{"unknown code falls back to dollar", "1234.5", "XYZ", "$1,234.50"},
		{"empty code falls back to dollar", "1234.5", "", "$1,234.50"},
		{"small amount", "7", "USD", "$7.00"},
		{"exactly one thousand", "1000", "USD", "$1,000.00"},
		{"three digits no separator", "999.99", "USD", "$999.99"},
		{"millions", "1234567.891", "USD", "$1,234,567.89"},
		{"zero", "0", "USD", "$0.00"},
		{"negative", "-1234.5", "USD", "$-1,234.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, currency.Format(dec(tt.amount), tt.code))
		})
	}
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, "₹", currency.Glyph("INR"))
	assert.Equal(t, "$", currency.Glyph("USD"))
	assert.Equal(t, "$", currency.Glyph("EUR"))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "10.00%", currency.FormatPercent(dec("0.1")))
	assert.Equal(t, "0.00%", currency.FormatPercent(dec("0")))
	assert.Equal(t, "7.25%", currency.FormatPercent(dec("0.0725")))
}
