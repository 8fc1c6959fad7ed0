// Package model holds the invoice data model and the pricing arithmetic
// (subtotal, discount, tax). Totals are always derived from current
// state; nothing here caches a computed amount.
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DiscountType selects how a discount is applied to the subtotal.
type DiscountType string

const (
	// DiscountFlat subtracts a fixed amount from the subtotal.
	DiscountFlat DiscountType = "flat"
	// DiscountPercentage multiplies the subtotal by (1 - amount).
	DiscountPercentage DiscountType = "percentage"
)

// DiscountTypeFromString maps a raw string to a DiscountType. Anything
// other than "percentage" falls back to a flat discount.
func DiscountTypeFromString(s string) DiscountType {
	if strings.EqualFold(strings.TrimSpace(s), string(DiscountPercentage)) {
		return DiscountPercentage
	}
	return DiscountFlat
}

// Client identifies the party being billed.
type Client struct {
	Name    string
	Email   string
	Address string
	Contact string
}

// LineItem is one billable row: quantity, unit price, and optional
// itemized extra charges described by parallel label/amount sequences.
type LineItem struct {
	Name          string
	Quantity      decimal.Decimal
	UnitPrice     decimal.Decimal
	ChargeTypes   []string
	ChargeAmounts []decimal.Decimal
}

// NewLineItem builds a line item with the charge sequences padded to
// equal length: missing labels become "", missing amounts become zero.
func NewLineItem(name string, quantity, unitPrice decimal.Decimal, chargeTypes []string, chargeAmounts []decimal.Decimal) LineItem {
	item := LineItem{
		Name:          name,
		Quantity:      quantity,
		UnitPrice:     unitPrice,
		ChargeTypes:   chargeTypes,
		ChargeAmounts: chargeAmounts,
	}
	item.PadCharges()
	return item
}

// PadCharges extends the shorter of the two charge sequences so both
// have the same length. Safe to call more than once.
func (li *LineItem) PadCharges() {
	for len(li.ChargeTypes) < len(li.ChargeAmounts) {
		li.ChargeTypes = append(li.ChargeTypes, "")
	}
	for len(li.ChargeAmounts) < len(li.ChargeTypes) {
		li.ChargeAmounts = append(li.ChargeAmounts, decimal.Zero)
	}
}

// Total returns quantity * unit price plus every extra charge.
func (li LineItem) Total() decimal.Decimal {
	total := li.Quantity.Mul(li.UnitPrice)
	for _, amt := range li.ChargeAmounts {
		total = total.Add(amt)
	}
	return total
}

// Invoice is built once per request and discarded after rendering.
// Items keep insertion order; that order is the display order.
type Invoice struct {
	Client         Client
	Items          []LineItem
	CreatedAt      time.Time
	Number         string
	TaxRate        decimal.Decimal
	DiscountAmount decimal.Decimal
	DiscountType   DiscountType
}

// New constructs an invoice for a client with a freshly generated
// invoice number and the creation time set to now.
func New(client Client) *Invoice {
	return &Invoice{
		Client:       client,
		CreatedAt:    time.Now(),
		Number:       NewNumber(),
		DiscountType: DiscountFlat,
	}
}

// NewNumber generates a display-safe invoice number, e.g. "INV-3F2A9C41".
// Randomness comes from a v4 UUID so numbers stay unique across restarts.
func NewNumber() string {
	return "INV-" + strings.ToUpper(uuid.NewString()[:8])
}

// AddItem appends an item to the invoice. No duplicate detection, no
// limit; the charge sequences are padded on the way in.
func (inv *Invoice) AddItem(item LineItem) {
	item.PadCharges()
	inv.Items = append(inv.Items, item)
}

// SetTaxRate overwrites the tax rate. The rate is a fraction (0.1 for
// 10%); no bounds are enforced.
func (inv *Invoice) SetTaxRate(rate decimal.Decimal) {
	inv.TaxRate = rate
}

// SetDiscount overwrites the discount amount and type.
func (inv *Invoice) SetDiscount(amount decimal.Decimal, typ DiscountType) {
	inv.DiscountAmount = amount
	inv.DiscountType = typ
}

// Subtotal sums the line totals of every item.
func (inv *Invoice) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, item := range inv.Items {
		subtotal = subtotal.Add(item.Total())
	}
	return subtotal
}

// Total applies discount then tax to the subtotal.
func (inv *Invoice) Total() decimal.Decimal {
	discounted := ApplyDiscount(inv.Subtotal(), inv.DiscountAmount, inv.DiscountType)
	return ApplyTax(discounted, inv.TaxRate)
}

var one = decimal.NewFromInt(1)

// ApplyDiscount reduces a subtotal by a flat amount or a percentage
// fraction. The result is not clamped; a flat discount larger than the
// subtotal goes negative.
func ApplyDiscount(subtotal, amount decimal.Decimal, typ DiscountType) decimal.Decimal {
	if typ == DiscountPercentage {
		return subtotal.Mul(one.Sub(amount))
	}
	return subtotal.Sub(amount)
}

// ApplyTax returns amount * (1 + rate).
func ApplyTax(amount, rate decimal.Decimal) decimal.Decimal {
	return amount.Mul(one.Add(rate))
}
