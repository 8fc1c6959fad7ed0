// Package invoicelib provides a public API for building invoices and
// rendering them to PDF.
//
// Example usage:
//
//	inv := invoicelib.NewInvoice(invoicelib.Client{Name: "Acme Corp"})
//	inv.AddItem(invoicelib.NewLineItem("Widget", qty, price, nil, nil))
//	filename, err := invoicelib.Generate(inv, ".", invoicelib.Options{Currency: "USD"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(filename)
package invoicelib

import (
	"github.com/shopspring/decimal"

	"github.com/shivohini/invoicegen/internal/currency"
	"github.com/shivohini/invoicegen/internal/model"
	"github.com/shivohini/invoicegen/internal/render"
)

// Re-export core types for public API
type (
	Invoice      = model.Invoice
	Client       = model.Client
	LineItem     = model.LineItem
	DiscountType = model.DiscountType
	Renderer     = render.Renderer
	Options      = render.Options
	Style        = render.Style
)

// Re-export discount types
const (
	DiscountFlat       = model.DiscountFlat
	DiscountPercentage = model.DiscountPercentage
)

// Re-export error types
type (
	ValidationError = model.ValidationError
	RenderError     = model.RenderError
	IOError         = model.IOError
)

// NewInvoice constructs an invoice for a client with a generated
// invoice number.
func NewInvoice(client Client) *Invoice {
	return model.New(client)
}

// NewLineItem builds a line item with padded charge sequences.
func NewLineItem(name string, quantity, unitPrice decimal.Decimal, chargeTypes []string, chargeAmounts []decimal.Decimal) LineItem {
	return model.NewLineItem(name, quantity, unitPrice, chargeTypes, chargeAmounts)
}

// NewRenderer creates a PDF renderer writing into outDir.
func NewRenderer(outDir string, opts ...render.RendererOption) *Renderer {
	return render.NewRenderer(outDir, opts...)
}

// DefaultStyle returns the stock layout configuration.
func DefaultStyle() Style {
	return render.DefaultStyle()
}

// Generate renders inv into outDir with default styling and returns the
// output filename.
func Generate(inv *Invoice, outDir string, opts Options) (string, error) {
	return render.NewRenderer(outDir).Render(inv, opts)
}

// FormatCurrency formats a monetary amount for the given currency code.
func FormatCurrency(amount decimal.Decimal, code string) string {
	return currency.Format(amount, code)
}
