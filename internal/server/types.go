package server

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/shivohini/invoicegen/internal/model"
)

// ClientPayload is the client block of a create-invoice request.
// Contact may arrive as a string or a number; it is kept loose and
// stringified at the boundary.
type ClientPayload struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Phone   any    `json:"phone,omitempty"`
}

// ItemPayload is one line item of a create-invoice request. The charge
// sequences may be of unequal length; the model pads them.
type ItemPayload struct {
	Name          string            `json:"name"`
	Quantity      decimal.Decimal   `json:"quantity"`
	Price         decimal.Decimal   `json:"price"`
	ChargeTypes   []string          `json:"charge_types,omitempty"`
	ChargeAmounts []decimal.Decimal `json:"charge_amounts,omitempty"`
}

// CreateInvoiceRequest is the JSON payload accepted by /create_invoice,
// either as the raw body or as the "data" form field.
type CreateInvoiceRequest struct {
	Client       ClientPayload    `json:"client"`
	Items        []ItemPayload    `json:"items"`
	TaxRate      *decimal.Decimal `json:"tax_rate,omitempty"`
	Discount     *decimal.Decimal `json:"discount,omitempty"`
	DiscountType string           `json:"discount_type,omitempty"`
	Currency     string           `json:"currency,omitempty"`
	Notes        []string         `json:"notes,omitempty"`
	Terms        []string         `json:"terms,omitempty"`
}

// DecodePayload unmarshals a create-invoice payload and checks the
// required fields. Quantities, prices and rates beyond presence are not
// validated; the arithmetic is defined for any number.
func DecodePayload(data []byte) (*CreateInvoiceRequest, error) {
	var req CreateInvoiceRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, model.NewValidationError("payload", nil, "malformed JSON payload")
	}

	if req.Client.Name == "" {
		return nil, model.NewValidationError("client.name", nil, "is required")
	}
	if req.Client.Email == "" {
		return nil, model.NewValidationError("client.email", nil, "is required")
	}
	if req.Client.Address == "" {
		return nil, model.NewValidationError("client.address", nil, "is required")
	}
	for i, item := range req.Items {
		if item.Name == "" {
			return nil, model.NewValidationError("items.name", i, "is required")
		}
	}

	return &req, nil
}

// Invoice maps the payload onto a fresh invoice model.
func (req *CreateInvoiceRequest) Invoice() *model.Invoice {
	inv := model.New(model.Client{
		Name:    req.Client.Name,
		Email:   req.Client.Email,
		Address: req.Client.Address,
		Contact: contactString(req.Client.Phone),
	})

	for _, item := range req.Items {
		inv.AddItem(model.NewLineItem(item.Name, item.Quantity, item.Price,
			item.ChargeTypes, item.ChargeAmounts))
	}

	if req.TaxRate != nil {
		inv.SetTaxRate(*req.TaxRate)
	}
	if req.Discount != nil {
		inv.SetDiscount(*req.Discount, model.DiscountTypeFromString(req.DiscountType))
	}

	return inv
}

// CurrencyCode returns the requested currency, defaulting to USD.
func (req *CreateInvoiceRequest) CurrencyCode() string {
	if req.Currency == "" {
		return "USD"
	}
	return req.Currency
}

// CreateInvoiceResponse is returned by /create_invoice.
type CreateInvoiceResponse struct {
	Success       bool   `json:"success"`
	InvoiceNumber string `json:"invoice_number,omitempty"`
	PDFURL        string `json:"pdf_url,omitempty"`
	Message       string `json:"message,omitempty"`
}

// contactString renders an optional string-or-number contact field.
func contactString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return decimal.NewFromFloat(c).String()
	default:
		return fmt.Sprint(c)
	}
}
