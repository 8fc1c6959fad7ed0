package render

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/shivohini/invoicegen/internal/currency"
	"github.com/shivohini/invoicegen/internal/model"
)

// Issuer identity printed in the Bill From block.
const (
	issuerName    = "Shivohini TechAI"
	issuerContact = "+91 7688929473"
	issuerEmail   = "bhatiagunjan27@gmail.com"
)

const dateLayout = "02-01-2006"

// Options carries per-render presentation inputs. Everything is
// optional; zero values render an invoice with the matching section
// empty or omitted.
type Options struct {
	// Filename overrides the output name; default is
	// "invoice_<number>.pdf".
	Filename string
	// SignaturePath is embedded only if the file exists.
	SignaturePath string
	Notes         []string
	Terms         []string
	// Currency selects the money glyph and formatting; unknown codes
	// fall back to USD formatting.
	Currency string
}

// Renderer writes invoice PDFs into a fixed output directory. Rendering
// is a single-pass stateless transformation; a Renderer is safe for
// concurrent use as long as output filenames are distinct.
type Renderer struct {
	style    Style
	outDir   string
	logoPath string
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithStyle overrides the default layout style.
func WithStyle(s Style) RendererOption {
	return func(r *Renderer) { r.style = s }
}

// WithLogoPath sets the header logo image. The logo is omitted if the
// file does not exist at render time.
func WithLogoPath(path string) RendererOption {
	return func(r *Renderer) { r.logoPath = path }
}

// NewRenderer creates a renderer writing into outDir.
func NewRenderer(outDir string, opts ...RendererOption) *Renderer {
	r := &Renderer{
		style:    DefaultStyle(),
		outDir:   outDir,
		logoPath: "logo.png",
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render writes the invoice PDF and returns the output filename
// (relative to the renderer's output directory). Missing optional
// assets are skipped silently; a present-but-unreadable image is a
// RenderError, a failed write an IOError.
func (r *Renderer) Render(inv *model.Invoice, opts Options) (string, error) {
	filename := opts.Filename
	if filename == "" {
		filename = fmt.Sprintf("invoice_%s.pdf", inv.Number)
	}

	st := r.style
	pdf := gofpdf.New("P", "pt", st.PageSize, "")
	pdf.SetMargins(st.MarginSide, st.MarginTop, st.MarginSide)
	pdf.SetAutoPageBreak(true, st.MarginTop)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	r.drawHeader(pdf, tr, inv)
	r.drawParties(pdf, tr, inv)
	r.drawItems(pdf, tr, inv, opts.Currency)
	r.drawTotals(pdf, tr, inv, opts.Currency)
	if err := r.drawFooter(pdf, tr, opts); err != nil {
		return "", err
	}
	r.drawClosingRule(pdf)

	if err := pdf.Error(); err != nil {
		return "", model.NewRenderError("document", "build failed", err)
	}

	outPath := filepath.Join(r.outDir, filename)
	if err := pdf.OutputFileAndClose(outPath); err != nil {
		return "", model.NewIOError("write", outPath, err)
	}
	return filename, nil
}

// drawHeader paints the blue title band: INVOICE title, number, due and
// invoice dates (currently the same value; there is no due-date input),
// and the logo when present.
func (r *Renderer) drawHeader(pdf *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice) {
	st := r.style
	x, y := st.MarginSide, st.MarginTop

	pdf.SetFillColor(st.Blue.R, st.Blue.G, st.Blue.B)
	pdf.Rect(x, y, st.TableWidth(), st.HeaderHeight, "F")

	pdf.SetFont(st.FontFamily, "B", st.TitleSize)
	pdf.SetTextColor(st.Yellow.R, st.Yellow.G, st.Yellow.B)
	pdf.SetXY(x+st.HeaderPad, y+10)
	pdf.CellFormat(0, st.TitleSize, "INVOICE", "", 1, "L", false, 0, "")

	date := inv.CreatedAt.Format(dateLayout)
	lines := []string{
		"Invoice #: " + inv.Number,
		"Due Date: " + date,
		"Invoice Date: " + date,
	}
	pdf.SetFont(st.FontFamily, "", st.SubheadSize)
	pdf.SetTextColor(st.White.R, st.White.G, st.White.B)
	lineY := y + st.TitleSize + 18
	for _, line := range lines {
		pdf.SetXY(x+st.HeaderPad, lineY)
		pdf.CellFormat(0, st.SubheadSize+2, tr(line), "", 1, "L", false, 0, "")
		lineY += st.SubheadSize + 2
	}

	if _, err := os.Stat(r.logoPath); err == nil {
		logoX := x + st.TableWidth() - st.HeaderPad - st.LogoW
		logoY := y + (st.HeaderHeight-st.LogoH)/2
		pdf.ImageOptions(r.logoPath, logoX, logoY, st.LogoW, st.LogoH, false,
			gofpdf.ImageOptions{ReadDpi: true}, 0, "")
	}

	pdf.SetY(y + st.HeaderHeight + 15)
}

// drawParties writes the Bill To / Bill From columns. Client fields are
// blank-tolerant; the issuer side is fixed.
func (r *Renderer) drawParties(pdf *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice) {
	st := r.style

	clientContact := ""
	if inv.Client.Contact != "" {
		clientContact = "Contact: " + inv.Client.Contact
	}
	clientEmail := ""
	if inv.Client.Email != "" {
		clientEmail = "Email: " + inv.Client.Email
	}

	rows := [][2]string{
		{"Bill To:", "Bill From:"},
		{inv.Client.Name, issuerName},
		{clientContact, "Contact: " + issuerContact},
		{clientEmail, "Email: " + issuerEmail},
		{inv.Client.Address, ""},
	}

	x := st.MarginSide
	for i, row := range rows {
		if i == 0 {
			pdf.SetFont(st.FontFamily, "B", st.BillLabelSize)
		} else {
			pdf.SetFont(st.FontFamily, "", st.BillValueSize)
		}
		pdf.SetTextColor(st.Black.R, st.Black.G, st.Black.B)
		pdf.SetX(x)
		pdf.CellFormat(st.BillColWidth, st.BillRowH, tr(row[0]), "", 0, "L", false, 0, "")
		pdf.SetX(x + st.BillColWidth + st.BillColGap)
		pdf.CellFormat(st.BillColWidth, st.BillRowH, tr(row[1]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(15)
}

// drawItems renders the five-column item table. The table is padded
// with blank rows up to the style minimum so short invoices keep a
// fixed height; rows past the minimum still render and flow onto the
// next page if needed.
func (r *Renderer) drawItems(pdf *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice, code string) {
	st := r.style

	pdf.SetDrawColor(st.Blue.R, st.Blue.G, st.Blue.B)
	pdf.SetLineWidth(0.8)

	pdf.SetFont(st.FontFamily, "B", st.TableHeadSize)
	pdf.SetTextColor(st.Yellow.R, st.Yellow.G, st.Yellow.B)
	pdf.SetFillColor(st.Blue.R, st.Blue.G, st.Blue.B)
	headers := [5]string{"Item Name", "Description", "Price", "Quantity", "Total"}
	pdf.SetX(st.MarginSide)
	for i, h := range headers {
		ln := 0
		if i == len(headers)-1 {
			ln = 1
		}
		pdf.CellFormat(st.ColWidths[i], st.RowHeight, h, "1", ln, "C", true, 0, "")
	}

	pdf.SetFont(st.FontFamily, "", st.TableCellSize)
	pdf.SetTextColor(st.Black.R, st.Black.G, st.Black.B)

	rows := 0
	for _, item := range inv.Items {
		cells := [5]string{
			item.Name,
			itemDescription(item),
			currency.Format(item.UnitPrice, code),
			item.Quantity.String(),
			currency.Format(item.Total(), code),
		}
		r.drawItemRow(pdf, tr, cells)
		rows++
	}
	for rows < st.MinItemRows {
		r.drawItemRow(pdf, tr, [5]string{})
		rows++
	}
	pdf.Ln(10)
}

func (r *Renderer) drawItemRow(pdf *gofpdf.Fpdf, tr func(string) string, cells [5]string) {
	st := r.style
	pdf.SetX(st.MarginSide)
	for i, cell := range cells {
		ln := 0
		if i == len(cells)-1 {
			ln = 1
		}
		pdf.CellFormat(st.ColWidths[i], st.RowHeight, tr(cell), "1", ln, "C", false, 0, "")
	}
}

// itemDescription joins the charge labels for the description column,
// or a placeholder dash when the item has none.
func itemDescription(item model.LineItem) string {
	if len(item.ChargeTypes) == 0 {
		return "-"
	}
	return strings.Join(item.ChargeTypes, ", ")
}

// drawTotals renders the right-aligned summary block: subtotal, tax as
// a percentage, and the highlighted amount due. Totals are recomputed
// here from invoice state, never passed in.
func (r *Renderer) drawTotals(pdf *gofpdf.Fpdf, tr func(string) string, inv *model.Invoice, code string) {
	st := r.style

	subtotal := inv.Subtotal()
	discounted := model.ApplyDiscount(subtotal, inv.DiscountAmount, inv.DiscountType)
	total := model.ApplyTax(discounted, inv.TaxRate)

	x := st.MarginSide + st.TableWidth() - st.TotalsLabelW - st.TotalsValueW

	pdf.SetX(x)
	pdf.SetFont(st.FontFamily, "B", st.BillLabelSize)
	pdf.CellFormat(st.TotalsLabelW, st.RowHeight, "Subtotal:", "1", 0, "R", false, 0, "")
	pdf.SetFont(st.FontFamily, "", st.BillValueSize)
	pdf.CellFormat(st.TotalsValueW, st.RowHeight, tr(currency.Format(subtotal, code)), "1", 1, "R", false, 0, "")

	pdf.SetX(x)
	pdf.SetFont(st.FontFamily, "B", st.BillLabelSize)
	pdf.CellFormat(st.TotalsLabelW, st.RowHeight, "Tax:", "1", 0, "R", false, 0, "")
	pdf.SetFont(st.FontFamily, "", st.BillValueSize)
	pdf.CellFormat(st.TotalsValueW, st.RowHeight, currency.FormatPercent(inv.TaxRate), "1", 1, "R", false, 0, "")

	pdf.SetX(x)
	pdf.SetFont(st.FontFamily, "B", st.AmountDueSize)
	pdf.SetTextColor(st.Yellow.R, st.Yellow.G, st.Yellow.B)
	pdf.SetFillColor(st.Blue.R, st.Blue.G, st.Blue.B)
	pdf.CellFormat(st.TotalsLabelW, st.RowHeight, "Amount Due:", "1", 0, "C", true, 0, "")
	pdf.CellFormat(st.TotalsValueW, st.RowHeight, tr(currency.Format(total, code)), "1", 1, "C", true, 0, "")

	pdf.SetTextColor(st.Black.R, st.Black.G, st.Black.B)
	pdf.Ln(16)
}

// drawFooter writes the notes and terms block on the left and the
// signature area on the right. Empty notes/terms still get their
// section headings; a missing signature file is skipped.
func (r *Renderer) drawFooter(pdf *gofpdf.Fpdf, tr func(string) string, opts Options) error {
	st := r.style
	x := st.MarginSide
	top := pdf.GetY()

	writeSection := func(title string, lines []string) {
		pdf.SetX(x)
		pdf.SetFont(st.FontFamily, "B", st.BillValueSize)
		pdf.CellFormat(st.NotesColWidth, st.FooterLineH, title, "", 1, "L", false, 0, "")
		pdf.SetFont(st.FontFamily, "", st.BillValueSize)
		if len(lines) == 0 {
			lines = []string{""}
		}
		for _, line := range lines {
			pdf.SetX(x)
			pdf.CellFormat(st.NotesColWidth, st.FooterLineH, tr(line), "", 1, "L", false, 0, "")
		}
	}

	writeSection("Notes:", opts.Notes)
	pdf.Ln(st.FooterLineH)
	writeSection("Terms & Conditions:", opts.Terms)
	notesBottom := pdf.GetY()

	sigX := st.MarginSide + st.TableWidth() - st.SignatureW
	sigY := top
	if opts.SignaturePath != "" {
		if _, err := os.Stat(opts.SignaturePath); err == nil {
			pdf.ImageOptions(opts.SignaturePath, sigX, sigY, st.SignatureW, st.SignatureH, false,
				gofpdf.ImageOptions{ReadDpi: true}, 0, "")
			if err := pdf.Error(); err != nil {
				return model.NewRenderError("signature", "embed image", err)
			}
			sigY += st.SignatureH
		}
	}
	pdf.SetXY(sigX, sigY+7)
	pdf.SetFont(st.FontFamily, "B", st.SignatureSize)
	pdf.CellFormat(st.SignatureW, st.FooterLineH, "Signature", "", 1, "C", false, 0, "")

	if bottom := pdf.GetY(); bottom < notesBottom {
		pdf.SetY(notesBottom)
	}
	pdf.Ln(15)
	return nil
}

// drawClosingRule draws the blue divider bar closing the document.
func (r *Renderer) drawClosingRule(pdf *gofpdf.Fpdf) {
	st := r.style
	pdf.SetDrawColor(st.Blue.R, st.Blue.G, st.Blue.B)
	pdf.SetLineWidth(st.RuleWidth)
	y := pdf.GetY()
	pdf.Line(st.MarginSide, y, st.MarginSide+st.TableWidth(), y)
}
