// Package render turns an invoice into a styled PDF document.
package render

// RGB is a 0-255 color triple.
type RGB struct {
	R, G, B int
}

// Style is the declarative layout configuration consumed by the
// renderer: palette, font sizes, and fixed dimensions in points on a
// letter page. Keeping these out of the drawing code lets layout be
// tested and tweaked independent of content.
type Style struct {
	PageSize   string
	MarginSide float64
	MarginTop  float64

	Yellow RGB
	Blue   RGB
	White  RGB
	Black  RGB

	FontFamily    string
	TitleSize     float64
	SubheadSize   float64
	BillLabelSize float64
	BillValueSize float64
	TableHeadSize float64
	TableCellSize float64
	AmountDueSize float64
	SignatureSize float64

	// Item table: five columns (name, description, price, quantity,
	// total) and a minimum number of data rows; short invoices are
	// padded with blank rows so the table keeps its height.
	ColWidths   [5]float64
	RowHeight   float64
	MinItemRows int

	HeaderHeight float64
	HeaderPad    float64
	BillColWidth float64
	BillColGap   float64
	BillRowH     float64

	TotalsLabelW float64
	TotalsValueW float64

	LogoW      float64
	LogoH      float64
	SignatureW float64
	SignatureH float64

	NotesColWidth float64
	FooterLineH   float64
	RuleWidth     float64
}

// DefaultStyle returns the stock invoice look: yellow-on-blue header,
// letter page, 40pt side and 36pt top margins. Dimensions are points.
func DefaultStyle() Style {
	return Style{
		PageSize:   "Letter",
		MarginSide: 40,
		MarginTop:  36,

		Yellow: RGB{255, 215, 0},  // #FFD700
		Blue:   RGB{25, 58, 124},  // #193A7C
		White:  RGB{255, 255, 255},
		Black:  RGB{0, 0, 0},

		FontFamily:    "Helvetica",
		TitleSize:     41,
		SubheadSize:   14,
		BillLabelSize: 12,
		BillValueSize: 11,
		TableHeadSize: 13,
		TableCellSize: 11,
		AmountDueSize: 13,
		SignatureSize: 12,

		ColWidths:   [5]float64{144, 157.68, 72, 72.72, 82.8},
		RowHeight:   21,
		MinItemRows: 6,

		HeaderHeight: 109.44,
		HeaderPad:    16,
		BillColWidth: 216,
		BillColGap:   13.68,
		BillRowH:     18,

		TotalsLabelW: 104.4,
		TotalsValueW: 103.68,

		LogoW:      115.2,
		LogoH:      79.2,
		SignatureW: 122.4,
		SignatureH: 34.56,

		NotesColWidth: 360,
		FooterLineH:   14,
		RuleWidth:     3,
	}
}

// TableWidth is the summed width of the item table columns; the header
// band, bill block, and footer rule share it.
func (s Style) TableWidth() float64 {
	var w float64
	for _, c := range s.ColWidths {
		w += c
	}
	return w
}
