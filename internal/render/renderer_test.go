package render_test

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivohini/invoicegen/internal/model"
	"github.com/shivohini/invoicegen/internal/render"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func testInvoice() *model.Invoice {
	inv := model.New(model.Client{
		Name:    "Acme Corp",
		Email:   "billing@acme.test",
		Address: "42 Industrial Way",
		Contact: "+1 555 0100",
	})
	inv.CreatedAt = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	inv.AddItem(model.NewLineItem("Widget", dec("2"), dec("10"), nil, nil))
	inv.AddItem(model.NewLineItem("Gadget", dec("1"), dec("99.99"),
		[]string{"shipping"}, []decimal.Decimal{dec("5")}))
	inv.SetTaxRate(dec("0.1"))
	return inv
}

// writePNG writes a small valid PNG for image-embedding tests.
func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for x := 0; x < 16; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: 25, G: 58, B: 124, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRender_ProducesValidPDF(t *testing.T) {
	dir := t.TempDir()
	r := render.NewRenderer(dir)

	name, err := r.Render(testInvoice(), render.Options{Currency: "USD"})
	require.NoError(t, err)
	assert.NotEmpty(t, name)

	path := filepath.Join(dir, name)
	require.FileExists(t, path)
	require.NoError(t, api.ValidateFile(path, nil))

	pages, err := api.PageCountFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
}

func TestRender_DefaultFilename(t *testing.T) {
	dir := t.TempDir()
	r := render.NewRenderer(dir)
	inv := testInvoice()

	name, err := r.Render(inv, render.Options{})
	require.NoError(t, err)
	assert.Equal(t, "invoice_"+inv.Number+".pdf", name)
}

func TestRender_CustomFilename(t *testing.T) {
	dir := t.TempDir()
	r := render.NewRenderer(dir)

	name, err := r.Render(testInvoice(), render.Options{Filename: "out.pdf"})
	require.NoError(t, err)
	assert.Equal(t, "out.pdf", name)
	require.FileExists(t, filepath.Join(dir, "out.pdf"))
}

func TestRender_EmptyInvoice(t *testing.T) {
	// No client, no items: renders a near-empty but valid document.
	dir := t.TempDir()
	r := render.NewRenderer(dir)
	inv := model.New(model.Client{})

	name, err := r.Render(inv, render.Options{})
	require.NoError(t, err)
	require.NoError(t, api.ValidateFile(filepath.Join(dir, name), nil))
}

func TestRender_NotesAndTerms(t *testing.T) {
	dir := t.TempDir()
	r := render.NewRenderer(dir)

	name, err := r.Render(testInvoice(), render.Options{
		Notes:    []string{"Payment due on receipt", "Wire transfer preferred"},
		Terms:    []string{"Net 0"},
		Currency: "INR",
	})
	require.NoError(t, err)
	require.NoError(t, api.ValidateFile(filepath.Join(dir, name), nil))
}

func TestRender_MissingSignatureIsSkipped(t *testing.T) {
	dir := t.TempDir()
	r := render.NewRenderer(dir)

	_, err := r.Render(testInvoice(), render.Options{
		SignaturePath: filepath.Join(dir, "nope.png"),
	})
	assert.NoError(t, err)
}

func TestRender_SignatureEmbedded(t *testing.T) {
	dir := t.TempDir()
	sig := filepath.Join(dir, "sig.png")
	writePNG(t, sig)

	r := render.NewRenderer(dir)
	name, err := r.Render(testInvoice(), render.Options{SignaturePath: sig})
	require.NoError(t, err)
	require.NoError(t, api.ValidateFile(filepath.Join(dir, name), nil))
}

func TestRender_CorruptSignatureFails(t *testing.T) {
	dir := t.TempDir()
	sig := filepath.Join(dir, "sig.png")
	require.NoError(t, os.WriteFile(sig, []byte("not a png"), 0o644))

	r := render.NewRenderer(dir)
	_, err := r.Render(testInvoice(), render.Options{SignaturePath: sig})
	require.Error(t, err)

	var renderErr *model.RenderError
	assert.True(t, errors.As(err, &renderErr))
}

func TestRender_LogoEmbedded(t *testing.T) {
	dir := t.TempDir()
	logo := filepath.Join(dir, "logo.png")
	writePNG(t, logo)

	r := render.NewRenderer(dir, render.WithLogoPath(logo))
	name, err := r.Render(testInvoice(), render.Options{})
	require.NoError(t, err)
	require.NoError(t, api.ValidateFile(filepath.Join(dir, name), nil))
}

func TestRender_ManyItemsOverflow(t *testing.T) {
	// Padding is a minimum, not a maximum: every item renders even when
	// the table spills past the first page.
	dir := t.TempDir()
	r := render.NewRenderer(dir)

	inv := testInvoice()
	for i := 0; i < 40; i++ {
		inv.AddItem(model.NewLineItem("Bulk item", dec("1"), dec("3.50"), nil, nil))
	}

	name, err := r.Render(inv, render.Options{Currency: "USD"})
	require.NoError(t, err)

	path := filepath.Join(dir, name)
	require.NoError(t, api.ValidateFile(path, nil))
	pages, err := api.PageCountFile(path)
	require.NoError(t, err)
	assert.Greater(t, pages, 1)
}

func TestRender_Deterministic(t *testing.T) {
	// Identical invoice state and timestamps produce structurally
	// identical output.
	dir := t.TempDir()
	r := render.NewRenderer(dir)
	inv := testInvoice()

	first, err := r.Render(inv, render.Options{Filename: "a.pdf", Currency: "USD"})
	require.NoError(t, err)
	second, err := r.Render(inv, render.Options{Filename: "b.pdf", Currency: "USD"})
	require.NoError(t, err)

	fi1, err := os.Stat(filepath.Join(dir, first))
	require.NoError(t, err)
	fi2, err := os.Stat(filepath.Join(dir, second))
	require.NoError(t, err)
	assert.Equal(t, fi1.Size(), fi2.Size())
}

func TestRender_WriteFailureIsIOError(t *testing.T) {
	r := render.NewRenderer(filepath.Join(t.TempDir(), "missing", "dir"))

	_, err := r.Render(testInvoice(), render.Options{})
	require.Error(t, err)

	var ioErr *model.IOError
	assert.True(t, errors.As(err, &ioErr))
}

func TestDefaultStyle_TableWidth(t *testing.T) {
	st := render.DefaultStyle()
	assert.InDelta(t, 529.2, st.TableWidth(), 0.01)
}
