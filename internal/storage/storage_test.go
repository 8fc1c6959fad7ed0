package storage_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shivohini/invoicegen/internal/storage"
)

func TestNew_CreatesDirectories(t *testing.T) {
	base := t.TempDir()
	out := filepath.Join(base, "invoices")
	sig := filepath.Join(base, "signatures")

	s, err := storage.New(out, sig)
	require.NoError(t, err)

	assert.DirExists(t, out)
	assert.DirExists(t, sig)
	assert.Equal(t, out, s.OutputDir)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"sig.png", "sig.png"},
		{"../../etc/passwd", "passwd"},
		{"..\\..\\evil.png", "evil.png"},
		{"my signature!.png", "my_signature_.png"},
		{"..", "upload"},
		{"", "upload"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, storage.SanitizeFilename(tt.in), "input %q", tt.in)
	}
}

func TestPDFPath(t *testing.T) {
	base := t.TempDir()
	s, err := storage.New(filepath.Join(base, "out"), filepath.Join(base, "sig"))
	require.NoError(t, err)

	path, err := s.PDFPath("invoice_INV-ABC123.pdf")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(s.OutputDir, "invoice_INV-ABC123.pdf"), path)

	for _, bad := range []string{"", "..", "../x.pdf", "a/b.pdf"} {
		_, err := s.PDFPath(bad)
		assert.Error(t, err, "expected rejection for %q", bad)
	}
}

func TestSignaturePath(t *testing.T) {
	base := t.TempDir()
	s, err := storage.New(filepath.Join(base, "out"), filepath.Join(base, "sig"))
	require.NoError(t, err)

	assert.Equal(t,
		filepath.Join(s.SignatureDir, "sig.png"),
		s.SignaturePath("../sig.png"))
}
