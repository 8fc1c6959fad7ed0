// Package storage manages the directories the service writes to:
// rendered PDFs and uploaded signature images. There is no database;
// an invoice's only durable trace is its output file.
package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/shivohini/invoicegen/internal/model"
)

// Store holds the output and signature directories. Both are created
// on construction.
type Store struct {
	OutputDir    string
	SignatureDir string
}

// New creates the directories if needed and returns a Store.
func New(outputDir, signatureDir string) (*Store, error) {
	for _, dir := range []string{outputDir, signatureDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, model.NewIOError("mkdir", dir, err)
		}
	}
	return &Store{OutputDir: outputDir, SignatureDir: signatureDir}, nil
}

// SignaturePath returns the destination for an uploaded signature
// image, with the client-supplied filename sanitized.
func (s *Store) SignaturePath(filename string) string {
	return filepath.Join(s.SignatureDir, SanitizeFilename(filename))
}

// PDFPath resolves a requested download name inside the output
// directory. Names carrying path separators or traversal segments are
// rejected.
func (s *Store) PDFPath(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", model.NewValidationError("filename", name, "invalid download name")
	}
	return filepath.Join(s.OutputDir, name), nil
}

// SanitizeFilename reduces a client-supplied filename to a safe base
// name: directory components are dropped and anything outside
// [a-zA-Z0-9._-] becomes an underscore.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "upload"
	}
	return out
}
