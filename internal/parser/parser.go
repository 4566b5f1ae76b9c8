package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dgallion1/resumescore/internal/doctree"
)

// Parser converts raw document bytes into a DocTree.
type Parser interface {
	Parse(data []byte, filename string) (*doctree.DocTree, error)
}

// Options tunes parser behaviour.
type Options struct {
	// PDFFallbackPdftotext retries unreadable PDFs through the pdftotext binary.
	PDFFallbackPdftotext bool
}

// ForFile returns the appropriate parser for a filename.
func ForFile(filename string, opts Options) (Parser, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFParser{FallbackPdftotext: opts.PDFFallbackPdftotext}, nil
	case ".docx":
		return &DOCXParser{}, nil
	default:
		return nil, &UnsupportedFormatError{Filename: filename, Ext: ext}
	}
}

// Extract returns the plain text of doc. An empty string with a nil error
// means the document parsed but had no readable text.
func Extract(doc doctree.Document, opts Options) (string, error) {
	p, err := ForFile(doc.Filename, opts)
	if err != nil {
		return "", err
	}
	tree, err := p.Parse(doc.Content, doc.Filename)
	if err != nil {
		return "", err
	}
	return tree.PlainText(), nil
}

func title(filename string) string {
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}

// guard runs fn and converts a panic inside a third-party parser into an error.
func guard(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parser panic: %v", r)
		}
	}()
	return fn()
}
