package parser

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/dgallion1/resumescore/internal/doctree"
	pdflib "github.com/ledongthuc/pdf"
)

// PDFParser handles PDF files. It tries the Go library first,
// then optionally falls back to pdftotext.
type PDFParser struct {
	FallbackPdftotext bool
}

func (p *PDFParser) Parse(data []byte, filename string) (*doctree.DocTree, error) {
	var pages []string
	err := guard(func() error {
		var err error
		pages, err = extractPDFPages(data)
		return err
	})
	if err != nil && p.FallbackPdftotext {
		if fb, fbErr := extractPdftotext(data); fbErr == nil {
			pages, err = fb, nil
		}
	}
	if err != nil {
		return nil, &CorruptDocumentError{Filename: filename, Format: "pdf", Err: err}
	}

	tree := &doctree.DocTree{Title: title(filename)}
	for i, text := range pages {
		tree.Children = append(tree.Children, &doctree.DocNode{
			Text: text,
			Page: i + 1,
		})
	}
	return tree, nil
}

// extractPDFPages returns one string per page. Pages without a content
// object, such as scanned images, yield "".
func extractPDFPages(data []byte) ([]string, error) {
	reader, err := pdflib.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, err
	}

	numPages := reader.NumPage()
	pages := make([]string, 0, numPages)
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, text)
	}
	return pages, nil
}

func extractPdftotext(data []byte) ([]string, error) {
	cmd := exec.Command("pdftotext", "-layout", "-", "-")
	cmd.Stdin = bytes.NewReader(data)
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("pdftotext: %w", err)
	}
	return splitFormFeeds(string(out)), nil
}

// splitFormFeeds splits pdftotext output into pages. pdftotext terminates
// every page with a form feed, so a blank final segment is dropped.
func splitFormFeeds(out string) []string {
	pages := strings.Split(out, "\f")
	if n := len(pages); n > 1 && strings.TrimSpace(pages[n-1]) == "" {
		pages = pages[:n-1]
	}
	return pages
}
