package parser

import (
	"bytes"

	"github.com/dgallion1/resumescore/internal/doctree"
	"github.com/fumiama/go-docx"
)

// DOCXParser handles .docx files. Each body paragraph becomes one node.
type DOCXParser struct{}

func (p *DOCXParser) Parse(data []byte, filename string) (*doctree.DocTree, error) {
	var doc *docx.Docx
	err := guard(func() error {
		var err error
		doc, err = docx.Parse(bytes.NewReader(data), int64(len(data)))
		return err
	})
	if err != nil {
		return nil, &CorruptDocumentError{Filename: filename, Format: "docx", Err: err}
	}

	tree := &doctree.DocTree{Title: title(filename)}
	for _, item := range doc.Document.Body.Items {
		para, ok := item.(*docx.Paragraph)
		if !ok {
			continue
		}
		tree.Children = append(tree.Children, &doctree.DocNode{
			Text: docxParagraphText(para),
		})
	}
	return tree, nil
}

// docxParagraphText mirrors Word's plain-text view of a paragraph: tabs and
// line breaks become whitespace and hyperlink runs are included.
func docxParagraphText(para *docx.Paragraph) string {
	var buf bytes.Buffer
	for _, child := range para.Children {
		switch c := child.(type) {
		case *docx.Run:
			writeRunText(&buf, c)
		case *docx.Hyperlink:
			// Links written by some tools keep their label in instrText only.
			if !writeRunText(&buf, &c.Run) {
				buf.WriteString(c.Run.InstrText)
			}
		}
	}
	return buf.String()
}

// writeRunText reports whether the run carried any text element.
func writeRunText(buf *bytes.Buffer, run *docx.Run) bool {
	hasText := false
	for _, rc := range run.Children {
		switch e := rc.(type) {
		case *docx.Text:
			buf.WriteString(e.Text)
			hasText = true
		case *docx.Tab:
			buf.WriteByte('\t')
		case *docx.BarterRabbet:
			buf.WriteByte('\n')
		}
	}
	return hasText
}
