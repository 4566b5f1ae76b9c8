package doctree

import "strings"

// Document is an uploaded file: a name carrying the format extension and its raw bytes.
type Document struct {
	Filename string
	Content  []byte
}

// DocTree is the root of a parsed document.
type DocTree struct {
	Title    string     // Document title (from filename)
	Children []*DocNode // Paragraphs or pages, in source order
}

// DocNode is one text segment of a parsed document.
type DocNode struct {
	Text string
	Page int // Source page (0 if N/A)
}

// PlainText joins every segment with a single space, preserving order.
// Empty segments are kept so the join matches the source layout.
func (t *DocTree) PlainText() string {
	if t == nil || len(t.Children) == 0 {
		return ""
	}
	parts := make([]string, len(t.Children))
	for i, n := range t.Children {
		parts[i] = n.Text
	}
	return strings.Join(parts, " ")
}
