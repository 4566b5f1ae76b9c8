package doctree

import "testing"

func TestPlainText_JoinsWithSingleSpace(t *testing.T) {
	tree := &DocTree{
		Children: []*DocNode{
			{Text: "First"},
			{Text: "Second part"},
			{Text: "Third"},
		},
	}
	want := "First Second part Third"
	if got := tree.PlainText(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPlainText_KeepsEmptySegments(t *testing.T) {
	tree := &DocTree{
		Children: []*DocNode{
			{Text: "a"},
			{Text: ""},
			{Text: "b"},
		},
	}
	if got := tree.PlainText(); got != "a  b" {
		t.Errorf("expected %q, got %q", "a  b", got)
	}
}

func TestPlainText_Empty(t *testing.T) {
	var nilTree *DocTree
	if got := nilTree.PlainText(); got != "" {
		t.Errorf("expected empty text for nil tree, got %q", got)
	}
	if got := (&DocTree{}).PlainText(); got != "" {
		t.Errorf("expected empty text for childless tree, got %q", got)
	}
}
