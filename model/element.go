// Package model defines the element/section/slide/deck data structures
// spec.md §3 describes, following the teacher's (fbc/fb2) tagged-struct
// style for recursive document trees: a node carries a Kind discriminator
// plus one populated payload field per variant, rather than a Go interface
// with type assertions at every call site.
package model

import (
	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/directive"
)

// TextRun is one inline-formatted run of text within a Title/Subtitle/Text
// element or a list item.
type TextRun struct {
	Text          string
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
	Code          bool
	LinkURL       string
}

// TextContent is the payload for Title, Subtitle, Text and Footer elements.
type TextContent struct {
	Runs         []TextRun
	HeadingLevel int // 0 for body text, 1-6 for headings
	Alignment    common.Alignment
}

// PlainText concatenates all runs, discarding formatting — this is what
// metrics measures and what the split protocol wraps.
func (t *TextContent) PlainText() string {
	if t == nil {
		return ""
	}
	var out []byte
	for _, r := range t.Runs {
		out = append(out, r.Text...)
	}
	return string(out)
}

// ListItem is one node of a BulletList/OrderedList tree.
type ListItem struct {
	Runs       []TextRun
	Directives directive.Map
	Children   []ListItem
}

func (li *ListItem) PlainText() string {
	var out []byte
	for _, r := range li.Runs {
		out = append(out, r.Text...)
	}
	return string(out)
}

// ListContent is the payload for BulletList/OrderedList elements.
type ListContent struct {
	Ordered bool
	Items   []ListItem
}

// TableContent is the payload for Table elements. HeaderDirectives holds
// the header row's directives and RowDirectives one map per data row.
// Rows arrive with any directive-only row already merged by the upstream
// parser; this package does not merge rows itself.
type TableContent struct {
	Headers          []string
	HeaderDirectives directive.Map
	Rows             [][]string
	RowDirectives    []directive.Map // len(RowDirectives) == len(Rows)
}

// HasHeader reports whether this table carries a header row.
func (t *TableContent) HasHeader() bool {
	return len(t.Headers) > 0
}

// CodeContent is the payload for Code elements.
type CodeContent struct {
	Code     string
	Language string
}

// Lines splits Code on newlines. A trailing newline does not produce a
// phantom empty final line; an interior blank line is preserved (spec.md §4.2
// "empty line counts as one").
func (c *CodeContent) Lines() []string {
	if c.Code == "" {
		return nil
	}
	lines := splitLines(c.Code)
	return lines
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

// ImageContent is the payload for Image elements.
type ImageContent struct {
	Source string // URL, or empty when unresolved (placeholder needed)
	Alt    string
}

// Element is a leaf node of the section tree: one of Title, Subtitle, Text,
// BulletList, OrderedList, Table, Code, Image, or Footer, discriminated by
// Kind. Exactly one of the payload fields below is populated, matching Kind.
type Element struct {
	Kind common.ElementKind

	ObjectID   string
	Position   *Point
	Size       *Dimensions
	Directives directive.Map

	// OverflowMoved is the per-element circuit breaker spec.md §4.6/§9
	// mandates: once a non-splittable element has been moved whole to a
	// continuation slide, this is set so a future pass never mistakes it for
	// un-tried content and loops forever.
	OverflowMoved bool

	Text  *TextContent
	List  *ListContent
	Table *TableContent
	Code  *CodeContent
	Image *ImageContent
}

// NewElement allocates an Element of the given kind with a fresh object id
// and an empty directive map.
func NewElement(kind common.ElementKind) *Element {
	return &Element{
		Kind:       kind,
		ObjectID:   NewObjectID("el"),
		Directives: directive.Map{},
	}
}

// Splittable reports whether this element's kind ever participates in the
// leaf split protocol.
func (e *Element) Splittable() bool {
	return e.Kind.Splittable()
}
