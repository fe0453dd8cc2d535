package model

import (
	"github.com/arclio/markdowndeck/directive"
)

// Slide is one positioned slide in a Deck: a root layout section plus a flat
// index of every Element reachable from it, kept in sync by layout.Calculator
// and by the overflow handler's split/continuation logic.
type Slide struct {
	ObjectID  string
	LayoutKey string

	RootSection *Section
	Elements    []*Element

	// Title/Subtitle/Footer are meta-elements that occupy reserved zones
	// and are never part of RootSection's body tree (spec.md §3: "Title,
	// subtitle, footer occupy reserved zones and are never placed inside
	// the body area"). layout.Calculator positions them directly rather
	// than flowing them through the row/column algorithm.
	TitleElement    *Element
	SubtitleElement *Element
	FooterElement   *Element

	TitleDirectives    directive.Map
	SubtitleDirectives directive.Map
	BaseDirectives     directive.Map

	// IsContinuation is true for every slide past the first produced from a
	// single logical input slide by the overflow handler (spec.md §4.6/§4.7).
	IsContinuation bool

	// Diagnostic carries a human-readable note about why this slide exists
	// in its current form — set on error slides (spec.md §7 GrammarError)
	// and left empty otherwise.
	Diagnostic string
}

// NewSlide allocates a Slide with a fresh object id and no content.
func NewSlide() *Slide {
	return &Slide{
		ObjectID:       NewObjectID("slide"),
		BaseDirectives: directive.Map{},
	}
}

// Title returns the slide's title element, or nil if it has none.
func (s *Slide) Title() *Element { return s.TitleElement }

// Subtitle returns the slide's subtitle element, or nil if it has none.
func (s *Slide) Subtitle() *Element { return s.SubtitleElement }

// Footer returns the slide's footer element, or nil if it has none.
func (s *Slide) Footer() *Element { return s.FooterElement }

// Body returns every body element — the content the overflow detector and
// handler actually paginate. Title/Subtitle/Footer are never included:
// they live outside RootSection entirely.
func (s *Slide) Body() []*Element {
	return s.Elements
}

// ReindexElements rebuilds s.Elements from a depth-first walk of
// RootSection. Call this after any structural edit to the section tree
// (splitting, row-splitting, continuation cloning) so Elements stays a
// faithful flat index of body content rather than a stale cache. Title,
// Subtitle, and Footer are tracked separately and are not touched here.
func (s *Slide) ReindexElements() {
	if s.RootSection == nil {
		s.Elements = nil
		return
	}
	s.Elements = s.RootSection.Leaves()
}

// AllElements returns every element on the slide, meta and body alike, in
// the fixed order title, subtitle, body…, footer — this is what a
// downstream request builder would iterate to emit shapes for the whole
// slide.
func (s *Slide) AllElements() []*Element {
	var out []*Element
	if s.TitleElement != nil {
		out = append(out, s.TitleElement)
	}
	if s.SubtitleElement != nil {
		out = append(out, s.SubtitleElement)
	}
	out = append(out, s.Elements...)
	if s.FooterElement != nil {
		out = append(out, s.FooterElement)
	}
	return out
}
