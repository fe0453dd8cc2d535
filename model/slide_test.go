package model

import (
	"testing"

	"github.com/arclio/markdowndeck/common"
)

func buildTestSlide() *Slide {
	root := NewSection(common.SectionLeaf)
	body := NewElement(common.ElementText)
	root.Children = []Node{{Element: body}}

	s := NewSlide()
	s.RootSection = root
	s.TitleElement = NewElement(common.ElementTitle)
	s.FooterElement = NewElement(common.ElementFooter)
	s.ReindexElements()
	return s
}

func TestSlideMetaLookups(t *testing.T) {
	s := buildTestSlide()

	if got := s.Title(); got == nil || got.Kind != common.ElementTitle {
		t.Error("Title() did not return the title element")
	}
	if got := s.Subtitle(); got != nil {
		t.Error("Subtitle() should be nil when the slide has no subtitle")
	}
	if got := s.Footer(); got == nil || got.Kind != common.ElementFooter {
		t.Error("Footer() did not return the footer element")
	}
}

func TestSlideBodyExcludesMetaElements(t *testing.T) {
	s := buildTestSlide()
	body := s.Body()
	if len(body) != 1 {
		t.Fatalf("Body() returned %d elements, want 1", len(body))
	}
	if body[0].Kind != common.ElementText {
		t.Errorf("Body()[0].Kind = %v, want %v", body[0].Kind, common.ElementText)
	}
}

func TestSlideAllElementsOrdersMetaAroundBody(t *testing.T) {
	s := buildTestSlide()
	all := s.AllElements()
	if len(all) != 3 {
		t.Fatalf("AllElements() = %d elements, want 3", len(all))
	}
	if all[0].Kind != common.ElementTitle || all[1].Kind != common.ElementText || all[2].Kind != common.ElementFooter {
		t.Errorf("AllElements() order = [%v %v %v], want [title text footer]", all[0].Kind, all[1].Kind, all[2].Kind)
	}
}

func TestSlideReindexElements(t *testing.T) {
	s := NewSlide()
	s.ReindexElements()
	if s.Elements != nil {
		t.Error("ReindexElements() on a slide with no root should clear Elements")
	}

	s = buildTestSlide()
	if len(s.Elements) != 1 {
		t.Fatalf("Elements = %d, want 1", len(s.Elements))
	}
}

func TestDeckAppend(t *testing.T) {
	d := NewDeck()
	if d.Len() != 0 {
		t.Fatalf("new deck Len() = %d, want 0", d.Len())
	}
	d.Append(NewSlide())
	d.Append(NewSlide())
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}
