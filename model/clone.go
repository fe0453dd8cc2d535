package model

import "github.com/arclio/markdowndeck/directive"

// Deep-copy helpers for Element/Section/Slide, grounded on the same
// per-field clone pattern the teacher uses for its book tree. The overflow
// handler needs these to produce continuation slides and split halves that
// share no mutable state with the slide they were split from, while still
// assigning each resulting node a fresh object id (spec.md §4.6: "both
// halves of a split get fresh object ids").

// CloneTextRuns deep-copies a TextRun slice.
func CloneTextRuns(runs []TextRun) []TextRun {
	if runs == nil {
		return nil
	}
	out := make([]TextRun, len(runs))
	copy(out, runs)
	return out
}

// CloneTextContent deep-copies a TextContent payload.
func CloneTextContent(t *TextContent) *TextContent {
	if t == nil {
		return nil
	}
	return &TextContent{
		Runs:         CloneTextRuns(t.Runs),
		HeadingLevel: t.HeadingLevel,
		Alignment:    t.Alignment,
	}
}

// CloneListItems deep-copies a ListItem tree.
func CloneListItems(items []ListItem) []ListItem {
	if items == nil {
		return nil
	}
	out := make([]ListItem, len(items))
	for i := range items {
		out[i] = ListItem{
			Runs:       CloneTextRuns(items[i].Runs),
			Directives: items[i].Directives.Clone(),
			Children:   CloneListItems(items[i].Children),
		}
	}
	return out
}

// CloneListContent deep-copies a ListContent payload.
func CloneListContent(l *ListContent) *ListContent {
	if l == nil {
		return nil
	}
	return &ListContent{
		Ordered: l.Ordered,
		Items:   CloneListItems(l.Items),
	}
}

func cloneStringSlice(ss []string) []string {
	if ss == nil {
		return nil
	}
	out := make([]string, len(ss))
	copy(out, ss)
	return out
}

func cloneRowDirectives(ds []directive.Map) []directive.Map {
	if ds == nil {
		return nil
	}
	out := make([]directive.Map, len(ds))
	for i := range ds {
		out[i] = ds[i].Clone()
	}
	return out
}

// CloneTableContent deep-copies a TableContent payload.
func CloneTableContent(t *TableContent) *TableContent {
	if t == nil {
		return nil
	}
	rows := make([][]string, len(t.Rows))
	for i := range t.Rows {
		rows[i] = cloneStringSlice(t.Rows[i])
	}
	return &TableContent{
		Headers:          cloneStringSlice(t.Headers),
		HeaderDirectives: t.HeaderDirectives.Clone(),
		Rows:             rows,
		RowDirectives:    cloneRowDirectives(t.RowDirectives),
	}
}

// CloneCodeContent deep-copies a CodeContent payload (both fields are value
// strings, so this is a plain copy, but it is spelled out for symmetry with
// the other content clones and so future fields are not forgotten).
func CloneCodeContent(c *CodeContent) *CodeContent {
	if c == nil {
		return nil
	}
	result := *c
	return &result
}

// CloneImageContent deep-copies an ImageContent payload.
func CloneImageContent(img *ImageContent) *ImageContent {
	if img == nil {
		return nil
	}
	result := *img
	return &result
}

// clonePoint and cloneDimensions copy the small value-type geometry
// pointers so the clone owns independent storage, not the original's.
func clonePoint(p *Point) *Point {
	if p == nil {
		return nil
	}
	result := *p
	return &result
}

func cloneDimensions(d *Dimensions) *Dimensions {
	if d == nil {
		return nil
	}
	result := *d
	return &result
}

// CloneElement deep-copies an Element, minting a fresh object id. keepOverflowMoved
// preserves the OverflowMoved flag (used when cloning a moved-whole element
// onto a continuation slide); otherwise the flag resets.
func CloneElement(e *Element, keepOverflowMoved bool) *Element {
	if e == nil {
		return nil
	}
	out := &Element{
		Kind:       e.Kind,
		ObjectID:   NewObjectID("el"),
		Position:   clonePoint(e.Position),
		Size:       cloneDimensions(e.Size),
		Directives: e.Directives.Clone(),
		Text:       CloneTextContent(e.Text),
		List:       CloneListContent(e.List),
		Table:      CloneTableContent(e.Table),
		Code:       CloneCodeContent(e.Code),
		Image:      CloneImageContent(e.Image),
	}
	if keepOverflowMoved {
		out.OverflowMoved = e.OverflowMoved
	}
	return out
}

// CloneNode deep-copies a Node (either variant), minting fresh object ids
// throughout.
func CloneNode(n Node, keepOverflowMoved bool) Node {
	if n.Element != nil {
		return Node{Element: CloneElement(n.Element, keepOverflowMoved)}
	}
	if n.Section != nil {
		return Node{Section: CloneSection(n.Section, keepOverflowMoved)}
	}
	return Node{}
}

// CloneSection deep-copies a Section and its entire subtree, minting fresh
// object ids at every level.
func CloneSection(s *Section, keepOverflowMoved bool) *Section {
	if s == nil {
		return nil
	}
	children := make([]Node, len(s.Children))
	for i := range s.Children {
		children[i] = CloneNode(s.Children[i], keepOverflowMoved)
	}
	return &Section{
		ObjectID:   NewObjectID("sec"),
		Kind:       s.Kind,
		Position:   clonePoint(s.Position),
		Size:       cloneDimensions(s.Size),
		Directives: s.Directives.Clone(),
		Children:   children,
	}
}

// CloneSlideForContinuation produces a fresh Slide that shares no mutable
// state with the original: a new object id, a deep-cloned root section (with
// fresh ids throughout), and Elements reindexed from that clone. The caller
// is then free to prune RootSection's children down to whatever content
// overflowed — spec.md §4.6's "move the rest to a continuation slide".
func CloneSlideForContinuation(s *Slide) *Slide {
	if s == nil {
		return nil
	}
	clone := &Slide{
		ObjectID:           NewObjectID("slide"),
		LayoutKey:          s.LayoutKey,
		RootSection:        CloneSection(s.RootSection, true),
		TitleElement:       CloneElement(s.TitleElement, true),
		SubtitleElement:    CloneElement(s.SubtitleElement, true),
		FooterElement:      CloneElement(s.FooterElement, true),
		TitleDirectives:    s.TitleDirectives.Clone(),
		SubtitleDirectives: s.SubtitleDirectives.Clone(),
		BaseDirectives:     s.BaseDirectives.Clone(),
		IsContinuation:     true,
	}
	clone.ReindexElements()
	return clone
}
