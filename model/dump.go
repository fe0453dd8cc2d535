package model

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/directive"
	"github.com/arclio/markdowndeck/utils/debug"
)

// String renders a readable tree of the slide's section structure. It
// exists solely for manual inspection while debugging the layout and
// overflow passes — not part of any wire format.
func (s *Slide) String() string {
	if s == nil {
		return "<nil Slide>"
	}
	tw := debug.NewTreeWriter()
	tw.Line(0, "Slide[%s] continuation=%t elements=%d", s.ObjectID, s.IsContinuation, len(s.Elements))
	if s.Diagnostic != "" {
		tw.TextBlock(1, "diagnostic", s.Diagnostic)
	}
	if s.RootSection != nil {
		dumpSection(tw, s.RootSection, 1)
	}
	return tw.String()
}

func dumpSection(tw *debug.TreeWriter, s *Section, depth int) {
	tw.Line(depth, "Section[%s] kind=%s children=%d%s", s.ObjectID, s.Kind, len(s.Children), formatGeometry(s.Position, s.Size))
	dumpDirectives(tw, s.Directives, depth+1)
	for _, c := range s.Children {
		switch {
		case c.Element != nil:
			dumpElement(tw, c.Element, depth+1)
		case c.Section != nil:
			dumpSection(tw, c.Section, depth+1)
		}
	}
}

func dumpElement(tw *debug.TreeWriter, e *Element, depth int) {
	tw.Line(depth, "Element[%s] kind=%s overflowMoved=%t%s", e.ObjectID, e.Kind, e.OverflowMoved, formatGeometry(e.Position, e.Size))
	dumpDirectives(tw, e.Directives, depth+1)
	switch e.Kind {
	case common.ElementTitle, common.ElementSubtitle, common.ElementText, common.ElementFooter:
		if e.Text != nil {
			tw.TextBlock(depth+1, "text", e.Text.PlainText())
		}
	case common.ElementBulletList, common.ElementOrderedList:
		if e.List != nil {
			tw.Line(depth+1, "items=%d ordered=%t", len(e.List.Items), e.List.Ordered)
		}
	case common.ElementTable:
		if e.Table != nil {
			tw.Line(depth+1, "rows=%d cols=%d header=%t", len(e.Table.Rows), len(e.Table.Headers), e.Table.HasHeader())
		}
	case common.ElementCode:
		if e.Code != nil {
			tw.Line(depth+1, "lang=%q lines=%d", e.Code.Language, len(e.Code.Lines()))
		}
	case common.ElementImage:
		if e.Image != nil {
			tw.Line(depth+1, "src=%q alt=%q", e.Image.Source, e.Image.Alt)
		}
	}
}

func dumpDirectives(tw *debug.TreeWriter, m directive.Map, depth int) {
	if len(m) == 0 {
		return
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		tw.Line(depth, "%s=%s", k, m[k])
	}
}

func formatGeometry(p *Point, d *Dimensions) string {
	if p == nil || d == nil {
		return ""
	}
	return fmt.Sprintf(" at(%d,%d) size(%dx%d)", round(p.X), round(p.Y), round(d.W), round(d.H))
}

// round is used only for dump formatting, so the dump isn't sensitive to
// floating point noise in the last bit.
func round(f float64) int {
	return int(f + 0.5)
}
