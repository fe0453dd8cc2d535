package layout

import (
	"fmt"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/directive"
	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/model"
)

// defaultImageAspect is used when an Image element carries no explicit
// height directive: spec.md §4.2 says image height "defaults from the
// slide body dimensions" and that "aspect ratio is not probed" — this
// engine never reads the actual image bytes, so a fixed 16:9 default
// stands in for the unprobed ratio.
const defaultImageAspect = 9.0 / 16.0

// Calculator walks a Slide's un-positioned section tree and assigns
// positions and sizes per spec.md §4.3, using Metrics to size every leaf.
type Calculator struct {
	Config  Config
	Metrics *metrics.Engine
}

// New builds a Calculator from a Config and metrics Engine.
func New(cfg Config, eng *metrics.Engine) *Calculator {
	return &Calculator{Config: cfg, Metrics: eng}
}

// Calculate positions a Slide's title/subtitle/footer zones and its body
// tree, then rebuilds the flat Elements index. It never adds or removes
// children — only positions and sizes are mutated.
func (c *Calculator) Calculate(slide *model.Slide) error {
	hasTitle := slide.TitleElement != nil
	hasSubtitle := slide.SubtitleElement != nil
	hasFooter := slide.FooterElement != nil

	bodyWidth := c.Config.BodyWidth()

	y := c.Config.Margins.Top
	if hasTitle {
		c.placeZone(slide.TitleElement, c.Config.Margins.Left, y, bodyWidth, c.Config.TitleZoneHeight)
		y += c.Config.TitleZoneHeight
	}
	if hasSubtitle {
		c.placeZone(slide.SubtitleElement, c.Config.Margins.Left, y, bodyWidth, c.Config.SubtitleZoneHeight)
		y += c.Config.SubtitleZoneHeight
	}
	if hasFooter {
		footerY := c.Config.SlideHeight - c.Config.Margins.Bottom - c.Config.FooterZoneHeight
		c.placeZone(slide.FooterElement, c.Config.Margins.Left, footerY, bodyWidth, c.Config.FooterZoneHeight)
	}

	bodyX, bodyY := c.Config.BodyOrigin(hasTitle, hasSubtitle)
	if slide.RootSection != nil {
		if err := c.layoutSection(slide.RootSection, bodyX, bodyY, bodyWidth); err != nil {
			return err
		}
	}

	slide.ReindexElements()
	return nil
}

// placeZone assigns a fixed-slot meta element (title/subtitle/footer) its
// zone's geometry directly — these never flow through the row/column
// algorithm (spec.md §3).
func (c *Calculator) placeZone(e *model.Element, x, y, w, h float64) {
	e.Position = &model.Point{X: x, Y: y}
	e.Size = &model.Dimensions{W: w, H: h}
}

// layoutSectionChild dispatches to layoutElement or layoutSection depending
// on which variant n wraps, returning the consumed height.
func (c *Calculator) layoutSectionChild(n *model.Node, x, y, width float64) (float64, error) {
	if n.Element != nil {
		return c.layoutElement(n.Element, x, y, width), nil
	}
	if n.Section != nil {
		if err := c.layoutSection(n.Section, x, y, width); err != nil {
			return 0, err
		}
		return n.Section.Size.H, nil
	}
	return 0, nil
}

// layoutSection positions s and its children at (x, y) within width,
// dispatching to the row algorithm (§4.3 width resolution) or the
// vertical-stacking algorithm (§4.3 height resolution) by s.Kind.
func (c *Calculator) layoutSection(s *model.Section, x, y, width float64) error {
	switch s.Kind {
	case common.SectionRow:
		return c.layoutRow(s, x, y, width)
	default: // SectionLeaf, SectionColumn: vertical stacking
		return c.layoutVertical(s, x, y, width)
	}
}

// layoutVertical implements the column/section half of §4.3: children
// stack top-to-bottom, each at the full given width unless it declares its
// own narrower width, separated by Config.VSpacing. The section's own
// height is the sum of child heights plus spacing — never clipped.
func (c *Calculator) layoutVertical(s *model.Section, x, y, width float64) error {
	cy := y
	for i := range s.Children {
		if i > 0 {
			cy += c.Config.VSpacing
		}
		h, err := c.layoutSectionChild(&s.Children[i], x, cy, width)
		if err != nil {
			return err
		}
		cy += h
	}
	s.Position = &model.Point{X: x, Y: y}
	s.Size = &model.Dimensions{W: width, H: cy - y}
	return nil
}

func directivesOf(n *model.Node) directive.Map {
	if n.Element != nil {
		return n.Element.Directives
	}
	if n.Section != nil {
		return n.Section.Directives
	}
	return nil
}

// layoutRow implements the row half of §4.3's width resolution: inner
// width is the row's width minus inter-column gaps, each column's width
// directive is classified and distributed by directive.DistributeWidths,
// and the row's own height is the tallest resulting column.
func (c *Calculator) layoutRow(s *model.Section, x, y, width float64) error {
	n := len(s.Children)
	if n == 0 {
		s.Position = &model.Point{X: x, Y: y}
		s.Size = &model.Dimensions{W: width, H: 0}
		return nil
	}

	innerWidth := width - float64(n-1)*c.Config.Gap
	plans := make([]directive.WidthPlan, n)
	for i := range s.Children {
		mode, val := directive.ResolveWidth(directivesOf(&s.Children[i]))
		plans[i] = directive.WidthPlan{Mode: mode, Value: val}
	}
	widths, _ := directive.DistributeWidths(plans, innerWidth) // the overflowed flag is discarded: implicit columns get zero width and no warning is logged

	cx := x
	var rowHeight float64
	for i := range s.Children {
		if s.Children[i].Section == nil || s.Children[i].Section.Kind != common.SectionColumn {
			return &common.ProgrammingError{Reason: fmt.Sprintf("row child %q is not a column", s.Children[i].ObjectID())}
		}
		h, err := c.layoutSectionChild(&s.Children[i], cx, y, widths[i])
		if err != nil {
			return err
		}
		if h > rowHeight {
			rowHeight = h
		}
		cx += widths[i] + c.Config.Gap
	}

	s.Position = &model.Point{X: x, Y: y}
	s.Size = &model.Dimensions{W: width, H: rowHeight}
	return nil
}

// layoutElement measures e at width (via Metrics), applies an explicit
// `height` directive override if present, and applies the `align`
// directive by shifting e's x within its slot — alignment never changes
// size (spec.md §4.3 Placement).
func (c *Calculator) layoutElement(e *model.Element, x, y, width float64) float64 {
	elemWidth := width
	if v, ok := e.Directives["width"]; ok {
		if pts, ok2 := v.ResolvePoints(width); ok2 {
			elemWidth = pts
		}
	}

	height := c.measureHeight(e, elemWidth)
	if v, ok := e.Directives["height"]; ok {
		if pts, ok2 := v.ResolvePoints(0); ok2 {
			height = pts
		}
	}

	ex := x
	switch common.ParseAlignment(e.Directives.String("align", "left")) {
	case common.AlignCenter:
		ex = x + (width-elemWidth)/2
	case common.AlignRight:
		ex = x + (width - elemWidth)
	}

	e.Position = &model.Point{X: ex, Y: y}
	e.Size = &model.Dimensions{W: elemWidth, H: height}
	return height
}

// measureHeight dispatches to the per-kind metrics calculator.
func (c *Calculator) measureHeight(e *model.Element, width float64) float64 {
	switch e.Kind {
	case common.ElementTitle, common.ElementSubtitle, common.ElementText, common.ElementFooter:
		return c.Metrics.TextElementHeight(e, width).Height
	case common.ElementBulletList, common.ElementOrderedList:
		return c.Metrics.ListElementHeight(e, width)
	case common.ElementTable:
		return c.Metrics.TableElementHeight(e, width)
	case common.ElementCode:
		return c.Metrics.CodeElementHeight(e, width)
	case common.ElementImage:
		return c.imageHeight(e, width)
	default:
		return 0
	}
}

func (c *Calculator) imageHeight(e *model.Element, width float64) float64 {
	if v, ok := e.Directives["height"]; ok {
		if pts, ok2 := v.ResolvePoints(0); ok2 {
			return pts
		}
	}
	return width * defaultImageAspect
}
