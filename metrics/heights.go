package metrics

import (
	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/directive"
	"github.com/arclio/markdowndeck/model"
)

// Default typography sizes (points) for the text-bearing element kinds,
// applied unless an element's directives override `fontsize`.
const (
	DefaultTitleSizePt    = 28.0
	DefaultSubtitleSizePt = 18.0
	DefaultTextSizePt     = 14.0
)

// Code block height heuristic constants (spec.md §4.2). Code height is
// computed from a fixed monospace-character model rather than shaping
// through a font face — these values are carried over unchanged from the
// reference implementation's measured defaults.
const (
	AvgCharWidthMonospacePt = 8.0
	LineHeightMonospacePt   = 16.0
	PaddingCodeBlockPt      = 10.0
	LanguageLabelHeightPt   = 15.0
	MinCodeBlockHeightPt    = 40.0
)

// Per-kind padding and minimum-height constants for the text-bearing
// elements (spec.md §4.2: "resolves typography (font_size, line_height,
// padding, min_height) from element kind"). Title carries the most padding
// since it is rendered largest; Footer the least.
const (
	PaddingTitlePt      = 8.0
	MinTitleHeightPt    = 40.0
	PaddingSubtitlePt   = 6.0
	MinSubtitleHeightPt = 30.0
	PaddingTextPt       = 5.0
	MinTextHeightPt     = 20.0
	PaddingFooterPt     = 3.0
	MinFooterHeightPt   = 16.0
)

// ListItemSpacingPt is the vertical gap spec.md §4.2 adds between successive
// (possibly nested) list items, on top of each item's own wrapped text
// height.
const ListItemSpacingPt = 4.0

// TableCellPaddingPt is the cell padding spec.md §4.2 both subtracts from
// the available width when dividing it evenly across columns, and adds to
// the tallest cell's height to get a row's total height.
const TableCellPaddingPt = 8.0

// Engine bundles the font registry and measurement cache every height
// calculator needs, so call sites pass one value instead of threading two.
type Engine struct {
	Fonts *FontSet
	Cache *Cache
}

// NewEngine builds an Engine with a fresh default font set and a
// cacheSize-entry measurement cache.
func NewEngine(cacheSize int) (*Engine, error) {
	fonts, err := NewDefaultFontSet()
	if err != nil {
		return nil, err
	}
	cache, err := NewCache(cacheSize)
	if err != nil {
		return nil, err
	}
	return &Engine{Fonts: fonts, Cache: cache}, nil
}

func defaultFontSizeFor(kind common.ElementKind) float64 {
	switch kind {
	case common.ElementTitle:
		return DefaultTitleSizePt
	case common.ElementSubtitle:
		return DefaultSubtitleSizePt
	default:
		return DefaultTextSizePt
	}
}

// paddingAndMinHeightFor resolves the (padding, min_height) pair spec.md
// §4.2 says Text height derives from, per element kind.
func paddingAndMinHeightFor(kind common.ElementKind) (paddingPt, minHeightPt float64) {
	switch kind {
	case common.ElementTitle:
		return PaddingTitlePt, MinTitleHeightPt
	case common.ElementSubtitle:
		return PaddingSubtitlePt, MinSubtitleHeightPt
	case common.ElementFooter:
		return PaddingFooterPt, MinFooterHeightPt
	default:
		return PaddingTextPt, MinTextHeightPt
	}
}

// directiveFontSize pulls the `fontsize` directive off an element's
// directive map, defaulting per-kind when absent.
func (e *Engine) directiveFontSize(el *model.Element) float64 {
	if v, ok := el.Directives["fontsize"]; ok {
		if pts, ok := v.ResolvePoints(0); ok && pts > 0 {
			return pts
		}
	}
	return defaultFontSizeFor(el.Kind)
}

func (e *Engine) lineSpacing(el *model.Element) float64 {
	if v, ok := el.Directives["line-spacing"]; ok && v.Kind == directive.KindNumber {
		return v.Number
	}
	return 1.0
}

// TextElementHeight measures a Title/Subtitle/Text/Footer element's wrapped
// height given the width it has been allocated: text_bbox at
// width-2*padding, plus 2*padding, floored at the kind's min_height
// (spec.md §4.2).
func (e *Engine) TextElementHeight(el *model.Element, widthPt float64) BBox {
	sizePt := e.directiveFontSize(el)
	face := e.Fonts.Face(FamilySans, el.Kind == common.ElementTitle, false)
	text := el.Text.PlainText()
	padding, minHeight := paddingAndMinHeightFor(el.Kind)

	innerWidth := widthPt - 2*padding
	if innerWidth < 1 {
		innerWidth = 1
	}
	bbox := TextBBox(e.Cache, face, FamilySans, el.Kind == common.ElementTitle, false, text, sizePt, innerWidth, e.lineSpacing(el))

	bbox.Height += 2 * padding
	if bbox.Height < minHeight {
		bbox.Height = minHeight
	}
	return bbox
}

// TextLines returns a Title/Subtitle/Text/Footer element's wrapped lines and
// per-line height at widthPt, using the same typography TextElementHeight
// resolves. Exported so the leaf split protocol can locate a line-boundary
// split point without re-deriving font size, face, or line spacing.
func (e *Engine) TextLines(el *model.Element, widthPt float64) (lines []string, lineHeightPt float64) {
	sizePt := e.directiveFontSize(el)
	face := e.Fonts.Face(FamilySans, el.Kind == common.ElementTitle, false)
	lines = WrapText(face, el.Text.PlainText(), sizePt, widthPt)
	return lines, lineHeight(face, sizePt, e.lineSpacing(el))
}

// ListElementHeight measures a BulletList/OrderedList element: the sum of
// each (possibly nested) item's wrapped height, indenting nested children
// by a fixed per-level amount that is subtracted from their available
// width.
const listIndentPt = 18.0

func (e *Engine) ListElementHeight(el *model.Element, widthPt float64) float64 {
	if el.List == nil {
		return 0
	}
	sizePt := e.directiveFontSize(el)
	face := e.Fonts.Face(FamilySans, false, false)
	return e.listItemsHeight(face, el.List.Items, sizePt, widthPt, 0)
}

func (e *Engine) listItemsHeight(face *Face, items []model.ListItem, sizePt, widthPt float64, depth int) float64 {
	var total float64
	indent := float64(depth) * listIndentPt
	for _, item := range items {
		w := widthPt - indent
		if w < 1 {
			w = 1
		}
		bbox := TextBBox(e.Cache, face, FamilySans, false, false, item.PlainText(), sizePt, w, 1.0)
		total += bbox.Height + ListItemSpacingPt
		total += e.listItemsHeight(face, item.Children, sizePt, widthPt, depth+1)
	}
	return total
}

// ListItemHeight measures a single top-level item's own wrapped height,
// including its nested children's subtree height, at widthPt — the unit
// the leaf split protocol accumulates over when deciding how many
// top-level items fit (spec.md §4.5: lists split only at item boundaries).
func (e *Engine) ListItemHeight(el *model.Element, item model.ListItem, widthPt float64) float64 {
	sizePt := e.directiveFontSize(el)
	face := e.Fonts.Face(FamilySans, false, false)
	return e.listItemsHeight(face, []model.ListItem{item}, sizePt, widthPt, 0)
}

// CodeElementHeight computes a Code element's height from the fixed
// monospace heuristic: wrapped-by-character-count line count times a fixed
// line height, plus padding and an optional language label row, clamped to
// a minimum so an empty or near-empty code block never collapses to zero.
func (e *Engine) CodeElementHeight(el *model.Element, widthPt float64) float64 {
	if el.Code == nil {
		return MinCodeBlockHeightPt
	}
	charsPerLine := int(widthPt / AvgCharWidthMonospacePt)
	if charsPerLine < 1 {
		charsPerLine = 1
	}

	var wrappedLines int
	for _, line := range el.Code.Lines() {
		n := len(line)
		if n == 0 {
			wrappedLines++
			continue
		}
		wrappedLines += (n + charsPerLine - 1) / charsPerLine
	}
	if wrappedLines == 0 {
		wrappedLines = 1
	}

	height := float64(wrappedLines)*LineHeightMonospacePt + 2*PaddingCodeBlockPt
	if el.Code.Language != "" {
		height += LanguageLabelHeightPt
	}
	if height < MinCodeBlockHeightPt {
		height = MinCodeBlockHeightPt
	}
	return height
}

// CodeLineHeight returns the rendered height, in points, of a single source
// line of code at widthPt under the monospace heuristic — excluding the
// fixed padding/language-label terms CodeElementHeight adds once overall.
// Exported so the leaf split protocol can accumulate per-line heights
// without recomputing the wrap math inline.
func (e *Engine) CodeLineHeight(line string, widthPt float64) float64 {
	charsPerLine := int(widthPt / AvgCharWidthMonospacePt)
	if charsPerLine < 1 {
		charsPerLine = 1
	}
	if len(line) == 0 {
		return LineHeightMonospacePt
	}
	visualLines := (len(line) + charsPerLine - 1) / charsPerLine
	return float64(visualLines) * LineHeightMonospacePt
}

// tableColWidth resolves a table's per-column width, spreading widthPt minus
// one cell-padding allowance evenly across cols columns (spec.md §4.2:
// "(available_width - padding)/n_cols").
func tableColWidth(widthPt float64, cols int) float64 {
	w := (widthPt - TableCellPaddingPt) / float64(cols)
	if w < 1 {
		w = 1
	}
	return w
}

// TableRowHeight measures one row's height (cells all at an equal share of
// widthPt across cols columns) — exported so the leaf split protocol can
// accumulate header/row heights the same way TableElementHeight does.
func (e *Engine) TableRowHeight(cells []string, widthPt float64, cols int) float64 {
	if cols == 0 {
		return 0
	}
	face := e.Fonts.Face(FamilySans, false, false)
	return e.rowHeight(face, cells, DefaultTextSizePt, tableColWidth(widthPt, cols))
}

// TableElementHeight sums header-row height (if present) and every data
// row's height, each row's height being the tallest cell in that row plus
// cell padding.
func (e *Engine) TableElementHeight(el *model.Element, widthPt float64) float64 {
	if el.Table == nil {
		return 0
	}
	sizePt := DefaultTextSizePt
	face := e.Fonts.Face(FamilySans, false, false)

	cols := len(el.Table.Headers)
	if cols == 0 && len(el.Table.Rows) > 0 {
		cols = len(el.Table.Rows[0])
	}
	if cols == 0 {
		return 0
	}
	colWidth := tableColWidth(widthPt, cols)

	var total float64
	if el.Table.HasHeader() {
		total += e.rowHeight(face, el.Table.Headers, sizePt, colWidth)
	}
	for _, row := range el.Table.Rows {
		total += e.rowHeight(face, row, sizePt, colWidth)
	}
	return total
}

func (e *Engine) rowHeight(face *Face, cells []string, sizePt, colWidth float64) float64 {
	var tallest float64
	for _, cell := range cells {
		bbox := TextBBox(e.Cache, face, FamilySans, false, false, cell, sizePt, colWidth, 1.0)
		if bbox.Height > tallest {
			tallest = bbox.Height
		}
	}
	return tallest + TableCellPaddingPt
}
