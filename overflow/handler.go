package overflow

import (
	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/layout"
	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/model"
)

// Handle implements spec.md §4.6: given an overflowing positioned slide,
// partition its body into a fitted prefix kept on the current slide and a
// remainder carried by a new continuation slide. Handle never mutates s;
// both returned slides are fresh values, matching the engine's
// copy-on-split lifecycle (spec.md §3).
//
// If nothing can be moved to the continuation (every child already fits,
// or the root section itself is empty), Handle returns s unchanged and a
// nil continuation — the manager treats this as terminal (spec.md §4.6
// step 5, the "safety valve").
func Handle(eng *metrics.Engine, cfg layout.Config, s *model.Slide) (fitted *model.Slide, continuation *model.Slide, err error) {
	if s.RootSection == nil {
		return s, nil, nil
	}

	bottom := cfg.BodyBottom(s.FooterElement != nil)
	fittedChildren, remainderChildren, splitErr := partitionTree(eng, cfg, s.RootSection, bottom)
	if splitErr != nil {
		return nil, nil, splitErr
	}
	if len(remainderChildren) == 0 {
		return s, nil, nil
	}

	fittedRoot := buildSection(cfg, s.RootSection, fittedChildren)
	fittedRoot.ObjectID = s.RootSection.ObjectID // the fitted half keeps the original section's identity

	fittedSlide := shallowCopySlide(s)
	fittedSlide.RootSection = fittedRoot
	fittedSlide.ReindexElements()

	continuationSlide := model.CloneSlideForContinuation(s)
	continuationSlide.RootSection = buildSection(cfg, s.RootSection, remainderChildren)
	continuationSlide.ReindexElements()

	return fittedSlide, continuationSlide, nil
}

// shallowCopySlide copies a Slide's scalar/meta fields without touching its
// RootSection — the caller immediately replaces RootSection with the
// fitted partition.
func shallowCopySlide(s *model.Slide) *model.Slide {
	out := model.NewSlide()
	out.ObjectID = s.ObjectID
	out.LayoutKey = s.LayoutKey
	out.TitleElement = s.TitleElement
	out.SubtitleElement = s.SubtitleElement
	out.FooterElement = s.FooterElement
	out.TitleDirectives = s.TitleDirectives
	out.SubtitleDirectives = s.SubtitleDirectives
	out.BaseDirectives = s.BaseDirectives
	out.IsContinuation = s.IsContinuation
	out.Diagnostic = s.Diagnostic
	return out
}

// partitionTree dispatches to the row or vertical-stacking partition rule
// by s.Kind, the same split spec.md §4.3 draws between width and height
// resolution.
func partitionTree(eng *metrics.Engine, cfg layout.Config, s *model.Section, bottom float64) (fitted, remainder []model.Node, err error) {
	if s.Kind == common.SectionRow {
		return partitionRow(eng, cfg, s, bottom)
	}
	return partitionVertical(eng, cfg, s, bottom)
}

// partitionRow implements spec.md §4.6's row handling: every column is
// partitioned independently at the same bottom bound, then reassembled
// into a fitted row and a continuation row. Every column appears in both
// halves, even when empty, to keep the row's geometry stable (spec.md §9
// Open Questions).
func partitionRow(eng *metrics.Engine, cfg layout.Config, s *model.Section, bottom float64) (fitted, remainder []model.Node, err error) {
	var fittedCols, remainderCols []model.Node
	for _, c := range s.Children {
		if c.Section == nil || c.Section.Kind != common.SectionColumn {
			// Grammar guarantees a row's children are columns (spec.md §3);
			// anything else here is a structural bug upstream of this package.
			return nil, nil, &common.ProgrammingError{Reason: "row child is not a column"}
		}
		recF, recR, rErr := partitionTree(eng, cfg, c.Section, bottom)
		if rErr != nil {
			return nil, nil, rErr
		}
		fittedCols = append(fittedCols, model.Node{Section: buildSection(cfg, c.Section, recF)})
		remainderCols = append(remainderCols, model.Node{Section: buildSection(cfg, c.Section, recR)})
	}
	return []model.Node{{Section: buildSection(cfg, s, fittedCols)}},
		[]model.Node{{Section: buildSection(cfg, s, remainderCols)}},
		nil
}

// partitionVertical implements spec.md §4.6 steps 1-3 for a `section` or
// `column`: walk children top-to-bottom, accumulating those that already
// fit, then resolve the first child that does not (the split candidate) by
// recursing (Section), splitting (splittable leaf), or moving it whole with
// the overflow_moved circuit breaker (non-splittable leaf). Every sibling
// after the split candidate is pushed wholesale into the remainder.
func partitionVertical(eng *metrics.Engine, cfg layout.Config, s *model.Section, bottom float64) (fitted, remainder []model.Node, err error) {
	for i, child := range s.Children {
		childBottom, ok := nodeBottom(child)
		if ok && childBottom <= bottom+geometricTolerance {
			fitted = append(fitted, model.CloneNode(child, false))
			continue
		}

		switch {
		case child.Element != nil:
			e := child.Element
			if !e.Splittable() {
				cloned := model.CloneElement(e, false)
				cloned.OverflowMoved = true
				remainder = append(remainder, model.Node{Element: cloned})
				break
			}

			top := 0.0
			if e.Position != nil {
				top = e.Position.Y
			}
			f, o, splitErr := Split(eng, e, bottom-top)
			if splitErr != nil {
				return nil, nil, splitErr
			}
			switch {
			case f == nil && o == nil:
				cloned := model.CloneElement(e, false)
				cloned.OverflowMoved = true
				remainder = append(remainder, model.Node{Element: cloned})
			case o == nil:
				// Rounding edge: the leaf actually fits whole after all.
				fitted = append(fitted, model.Node{Element: f})
				continue
			default:
				fitted = append(fitted, model.Node{Element: f})
				remainder = append(remainder, model.Node{Element: o})
			}

		case child.Section != nil:
			recF, recR, rErr := partitionTree(eng, cfg, child.Section, bottom)
			if rErr != nil {
				return nil, nil, rErr
			}
			if len(recF) > 0 {
				fitted = append(fitted, model.Node{Section: buildSection(cfg, child.Section, recF)})
			}
			if len(recR) > 0 {
				remainder = append(remainder, model.Node{Section: buildSection(cfg, child.Section, recR)})
			} else if len(recF) == 0 {
				remainder = append(remainder, model.CloneNode(child, false))
			}
		}

		for j := i + 1; j < len(s.Children); j++ {
			remainder = append(remainder, model.CloneNode(s.Children[j], false))
		}
		return fitted, remainder, nil
	}
	return fitted, nil, nil
}

// nodeBottom returns the y-coordinate a Node's far edge sits at, and
// whether it carries enough geometry to answer (both variants require a
// Position and Size to have survived layout).
func nodeBottom(n model.Node) (float64, bool) {
	pos := n.Position()
	size := n.Size()
	if pos == nil || size == nil {
		return 0, false
	}
	return model.Bottom(*pos, *size), true
}

func nodeHeight(n model.Node) float64 {
	if size := n.Size(); size != nil {
		return size.H
	}
	return 0
}

// buildSection assembles a fresh Section around an already-partitioned
// children list, carrying over orig's Kind, directives, and (for the
// fitted half, where geometry is unchanged) position/width, while
// recomputing height from the actual children kept.
func buildSection(cfg layout.Config, orig *model.Section, children []model.Node) *model.Section {
	out := model.NewSection(orig.Kind)
	out.Directives = orig.Directives.Clone()
	out.Children = children

	var width float64
	if orig.Size != nil {
		width = orig.Size.W
	}
	if orig.Position != nil {
		p := *orig.Position
		out.Position = &p
	}
	out.Size = &model.Dimensions{W: width, H: sectionHeight(cfg, orig.Kind, children)}
	return out
}

func sectionHeight(cfg layout.Config, kind common.SectionKind, children []model.Node) float64 {
	if kind == common.SectionRow {
		var maxH float64
		for _, c := range children {
			if h := nodeHeight(c); h > maxH {
				maxH = h
			}
		}
		return maxH
	}

	var total float64
	for i, c := range children {
		if i > 0 {
			total += cfg.VSpacing
		}
		total += nodeHeight(c)
	}
	return total
}
