// Package overflow implements spec.md §4.4-4.7: classifying a positioned
// slide as fitting or overflowing, splitting the overflowing prefix off
// into a continuation slide, and driving that process to a terminal state
// across passes.
package overflow

import (
	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/layout"
	"github.com/arclio/markdowndeck/model"
)

// geometricTolerance absorbs floating-point rounding at the fits/overflows
// boundary (spec.md §8 property 4 names a 1e-6 tolerance for row widths;
// the same order of magnitude applies here).
const geometricTolerance = 1e-6

// Classify implements spec.md §4.4: a positioned slide fits if its root
// section's bottom edge is at or above the body's bottom bound; it is
// degenerate if the root section has no leaves or a non-positive size in
// either dimension; otherwise it overflows.
func Classify(slide *model.Slide, cfg layout.Config) common.OverflowClass {
	root := slide.RootSection
	if root == nil || root.Size == nil || root.Position == nil {
		return common.Degenerate
	}
	if root.Size.W <= 0 || root.Size.H <= 0 || len(root.Leaves()) == 0 {
		return common.Degenerate
	}

	bodyBottom := cfg.BodyBottom(slide.FooterElement != nil)
	if model.Bottom(*root.Position, *root.Size) <= bodyBottom+geometricTolerance {
		return common.Fits
	}
	return common.Overflows
}
