package overflow

import (
	"strings"

	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/model"
)

// splitText implements spec.md §4.5's Text rule: wrap at the element's
// current width, then take the largest prefix of visual lines whose total
// height fits availableHeight. A paragraph with no newlines still wraps
// and splits, since WrapText always breaks on whitespace/character
// boundaries regardless of source line breaks.
func splitText(eng *metrics.Engine, e *model.Element, availableHeight float64) (fitted, overflow *model.Element) {
	lines, lineHeightPt := eng.TextLines(e, e.Size.W)
	if lineHeightPt <= 0 || len(lines) == 0 {
		return nil, nil
	}

	fitCount := int(availableHeight / lineHeightPt)
	if fitCount <= 0 {
		return nil, nil
	}
	if fitCount >= len(lines) {
		return e, nil
	}

	fitted = cloneTextElement(e, strings.Join(lines[:fitCount], "\n"))
	fitted.Size = &model.Dimensions{W: e.Size.W, H: float64(fitCount) * lineHeightPt}

	overflow = cloneTextElement(e, strings.Join(lines[fitCount:], "\n"))
	return fitted, overflow
}

func cloneTextElement(e *model.Element, text string) *model.Element {
	out := model.NewElement(e.Kind)
	out.Directives = e.Directives.Clone()
	out.Text = &model.TextContent{
		Runs:         []model.TextRun{{Text: text}},
		HeadingLevel: e.Text.HeadingLevel,
		Alignment:    e.Text.Alignment,
	}
	return out
}
