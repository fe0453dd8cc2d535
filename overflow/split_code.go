package overflow

import (
	"strings"

	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/model"
)

// splitCode implements spec.md §4.5's Code rule: split on source-line
// boundaries, taking the largest prefix whose rendered height fits. The
// fixed padding/language-label terms apply once to the whole block, so
// they are charged against the fitted part only — the overflow part is
// re-measured fresh by the layout pass that follows.
func splitCode(eng *metrics.Engine, e *model.Element, availableHeight float64) (fitted, overflow *model.Element) {
	lines := e.Code.Lines()
	if len(lines) == 0 {
		return nil, nil
	}

	budget := availableHeight - 2*metrics.PaddingCodeBlockPt
	if e.Code.Language != "" {
		budget -= metrics.LanguageLabelHeightPt
	}

	var consumed float64
	var n int
	for _, line := range lines {
		h := eng.CodeLineHeight(line, e.Size.W)
		if consumed+h > budget {
			break
		}
		consumed += h
		n++
	}

	if n == 0 {
		return nil, nil
	}
	if n >= len(lines) {
		return e, nil
	}

	fitted = cloneCodeElement(e, strings.Join(lines[:n], "\n"))
	fitted.Size = &model.Dimensions{W: e.Size.W, H: eng.CodeElementHeight(fitted, e.Size.W)}
	overflow = cloneCodeElement(e, strings.Join(lines[n:], "\n"))
	overflow.Size = &model.Dimensions{W: e.Size.W, H: eng.CodeElementHeight(overflow, e.Size.W)}
	return fitted, overflow
}

func cloneCodeElement(e *model.Element, code string) *model.Element {
	out := model.NewElement(e.Kind)
	out.Directives = e.Directives.Clone()
	out.Code = &model.CodeContent{Code: code, Language: e.Code.Language}
	return out
}
