package overflow

import (
	"github.com/arclio/markdowndeck/directive"
	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/model"
)

// splitTable implements spec.md §4.5's Table rule: the fitted part keeps
// the header (if any) plus the largest prefix of rows whose combined
// height fits; the overflow part duplicates the header. If fewer than one
// data row fits, it returns (nil, nil), and the caller moves the whole
// table to the continuation as a non-splittable circuit-breaker case.
func splitTable(eng *metrics.Engine, e *model.Element, availableHeight float64) (fitted, overflow *model.Element) {
	t := e.Table
	cols := len(t.Headers)
	if cols == 0 && len(t.Rows) > 0 {
		cols = len(t.Rows[0])
	}
	if cols == 0 {
		return nil, nil
	}

	headerHeight := 0.0
	if t.HasHeader() {
		headerHeight = eng.TableRowHeight(t.Headers, e.Size.W, cols)
	}

	consumed := headerHeight
	var n int
	for _, row := range t.Rows {
		h := eng.TableRowHeight(row, e.Size.W, cols)
		if consumed+h > availableHeight {
			break
		}
		consumed += h
		n++
	}

	if n == 0 {
		return nil, nil
	}
	if n >= len(t.Rows) {
		return e, nil
	}

	fitted = cloneTableElement(e, t.Rows[:n], t.RowDirectives[:n])
	fitted.Size = &model.Dimensions{W: e.Size.W, H: consumed}
	overflow = cloneTableElement(e, t.Rows[n:], t.RowDirectives[n:])
	return fitted, overflow
}

// cloneTableElement builds a fresh Table element carrying e's header
// (always duplicated, per spec.md §4.5) and the given row subset. Delegates
// to model.CloneTableContent for the deep copy so row cells and per-row
// directive maps never alias the source table's backing storage.
func cloneTableElement(e *model.Element, dataRows [][]string, rowDirectives []directive.Map) *model.Element {
	out := model.NewElement(e.Kind)
	out.Directives = e.Directives.Clone()
	out.Table = model.CloneTableContent(&model.TableContent{
		Headers:          e.Table.Headers,
		HeaderDirectives: e.Table.HeaderDirectives,
		Rows:             dataRows,
		RowDirectives:    rowDirectives,
	})
	return out
}
