package overflow

import (
	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/model"
)

// splitList implements spec.md §4.5's List rule: accumulate whole
// top-level items (each including its nested subtree) while they fit;
// never split inside a single item.
func splitList(eng *metrics.Engine, e *model.Element, availableHeight float64) (fitted, overflow *model.Element) {
	items := e.List.Items
	var consumed float64
	var n int
	for _, item := range items {
		h := eng.ListItemHeight(e, item, e.Size.W)
		if consumed+h > availableHeight {
			break
		}
		consumed += h
		n++
	}
	if n == 0 {
		return nil, nil
	}
	if n >= len(items) {
		return e, nil
	}

	fitted = cloneListElement(e, items[:n])
	fitted.Size = &model.Dimensions{W: e.Size.W, H: consumed}
	overflow = cloneListElement(e, items[n:])
	return fitted, overflow
}

func cloneListElement(e *model.Element, items []model.ListItem) *model.Element {
	out := model.NewElement(e.Kind)
	out.Directives = e.Directives.Clone()
	out.List = &model.ListContent{
		Ordered: e.List.Ordered,
		Items:   model.CloneListItems(items),
	}
	return out
}
