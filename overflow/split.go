package overflow

import (
	"fmt"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/metrics"
	"github.com/arclio/markdowndeck/model"
)

// Split is the uniform entry point for the leaf split protocol (spec.md
// §4.5): given a positioned leaf element and the height available to it,
// return a fitted part and an overflow part. Both return values are nil
// when nothing meaningful fits (availableHeight smaller than one unit);
// fitted == e (the same pointer) with overflow == nil when e already fits
// whole.
//
// Image and Footer are non-splittable: calling Split on either is a
// ProgrammingError, since the overflow handler must route them through the
// whole-element circuit breaker instead (spec.md §4.6 step 3).
func Split(eng *metrics.Engine, e *model.Element, availableHeight float64) (fitted, overflow *model.Element, err error) {
	if !e.Splittable() {
		return nil, nil, &common.ProgrammingError{Reason: fmt.Sprintf("Split invoked on non-splittable element kind %s", e.Kind)}
	}

	switch e.Kind {
	case common.ElementTitle, common.ElementSubtitle, common.ElementText:
		fitted, overflow = splitText(eng, e, availableHeight)
	case common.ElementBulletList, common.ElementOrderedList:
		fitted, overflow = splitList(eng, e, availableHeight)
	case common.ElementTable:
		fitted, overflow = splitTable(eng, e, availableHeight)
	case common.ElementCode:
		fitted, overflow = splitCode(eng, e, availableHeight)
	default:
		return nil, nil, &common.ProgrammingError{Reason: fmt.Sprintf("Split has no rule for element kind %s", e.Kind)}
	}
	return fitted, overflow, nil
}
