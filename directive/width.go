package directive

// WidthMode classifies how a child's width directive should be resolved
// within its row, per spec.md §4.3.
type WidthMode int

const (
	WidthImplicit WidthMode = iota
	WidthAbsolute
	WidthProportional
)

// ResolveWidth inspects a "width" directive value and classifies it.
// Absent or unrecognized kinds resolve to WidthImplicit.
func ResolveWidth(m Map) (mode WidthMode, value Value) {
	v, ok := m["width"]
	if !ok {
		return WidthImplicit, Value{}
	}
	switch v.Kind {
	case KindNumber:
		return WidthAbsolute, v
	case KindPercent, KindFraction:
		return WidthProportional, v
	default:
		return WidthImplicit, Value{}
	}
}

// WidthPlan is one row's worth of width-resolution inputs, one entry per
// child column in order.
type WidthPlan struct {
	Mode  WidthMode
	Value Value
}

// DistributeWidths implements spec.md §4.3's width resolution: absolute
// widths consume literal points, proportional widths consume a fraction of
// innerWidth, and the remainder is split equally among implicit children.
// If absolute+proportional exceed innerWidth, implicit children get zero and
// overflowed is true (the caller is responsible for logging the warning —
// this is never an error per spec.md).
func DistributeWidths(plans []WidthPlan, innerWidth float64) (widths []float64, overflowed bool) {
	widths = make([]float64, len(plans))

	var consumed float64
	var nImplicit int
	for i, p := range plans {
		switch p.Mode {
		case WidthAbsolute:
			widths[i] = p.Value.Number
			consumed += widths[i]
		case WidthProportional:
			pts, _ := p.Value.ResolvePoints(innerWidth)
			widths[i] = pts
			consumed += widths[i]
		default:
			nImplicit++
		}
	}

	remaining := innerWidth - consumed
	if remaining < 0 {
		overflowed = true
		remaining = 0
	}

	if nImplicit > 0 {
		each := remaining / float64(nImplicit)
		for i, p := range plans {
			if p.Mode == WidthImplicit {
				widths[i] = each
			}
		}
	}
	return widths, overflowed
}
