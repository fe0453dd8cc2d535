// Package directive defines the typed values carried on Element and Section
// directive maps (spec.md §6). The directive lexer itself — turning raw
// Markdown bracket syntax like "[width=25%]" into these typed values — is an
// external collaborator and out of scope here; this package only models the
// result and the small amount of arithmetic layout needs to resolve it.
package directive

import "fmt"

// Kind tags which field of a Value is meaningful.
type Kind int

const (
	KindNumber Kind = iota
	KindPercent
	KindFraction
	KindColor
	KindString
)

// ColorForm distinguishes how a Color value was expressed.
type ColorForm int

const (
	ColorNamed ColorForm = iota
	ColorHex
	ColorRGB
)

// Color is the tagged variant for the `color` directive domain.
type Color struct {
	Form ColorForm
	Name string  // ColorNamed: CSS-style name, e.g. "coolGray"
	Hex  string  // ColorHex: "#rrggbb", already normalized lower-case with leading "#"
	R    float64 // ColorRGB, 0..255
	G    float64
	B    float64
}

// Value is the tagged union a directive resolves to. Exactly one accessor
// group is meaningful, selected by Kind.
type Value struct {
	Kind Kind

	Number float64 // KindNumber: absolute points

	Percent float64 // KindPercent: 0..100 meaning, i.e. "25%" -> 25

	FractionNum int // KindFraction: "N/M" -> Num=N, Den=M
	FractionDen int

	Color Color // KindColor

	Str string // KindString
}

// Number builds an absolute-point Value.
func Number(pts float64) Value { return Value{Kind: KindNumber, Number: pts} }

// Percent builds a percentage Value; pct is in 0..100 form ("25%" -> 25).
func Percent(pct float64) Value { return Value{Kind: KindPercent, Percent: pct} }

// Fraction builds a "num/den" Value.
func Fraction(num, den int) Value { return Value{Kind: KindFraction, FractionNum: num, FractionDen: den} }

// String builds a bare string Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Ratio returns num/den as a float64, or 0 if v is not a fraction or Den is
// zero (a malformed fraction directive resolves to 0 points).
func (v Value) Ratio() float64 {
	if v.Kind != KindFraction || v.FractionDen == 0 {
		return 0
	}
	return float64(v.FractionNum) / float64(v.FractionDen)
}

// ResolvePoints converts a width/height-domain Value into absolute points
// given the space it is proportional against. Returns (points, true) when
// the value is one of the point-denominated kinds (number/percent/fraction);
// returns (0, false) for KindString/KindColor, which carry no length.
func (v Value) ResolvePoints(against float64) (float64, bool) {
	switch v.Kind {
	case KindNumber:
		return v.Number, true
	case KindPercent:
		return (v.Percent / 100.0) * against, true
	case KindFraction:
		return v.Ratio() * against, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	switch v.Kind {
	case KindNumber:
		return fmt.Sprintf("%gpt", v.Number)
	case KindPercent:
		return fmt.Sprintf("%g%%", v.Percent)
	case KindFraction:
		return fmt.Sprintf("%d/%d", v.FractionNum, v.FractionDen)
	case KindColor:
		switch v.Color.Form {
		case ColorHex:
			return v.Color.Hex
		case ColorRGB:
			return fmt.Sprintf("rgb(%g,%g,%g)", v.Color.R, v.Color.G, v.Color.B)
		default:
			return v.Color.Name
		}
	default:
		return v.Str
	}
}

// Map is the directive set attached to any Section or Element, keyed by the
// directive names listed in spec.md §6 ("width", "height", "align",
// "fontsize", "line-spacing", "color", "padding", "gap").
type Map map[string]Value

// Clone returns a shallow copy safe to hand to a continuation slide — Value
// itself has no reference fields that mutate in place, so a map copy is a
// full copy.
func (m Map) Clone() Map {
	if m == nil {
		return nil
	}
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Number returns the resolved number for key, or def if absent or not an
// absolute-point number (KindNumber); percent and fraction values also
// yield def.
func (m Map) Number(key string, def float64) float64 {
	v, ok := m[key]
	if !ok {
		return def
	}
	if pts, ok := v.ResolvePoints(0); ok && v.Kind == KindNumber {
		return pts
	}
	return def
}

// String returns the string directive at key, or def if absent.
func (m Map) String(key, def string) string {
	v, ok := m[key]
	if !ok || v.Kind != KindString {
		return def
	}
	return v.Str
}

// Has reports whether key is present at all.
func (m Map) Has(key string) bool {
	_, ok := m[key]
	return ok
}
