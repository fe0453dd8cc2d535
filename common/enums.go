// Package common holds small shared enumerations used across the engine.
// Kept separate from model so that config and directive can both depend on
// it without creating an import cycle with the (much larger) model package.
package common

// ElementKind identifies the tagged variant a leaf Element holds.
type ElementKind int

const (
	ElementTitle ElementKind = iota
	ElementSubtitle
	ElementText
	ElementBulletList
	ElementOrderedList
	ElementTable
	ElementCode
	ElementImage
	ElementFooter
)

func (k ElementKind) String() string {
	switch k {
	case ElementTitle:
		return "title"
	case ElementSubtitle:
		return "subtitle"
	case ElementText:
		return "text"
	case ElementBulletList:
		return "bullet_list"
	case ElementOrderedList:
		return "ordered_list"
	case ElementTable:
		return "table"
	case ElementCode:
		return "code"
	case ElementImage:
		return "image"
	case ElementFooter:
		return "footer"
	default:
		return "unknown"
	}
}

// Splittable reports whether this kind ever participates in the leaf split
// protocol (spec.md §4.5). Footer and Image never do.
func (k ElementKind) Splittable() bool {
	switch k {
	case ElementImage, ElementFooter:
		return false
	default:
		return true
	}
}

// SectionKind identifies the variant a Section node holds.
type SectionKind int

const (
	SectionLeaf SectionKind = iota // "section" in spec.md terms: a leaf container
	SectionRow
	SectionColumn
)

func (k SectionKind) String() string {
	switch k {
	case SectionLeaf:
		return "section"
	case SectionRow:
		return "row"
	case SectionColumn:
		return "column"
	default:
		return "unknown"
	}
}

// Alignment is the resolved value of the `align` directive.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// ParseAlignment maps a directive keyword to an Alignment, defaulting to left.
func ParseAlignment(keyword string) Alignment {
	switch keyword {
	case "center":
		return AlignCenter
	case "right":
		return AlignRight
	default:
		return AlignLeft
	}
}

// Strategy selects the overflow-handling algorithm. Only STANDARD is defined
// by spec.md §9; the type exists so config.EngineConfig has somewhere to
// plug future strategies without a breaking change.
type Strategy int

const (
	StrategyStandard Strategy = iota
)

func (s Strategy) String() string {
	switch s {
	case StrategyStandard:
		return "STANDARD"
	default:
		return "unknown"
	}
}

// OverflowClass is the result of classifying a positioned slide (spec.md §4.4).
type OverflowClass int

const (
	Fits OverflowClass = iota
	Overflows
	Degenerate
)

func (c OverflowClass) String() string {
	switch c {
	case Fits:
		return "fits"
	case Overflows:
		return "overflows"
	case Degenerate:
		return "degenerate"
	default:
		return "unknown"
	}
}
