package model

import (
	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/directive"
)

// Node is one child of a Section: exactly one of Element or Section is
// non-nil. This mirrors the teacher's FlowItem pattern of a tagged struct
// rather than an interface, which keeps the section tree walkable without
// type switches at every call site.
type Node struct {
	Element *Element
	Section *Section
}

// IsElement reports whether this node wraps a leaf Element.
func (n Node) IsElement() bool { return n.Element != nil }

// IsSection reports whether this node wraps a nested Section.
func (n Node) IsSection() bool { return n.Section != nil }

// ObjectID returns the wrapped node's object id regardless of which variant
// is populated.
func (n Node) ObjectID() string {
	if n.Element != nil {
		return n.Element.ObjectID
	}
	if n.Section != nil {
		return n.Section.ObjectID
	}
	return ""
}

// Position returns the wrapped node's resolved position, or nil if unset.
func (n Node) Position() *Point {
	if n.Element != nil {
		return n.Element.Position
	}
	if n.Section != nil {
		return n.Section.Position
	}
	return nil
}

// Size returns the wrapped node's resolved size, or nil if unset.
func (n Node) Size() *Dimensions {
	if n.Element != nil {
		return n.Element.Size
	}
	if n.Section != nil {
		return n.Section.Size
	}
	return nil
}

// Section is an internal node of the slide's layout tree: a plain container
// (SectionLeaf), a horizontal Row of children laid out side by side, or a
// Column of children stacked vertically. Kind governs how layout.Calculator
// distributes space among Children.
type Section struct {
	ObjectID   string
	Kind       common.SectionKind
	Position   *Point
	Size       *Dimensions
	Directives directive.Map
	Children   []Node
}

// NewSection allocates a Section of the given kind with a fresh object id.
func NewSection(kind common.SectionKind) *Section {
	return &Section{
		ObjectID:   NewObjectID("sec"),
		Kind:       kind,
		Directives: directive.Map{},
	}
}

// Leaves returns every Element reachable from this section, depth-first,
// in document order. Used by the overflow detector and by diagnostics.
func (s *Section) Leaves() []*Element {
	var out []*Element
	for _, c := range s.Children {
		if c.Element != nil {
			out = append(out, c.Element)
		} else if c.Section != nil {
			out = append(out, c.Section.Leaves()...)
		}
	}
	return out
}

// IsEmpty reports whether this section has no children at all — the
// overflow handler's row-split path must still emit an empty sibling
// section (preserving its column geometry) rather than drop it, so call
// sites distinguish "empty" from "absent".
func (s *Section) IsEmpty() bool {
	return len(s.Children) == 0
}
