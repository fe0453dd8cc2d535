package model

import (
	"testing"

	"github.com/arclio/markdowndeck/common"
)

func TestNodeAccessors(t *testing.T) {
	e := NewElement(common.ElementText)
	e.Position = &Point{X: 1, Y: 2}
	e.Size = &Dimensions{W: 3, H: 4}
	nodeEl := Node{Element: e}

	if !nodeEl.IsElement() || nodeEl.IsSection() {
		t.Error("Node wrapping Element misreported its variant")
	}
	if nodeEl.ObjectID() != e.ObjectID {
		t.Errorf("ObjectID() = %q, want %q", nodeEl.ObjectID(), e.ObjectID)
	}
	if nodeEl.Position() != e.Position {
		t.Error("Position() did not return the element's position")
	}

	s := NewSection(common.SectionLeaf)
	nodeSec := Node{Section: s}
	if !nodeSec.IsSection() || nodeSec.IsElement() {
		t.Error("Node wrapping Section misreported its variant")
	}
	if nodeSec.ObjectID() != s.ObjectID {
		t.Errorf("ObjectID() = %q, want %q", nodeSec.ObjectID(), s.ObjectID)
	}

	var empty Node
	if empty.ObjectID() != "" || empty.Position() != nil || empty.Size() != nil {
		t.Error("empty Node should report zero values")
	}
}

func TestSectionLeaves(t *testing.T) {
	root := NewSection(common.SectionRow)
	col := NewSection(common.SectionColumn)

	a := NewElement(common.ElementText)
	b := NewElement(common.ElementImage)
	c := NewElement(common.ElementFooter)

	col.Children = []Node{{Element: a}, {Element: b}}
	root.Children = []Node{{Section: col}, {Element: c}}

	leaves := root.Leaves()
	if len(leaves) != 3 {
		t.Fatalf("Leaves() returned %d elements, want 3", len(leaves))
	}
	if leaves[0] != a || leaves[1] != b || leaves[2] != c {
		t.Error("Leaves() did not preserve depth-first document order")
	}
}

func TestSectionIsEmpty(t *testing.T) {
	s := NewSection(common.SectionLeaf)
	if !s.IsEmpty() {
		t.Error("fresh section should be empty")
	}
	s.Children = append(s.Children, Node{Element: NewElement(common.ElementText)})
	if s.IsEmpty() {
		t.Error("section with a child reported empty")
	}
}
