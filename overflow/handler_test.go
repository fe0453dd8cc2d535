package overflow

import (
	"testing"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/layout"
	"github.com/arclio/markdowndeck/model"
)

func elementAt(kind common.ElementKind, y, h float64) *model.Element {
	e := model.NewElement(kind)
	e.Position = &model.Point{X: 50, Y: y}
	e.Size = &model.Dimensions{W: 300, H: h}
	return e
}

// TestHandleMovesNonSplittableOverflowWhole exercises spec.md §4.6 step 3:
// a non-splittable leaf (Image) that overflows is moved to the
// continuation whole, marked OverflowMoved, while a sibling that already
// fits stays on the current slide.
func TestHandleMovesNonSplittableOverflowWhole(t *testing.T) {
	eng := testEngine(t)
	cfg := layout.DefaultConfig()

	fitsElem := elementAt(common.ElementText, 50, 50)     // bottom = 100, fits
	overflowElem := elementAt(common.ElementImage, 110, 300) // bottom = 410, overflows

	root := model.NewSection(common.SectionLeaf)
	root.Position = &model.Point{X: 50, Y: 50}
	root.Size = &model.Dimensions{W: 620, H: 360}
	root.Children = []model.Node{{Element: fitsElem}, {Element: overflowElem}}

	s := model.NewSlide()
	s.RootSection = root

	fitted, continuation, err := Handle(eng, cfg, s)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if continuation == nil {
		t.Fatal("Handle() continuation = nil, want a continuation slide")
	}

	if len(fitted.RootSection.Children) != 1 {
		t.Fatalf("fitted has %d children, want 1", len(fitted.RootSection.Children))
	}
	if fitted.RootSection.Children[0].Element.Kind != common.ElementText {
		t.Error("fitted should keep the element that already fit")
	}

	if len(continuation.RootSection.Children) != 1 {
		t.Fatalf("continuation has %d children, want 1", len(continuation.RootSection.Children))
	}
	moved := continuation.RootSection.Children[0].Element
	if moved.Kind != common.ElementImage {
		t.Error("continuation should carry the overflowing image")
	}
	if !moved.OverflowMoved {
		t.Error("the whole-moved element must be marked OverflowMoved")
	}
}

// TestHandleReturnsNilContinuationWhenEverythingFits covers spec.md §4.6
// step 5's safety valve: nothing to move means no continuation at all.
func TestHandleReturnsNilContinuationWhenEverythingFits(t *testing.T) {
	eng := testEngine(t)
	cfg := layout.DefaultConfig()

	root := model.NewSection(common.SectionLeaf)
	root.Position = &model.Point{X: 50, Y: 50}
	root.Size = &model.Dimensions{W: 620, H: 50}
	root.Children = []model.Node{{Element: elementAt(common.ElementText, 50, 50)}}

	s := model.NewSlide()
	s.RootSection = root

	fitted, continuation, err := Handle(eng, cfg, s)
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if continuation != nil {
		t.Errorf("Handle() continuation = %v, want nil", continuation)
	}
	if fitted != s {
		t.Error("Handle() should return the original slide unchanged when nothing overflows")
	}
}

// TestPartitionRowKeepsEveryColumnInBothHalves exercises spec.md §9's Open
// Question resolution: a row-level split always emits every column in
// both the fitted and remainder rows, even when a column contributes
// nothing to one side.
func TestPartitionRowKeepsEveryColumnInBothHalves(t *testing.T) {
	eng := testEngine(t)
	cfg := layout.DefaultConfig()
	bottom := cfg.BodyBottom(false)

	col1 := model.NewSection(common.SectionColumn)
	col1.Position = &model.Point{X: 50, Y: 50}
	col1.Size = &model.Dimensions{W: 300, H: 400}
	col1.Children = []model.Node{{Element: elementAt(common.ElementImage, 50, 400)}} // overflows entirely

	col2 := model.NewSection(common.SectionColumn)
	col2.Position = &model.Point{X: 360, Y: 50}
	col2.Size = &model.Dimensions{W: 300, H: 50}
	col2.Children = []model.Node{{Element: elementAt(common.ElementText, 50, 50)}} // fits entirely

	row := model.NewSection(common.SectionRow)
	row.Position = &model.Point{X: 50, Y: 50}
	row.Size = &model.Dimensions{W: 620, H: 400}
	row.Children = []model.Node{{Section: col1}, {Section: col2}}

	fitted, remainder, err := partitionTree(eng, cfg, row, bottom)
	if err != nil {
		t.Fatalf("partitionTree() error = %v", err)
	}
	if len(fitted) != 1 || len(remainder) != 1 {
		t.Fatalf("partitionTree() on a row must return exactly one fitted and one remainder row, got %d/%d", len(fitted), len(remainder))
	}

	fittedRow := fitted[0].Section
	remainderRow := remainder[0].Section
	if len(fittedRow.Children) != 2 {
		t.Errorf("fitted row has %d columns, want 2 (every column preserved)", len(fittedRow.Children))
	}
	if len(remainderRow.Children) != 2 {
		t.Errorf("remainder row has %d columns, want 2 (every column preserved)", len(remainderRow.Children))
	}

	if len(fittedRow.Children[0].Section.Children) != 0 {
		t.Error("fitted column 1 should be empty — its only element overflowed entirely")
	}
	if len(fittedRow.Children[1].Section.Children) != 1 {
		t.Error("fitted column 2 should keep its fitting element")
	}
	if len(remainderRow.Children[0].Section.Children) != 1 {
		t.Error("remainder column 1 should carry the overflowing image")
	}
	if len(remainderRow.Children[1].Section.Children) != 0 {
		t.Error("remainder column 2 should be empty — its only element fit entirely")
	}
}

// TestPartitionTreeRejectsNonColumnRowChild guards spec.md §7's grammar
// invariant: a row's children must all be columns.
func TestPartitionTreeRejectsNonColumnRowChild(t *testing.T) {
	eng := testEngine(t)
	cfg := layout.DefaultConfig()

	row := model.NewSection(common.SectionRow)
	row.Children = []model.Node{{Element: elementAt(common.ElementText, 50, 50)}}

	_, _, err := partitionTree(eng, cfg, row, cfg.BodyBottom(false))
	if err == nil {
		t.Fatal("partitionTree() error = nil, want a ProgrammingError for a non-section row child")
	}
	if _, ok := err.(*common.ProgrammingError); !ok {
		t.Errorf("partitionTree() error = %T, want *common.ProgrammingError", err)
	}
}
