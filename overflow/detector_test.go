package overflow

import (
	"testing"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/layout"
	"github.com/arclio/markdowndeck/model"
)

func TestClassifyFits(t *testing.T) {
	cfg := layout.DefaultConfig()
	s := model.NewSlide()
	s.RootSection = &model.Section{
		Kind:     common.SectionLeaf,
		Position: &model.Point{X: 50, Y: 50},
		Size:     &model.Dimensions{W: 620, H: 100},
		Children: []model.Node{{Element: model.NewElement(common.ElementText)}},
	}

	if got := Classify(s, cfg); got != common.Fits {
		t.Errorf("Classify() = %v, want Fits", got)
	}
}

func TestClassifyOverflows(t *testing.T) {
	cfg := layout.DefaultConfig()
	s := model.NewSlide()
	s.RootSection = &model.Section{
		Kind:     common.SectionLeaf,
		Position: &model.Point{X: 50, Y: 50},
		Size:     &model.Dimensions{W: 620, H: 1000},
		Children: []model.Node{{Element: model.NewElement(common.ElementText)}},
	}

	if got := Classify(s, cfg); got != common.Overflows {
		t.Errorf("Classify() = %v, want Overflows", got)
	}
}

func TestClassifyDegenerateWhenNoLeaves(t *testing.T) {
	cfg := layout.DefaultConfig()
	s := model.NewSlide()
	s.RootSection = &model.Section{
		Kind:     common.SectionLeaf,
		Position: &model.Point{X: 50, Y: 50},
		Size:     &model.Dimensions{W: 620, H: 10},
	}

	if got := Classify(s, cfg); got != common.Degenerate {
		t.Errorf("Classify() = %v, want Degenerate", got)
	}
}

func TestClassifyDegenerateWhenUnpositioned(t *testing.T) {
	cfg := layout.DefaultConfig()
	s := model.NewSlide()
	s.RootSection = model.NewSection(common.SectionLeaf)

	if got := Classify(s, cfg); got != common.Degenerate {
		t.Errorf("Classify() = %v, want Degenerate", got)
	}
}
