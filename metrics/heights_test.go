package metrics

import (
	"testing"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/model"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := NewEngine(64)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestTextElementHeightGrowsWithNarrowerWidth(t *testing.T) {
	e := testEngine(t)
	el := model.NewElement(common.ElementText)
	el.Text = &model.TextContent{Runs: []model.TextRun{{Text: "the quick brown fox jumps over the lazy dog repeatedly and often"}}}

	wide := e.TextElementHeight(el, 5000)
	narrow := e.TextElementHeight(el, 80)
	if narrow.Height <= wide.Height {
		t.Errorf("narrow width height %v should exceed wide width height %v", narrow.Height, wide.Height)
	}
}

func TestCodeElementHeightRespectsMinimum(t *testing.T) {
	e := testEngine(t)
	el := model.NewElement(common.ElementCode)
	el.Code = &model.CodeContent{Code: "x"}

	if got := e.CodeElementHeight(el, 400); got < MinCodeBlockHeightPt {
		t.Errorf("CodeElementHeight() = %v, want >= %v", got, MinCodeBlockHeightPt)
	}
}

func TestCodeElementHeightAddsLanguageLabel(t *testing.T) {
	e := testEngine(t)
	withoutLang := model.NewElement(common.ElementCode)
	withoutLang.Code = &model.CodeContent{Code: "line one\nline two\nline three\nline four\nline five"}

	withLang := model.NewElement(common.ElementCode)
	withLang.Code = &model.CodeContent{Code: withoutLang.Code.Code, Language: "go"}

	h1 := e.CodeElementHeight(withoutLang, 400)
	h2 := e.CodeElementHeight(withLang, 400)
	if h2-h1 != LanguageLabelHeightPt {
		t.Errorf("language label delta = %v, want %v", h2-h1, LanguageLabelHeightPt)
	}
}

func TestListElementHeightIncludesNestedItems(t *testing.T) {
	e := testEngine(t)
	el := model.NewElement(common.ElementBulletList)
	el.List = &model.ListContent{
		Items: []model.ListItem{
			{
				Runs: []model.TextRun{{Text: "top level item"}},
				Children: []model.ListItem{
					{Runs: []model.TextRun{{Text: "nested item"}}},
				},
			},
		},
	}

	flat := model.NewElement(common.ElementBulletList)
	flat.List = &model.ListContent{
		Items: []model.ListItem{
			{Runs: []model.TextRun{{Text: "top level item"}}},
		},
	}

	withNested := e.ListElementHeight(el, 300)
	withoutNested := e.ListElementHeight(flat, 300)
	if withNested <= withoutNested {
		t.Errorf("nested list height %v should exceed flat list height %v", withNested, withoutNested)
	}
}

func TestTableElementHeightIncludesHeaderRow(t *testing.T) {
	e := testEngine(t)
	withHeader := model.NewElement(common.ElementTable)
	withHeader.Table = &model.TableContent{
		Headers: []string{"Name", "Value"},
		Rows:    [][]string{{"a", "1"}, {"b", "2"}},
	}

	withoutHeader := model.NewElement(common.ElementTable)
	withoutHeader.Table = &model.TableContent{
		Rows: [][]string{{"a", "1"}, {"b", "2"}},
	}

	h1 := e.TableElementHeight(withHeader, 300)
	h2 := e.TableElementHeight(withoutHeader, 300)
	if h1 <= h2 {
		t.Errorf("table-with-header height %v should exceed table-without-header height %v", h1, h2)
	}
}
