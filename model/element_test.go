package model

import (
	"testing"

	"github.com/arclio/markdowndeck/common"
)

func TestTextContentPlainText(t *testing.T) {
	tests := []struct {
		name string
		t    *TextContent
		want string
	}{
		{"nil", nil, ""},
		{"empty", &TextContent{}, ""},
		{"single run", &TextContent{Runs: []TextRun{{Text: "hello"}}}, "hello"},
		{
			"multiple runs concatenate",
			&TextContent{Runs: []TextRun{{Text: "hello "}, {Text: "world", Bold: true}}},
			"hello world",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.t.PlainText(); got != tt.want {
				t.Errorf("PlainText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCodeContentLines(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []string
	}{
		{"empty", "", nil},
		{"single line", "x := 1", []string{"x := 1"}},
		{"two lines no trailing newline", "a\nb", []string{"a", "b"}},
		{"trailing newline no phantom line", "a\nb\n", []string{"a", "b"}},
		{"interior blank line preserved", "a\n\nb", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &CodeContent{Code: tt.code}
			got := c.Lines()
			if len(got) != len(tt.want) {
				t.Fatalf("Lines() = %#v, want %#v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Lines()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTableContentHasHeader(t *testing.T) {
	if (&TableContent{}).HasHeader() {
		t.Error("HasHeader() on empty table = true, want false")
	}
	if !(&TableContent{Headers: []string{"a", "b"}}).HasHeader() {
		t.Error("HasHeader() with headers = false, want true")
	}
}

func TestNewElement(t *testing.T) {
	e := NewElement(common.ElementText)
	if e.Kind != common.ElementText {
		t.Errorf("Kind = %v, want %v", e.Kind, common.ElementText)
	}
	if e.ObjectID == "" {
		t.Error("ObjectID is empty")
	}
	if e.Directives == nil {
		t.Error("Directives is nil")
	}
}

func TestElementSplittable(t *testing.T) {
	tests := []struct {
		kind common.ElementKind
		want bool
	}{
		{common.ElementText, true},
		{common.ElementBulletList, true},
		{common.ElementTable, true},
		{common.ElementCode, true},
		{common.ElementImage, false},
		{common.ElementFooter, false},
	}
	for _, tt := range tests {
		e := NewElement(tt.kind)
		if got := e.Splittable(); got != tt.want {
			t.Errorf("Splittable() for %v = %t, want %t", tt.kind, got, tt.want)
		}
	}
}
