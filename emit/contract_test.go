package emit

import (
	"strings"
	"testing"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/model"
)

func TestNeedsAutofitMarking(t *testing.T) {
	tests := []struct {
		kind common.ElementKind
		want bool
	}{
		{common.ElementTitle, true},
		{common.ElementText, true},
		{common.ElementTable, false},
		{common.ElementImage, false},
	}
	for _, tt := range tests {
		el := model.NewElement(tt.kind)
		if got := NeedsAutofitMarking(el); got != tt.want {
			t.Errorf("NeedsAutofitMarking(%v) = %v, want %v", tt.kind, got, tt.want)
		}
	}
}

func TestIsLayoutSubtitlePlaceholder(t *testing.T) {
	subtitle := model.NewElement(common.ElementSubtitle)
	text := model.NewElement(common.ElementText)

	if !IsLayoutSubtitlePlaceholder(subtitle, true) {
		t.Error("a subtitle element on a layout with a SUBTITLE placeholder must report true")
	}
	if IsLayoutSubtitlePlaceholder(subtitle, false) {
		t.Error("a subtitle element must not claim the placeholder contract when the layout has none")
	}
	if IsLayoutSubtitlePlaceholder(text, true) {
		t.Error("a non-subtitle element must never claim the placeholder contract")
	}
}

func TestValidateImageURL(t *testing.T) {
	if err := ValidateImageURL("https://example.com/short.png"); err != nil {
		t.Errorf("ValidateImageURL() error = %v for a short URL", err)
	}

	long := "https://example.com/" + strings.Repeat("a", MaxImageURLBytes)
	if err := ValidateImageURL(long); err == nil {
		t.Error("ValidateImageURL() error = nil, want an error for an oversized URL")
	}
}
