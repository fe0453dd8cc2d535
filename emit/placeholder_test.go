package emit

import (
	"net/url"
	"strings"
	"testing"
)

func TestCreatePlaceholderImageURLShape(t *testing.T) {
	got := CreatePlaceholderImageURL(nil, 300, 200, "diagram of a pipeline")

	wantPrefix := "https://placehold.co/300x200/E2E8F0/94A3B8/png?text="
	if !strings.HasPrefix(got, wantPrefix) {
		t.Fatalf("CreatePlaceholderImageURL() = %q, want prefix %q", got, wantPrefix)
	}

	wantText := url.QueryEscape("diagram of a pipeline")
	if !strings.HasSuffix(got, wantText) {
		t.Errorf("CreatePlaceholderImageURL() = %q, want alt text encoded as %q", got, wantText)
	}
}

func TestCreatePlaceholderImageURLClampsNonPositiveDimensions(t *testing.T) {
	got := CreatePlaceholderImageURL(nil, 0, -5, "")
	if !strings.HasPrefix(got, "https://placehold.co/1x1/") {
		t.Errorf("CreatePlaceholderImageURL() = %q, want dimensions clamped to 1x1", got)
	}
}

func TestCreatePlaceholderImageURLStaysUnderAPILimit(t *testing.T) {
	longAlt := strings.Repeat("a very long alt description ", 40)
	got := CreatePlaceholderImageURL(nil, 800, 600, longAlt)
	if err := ValidateImageURL(got); err != nil {
		t.Errorf("ValidateImageURL() error = %v for a generated placeholder URL", err)
	}
}
