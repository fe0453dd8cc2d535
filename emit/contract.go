package emit

import (
	"fmt"

	"github.com/arclio/markdowndeck/common"
	"github.com/arclio/markdowndeck/model"
)

// MaxImageURLBytes is the Slides API's hard limit on an image source URL
// (spec.md §6): "placeholder image URLs produced by the core must be
// under 2048 bytes". The downstream request builder is expected to check
// every Image element's URL against this before emitting a request.
const MaxImageURLBytes = 2048

// NeedsAutofitMarking reports whether el is a shape the request builder
// must explicitly mark non-autofit (spec.md §6: "every text shape is
// explicitly marked non-autofit") — the text-shape kinds (title,
// subtitle, text, both list kinds, code and footer). Table and Image
// elements report false.
func NeedsAutofitMarking(el *model.Element) bool {
	switch el.Kind {
	case common.ElementTitle, common.ElementSubtitle, common.ElementText,
		common.ElementBulletList, common.ElementOrderedList, common.ElementCode,
		common.ElementFooter:
		return true
	default:
		return false
	}
}

// IsLayoutSubtitlePlaceholder reports whether el must be emitted as a
// placeholder insertion into the slide layout's existing SUBTITLE
// placeholder shape rather than as a brand-new text box (spec.md §6).
// layoutHasSubtitlePlaceholder is supplied by the caller, since whether a
// chosen Slides layout exposes a SUBTITLE placeholder is a fact about the
// presentation's layouts, not about this element.
func IsLayoutSubtitlePlaceholder(el *model.Element, layoutHasSubtitlePlaceholder bool) bool {
	return el.Kind == common.ElementSubtitle && layoutHasSubtitlePlaceholder
}

// ValidateImageURL reports an error unless url is under MaxImageURLBytes — the
// request builder should call this on every Image element's resolved
// source (whether an author-supplied URL or one from
// CreatePlaceholderImageURL) before building the API request, since the
// Slides API itself rejects oversized URLs with an opaque 400.
func ValidateImageURL(url string) error {
	if len(url) >= MaxImageURLBytes {
		return fmt.Errorf("image URL is %d bytes, must be under the %d-byte Slides API limit", len(url), MaxImageURLBytes)
	}
	return nil
}
