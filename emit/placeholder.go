// Package emit holds the thin, downstream-contract-compliance helpers a
// Slides API request builder needs from this engine — it is not a request
// builder itself (that layer lives outside this module).
package emit

import (
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"
)

// placeholderBackground and placeholderForeground are the fixed coolGray
// tones the original placeholder service contract used (light background,
// medium-gray text), carried forward unchanged so a deck viewed before and
// after this port looks the same.
const (
	placeholderBackground = "E2E8F0"
	placeholderForeground = "94A3B8"
)

// CreatePlaceholderImageURL builds a placehold.co URL standing in for an
// Image element with no resolvable source. width and height are clamped to
// a minimum of 1 — the placeholder service rejects zero or negative
// dimensions — and alt is percent-encoded into the image's rendered text,
// dropping trailing characters of alt as needed so the whole URL stays
// under MaxImageURLBytes.
//
// log may be nil; a nop logger is substituted, matching this package's
// other entry points.
func CreatePlaceholderImageURL(log *zap.Logger, width, height int, alt string) string {
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("emit")

	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	prefix := fmt.Sprintf("https://placehold.co/%dx%d/%s/%s/png?text=",
		width, height, placeholderBackground, placeholderForeground)
	text := url.QueryEscape(alt)
	if budget := MaxImageURLBytes - 1 - len(prefix); len(text) > budget {
		var b strings.Builder
		for _, r := range alt {
			esc := url.QueryEscape(string(r))
			if b.Len()+len(esc) > budget {
				break
			}
			b.WriteString(esc)
		}
		text = b.String()
	}
	u := prefix + text

	log.Debug("generated placeholder image URL",
		zap.Int("width", width), zap.Int("height", height), zap.String("url", u))
	return u
}
