package metrics

import (
	"strings"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// ppem converts a point size into the fixed-point "pixels per em" unit
// golang.org/x/image/font/sfnt's glyph APIs expect. This engine has no
// notion of screen DPI — points and ppem are treated as the same unit
// throughout, which is self-consistent because every measurement in the
// pipeline goes through this one conversion.
func ppem(sizePt float64) fixed.Int26_6 {
	return fixed.I(int(sizePt))
}

// advance returns the horizontal advance, in points, of rendering r in face
// at sizePt. Unmapped glyphs (tofu) still report an advance so that layout
// degrades gracefully instead of treating the character as zero-width.
func advance(face *Face, r rune, sizePt float64) float64 {
	gid, err := face.sfnt.GlyphIndex(&face.buf, r)
	if err != nil {
		gid = 0
	}
	adv, err := face.sfnt.GlyphAdvance(&face.buf, gid, ppem(sizePt), font.HintingNone)
	if err != nil {
		return 0
	}
	return fixed26_6ToFloat(adv)
}

func fixed26_6ToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64.0
}

// textWidth returns the total rendered width, in points, of s in face at
// sizePt — the sum of each rune's advance. This is what word-wrapping and
// TextBBox's width measurement are built on.
func textWidth(face *Face, s string, sizePt float64) float64 {
	var w float64
	for _, r := range s {
		w += advance(face, r, sizePt)
	}
	return w
}

// lineHeight returns the nominal line height, in points, face reports at
// sizePt, scaled by lineSpacing (spec.md §6's `line-spacing` directive).
func lineHeight(face *Face, sizePt, lineSpacing float64) float64 {
	if lineSpacing <= 0 {
		lineSpacing = 1.0
	}
	m, err := face.sfnt.Metrics(&face.buf, ppem(sizePt), font.HintingNone)
	if err != nil {
		// A font whose metrics table can't be read is a measurement fault,
		// not a layout one — callers that need this to be infallible should
		// pre-validate the face at startup. Here we fall back to a
		// type-size-relative height so degenerate fonts never go to zero.
		return sizePt * 1.2 * lineSpacing
	}
	return fixed26_6ToFloat(m.Height) * lineSpacing
}

// normalize applies Unicode NFC normalization before measurement, so that a
// precomposed and a decomposed form of the same visible text (e.g. "é" as
// one rune vs "e"+combining acute) always measure identically.
func normalize(s string) string {
	return norm.NFC.String(s)
}

// WrapText wraps s into lines no wider than maxWidthPt when rendered in
// face at sizePt, using greedy whitespace-boundary wrapping. A single word
// wider than maxWidthPt is broken at the character boundary that best fits
// (spec.md §4.1's long-word fallback) rather than left overflowing the line.
func WrapText(face *Face, s string, sizePt, maxWidthPt float64) []string {
	s = normalize(s)
	if maxWidthPt <= 0 {
		return []string{s}
	}

	var lines []string
	for _, paragraph := range strings.Split(s, "\n") {
		lines = append(lines, wrapParagraph(face, paragraph, sizePt, maxWidthPt)...)
	}
	return lines
}

func wrapParagraph(face *Face, paragraph string, sizePt, maxWidthPt float64) []string {
	words := strings.FieldsFunc(paragraph, unicode.IsSpace)
	if len(words) == 0 {
		return []string{""}
	}

	spaceW := advance(face, ' ', sizePt)

	var lines []string
	var cur []string
	var curW float64

	flush := func() {
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, " "))
			cur = nil
			curW = 0
		}
	}

	for _, word := range words {
		ww := textWidth(face, word, sizePt)
		if ww > maxWidthPt {
			flush()
			lines = append(lines, breakLongWord(face, word, sizePt, maxWidthPt)...)
			continue
		}

		extra := ww
		if len(cur) > 0 {
			extra += spaceW
		}
		if curW+extra > maxWidthPt && len(cur) > 0 {
			flush()
			cur = append(cur, word)
			curW = ww
			continue
		}
		cur = append(cur, word)
		curW += extra
	}
	flush()

	if len(lines) == 0 {
		return []string{""}
	}
	return lines
}

// breakLongWord splits a single word wider than maxWidthPt at character
// boundaries, each resulting fragment no wider than maxWidthPt (except a
// lone oversized character, which is kept whole rather than dropped).
func breakLongWord(face *Face, word string, sizePt, maxWidthPt float64) []string {
	var out []string
	var cur []rune
	var curW float64

	for _, r := range word {
		rw := advance(face, r, sizePt)
		if curW+rw > maxWidthPt && len(cur) > 0 {
			out = append(out, string(cur))
			cur = nil
			curW = 0
		}
		cur = append(cur, r)
		curW += rw
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	if len(out) == 0 {
		return []string{word}
	}
	return out
}

// TextBBox measures s as it would be wrapped and rendered in face at
// sizePt within maxWidthPt, consulting cache first and storing the result
// on a miss. This is the single entry point the layout height functions
// use for every Title/Subtitle/Text/list-item measurement; the overflow
// detector itself compares positioned geometry and does not measure text.
func TextBBox(cache *Cache, face *Face, family string, bold, italic bool, s string, sizePt, maxWidthPt, lineSpacing float64) BBox {
	key := CacheKey{
		Text:        s,
		Family:      family,
		Bold:        bold,
		Italic:      italic,
		FontSizePt:  sizePt,
		MaxWidthPt:  maxWidthPt,
		LineSpacing: lineSpacing,
	}
	if cache != nil {
		if v, ok := cache.Get(key); ok {
			return v
		}
	}

	lines := WrapText(face, s, sizePt, maxWidthPt)
	lh := lineHeight(face, sizePt, lineSpacing)

	var maxW float64
	for _, l := range lines {
		if w := textWidth(face, l, sizePt); w > maxW {
			maxW = w
		}
	}

	bbox := BBox{
		Lines:  lines,
		Width:  maxW,
		Height: lh * float64(len(lines)),
	}
	if cache != nil {
		cache.Put(key, bbox)
	}
	return bbox
}
