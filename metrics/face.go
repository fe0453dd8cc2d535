// Package metrics implements spec.md §4.1: deterministic, font-based text
// measurement. Every height/width the layout calculator relies on is
// produced here from actual glyph advances and font metrics, never from a
// fixed character-count heuristic — the one exception is code block height,
// which spec.md §4.2 defines via a monospace heuristic instead of shaping
// (see heights.go).
package metrics

import (
	"fmt"
	"strings"

	"github.com/go-fonts/liberation/liberationmonobold"
	"github.com/go-fonts/liberation/liberationmonobolditalic"
	"github.com/go-fonts/liberation/liberationmonoitalic"
	"github.com/go-fonts/liberation/liberationmonoregular"
	"github.com/go-fonts/liberation/liberationsansbold"
	"github.com/go-fonts/liberation/liberationsansbolditalic"
	"github.com/go-fonts/liberation/liberationsansitalic"
	"github.com/go-fonts/liberation/liberationsansregular"
	"github.com/go-fonts/liberation/liberationserifbold"
	"github.com/go-fonts/liberation/liberationserifbolditalic"
	"github.com/go-fonts/liberation/liberationserifitalic"
	"github.com/go-fonts/liberation/liberationserifregular"
	xfnt "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
)

// Font identifies a parsed typeface by the three attributes layout cares
// about: family name, slant, and weight.
type Font struct {
	Typeface string
	Style    xfnt.Style
	Weight   xfnt.Weight
}

// Face pairs a parsed sfnt.Font with the Font identity extracted from its
// name table, and the buffer glyph lookups reuse.
type Face struct {
	Font Font

	sfnt *sfnt.Font
	buf  sfnt.Buffer
}

// faceFrom parses raw TTF/OTF bytes and classifies the resulting font by
// family, style and weight, read out of the font's own name table rather
// than supplied by the caller — so a face always reports what it actually
// is.
func faceFrom(raw []byte) (*Face, error) {
	f, err := sfnt.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("metrics: parse font: %w", err)
	}

	face := &Face{sfnt: f}

	family, err := f.Name(&face.buf, sfnt.NameIDFamily)
	if err != nil {
		return nil, fmt.Errorf("metrics: read font family name: %w", err)
	}
	sub, err := f.Name(&face.buf, sfnt.NameIDSubfamily)
	if err != nil {
		sub = ""
	}

	face.Font = Font{
		Typeface: family,
		Style:    styleFromSubfamily(sub),
		Weight:   weightFromSubfamily(sub),
	}
	return face, nil
}

func styleFromSubfamily(sub string) xfnt.Style {
	if strings.Contains(strings.ToLower(sub), "italic") || strings.Contains(strings.ToLower(sub), "oblique") {
		return xfnt.StyleItalic
	}
	return xfnt.StyleNormal
}

func weightFromSubfamily(sub string) xfnt.Weight {
	if strings.Contains(strings.ToLower(sub), "bold") {
		return xfnt.WeightBold
	}
	return xfnt.WeightNormal
}

// FontSet is the small registry of embedded faces this engine ships,
// looked up by family name plus bold/italic flags — spec.md §4.1 requires
// measurement be possible with no external font files present.
type FontSet struct {
	faces map[fontKey]*Face
}

type fontKey struct {
	family string
	bold   bool
	italic bool
}

const (
	// FamilySans is the default typeface used for Title/Subtitle/Text/List
	// elements unless a directive overrides it.
	FamilySans = "Liberation Sans"
	// FamilySerif is available for elements that request it explicitly.
	FamilySerif = "Liberation Serif"
	// FamilyMono is the embedded monospace family. Code element height
	// (body and language label) is computed by the monospace heuristic in
	// heights.go, not by shaping through this face.
	FamilyMono = "Liberation Mono"
)

type embeddedFont struct {
	family string
	bold   bool
	italic bool
	ttf    []byte
}

var embeddedFonts = []embeddedFont{
	{FamilySans, false, false, liberationsansregular.TTF},
	{FamilySans, true, false, liberationsansbold.TTF},
	{FamilySans, false, true, liberationsansitalic.TTF},
	{FamilySans, true, true, liberationsansbolditalic.TTF},
	{FamilySerif, false, false, liberationserifregular.TTF},
	{FamilySerif, true, false, liberationserifbold.TTF},
	{FamilySerif, false, true, liberationserifitalic.TTF},
	{FamilySerif, true, true, liberationserifbolditalic.TTF},
	{FamilyMono, false, false, liberationmonoregular.TTF},
	{FamilyMono, true, false, liberationmonobold.TTF},
	{FamilyMono, false, true, liberationmonoitalic.TTF},
	{FamilyMono, true, true, liberationmonobolditalic.TTF},
}

// NewDefaultFontSet parses and indexes every embedded Liberation face. It
// is called once at engine startup (metrics.NewEngine); parse errors
// here indicate a corrupt embed and are fatal.
func NewDefaultFontSet() (*FontSet, error) {
	fs := &FontSet{faces: make(map[fontKey]*Face, len(embeddedFonts))}
	for _, ef := range embeddedFonts {
		face, err := faceFrom(ef.ttf)
		if err != nil {
			return nil, fmt.Errorf("metrics: load embedded font %s bold=%t italic=%t: %w", ef.family, ef.bold, ef.italic, err)
		}
		fs.faces[fontKey{ef.family, ef.bold, ef.italic}] = face
	}
	return fs, nil
}

// Face returns the best-matching face for a (family, bold, italic) request.
// An unknown family falls back to FamilySans; a missing bold/italic
// combination falls back to the upright regular weight, matching how a
// slide renderer degrades missing font variants rather than erroring.
func (fs *FontSet) Face(family string, bold, italic bool) *Face {
	if f, ok := fs.faces[fontKey{family, bold, italic}]; ok {
		return f
	}
	if f, ok := fs.faces[fontKey{FamilySans, bold, italic}]; ok {
		return f
	}
	return fs.faces[fontKey{FamilySans, false, false}]
}
