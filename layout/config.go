// Package layout implements spec.md §4.3: walking an un-positioned Slide's
// section tree top-down, resolving widths per directive, and calling
// metrics to size and place every leaf and section.
package layout

// Margins is the inset, in points, reserved on each side of the slide
// before the body region begins.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Config holds every geometric constant the calculator needs. The zero
// value is not useful; callers should start from DefaultConfig.
type Config struct {
	SlideWidth  float64
	SlideHeight float64
	Margins     Margins

	// Gap is the horizontal spacing between a row's columns.
	Gap float64
	// VSpacing is the vertical spacing between successive children of a
	// column or section.
	VSpacing float64

	TitleZoneHeight    float64
	SubtitleZoneHeight float64
	FooterZoneHeight   float64
}

// DefaultConfig returns the constants spec.md §4.3 names: a 720×405pt
// slide, 50pt margins on every side, 10pt gaps/spacing, and
// title/subtitle/footer zones of 60/40/30pt.
func DefaultConfig() Config {
	return Config{
		SlideWidth:         720,
		SlideHeight:        405,
		Margins:            Margins{Top: 50, Right: 50, Bottom: 50, Left: 50},
		Gap:                10,
		VSpacing:           10,
		TitleZoneHeight:    60,
		SubtitleZoneHeight: 40,
		FooterZoneHeight:   30,
	}
}

// BodyOrigin returns the top-left corner of the body region: inside the
// margins, below whichever of the title/subtitle zones the slide actually
// uses.
func (c Config) BodyOrigin(hasTitle, hasSubtitle bool) (x, y float64) {
	x = c.Margins.Left
	y = c.Margins.Top
	if hasTitle {
		y += c.TitleZoneHeight
	}
	if hasSubtitle {
		y += c.SubtitleZoneHeight
	}
	return x, y
}

// BodyWidth returns the inner width available to the body region.
func (c Config) BodyWidth() float64 {
	return c.SlideWidth - c.Margins.Left - c.Margins.Right
}

// BodyBottom returns the y-coordinate the body region must not cross,
// i.e. the top edge of the footer zone (or the bottom margin, if the
// slide has no footer).
func (c Config) BodyBottom(hasFooter bool) float64 {
	bottom := c.SlideHeight - c.Margins.Bottom
	if hasFooter {
		bottom -= c.FooterZoneHeight
	}
	return bottom
}
