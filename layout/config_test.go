package layout

import "testing"

func TestDefaultConfigValues(t *testing.T) {
	c := DefaultConfig()

	if c.SlideWidth != 720 || c.SlideHeight != 405 {
		t.Errorf("slide size = %vx%v, want 720x405", c.SlideWidth, c.SlideHeight)
	}
	wantMargins := Margins{Top: 50, Right: 50, Bottom: 50, Left: 50}
	if c.Margins != wantMargins {
		t.Errorf("margins = %+v, want %+v", c.Margins, wantMargins)
	}
	if c.Gap != 10 || c.VSpacing != 10 {
		t.Errorf("gap/vspacing = %v/%v, want 10/10", c.Gap, c.VSpacing)
	}
	if c.TitleZoneHeight != 60 || c.SubtitleZoneHeight != 40 || c.FooterZoneHeight != 30 {
		t.Errorf("zone heights = %v/%v/%v, want 60/40/30", c.TitleZoneHeight, c.SubtitleZoneHeight, c.FooterZoneHeight)
	}
}

func TestBodyOrigin(t *testing.T) {
	c := DefaultConfig()

	tests := []struct {
		name                   string
		hasTitle, hasSubtitle  bool
		wantX, wantY           float64
	}{
		{"no meta", false, false, 50, 50},
		{"title only", true, false, 50, 110},
		{"title and subtitle", true, true, 50, 150},
		{"subtitle only", false, true, 50, 90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := c.BodyOrigin(tt.hasTitle, tt.hasSubtitle)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("BodyOrigin(%v, %v) = (%v, %v), want (%v, %v)", tt.hasTitle, tt.hasSubtitle, x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestBodyWidth(t *testing.T) {
	c := DefaultConfig()
	if got := c.BodyWidth(); got != 620 {
		t.Errorf("BodyWidth() = %v, want 620", got)
	}
}

func TestBodyBottom(t *testing.T) {
	c := DefaultConfig()
	if got := c.BodyBottom(false); got != 355 {
		t.Errorf("BodyBottom(false) = %v, want 355", got)
	}
	if got := c.BodyBottom(true); got != 325 {
		t.Errorf("BodyBottom(true) = %v, want 325", got)
	}
}
