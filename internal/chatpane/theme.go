package chatpane

import (
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Theme struct {
	Background    rl.Color
	Panel         rl.Color
	PanelRaised   rl.Color
	Border        rl.Color
	Divider       rl.Color
	TextPrimary   rl.Color
	TextSecondary rl.Color
	TextMuted     rl.Color
	Accent        rl.Color
	Warning       rl.Color
	Danger        rl.Color
}

var paneTheme = Theme{
	Background:    rl.NewColor(0x14, 0x1A, 0x1F, 255), // #141A1F
	Panel:         rl.NewColor(0x1C, 0x23, 0x29, 255), // #1C2329
	PanelRaised:   rl.NewColor(0x21, 0x2A, 0x31, 255), // #212A31
	Border:        rl.NewColor(0x2E, 0x3A, 0x40, 255), // #2E3A40
	Divider:       rl.NewColor(0x26, 0x30, 0x38, 255), // #263038
	TextPrimary:   rl.NewColor(0xE8, 0xE2, 0xD8, 255), // #E8E2D8
	TextSecondary: rl.NewColor(0xA6, 0xAD, 0xB1, 255), // #A6ADB1
	TextMuted:     rl.NewColor(0x7D, 0x85, 0x8A, 255), // #7D858A
	Accent:        accentColors["ember"],
	Warning:       rl.NewColor(0xC1, 0x8B, 0x2F, 255), // #C18B2F
	Danger:        rl.NewColor(0xB8, 0x4A, 0x3A, 255), // #B84A3A
}

var accentColors = map[string]rl.Color{
	"ember":  rl.NewColor(0xD4, 0x6A, 0x1E, 255), // #D46A1E
	"forest": rl.NewColor(0x2F, 0x5D, 0x42, 255), // #2F5D42
	"amber":  rl.NewColor(0xC1, 0x8B, 0x2F, 255), // #C18B2F
}

// SetAccent switches the pane accent. Unknown names are ignored and reported
// back to the caller.
func SetAccent(name string) bool {
	c, ok := accentColors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	paneTheme.Accent = c
	return true
}

func AccentNames() []string {
	return []string{"ember", "forest", "amber"}
}

// ircPalette maps the transcoder's 16 color names to the classic client
// palette. Names the renderer does not know fall back to the primary text
// color.
var ircPalette = map[string]rl.Color{
	"white":   rl.NewColor(0xFF, 0xFF, 0xFF, 255),
	"black":   rl.NewColor(0x00, 0x00, 0x00, 255),
	"navy":    rl.NewColor(0x00, 0x00, 0x7F, 255),
	"green":   rl.NewColor(0x00, 0x93, 0x00, 255),
	"red":     rl.NewColor(0xFF, 0x00, 0x00, 255),
	"maroon":  rl.NewColor(0x7F, 0x00, 0x00, 255),
	"purple":  rl.NewColor(0x9C, 0x00, 0x9C, 255),
	"olive":   rl.NewColor(0xFC, 0x7F, 0x00, 255),
	"yellow":  rl.NewColor(0xFF, 0xFF, 0x00, 255),
	"lime":    rl.NewColor(0x00, 0xFC, 0x00, 255),
	"teal":    rl.NewColor(0x00, 0x93, 0x93, 255),
	"aqua":    rl.NewColor(0x00, 0xFF, 0xFF, 255),
	"blue":    rl.NewColor(0x00, 0x00, 0xFC, 255),
	"fuchsia": rl.NewColor(0xFF, 0x00, 0xFF, 255),
	"grey":    rl.NewColor(0x7F, 0x7F, 0x7F, 255),
	"silver":  rl.NewColor(0xD2, 0xD2, 0xD2, 255),
}

func ircColor(name string) rl.Color {
	if c, ok := ircPalette[name]; ok {
		return c
	}
	return paneTheme.TextPrimary
}

func drawPanel(rect rl.Rectangle, title string) {
	rl.DrawRectangleRounded(rect, 0.04, 8, paneTheme.Panel)
	rl.DrawRectangleRoundedLinesEx(rect, 0.04, 8, 2, paneTheme.Border)
	if title != "" {
		drawText(title, int32(rect.X)+12, int32(rect.Y)+8, titleFontSize, paneTheme.Accent)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
