package chatpane

import (
	"math"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	titleFontSize  int32 = 20
	senderFontSize int32 = 18
	bodyFontSize   int32 = 18
	inputFontSize  int32 = 20
	hintFontSize   int32 = 16
)

type typographyState struct {
	base       rl.Font
	italic     rl.Font
	ownsBase   bool
	ownsItalic bool
	lineFactor float32
}

var uiType = typographyState{lineFactor: 1.3}

// MeasureFunc measures rendered text width in pixels. The renderers take it
// as a parameter so layout stays testable without a window.
type MeasureFunc func(text string, size int32) int32

// InitTypography loads the pane fonts. fontPath, when non-empty, is tried
// first; the bundled candidates and raylib's builtin font are the fallback.
// Must run after rl.InitWindow.
func InitTypography(fontPath string) {
	uiType.base = rl.GetFontDefault()
	uiType.italic = uiType.base

	candidates := []string{
		filepath.Join("assets", "fonts", "Inter-Regular.ttf"),
		filepath.Join("assets", "fonts", "IBMPlexSans-Regular.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Regular.ttf"),
	}
	if fontPath != "" {
		candidates = append([]string{fontPath}, candidates...)
	}
	if f, ok := loadFontFromCandidates(candidates, 36); ok {
		uiType.base = f
		uiType.ownsBase = true
	}
	italicCandidates := []string{
		filepath.Join("assets", "fonts", "Inter-Italic.ttf"),
		filepath.Join("assets", "fonts", "IBMPlexSans-Italic.ttf"),
		filepath.Join("assets", "fonts", "NotoSans-Italic.ttf"),
	}
	if f, ok := loadFontFromCandidates(italicCandidates, 36); ok {
		uiType.italic = f
		uiType.ownsItalic = true
	} else {
		uiType.italic = uiType.base
	}

	rl.SetTextureFilter(uiType.base.Texture, rl.FilterBilinear)
}

func ShutdownTypography() {
	if uiType.ownsItalic && uiType.italic.Texture.ID != 0 && uiType.italic.Texture.ID != uiType.base.Texture.ID {
		rl.UnloadFont(uiType.italic)
	}
	if uiType.ownsBase && uiType.base.Texture.ID != 0 {
		rl.UnloadFont(uiType.base)
	}
	uiType = typographyState{lineFactor: 1.3}
}

func loadFontFromCandidates(candidates []string, fontSize int32) (rl.Font, bool) {
	for _, path := range candidates {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		font := rl.LoadFontEx(path, fontSize, nil, 0)
		if font.Texture.ID == 0 {
			continue
		}
		return font, true
	}
	return rl.Font{}, false
}

func drawText(text string, x, y, fontSize int32, clr rl.Color) {
	if uiType.base.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		return
	}
	rl.DrawTextEx(uiType.base, text, rl.Vector2{X: float32(x), Y: float32(y)}, float32(fontSize), 1, clr)
}

// drawStyledText renders one fragment. Bold is synthesized with a 1px
// double draw; italic uses the italic face when one loaded.
func drawStyledText(text string, x, y, fontSize int32, clr rl.Color, bold, italic bool) {
	font := uiType.base
	if italic && uiType.italic.Texture.ID != 0 {
		font = uiType.italic
	}
	if font.Texture.ID == 0 {
		rl.DrawText(text, x, y, fontSize, clr)
		if bold {
			rl.DrawText(text, x+1, y, fontSize, clr)
		}
		return
	}
	pos := rl.Vector2{X: float32(x), Y: float32(y)}
	rl.DrawTextEx(font, text, pos, float32(fontSize), 1, clr)
	if bold {
		pos.X++
		rl.DrawTextEx(font, text, pos, float32(fontSize), 1, clr)
	}
}

// MeasureText is the production MeasureFunc.
func MeasureText(text string, fontSize int32) int32 {
	if uiType.base.Texture.ID == 0 {
		return int32(rl.MeasureText(text, fontSize))
	}
	return int32(math.Round(float64(rl.MeasureTextEx(uiType.base, text, float32(fontSize), 1).X)))
}

func textLineHeight(size int32) int32 {
	if size < 1 {
		size = 1
	}
	return int32(math.Round(float64(size) * float64(uiType.lineFactor)))
}
