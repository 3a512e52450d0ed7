package layout

import (
	"math"
	"strings"

	"github.com/san-kum/seesaw/internal/seesaw"
)

const (
	stageMargin = 30.0
	stageTop    = 120.0
	sidePanel   = 420.0
	stageAspect = 0.55
)

// Layout positions the plank container inside the window. The stage keeps
// its base width until the window is too narrow, then shrinks uniformly.
type Layout struct {
	Stage seesaw.Rect
	Scale float64
}

func New(screenW, screenH, baseWidth float64) Layout {
	if baseWidth <= 0 {
		baseWidth = 680
	}
	available := screenW - 2*stageMargin - sidePanel
	if available < baseWidth/4 {
		available = screenW - 2*stageMargin
	}
	scale := math.Max(math.Min(available/baseWidth, 1), 0.1)
	w := baseWidth * scale
	h := math.Min(w*stageAspect, math.Max(screenH-stageTop-160, 80))
	return Layout{
		Stage: seesaw.Rect{Left: stageMargin, Top: stageTop, Width: w, Height: h},
		Scale: scale,
	}
}

// ObjectRadius grows with weight so heavy objects read as heavy.
func ObjectRadius(weight int, scale float64) float64 {
	return (8 + float64(weight)*1.6) * scale
}

// Glyphs lists the runes the window font needs: printable ASCII plus the
// symbols used in journal lines and the HUD.
func Glyphs() []rune {
	glyphs := make([]rune, 0, 95+len(symbols))
	for r := rune(32); r < 127; r++ {
		glyphs = append(glyphs, r)
	}
	return append(glyphs, symbols...)
}

var symbols = []rune{'τ', 'θ', '°', '→', '…'}

var asciiSymbols = strings.NewReplacer("τ", "t", "θ", "angle ", "°", " deg", "→", "->", "…", "...")

// ASCII rewrites the symbols for fonts that only carry ASCII glyphs.
func ASCII(s string) string {
	return asciiSymbols.Replace(s)
}
