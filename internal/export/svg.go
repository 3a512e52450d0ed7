package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/seesaw/internal/seesaw"
)

const (
	baseWidth   = 680.0
	stageAspect = 0.55
	thickness   = 16.0
)

// SceneToSVG draws the plank tilted by angleDeg with every object of snap
// resting on it. width is the image width in pixels.
func SceneToSVG(snap *seesaw.Snapshot, p seesaw.Params, angleDeg float64, width int) string {
	if width <= 0 {
		width = int(baseWidth)
	}
	scale := float64(width) / baseWidth
	r := seesaw.Rect{Width: float64(width), Height: float64(width) * stageAspect}
	px, py := r.Pivot()
	thick := thickness * scale
	half := p.HalfLength()

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, r.Width, r.Height, r.Width, r.Height))

	// pivot
	base := r.Height/2 - 4
	sb.WriteString(fmt.Sprintf(`<polygon points="%.1f,%.1f %.1f,%.1f %.1f,%.1f" fill="#5a5a5a"/>
`, px, py+thick/2, px-base/2, py+base, px+base/2, py+base))

	sb.WriteString(fmt.Sprintf(`<rect x="0" y="%.1f" width="%.1f" height="%.1f" fill="#966e46" transform="rotate(%.1f %.1f %.1f)"/>
`, py-thick/2, r.Width, thick, angleDeg, px, py))

	sb.WriteString(`<g font-family="monospace" text-anchor="middle" dominant-baseline="central">
`)
	for _, o := range snap.Objects {
		rad := (8 + float64(o.Weight)*1.6) * scale
		x, y := seesaw.PlankPoint(o.Position, thick/2+rad, half, r, angleDeg)
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>
<text x="%.1f" y="%.1f" font-size="%.1f" fill="#0a0a0a">%dkg</text>
`, x, y, rad, seesaw.HexColor(o.Color, "#b4b4b4"), x, y, 10*scale, o.Weight))
	}
	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// TraceToSVG plots an angle trace, one point per frame.
func TraceToSVG(trace []float64, width, height int, strokeColor string) string {
	if len(trace) < 2 {
		return ""
	}

	minY, maxY := trace[0], trace[0]
	for _, v := range trace {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}

	// Add padding
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	rangeX := float64(len(trace) - 1)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, v := range trace {
		x := float64(i) / rangeX * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
