package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/seesaw/internal/gui/layout"
	"github.com/san-kum/seesaw/internal/seesaw"
)

func colorOf(s string) rl.Color {
	c, err := seesaw.ParseColor(s)
	if err != nil {
		return ColAccent
	}
	r, g, b := c.RGB255()
	return rl.NewColor(r, g, b, 255)
}

func (a *App) drawStage() {
	st := a.Layout.Stage
	scale := a.Layout.Scale
	angle := a.Sim.Angle()
	half := a.Sim.Params().HalfLength()
	thick := a.Cfg.Plank.Thickness * scale
	px, py := st.Pivot()
	cx, cy := float32(st.Left+px), float32(st.Top+py)

	rl.DrawRectangleLinesEx(rl.NewRectangle(float32(st.Left), float32(st.Top), float32(st.Width), float32(st.Height)), 1, ColGrid)

	// pivot
	base := float32(st.Height/2) - 4
	rl.DrawTriangle(
		rl.NewVector2(cx, cy+float32(thick/2)),
		rl.NewVector2(cx-base/2, cy+base),
		rl.NewVector2(cx+base/2, cy+base),
		ColPivot,
	)

	plank := rl.NewRectangle(cx, cy, float32(st.Width), float32(thick))
	rl.DrawRectanglePro(plank, rl.NewVector2(float32(st.Width/2), float32(thick/2)), float32(angle), ColPlank)

	for _, o := range a.Sim.Objects() {
		a.drawObject(o.Position, o.Weight, o.Color, 255, half, thick)
	}
	if a.hovering {
		a.drawObject(a.hoverPos, a.Sim.NextWeight(), a.Sim.NextColor(), 110, half, thick)
	}
}

func (a *App) drawObject(pos float64, weight int, color string, alpha uint8, half, thick float64) {
	r := layout.ObjectRadius(weight, a.Layout.Scale)
	x, y := seesaw.PlankPoint(pos, thick/2+r, half, a.Layout.Stage, a.Sim.Angle())
	col := colorOf(color)
	col.A = alpha
	rl.DrawCircle(int32(x), int32(y), float32(r), col)

	label := fmt.Sprintf("%d kg", weight)
	size := float32(11 * a.Layout.Scale)
	if size < 9 {
		size = 9
	}
	m := rl.MeasureTextEx(a.Font, label, size, 1)
	rl.DrawTextEx(a.Font, label, rl.NewVector2(float32(x)-m.X/2, float32(y)-m.Y/2), size, 1, ColBg)
}
