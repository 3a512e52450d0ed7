package seesaw

import "math"

// Rect is the plank container in viewport coordinates. The pivot sits at
// its centre and the plank spans its full width when level.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}

// Pivot returns the pivot in container-local coordinates.
func (r Rect) Pivot() (x, y float64) {
	return r.Width / 2, r.Height / 2
}

// Projection is a pointer expressed relative to the tilted plank.
type Projection struct {
	Parallel      float64 // signed distance along the plank, right positive
	Perpendicular float64 // unsigned distance from the plank's centre line
	PivotX        float64
	PivotY        float64
}

// Project rotates the pointer vector by -angle so distances are measured
// along and across the tilted plank.
func Project(x, y float64, r Rect, angleDeg float64) Projection {
	pivotX, pivotY := r.Pivot()
	vx := x - r.Left - pivotX
	vy := y - r.Top - pivotY

	ux, uy := unit(angleDeg)
	return Projection{
		Parallel:      vx*ux + vy*uy,
		Perpendicular: math.Abs(vx*uy - vy*ux),
		PivotX:        pivotX,
		PivotY:        pivotY,
	}
}

// OnPlank reports whether the pointer lies within the visible plank length
// and no further than thickness from its surface.
func (p Projection) OnPlank(thickness float64) bool {
	return math.Abs(p.Parallel) <= p.PivotX && p.Perpendicular <= thickness
}

// Position converts the parallel distance to a plank position in [-half, half].
func (p Projection) Position(half float64) float64 {
	if p.PivotX == 0 {
		return 0
	}
	return Clamp(p.Parallel/p.PivotX*half, -half, half)
}

// PlankPoint is the inverse of Project: the viewport point for a plank
// position, raised by lift along the plank's upward normal.
func PlankPoint(position, lift, half float64, r Rect, angleDeg float64) (x, y float64) {
	pivotX, pivotY := r.Pivot()
	d := 0.0
	if half != 0 {
		d = Clamp(position/half, -1, 1) * pivotX
	}
	ux, uy := unit(angleDeg)
	// screen y grows downward, so "up" relative to the plank is (uy, -ux)
	x = r.Left + pivotX + d*ux + lift*uy
	y = r.Top + pivotY + d*uy - lift*ux
	return x, y
}

func unit(angleDeg float64) (float64, float64) {
	rad := angleDeg * math.Pi / 180
	return math.Cos(rad), math.Sin(rad)
}
