package seesaw

import "math"

// MaxTraceFrames bounds Trace for pathological parameters.
const MaxTraceFrames = 10000

// Animator eases the displayed angle toward the target. It is a plain
// first-order filter, not a physical spring.
type Animator struct {
	Stiffness float64
	Epsilon   float64
}

func NewAnimator(p Params) Animator {
	return Animator{Stiffness: p.Stiffness, Epsilon: p.Epsilon}
}

// Step returns the angle after one frame. The snap test uses the gap
// before the step is applied.
func (a Animator) Step(current, target float64) float64 {
	diff := target - current
	if math.Abs(diff) < a.Epsilon {
		return target
	}
	return current + diff*a.Stiffness
}

// Trace returns every frame from start until the angle reaches target,
// including start itself.
func (a Animator) Trace(start, target float64) []float64 {
	frames := []float64{start}
	cur := start
	for i := 0; i < MaxTraceFrames && cur != target; i++ {
		cur = a.Step(cur, target)
		frames = append(frames, cur)
	}
	return frames
}
