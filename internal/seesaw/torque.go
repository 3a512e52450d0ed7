package seesaw

// Balance is the torque summary for one arrangement of objects.
type Balance struct {
	LeftTorque  float64
	RightTorque float64
	LeftWeight  int
	RightWeight int
	Target      float64
}

// Calculate sums weight×distance per side and derives the target tilt.
// Objects exactly on the pivot count toward neither side.
func Calculate(objects []Object, p Params) Balance {
	var b Balance
	for _, o := range objects {
		switch {
		case o.Position < 0:
			b.LeftTorque += -o.Position * float64(o.Weight)
			b.LeftWeight += o.Weight
		case o.Position > 0:
			b.RightTorque += o.Position * float64(o.Weight)
			b.RightWeight += o.Weight
		}
	}
	b.Target = TargetAngle(b.LeftTorque, b.RightTorque, p)
	return b
}

// TargetAngle is clamp((right-left)/divisor, ±max). Positive tilts the
// right end down.
func TargetAngle(left, right float64, p Params) float64 {
	divisor := p.AngleDivisor
	if divisor <= 0 {
		divisor = DefaultAngleDivisor
	}
	return Clamp((right-left)/divisor, -p.MaxAngle, p.MaxAngle)
}
