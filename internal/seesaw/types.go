package seesaw

import (
	"fmt"
	"math"
)

const (
	// StorageKey names the single persisted entry.
	StorageKey = "seesaw-physics-state-v1"

	DefaultPlankLength  = 400.0
	DefaultMaxAngle     = 30.0
	DefaultAngleDivisor = 10.0
	DefaultStiffness    = 0.08
	DefaultEpsilon      = 0.01

	MinWeight = 1
	MaxWeight = 10
)

// Params holds the plank and animation constants.
type Params struct {
	PlankLength  float64
	MaxAngle     float64
	AngleDivisor float64
	Stiffness    float64
	Epsilon      float64
}

func DefaultParams() Params {
	return Params{
		PlankLength:  DefaultPlankLength,
		MaxAngle:     DefaultMaxAngle,
		AngleDivisor: DefaultAngleDivisor,
		Stiffness:    DefaultStiffness,
		Epsilon:      DefaultEpsilon,
	}
}

// HalfLength is the largest distance an object may sit from the pivot.
func (p Params) HalfLength() float64 {
	return p.PlankLength / 2
}

func (p Params) Validate() error {
	switch {
	case p.PlankLength <= 0 || math.IsNaN(p.PlankLength):
		return fmt.Errorf("%w: plank length must be positive, got %v", ErrInvalidParams, p.PlankLength)
	case p.MaxAngle <= 0 || p.MaxAngle >= 90:
		return fmt.Errorf("%w: max angle must be in (0, 90), got %v", ErrInvalidParams, p.MaxAngle)
	case p.AngleDivisor <= 0:
		return fmt.Errorf("%w: angle divisor must be positive, got %v", ErrInvalidParams, p.AngleDivisor)
	case p.Stiffness <= 0 || p.Stiffness > 1:
		return fmt.Errorf("%w: stiffness must be in (0, 1], got %v", ErrInvalidParams, p.Stiffness)
	case p.Epsilon <= 0:
		return fmt.Errorf("%w: epsilon must be positive, got %v", ErrInvalidParams, p.Epsilon)
	}
	return nil
}

// Object is a weight resting on the plank. Position is the signed offset
// from the pivot in plank units; negative is the left side.
type Object struct {
	Position float64 `json:"position"`
	Weight   int     `json:"weight"`
	Color    string  `json:"color"`
}

// Side reports L, R or C for an object at the pivot.
func (o Object) Side() string {
	switch {
	case o.Position < 0:
		return "L"
	case o.Position > 0:
		return "R"
	}
	return "C"
}

// Snapshot is the persisted form of a simulation.
type Snapshot struct {
	Objects    []Object `json:"objects"`
	NextWeight int      `json:"nextWeight"`
	NextColor  string   `json:"nextColor"`
}

// Clamp bounds v to [lo, hi]. NaN is treated as 0, the pivot.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		v = 0
	}
	return math.Max(lo, math.Min(hi, v))
}

func ClampWeight(w int) int {
	if w < MinWeight {
		return MinWeight
	}
	if w > MaxWeight {
		return MaxWeight
	}
	return w
}
