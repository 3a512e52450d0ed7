package config

import "sort"

// Preset is a named variation of the plank and animation constants.
type Preset struct {
	Length       float64
	MaxAngle     float64
	AngleDivisor float64
	Stiffness    float64
}

var Presets = map[string]*Preset{
	"classic": {Length: 400, MaxAngle: 30, AngleDivisor: 10, Stiffness: 0.08},
	"long":    {Length: 800, MaxAngle: 30, AngleDivisor: 20, Stiffness: 0.08},
	"springy": {Stiffness: 0.03},
	"stiff":   {MaxAngle: 15, Stiffness: 0.25},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
