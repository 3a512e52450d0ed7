package seesaw

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// RandomWeight draws a weight uniformly from [MinWeight, MaxWeight].
func RandomWeight(rng *rand.Rand) int {
	return rng.Intn(MaxWeight-MinWeight+1) + MinWeight
}

// RandomColor returns a saturated, mid-light hsl() colour with a random hue.
func RandomColor(rng *rand.Rand) string {
	hue := rng.Intn(360)
	sat := 65 + rng.Float64()*15
	light := 55 + rng.Float64()*10
	return FormatHSL(float64(hue), sat, light)
}

// FormatHSL renders the CSS form used in persisted state. s and l are percentages.
func FormatHSL(h, s, l float64) string {
	return fmt.Sprintf("hsl(%g, %g%%, %g%%)", h, s, l)
}

// ParseColor accepts hsl(h, s%, l%) and #rrggbb / #rgb.
func ParseColor(s string) (colorful.Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(expandShortHex(s))
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		return c, nil
	}
	if strings.HasPrefix(s, "hsl(") && strings.HasSuffix(s, ")") {
		body := strings.TrimSuffix(strings.TrimPrefix(s, "hsl("), ")")
		body = strings.ReplaceAll(body, "%", "")
		body = strings.ReplaceAll(body, ",", " ")
		fields := strings.Fields(body)
		if len(fields) != 3 {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		var hsl [3]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
			}
			hsl[i] = v
		}
		return colorful.Hsl(hsl[0], hsl[1]/100, hsl[2]/100).Clamped(), nil
	}
	return colorful.Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// HexColor converts any accepted colour to #rrggbb, falling back when the
// input cannot be parsed.
func HexColor(s, fallback string) string {
	c, err := ParseColor(s)
	if err != nil {
		return fallback
	}
	return c.Hex()
}

func expandShortHex(s string) string {
	if len(s) != 4 {
		return s
	}
	return "#" + strings.Repeat(s[1:2], 2) + strings.Repeat(s[2:3], 2) + strings.Repeat(s[3:4], 2)
}
