package layout

import (
	"math"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name         string
		w, h         float64
		wantWidth    float64
		wantHeight   float64
		wantFullSize bool
	}{
		{"wide window keeps base width", 1280, 720, 680, 374, true},
		{"narrow window scales", 900, 720, 420, 231, false},
		{"tiny window drops side panel", 300, 720, 240, 132, false},
		{"scale never below floor", 50, 720, 68, 37.4, false},
		{"short window caps height", 1280, 300, 680, 80, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.w, tt.h, 680)
			if math.Abs(l.Stage.Width-tt.wantWidth) > 1e-9 {
				t.Errorf("width = %v, want %v", l.Stage.Width, tt.wantWidth)
			}
			if math.Abs(l.Stage.Height-tt.wantHeight) > 1e-9 {
				t.Errorf("height = %v, want %v", l.Stage.Height, tt.wantHeight)
			}
			if (l.Scale == 1) != tt.wantFullSize {
				t.Errorf("scale = %v", l.Scale)
			}
			if l.Scale > 1 || l.Scale < 0.1 {
				t.Errorf("scale %v outside [0.1, 1]", l.Scale)
			}
		})
	}
}

func TestNewDefaultBaseWidth(t *testing.T) {
	if l := New(1280, 720, 0); l.Stage.Width != 680 {
		t.Errorf("width = %v, want 680", l.Stage.Width)
	}
}

func TestObjectRadiusGrowsWithWeight(t *testing.T) {
	for w := 1; w < 10; w++ {
		if ObjectRadius(w+1, 1) <= ObjectRadius(w, 1) {
			t.Errorf("radius not increasing at weight %d", w)
		}
	}
	if ObjectRadius(5, 0.5) != ObjectRadius(5, 1)/2 {
		t.Error("radius should scale linearly")
	}
}

func TestGlyphsCoverSymbols(t *testing.T) {
	have := map[rune]bool{}
	for _, r := range Glyphs() {
		have[r] = true
	}
	for _, r := range "Drop w=5kg @ -40px (L) | τL=200, τR=0, θ=-20.0° → …" {
		if !have[r] {
			t.Errorf("missing glyph %q", r)
		}
	}
}

func TestASCII(t *testing.T) {
	got := ASCII("τL=200, θ=-20.0° → 0.0°")
	for _, r := range got {
		if r > 126 {
			t.Fatalf("non-ascii rune %q in %q", r, got)
		}
	}
	if !strings.Contains(got, "tL=200") {
		t.Errorf("got %q", got)
	}
}
