package export

import (
	"strings"
	"testing"

	"github.com/san-kum/seesaw/internal/seesaw"
)

func TestSceneToSVG(t *testing.T) {
	snap := &seesaw.Snapshot{Objects: []seesaw.Object{
		{Position: -100, Weight: 3, Color: "hsl(120, 70%, 60%)"},
		{Position: 150, Weight: 8, Color: "#ff0000"},
	}}
	svg := SceneToSVG(snap, seesaw.DefaultParams(), 12.5, 680)

	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not a complete svg document")
	}
	if n := strings.Count(svg, "<circle"); n != 2 {
		t.Errorf("expected 2 objects, got %d", n)
	}
	if !strings.Contains(svg, "rotate(12.5 340.0 187.0)") {
		t.Error("plank not rotated about the pivot")
	}
	if !strings.Contains(svg, `fill="#ff0000"`) {
		t.Error("object colour missing")
	}
	if !strings.Contains(svg, ">8kg<") {
		t.Error("weight label missing")
	}
}

func TestSceneToSVGDefaultWidth(t *testing.T) {
	svg := SceneToSVG(&seesaw.Snapshot{}, seesaw.DefaultParams(), 0, 0)
	if !strings.Contains(svg, `width="680"`) {
		t.Error("expected base width")
	}
	if strings.Contains(svg, "<circle") {
		t.Error("empty plank should have no objects")
	}
}

func TestTraceToSVG(t *testing.T) {
	if TraceToSVG([]float64{1}, 100, 50, "#fff") != "" {
		t.Error("single point should not plot")
	}

	trace := seesaw.NewAnimator(seesaw.DefaultParams()).Trace(0, 20)
	svg := TraceToSVG(trace, 400, 100, "#00ff88")
	if got := strings.Count(svg, " L"); got != len(trace)-1 {
		t.Errorf("expected %d segments, got %d", len(trace)-1, got)
	}
	if !strings.Contains(svg, "M0.0,") {
		t.Error("path should start at the left edge")
	}
}
