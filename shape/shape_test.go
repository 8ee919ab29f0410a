package shape

import (
	"math"
	"testing"

	"github.com/automoto/squaretoplus/canvas"
	"github.com/automoto/squaretoplus/config"
)

const eps = 1e-6

func preset(t *testing.T, name string) config.SceneConfig {
	t.Helper()
	cfg, err := config.Preset(name)
	if err != nil {
		t.Fatalf("Preset(%q): %v", name, err)
	}
	return cfg
}

func TestLayoutFor(t *testing.T) {
	cfg := preset(t, "rich")
	l := LayoutFor(cfg, 600, 600, 3)
	if l.CX != 300 || math.Abs(l.CY-400) > eps {
		t.Errorf("centre = (%v, %v), want (300, 400)", l.CX, l.CY)
	}
	if math.Abs(l.Size-100/3.8) > eps {
		t.Errorf("size = %v, want %v", l.Size, 100/3.8)
	}
	if math.Abs(l.Stroke-600.0/90) > eps {
		t.Errorf("stroke = %v, want %v", l.Stroke, 600.0/90)
	}
}

func TestDrawSquareAtZero(t *testing.T) {
	cfg := preset(t, "rich")
	r := canvas.NewRecorder(600, 600)
	Draw(r, cfg, 0, 0)

	l := LayoutFor(cfg, 600, 600, 0)
	if len(r.Segments) != cfg.LineGroups*cfg.PartsPerGroup {
		t.Fatalf("segments = %d, want %d", len(r.Segments), cfg.LineGroups*cfg.PartsPerGroup)
	}

	sides := map[string]bool{}
	for _, seg := range r.Segments {
		for _, p := range [][2]float64{{seg.X1, seg.Y1}, {seg.X2, seg.Y2}} {
			dx, dy := p[0]-l.CX, p[1]-l.CY
			if d := math.Max(math.Abs(dx), math.Abs(dy)); math.Abs(d-l.Size) > eps {
				t.Errorf("point (%v, %v) is %v from centre, want on the square outline %v", p[0], p[1], d, l.Size)
			}
		}
		switch {
		case math.Abs(seg.X1-seg.X2) < eps && seg.X1 > l.CX:
			sides["right"] = true
		case math.Abs(seg.X1-seg.X2) < eps && seg.X1 < l.CX:
			sides["left"] = true
		case math.Abs(seg.Y1-seg.Y2) < eps && seg.Y1 > l.CY:
			sides["bottom"] = true
		case math.Abs(seg.Y1-seg.Y2) < eps && seg.Y1 < l.CY:
			sides["top"] = true
		default:
			t.Errorf("segment %+v is not axis aligned", seg)
		}
	}
	if len(sides) != 4 {
		t.Errorf("square sides drawn = %v, want all four", sides)
	}
}

func TestDrawPlusAtOne(t *testing.T) {
	cfg := preset(t, "rich")
	r := canvas.NewRecorder(600, 600)
	Draw(r, cfg, 2, 1)

	l := LayoutFor(cfg, 600, 600, 2)
	arms := map[[2]int]bool{}
	for _, seg := range r.Segments {
		if math.Abs(seg.X1-l.CX) > eps || math.Abs(seg.Y1-l.CY) > eps {
			t.Errorf("segment starts at (%v, %v), want centre (%v, %v)", seg.X1, seg.Y1, l.CX, l.CY)
		}
		dx, dy := seg.X2-l.CX, seg.Y2-l.CY
		if math.Abs(math.Hypot(dx, dy)-l.Size) > eps {
			t.Errorf("arm length = %v, want %v", math.Hypot(dx, dy), l.Size)
		}
		arms[[2]int{int(math.Round(dx / l.Size)), int(math.Round(dy / l.Size))}] = true
	}
	for _, want := range [][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if !arms[want] {
			t.Errorf("missing plus arm %v, got %v", want, arms)
		}
	}
}

func TestDrawStaggersGroups(t *testing.T) {
	cfg := preset(t, "rich")
	r := canvas.NewRecorder(600, 600)
	// sc1 = 0.5: the first group has finished swinging, the last has not started
	Draw(r, cfg, 0, 0.25)

	l := LayoutFor(cfg, 600, 600, 0)
	first, last := r.Segments[0], r.Segments[len(r.Segments)-1]
	if math.Abs(first.Y2-l.CY) > eps {
		t.Errorf("first group part 0 end y = %v, want swung flat at %v", first.Y2, l.CY)
	}
	if math.Abs(math.Abs(last.X2-l.CX)-l.Size) > eps || math.Abs(math.Abs(last.Y2-l.CY)-l.Size) > eps {
		t.Errorf("last group still expected on the square corner, got (%v, %v)", last.X2, last.Y2)
	}
}

func TestDrawSimplePreset(t *testing.T) {
	cfg := preset(t, "simple")
	r := canvas.NewRecorder(480, 800)
	Draw(r, cfg, 4, 0)
	if len(r.Segments) != 4 {
		t.Errorf("segments = %d, want 4", len(r.Segments))
	}
}

func TestDrawRestoresFramesAndStroke(t *testing.T) {
	cfg := preset(t, "rich")
	r := canvas.NewRecorder(600, 600)
	Draw(r, cfg, 1, 0.6)

	if r.Depth() != 0 {
		t.Errorf("unrestored frames = %d, want 0", r.Depth())
	}
	if r.MaxDepth != 4 {
		t.Errorf("max frame depth = %d, want 4", r.MaxDepth)
	}
	st := r.Segments[0].Stroke
	if st.Cap != canvas.CapRound {
		t.Errorf("cap = %v, want round", st.Cap)
	}
	if st.Color != cfg.ForeColor {
		t.Errorf("color = %v, want %v", st.Color, cfg.ForeColor)
	}
}
