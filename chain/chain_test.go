package chain

import (
	"testing"

	"github.com/automoto/squaretoplus/config"
)

const maxSteps = 10000

func presetConfig(t *testing.T, name string) config.SceneConfig {
	t.Helper()
	cfg, err := config.Preset(name)
	if err != nil {
		t.Fatalf("Preset(%q): %v", name, err)
	}
	return cfg
}

// runToCompletion steps the active node until its run completes and returns
// the number of steps taken.
func runToCompletion(t *testing.T, c *Chain) int {
	t.Helper()
	for steps := 1; steps <= maxSteps; steps++ {
		if c.Update(nil) {
			return steps
		}
	}
	t.Fatalf("run did not complete within %d steps", maxSteps)
	return 0
}

func TestStateRun(t *testing.T) {
	for _, name := range []string{"rich", "simple"} {
		cfg := presetConfig(t, name)
		c := New(cfg)

		for _, tt := range []struct {
			name    string
			wantDir float64
			want    float64
		}{
			{"forward", 1, 1},
			{"backward", -1, 0},
		} {
			t.Run(name+" "+tt.name, func(t *testing.T) {
				s := State{Prev: 1 - tt.want, Scale: 1 - tt.want}
				started := 0
				if !s.StartUpdating(func() { started++ }) {
					t.Fatal("StartUpdating on idle state returned false")
				}
				if started != 1 || s.Dir != tt.wantDir {
					t.Fatalf("after start: calls=%d dir=%v, want 1 call and dir %v", started, s.Dir, tt.wantDir)
				}

				var final float64
				completions := 0
				last := s.Scale
				for steps := 0; !s.Idle(); steps++ {
					if steps > maxSteps {
						t.Fatalf("no completion after %d steps", maxSteps)
					}
					done := s.Update(c.step, func(scale float64) {
						final = scale
						completions++
					})
					if !done && (s.Scale-last)*tt.wantDir <= 0 {
						t.Fatalf("scale moved from %v to %v, not toward %v", last, s.Scale, tt.want)
					}
					last = s.Scale
				}

				if completions != 1 || final != tt.want {
					t.Errorf("completions=%d final=%v, want 1 and %v", completions, final, tt.want)
				}
				if s.Scale != tt.want || s.Prev != tt.want || s.Dir != 0 {
					t.Errorf("state = %+v, want scale and prev %v with dir 0", s, tt.want)
				}
			})
		}
	}
}

func TestSimpleRunStepCount(t *testing.T) {
	c := New(presetConfig(t, "simple"))
	c.StartUpdating(nil)
	if got := runToCompletion(t, c); got != 7 {
		t.Errorf("forward run took %d steps, want 7", got)
	}
}

func TestStartUpdatingWhileAnimating(t *testing.T) {
	s := State{}
	s.StartUpdating(nil)
	s.Update(simpleStepping(), nil)
	before := s

	called := false
	if s.StartUpdating(func() { called = true }) {
		t.Error("StartUpdating while animating returned true")
	}
	if called || s != before {
		t.Errorf("StartUpdating while animating changed state: %+v -> %+v (callback %v)", before, s, called)
	}
}

func TestUpdateWhileIdle(t *testing.T) {
	s := State{Scale: 1, Prev: 1}
	if s.Update(simpleStepping(), func(float64) { t.Error("completion fired on idle state") }) {
		t.Error("Update on idle state returned true")
	}
	if s.Scale != 1 {
		t.Errorf("idle update moved scale to %v", s.Scale)
	}
}

func simpleStepping() Stepping {
	return Stepping{Slow: 4, Fast: 2, Gap: 0.5, Divider: 0.51}
}

func TestNewLinksNodes(t *testing.T) {
	c := New(presetConfig(t, "rich"))
	if c.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		n := c.Node(i)
		wantNext, wantPrev := i+1, i-1
		if i == c.Len()-1 {
			wantNext = -1
		}
		if n.Index != i || n.Next() != wantNext || n.Prev() != wantPrev {
			t.Errorf("node %d: index=%d next=%d prev=%d, want %d %d %d", i, n.Index, n.Next(), n.Prev(), i, wantNext, wantPrev)
		}
	}
	if c.Current().Index != 0 || c.Dir() != 1 {
		t.Errorf("start at node %d dir %d, want node 0 dir 1", c.Current().Index, c.Dir())
	}
}

func TestBounceTraversal(t *testing.T) {
	c := New(presetConfig(t, "simple"))

	want := []struct {
		index int
		dir   int
	}{
		{1, 1}, {2, 1}, {3, 1}, {4, 1},
		{4, -1}, // end reached: direction flips, node 4 stays active
		{3, -1}, {2, -1}, {1, -1}, {0, -1},
		{0, 1}, // start reached
		{1, 1},
	}

	for run, w := range want {
		runIndex := c.Current().Index
		if !c.StartUpdating(nil) {
			t.Fatalf("run %d: node %d was not idle", run, runIndex)
		}
		completed := 0
		for steps := 0; !c.Update(func() { completed++ }); steps++ {
			if steps > maxSteps {
				t.Fatalf("run %d did not complete", run)
			}
		}
		if completed != 1 {
			t.Errorf("run %d: completion callback fired %d times", run, completed)
		}
		if got := c.Current().Index; got != w.index || c.Dir() != w.dir {
			t.Errorf("after run %d: node %d dir %d, want node %d dir %d", run+1, got, c.Dir(), w.index, w.dir)
		}
	}

	// Every node has been swept there and back except node 0, which has just
	// been swept forward a second time.
	for i := 0; i < c.Len(); i++ {
		want := 0.0
		if i == 0 {
			want = 1
		}
		if got := c.Node(i).State.Scale; got != want {
			t.Errorf("node %d scale = %v, want %v", i, got, want)
		}
	}
}

func TestDrawVisitsAllNodes(t *testing.T) {
	c := New(presetConfig(t, "simple"))
	c.StartUpdating(nil)
	c.Update(nil)

	var indices []int
	var scales []float64
	c.Draw(func(i int, scale float64) {
		indices = append(indices, i)
		scales = append(scales, scale)
	})

	if len(indices) != 5 {
		t.Fatalf("Draw visited %d nodes, want 5", len(indices))
	}
	for i, idx := range indices {
		if idx != i {
			t.Errorf("visit %d was node %d", i, idx)
		}
	}
	if scales[0] != 0.125 {
		t.Errorf("active node scale = %v, want 0.125", scales[0])
	}
	for _, s := range scales[1:] {
		if s != 0 {
			t.Errorf("idle node scale = %v, want 0", s)
		}
	}
}
