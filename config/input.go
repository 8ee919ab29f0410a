package config

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionAdvance
	ActionToggleFullscreen
	ActionToggleHUD
	ActionCycleResolution
	ActionReset
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:             "none",
	ActionAdvance:          "advance",
	ActionToggleFullscreen: "fullscreen",
	ActionToggleHUD:        "hud",
	ActionCycleResolution:  "resolution",
	ActionReset:            "reset",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}

// ActionFrames holds the pressed state of every action for the current and
// previous tick.
type ActionFrames struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
	primed   bool
}

// Push records this tick's pressed actions. Actions already held on the
// first push count as held since before, so they only fire once released
// and pressed again.
func (f *ActionFrames) Push(pressed [ActionCount]bool) {
	if !f.primed {
		f.Current = pressed
		f.primed = true
	}
	f.Previous = f.Current
	f.Current = pressed
}

// JustPressed reports whether id went down this tick
func (f *ActionFrames) JustPressed(id ActionID) bool {
	return f.Current[id] && !f.Previous[id]
}

// JustReleased reports whether id went up this tick
func (f *ActionFrames) JustReleased(id ActionID) bool {
	return !f.Current[id] && f.Previous[id]
}
