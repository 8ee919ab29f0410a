package chain

import (
	"math"

	"github.com/automoto/squaretoplus/gamemath"
)

// Stepping holds the constants of the linear step model.
type Stepping struct {
	Slow    int     // divisor below Divider (line groups x parts)
	Fast    int     // divisor at or above Divider (line groups)
	Gap     float64 // base increment
	Divider float64
}

// State is one node's animation progress.
//
// It is Idle while Dir is 0 and Animating otherwise. A run always moves
// Scale from Prev to the opposite end, 0 -> 1 or 1 -> 0.
type State struct {
	Scale float64
	Dir   float64
	Prev  float64
}

// Idle reports whether no run is in progress.
func (s *State) Idle() bool {
	return s.Dir == 0
}

// StartUpdating begins a run toward the end opposite Prev. It has no
// effect unless the state is Idle; onStart is called only when a run starts.
func (s *State) StartUpdating(onStart func()) bool {
	if !s.Idle() {
		return false
	}
	s.Dir = 1 - 2*s.Prev
	if onStart != nil {
		onStart()
	}
	return true
}

// Update advances Scale by one step. When the scale has travelled past the
// far end it lands exactly on it, the state returns to Idle and onComplete
// receives the final scale. Update on an Idle state does nothing.
func (s *State) Update(st Stepping, onComplete func(scale float64)) bool {
	if s.Idle() {
		return false
	}
	s.Scale += gamemath.UpdateValue(s.Scale, s.Dir, st.Slow, st.Fast, st.Gap, st.Divider)
	if math.Abs(s.Scale-s.Prev) <= 1 {
		return false
	}
	s.Scale = s.Prev + s.Dir
	s.Dir = 0
	s.Prev = s.Scale
	if onComplete != nil {
		onComplete(s.Scale)
	}
	return true
}
