// Package canvas defines the drawing surface the shape renderer draws on.
//
// The surface follows a save/restore transform model: Translate and Rotate
// apply in the current local frame, Save pushes the frame and Restore pops it.
// Rotation is in degrees, clockwise on a y-down screen.
package canvas

import "image/color"

// Cap is the shape of a stroked line's ends.
type Cap int

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Stroke describes how lines are drawn.
type Stroke struct {
	Color color.Color
	Width float64
	Cap   Cap
}

// Surface is a drawing target with a transform stack.
type Surface interface {
	Width() int
	Height() int
	Clear(c color.Color)
	Save()
	// Restore pops the frame pushed by the matching Save. Restoring an empty
	// stack panics.
	Restore()
	Translate(x, y float64)
	Rotate(deg float64)
	SetStroke(s Stroke)
	DrawLine(x1, y1, x2, y2 float64)
}

// WithFrame runs fn between Save and Restore. Restore runs even if fn
// panics, so a transform never leaks into the caller's frame.
func WithFrame(s Surface, fn func()) {
	s.Save()
	defer s.Restore()
	fn()
}
