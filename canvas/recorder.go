package canvas

import (
	"image/color"

	"github.com/fogleman/gg"
)

// Segment is a drawn line in screen coordinates.
type Segment struct {
	X1, Y1, X2, Y2 float64
	Stroke         Stroke
}

// Recorder is a Surface that keeps every drawn line, transformed to screen
// space, instead of rasterising it.
type Recorder struct {
	W, H     int
	Segments []Segment
	Clears   []color.Color
	MaxDepth int

	matrix gg.Matrix
	stack  []gg.Matrix
	stroke Stroke
}

// NewRecorder creates a recorder reporting a w x h surface.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{W: w, H: h, matrix: gg.Identity()}
}

func (r *Recorder) Width() int  { return r.W }
func (r *Recorder) Height() int { return r.H }

func (r *Recorder) Clear(c color.Color) {
	r.Clears = append(r.Clears, c)
}

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.matrix)
	if len(r.stack) > r.MaxDepth {
		r.MaxDepth = len(r.stack)
	}
}

func (r *Recorder) Restore() {
	if len(r.stack) == 0 {
		panic("canvas: Restore without matching Save")
	}
	r.matrix = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

func (r *Recorder) Translate(x, y float64) { r.matrix = r.matrix.Translate(x, y) }
func (r *Recorder) Rotate(deg float64)     { r.matrix = r.matrix.Rotate(gg.Radians(deg)) }
func (r *Recorder) SetStroke(s Stroke)     { r.stroke = s }

func (r *Recorder) DrawLine(x1, y1, x2, y2 float64) {
	sx1, sy1 := r.matrix.TransformPoint(x1, y1)
	sx2, sy2 := r.matrix.TransformPoint(x2, y2)
	r.Segments = append(r.Segments, Segment{X1: sx1, Y1: sy1, X2: sx2, Y2: sy2, Stroke: r.stroke})
}

// Depth is the number of unrestored frames.
func (r *Recorder) Depth() int {
	return len(r.stack)
}

// Reset forgets recorded output and the transform state.
func (r *Recorder) Reset() {
	r.Segments = r.Segments[:0]
	r.Clears = r.Clears[:0]
	r.stack = r.stack[:0]
	r.matrix = gg.Identity()
	r.MaxDepth = 0
}
