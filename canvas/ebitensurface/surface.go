// Package ebitensurface adapts an Ebitengine image to canvas.Surface.
package ebitensurface

import (
	"image/color"
	"math"

	"github.com/automoto/squaretoplus/canvas"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface draws on an *ebiten.Image. Transforms are kept in a GeoM stack
// and applied to line end points before stroking.
type Surface struct {
	dst    *ebiten.Image
	geo    ebiten.GeoM
	stack  []ebiten.GeoM
	stroke canvas.Stroke
}

// New wraps dst. The Surface can be reused across frames with Reset.
func New(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst, stroke: canvas.Stroke{Color: color.Black, Width: 1}}
}

// Reset points the surface at dst and drops any transform state.
func (s *Surface) Reset(dst *ebiten.Image) {
	s.dst = dst
	s.geo.Reset()
	s.stack = s.stack[:0]
}

func (s *Surface) Width() int  { return s.dst.Bounds().Dx() }
func (s *Surface) Height() int { return s.dst.Bounds().Dy() }

func (s *Surface) Clear(c color.Color) {
	s.dst.Fill(c)
}

func (s *Surface) Save() {
	s.stack = append(s.stack, s.geo)
}

func (s *Surface) Restore() {
	if len(s.stack) == 0 {
		panic("ebitensurface: Restore without matching Save")
	}
	s.geo = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

// Translate applies in the local frame: the new offset is transformed by
// everything already on the GeoM.
func (s *Surface) Translate(x, y float64) {
	var local ebiten.GeoM
	local.Translate(x, y)
	local.Concat(s.geo)
	s.geo = local
}

func (s *Surface) Rotate(deg float64) {
	var local ebiten.GeoM
	local.Rotate(deg * math.Pi / 180)
	local.Concat(s.geo)
	s.geo = local
}

func (s *Surface) SetStroke(st canvas.Stroke) {
	s.stroke = st
}

func (s *Surface) DrawLine(x1, y1, x2, y2 float64) {
	sx1, sy1 := s.geo.Apply(x1, y1)
	sx2, sy2 := s.geo.Apply(x2, y2)
	w := float32(s.stroke.Width)
	vector.StrokeLine(s.dst, float32(sx1), float32(sy1), float32(sx2), float32(sy2), w, s.stroke.Color, true)

	// StrokeLine has butt ends; round caps are a disc at each end
	if s.stroke.Cap == canvas.CapRound {
		vector.FillCircle(s.dst, float32(sx1), float32(sy1), w/2, s.stroke.Color, true)
		vector.FillCircle(s.dst, float32(sx2), float32(sy2), w/2, s.stroke.Color, true)
	}
}
