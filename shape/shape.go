// Package shape draws one node of the chain: a figure that morphs from a
// square outline at scale 0 to a plus sign at scale 1.
//
// The figure is LineGroups copies of a "rotating line", each rotated by a
// further 90 degrees. The first half of the scale swings the line's parts
// around, the second half slides them in to the centre.
package shape

import (
	"math"

	"github.com/automoto/squaretoplus/canvas"
	"github.com/automoto/squaretoplus/config"
	"github.com/automoto/squaretoplus/gamemath"
)

const (
	groupAngle = 90.0
	partAngle  = 90.0
)

// Layout is where node i sits on a w x h surface and how big it is.
type Layout struct {
	CX, CY float64
	Size   float64
	Stroke float64
}

// LayoutFor computes node i's centre, figure size and stroke width. Nodes
// are spaced evenly down the vertical centre line.
func LayoutFor(cfg config.SceneConfig, w, h float64, i int) Layout {
	gap := h / float64(cfg.NodeCount+1)
	return Layout{
		CX:     w / 2,
		CY:     gap * float64(i+1),
		Size:   gap / cfg.SizeFactor,
		Stroke: math.Min(w, h) / cfg.StrokeFactor,
	}
}

// Draw renders node i at scale.
func Draw(s canvas.Surface, cfg config.SceneConfig, i int, scale float64) {
	l := LayoutFor(cfg, float64(s.Width()), float64(s.Height()), i)
	s.SetStroke(canvas.Stroke{Color: cfg.ForeColor, Width: l.Stroke, Cap: canvas.CapRound})

	sc1 := gamemath.DivideScale(scale, 0, 2)
	sc2 := gamemath.DivideScale(scale, 1, 2)

	canvas.WithFrame(s, func() {
		s.Translate(l.CX, l.CY)
		for g := 0; g < cfg.LineGroups; g++ {
			gsc1, gsc2 := sc1, sc2
			if cfg.Staggered {
				gsc1 = gamemath.DivideScale(sc1, g, cfg.LineGroups)
				gsc2 = gamemath.DivideScale(sc2, g, cfg.LineGroups)
			}
			canvas.WithFrame(s, func() {
				s.Rotate(groupAngle * float64(g))
				drawRotatingLine(s, l.Size, gsc1, gsc2, cfg.PartsPerGroup)
			})
		}
	})
}

func drawRotatingLine(s canvas.Surface, size, sc1, sc2 float64, parts int) {
	canvas.WithFrame(s, func() {
		s.Translate(size*(1-sc2), 0)
		for j := 0; j < parts; j++ {
			scj := gamemath.DivideScale(sc1, j, parts)
			sign := gamemath.SignFlip(j % 2)
			canvas.WithFrame(s, func() {
				s.Rotate(partAngle * scj * sign)
				s.DrawLine(0, 0, 0, -size*sign)
			})
		}
	})
}
