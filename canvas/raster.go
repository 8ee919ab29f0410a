package canvas

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Raster is an in-memory Surface backed by a gg context. It is used for
// headless rendering, e.g. writing animation frames to PNG files.
type Raster struct {
	dc     *gg.Context
	stroke Stroke
	depth  int
}

// NewRaster creates a w x h raster surface.
func NewRaster(w, h int) *Raster {
	return &Raster{
		dc:     gg.NewContext(w, h),
		stroke: Stroke{Color: color.Black, Width: 1, Cap: CapButt},
	}
}

func (r *Raster) Width() int  { return r.dc.Width() }
func (r *Raster) Height() int { return r.dc.Height() }

func (r *Raster) Clear(c color.Color) {
	r.dc.SetColor(c)
	r.dc.Clear()
}

func (r *Raster) Save() {
	r.dc.Push()
	r.depth++
}

func (r *Raster) Restore() {
	if r.depth == 0 {
		panic("canvas: Restore without matching Save")
	}
	r.depth--
	r.dc.Pop()
}

func (r *Raster) Translate(x, y float64) { r.dc.Translate(x, y) }
func (r *Raster) Rotate(deg float64)     { r.dc.Rotate(gg.Radians(deg)) }
func (r *Raster) SetStroke(s Stroke)     { r.stroke = s }

func (r *Raster) DrawLine(x1, y1, x2, y2 float64) {
	r.dc.SetColor(r.stroke.Color)
	r.dc.SetLineWidth(r.stroke.Width)
	r.dc.SetLineCap(ggCap(r.stroke.Cap))
	r.dc.DrawLine(x1, y1, x2, y2)
	r.dc.Stroke()
}

// Image returns the rendered pixels.
func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

// SavePNG writes the current pixels to path.
func (r *Raster) SavePNG(path string) error {
	if err := r.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	return nil
}

func ggCap(c Cap) gg.LineCap {
	switch c {
	case CapRound:
		return gg.LineCapRound
	case CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}
