package components

import (
	"github.com/automoto/squaretoplus/canvas/ebitensurface"
	"github.com/automoto/squaretoplus/controller"
	"github.com/automoto/squaretoplus/ticker"
	"github.com/yohamta/donburi"
)

// StageData is the chain being shown and the repaint timer driving it
type StageData struct {
	Controller *controller.Controller
	Scheduler  *ticker.FrameScheduler
	Surface    *ebitensurface.Surface

	// Screen size at the last repaint; a change forces a repaint
	LastWidth  int
	LastHeight int

	// Painted is set when the stage repainted during this Draw, so overlays
	// know whether to draw on top of it
	Painted bool
}

var Stage = donburi.NewComponentType[StageData]()
