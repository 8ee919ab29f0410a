package systems

import (
	"fmt"

	"github.com/automoto/squaretoplus/controller"
	cfg "github.com/automoto/squaretoplus/config"
	"github.com/automoto/squaretoplus/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the active node and ticker state in the top-left corner.
// It only draws on frames where the stage repainted.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHUD {
		return
	}
	stage, ok := getStage(ecs)
	if !ok || !stage.Painted {
		return
	}

	lines := HUDLines(stage.Controller.Status())
	face := fonts.HUD.Get()

	m := float32(cfg.HUD.Margin)
	lh := float32(cfg.HUD.LineHeight)
	vector.FillRect(screen, m/2, m/2, 180, lh*float32(len(lines))+m, cfg.HUD.BoxColor, false)
	for i, line := range lines {
		text.Draw(screen, line, face, int(m), int(m+lh*float32(i+1)-4), cfg.HUD.TextColor)
	}
}

// HUDLines formats a controller status for the overlay
func HUDLines(st controller.Status) []string {
	state := "idle"
	if st.Animated {
		state = "running"
	}
	return []string{
		fmt.Sprintf("node %d/%d  dir %+d", st.Node+1, st.NodeCount, st.Dir),
		fmt.Sprintf("scale %.2f  %s", st.Scale, state),
		fmt.Sprintf("sweeps %d  steps %d", st.Runs, st.Steps),
	}
}
