package systems

import (
	"time"

	"github.com/automoto/squaretoplus/components"
	cfg "github.com/automoto/squaretoplus/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStage forwards taps to the controller and runs the repaint timer
// for one tick.
func UpdateStage(ecs *ecs.ECS) {
	stage, ok := getStage(ecs)
	if !ok {
		return
	}

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionAdvance).JustPressed {
		stage.Controller.HandleTap()
	}

	stage.Scheduler.Advance(time.Second / time.Duration(ebiten.TPS()))
}

// DrawStage repaints the chain when a repaint is due or the screen size
// changed. The screen is not cleared between frames, so skipping a draw
// leaves the last repaint on screen.
func DrawStage(ecs *ecs.ECS, screen *ebiten.Image) {
	stage, ok := getStage(ecs)
	if !ok {
		return
	}
	stage.Painted = false

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	resized := w != stage.LastWidth || h != stage.LastHeight
	if !stage.Scheduler.TakeDue() && !resized {
		return
	}

	stage.LastWidth, stage.LastHeight = w, h
	stage.Surface.Reset(screen)
	stage.Controller.Render(stage.Surface)
	stage.Painted = true
}

// InvalidateStage requests a repaint on the next draw
func InvalidateStage(ecs *ecs.ECS) {
	if stage, ok := getStage(ecs); ok {
		stage.Scheduler.Invalidate()
	}
}

func getStage(ecs *ecs.ECS) (*components.StageData, bool) {
	entry, ok := components.Stage.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Stage.Get(entry), true
}

// NewUpdateReset creates a system that swaps in a fresh scene on the reset
// action. The old stage's timer is closed first.
func NewUpdateReset(sc interface{ ChangeScene(interface{}) }, create func() interface{}) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		input := getOrCreateInput(ecs)
		if !GetAction(input, cfg.ActionReset).JustPressed {
			return
		}
		if stage, ok := getStage(ecs); ok {
			stage.Scheduler.Close()
		}
		sc.ChangeScene(create())
	}
}
