package factory

import (
	"fmt"

	"github.com/automoto/squaretoplus/archetypes"
	"github.com/automoto/squaretoplus/canvas/ebitensurface"
	"github.com/automoto/squaretoplus/components"
	"github.com/automoto/squaretoplus/config"
	"github.com/automoto/squaretoplus/controller"
	"github.com/automoto/squaretoplus/ticker"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateStage spawns the stage entity holding a fresh chain
func CreateStage(ecs *ecs.ECS, sceneCfg config.SceneConfig) (*donburi.Entry, error) {
	sched := ticker.NewFrameScheduler()
	ctrl, err := controller.New(sceneCfg, sched)
	if err != nil {
		return nil, fmt.Errorf("create stage: %w", err)
	}

	stage := archetypes.Stage.Spawn(ecs)
	components.Stage.SetValue(stage, components.StageData{
		Controller: ctrl,
		Scheduler:  sched,
		Surface:    ebitensurface.New(nil),
	})
	return stage, nil
}
