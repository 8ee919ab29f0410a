package scenes

import (
	"sync"

	cfg "github.com/automoto/squaretoplus/config"
	"github.com/automoto/squaretoplus/systems"
	"github.com/automoto/squaretoplus/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// StageScene shows the chain and advances it on taps
type StageScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	sceneConfig  cfg.SceneConfig
	once         sync.Once
}

// NewStageScene creates a stage scene with a chain at rest
func NewStageScene(sc SceneChanger, sceneConfig cfg.SceneConfig) *StageScene {
	return &StageScene{sceneChanger: sc, sceneConfig: sceneConfig}
}

func (s *StageScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
}

// Draw leaves the screen untouched unless the stage repaints; the window is
// not cleared every frame.
func (s *StageScene) Draw(screen *ebiten.Image) {
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
}

func (s *StageScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	createStageScene := func() interface{} {
		return NewStageScene(s.sceneChanger, s.sceneConfig)
	}

	// Input first, everything else reads actions
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdateStage)
	ecs.AddSystem(systems.NewUpdateReset(s.sceneChanger, createStageScene))

	// HUD draws on top of the stage
	ecs.AddRenderer(cfg.Default, systems.DrawStage)
	ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)

	s.ecs = ecs

	if _, err := factory.CreateStage(s.ecs, s.sceneConfig); err != nil {
		panic(err)
	}
}
