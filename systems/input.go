package systems

import (
	"github.com/automoto/squaretoplus/components"
	cfg "github.com/automoto/squaretoplus/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// InputBinding represents the keys and buttons bound to an action
type InputBinding struct {
	Keys         []ebiten.Key
	MouseButtons []ebiten.MouseButton
	Touch        bool // any touch on the screen
}

// Bindings maps actions to their inputs
var Bindings = map[cfg.ActionID]InputBinding{
	cfg.ActionAdvance: {
		Keys:         []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
		Touch:        true,
	},
	cfg.ActionToggleFullscreen: {
		Keys: []ebiten.Key{ebiten.KeyF},
	},
	cfg.ActionToggleHUD: {
		Keys: []ebiten.Key{ebiten.KeyH},
	},
	cfg.ActionCycleResolution: {
		Keys: []ebiten.Key{ebiten.KeyV},
	},
	cfg.ActionReset: {
		Keys: []ebiten.Key{ebiten.KeyR},
	},
}

// Reusable slice for touch IDs to avoid allocations
var touchIDs []ebiten.TouchID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE the systems that read actions.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	var pressed [cfg.ActionCount]bool

	touchIDs = ebiten.AppendTouchIDs(touchIDs[:0])
	touching := len(touchIDs) > 0

	for actionID, binding := range Bindings {
		if binding.Touch && touching {
			pressed[actionID] = true
		}
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				pressed[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				pressed[actionID] = true
			}
		}
	}

	// Actions held while the scene starts do not fire until pressed again
	input.Push(pressed)
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	return components.ActionState{
		Pressed:      input.Current[id],
		JustPressed:  input.JustPressed(id),
		JustReleased: input.JustReleased(id),
	}
}
