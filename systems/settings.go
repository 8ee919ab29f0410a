package systems

import (
	"github.com/automoto/squaretoplus/archetypes"
	"github.com/automoto/squaretoplus/components"
	cfg "github.com/automoto/squaretoplus/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings toggles fullscreen and the HUD, cycles the window size,
// repaints and saves.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	changed := false
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		if !settings.Fullscreen {
			applyResolution(settings.ResolutionIndex)
		}
		changed = true
	}
	if GetAction(input, cfg.ActionToggleHUD).JustPressed {
		settings.ShowHUD = !settings.ShowHUD
		cfg.Debug.ShowHUD = settings.ShowHUD
		changed = true
	}
	if GetAction(input, cfg.ActionCycleResolution).JustPressed {
		settings.ResolutionIndex = cfg.Settings.CycleResolution(settings.ResolutionIndex, 1)
		cfg.Settings.ResolutionIndex = settings.ResolutionIndex
		// The window size only applies once fullscreen is left
		if !settings.Fullscreen {
			applyResolution(settings.ResolutionIndex)
		}
		changed = true
	}
	if !changed {
		return
	}

	log.Debug("settings changed", "fullscreen", settings.Fullscreen, "hud", settings.ShowHUD, "resolution", settings.ResolutionIndex)
	InvalidateStage(ecs)
	SaveCurrentSettings(settings)
}

// GetOrCreateSettings returns the singleton Settings component, seeded from
// the current window state
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	if _, ok := components.Settings.First(e.World); !ok {
		ent := archetypes.Settings.Spawn(e)
		components.Settings.SetValue(ent, components.SettingsData{
			Fullscreen:      ebiten.IsFullscreen(),
			ShowHUD:         cfg.Debug.ShowHUD,
			ResolutionIndex: cfg.Settings.ResolutionIndex,
		})
	}

	ent, _ := components.Settings.First(e.World)
	return components.Settings.Get(ent)
}

// applyResolution resizes the window to the resolution at index
func applyResolution(index int) {
	if res, ok := cfg.Settings.ResolutionAt(index); ok {
		ebiten.SetWindowSize(res.Width, res.Height)
	}
}
