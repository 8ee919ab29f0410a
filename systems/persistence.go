package systems

import (
	"encoding/json"

	"github.com/automoto/squaretoplus/components"
	cfg "github.com/automoto/squaretoplus/config"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the display settings stored on disk.
// Animation progress is never saved; every start shows the chain at rest.
type SavedSettings struct {
	Fullscreen      bool `json:"fullscreen"`
	ShowHUD         bool `json:"showHud"`
	ResolutionIndex int  `json:"resolutionIndex"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil, nil when there is
// nothing saved or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.SaveKey)
	if err != nil {
		log.Warn("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Warn("could not parse saved settings", "err", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Warn("could not serialize settings", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.SaveKey, data); err != nil {
		log.Warn("could not save settings", "err", err)
		return err
	}
	return nil
}

// SaveCurrentSettings saves the current settings from the Settings component
func SaveCurrentSettings(s *components.SettingsData) {
	_ = SaveSettings(&SavedSettings{
		Fullscreen:      s.Fullscreen,
		ShowHUD:         s.ShowHUD,
		ResolutionIndex: s.ResolutionIndex,
	})
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference.
// Used during start-up before scenes are created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	cfg.Debug.ShowHUD = saved.ShowHUD
	ebiten.SetFullscreen(saved.Fullscreen)

	if _, ok := cfg.Settings.ResolutionAt(saved.ResolutionIndex); !ok {
		log.Warn("ignoring saved resolution", "index", saved.ResolutionIndex)
		return
	}
	cfg.Settings.ResolutionIndex = saved.ResolutionIndex

	// Apply resolution (only if not fullscreen)
	if !saved.Fullscreen {
		applyResolution(saved.ResolutionIndex)
	}
}
