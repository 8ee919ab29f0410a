package components

import "github.com/yohamta/donburi"

// SettingsData stores the display settings that survive restarts
type SettingsData struct {
	Fullscreen      bool
	ShowHUD         bool
	ResolutionIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
