package config

// Resolution represents a window size option
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains display settings choices
type SettingsConfig struct {
	Resolutions            []Resolution
	DefaultResolutionIndex int
	ResolutionIndex        int    // active choice, seeded from the default and saved settings
	SaveKey                string // gdata item holding the saved display settings
	AppName                string
}

// Settings is the global display settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 480, Height: 800, Label: "480 x 800"},
			{Width: 720, Height: 1200, Label: "720 x 1200"},
			{Width: 1080, Height: 1800, Label: "1080 x 1800"},
		},
		DefaultResolutionIndex: 0,
		SaveKey:                "settings",
		AppName:                "squaretoplus",
	}
	Settings.ResolutionIndex = Settings.DefaultResolutionIndex
}

// CycleResolution returns the index direction steps away from index,
// wrapping at both ends. An out-of-range index starts from the default.
func (s SettingsConfig) CycleResolution(index, direction int) int {
	n := len(s.Resolutions)
	if n == 0 {
		return 0
	}
	if index < 0 || index >= n {
		index = s.DefaultResolutionIndex
	}
	return ((index+direction)%n + n) % n
}

// ResolutionAt returns the resolution at index
func (s SettingsConfig) ResolutionAt(index int) (Resolution, bool) {
	if index < 0 || index >= len(s.Resolutions) {
		return Resolution{}, false
	}
	return s.Resolutions[index], true
}
