package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
)

// Preset is a named combination of game settings offered as its own game.
type Preset struct {
	ID       string
	Name     string
	Settings config.GameSettings
	// UserSettings presets take their settings from the session
	// (the settings file) instead of the fixed values above.
	UserSettings bool
}

// Presets lists the registered variants in menu order.
var Presets = []Preset{
	{ID: "2048", Name: "2048", Settings: config.DefaultGameSettings(), UserSettings: true},
	{ID: "2048_3x3", Name: "2048 (3x3)", Settings: config.GameSettings{BoardSize: 3, FourTilePercent: 25}},
	{ID: "2048_5x5", Name: "2048 (5x5)", Settings: config.GameSettings{BoardSize: 5, FourTilePercent: 25}},
	{ID: "2048_6x6", Name: "2048 (6x6)", Settings: config.GameSettings{BoardSize: 6, FourTilePercent: 25}},
	{ID: "2048_hard", Name: "2048 (Hard)", Settings: config.GameSettings{BoardSize: 4, FourTilePercent: 50}},
}

// GetPreset returns the preset with the given ID.
func GetPreset(id string) (Preset, bool) {
	for _, p := range Presets {
		if p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// SettingsFor returns the settings a new game of this preset uses. Presets
// that follow the settings file take user when it is valid.
func (p Preset) SettingsFor(user config.GameSettings) config.GameSettings {
	if p.UserSettings && user.Validate() == nil {
		return user
	}
	return p.Settings
}
