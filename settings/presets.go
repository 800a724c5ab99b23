package settings

import (
	"strings"

	"github.com/reconquest/karma-go"
)

// Preset is a named accent color.
type Preset struct {
	Key   string
	Label string
	Color string
}

var presets = []Preset{
	{Key: "blue", Label: "经典蓝", Color: "#1e88e5"},
	{Key: "red", Label: "热烈红", Color: "#d32f2f"},
	{Key: "green", Label: "清新绿", Color: "#388e3c"},
	{Key: "purple", Label: "优雅紫", Color: "#7b1fa2"},
	{Key: "orange", Label: "活力橙", Color: "#f57c00"},
	{Key: "black", Label: "极简黑", Color: "#333333"},
}

// Presets returns the preset table in display order.
func Presets() []Preset {
	list := make([]Preset, len(presets))
	copy(list, presets)
	return list
}

// LookupPreset finds a preset by key, case-insensitively.
func LookupPreset(key string) (Preset, error) {
	for _, preset := range presets {
		if strings.EqualFold(preset.Key, strings.TrimSpace(key)) {
			return preset, nil
		}
	}

	return Preset{}, karma.Describe("preset", key).Reason(ErrUnknownPreset)
}

// ActivePreset returns the preset whose color matches the heading color.
func ActivePreset(s Settings) (Preset, bool) {
	for _, preset := range presets {
		if strings.EqualFold(preset.Color, s.HeadingColor) {
			return preset, true
		}
	}

	return Preset{}, false
}
