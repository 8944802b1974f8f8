package config

import "sort"

// Preset is a named array size with an optional speed override.
type Preset struct {
	Size    int
	SpeedMs int
}

var Presets = map[string]Preset{
	"tiny":   {Size: 8, SpeedMs: 1000},
	"small":  {Size: 20},
	"medium": {Size: 64},
	"large":  {Size: 200, SpeedMs: 100},
	"max":    {Size: 500, SpeedMs: 50},
}

func GetPreset(name string) *Preset {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	return &p
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
