package config

import "sort"

var Presets = map[string]*Config{
	"battleship": {
		Width: 10, Height: 10, Glyph: "X", IntervalMS: 500,
		Empty: "~", Mark: "#", Message: "place your ships",
	},
	"go9": {
		Width: 9, Height: 9, Glyph: "+", IntervalMS: 500,
		Empty: ".", Mark: "●", Message: "place your stones",
	},
	"chess": {
		Width: 8, Height: 8, Glyph: "X", IntervalMS: 400,
		Empty: ".", Mark: "♟", Message: "place your pieces",
	},
	"minefield": {
		Width: 16, Height: 12, Glyph: "?", IntervalMS: 250,
		Empty: ".", Mark: "*", Message: "mark the mines",
	},
	"tiny": {
		Width: 3, Height: 3, Glyph: "X", IntervalMS: 500,
		Empty: ".", Mark: "#", Message: "mark a cell",
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.Message == "" {
		cfg.Message = DefaultMessage
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
