package config

import (
	"sort"

	"cells/internal/sims/elementary"
)

// Presets names a handful of ready-made configurations.
var Presets = map[string]*Config{
	"sierpinski": {
		Rule: 90, Width: 256, Height: 256,
		SeedMode: string(elementary.SeedCenter), Boundary: "zero",
		Seed: DefaultSeed, Scale: DefaultScale, TPS: DefaultTPS,
		CycleDelay: DefaultCycleDelay,
	},
	"chaos": {
		Rule: 30, Width: 256, Height: 256,
		SeedMode: string(elementary.SeedCenter), Boundary: "zero",
		Seed: DefaultSeed, Scale: DefaultScale, TPS: DefaultTPS,
		CycleDelay: DefaultCycleDelay,
	},
	"turing": {
		Rule: 110, Width: 320, Height: 240,
		SeedMode: string(elementary.SeedSparse), Boundary: "wrap",
		Seed: DefaultSeed, Scale: DefaultScale, TPS: DefaultTPS,
		CycleDelay: DefaultCycleDelay,
	},
	"shuffle": {
		Rule: elementary.RandomRule, Width: 160, Height: 160,
		SeedMode: string(elementary.SeedSparse), Boundary: "wrap",
		Seed: DefaultSeed, Scale: 5, TPS: DefaultTPS,
		Cycle: true, CycleDelay: DefaultCycleDelay,
	},
}

// GetPreset returns a copy of the named preset, or nil when unknown.
func GetPreset(name string) *Config {
	preset, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *preset
	cfg.Pool = append([]int(nil), preset.Pool...)
	return &cfg
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
