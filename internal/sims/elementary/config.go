package elementary

import (
	"strconv"

	"cells/pkg/wolfram"
)

// SeedMode selects how generation zero is populated.
type SeedMode string

const (
	// SeedCenter lights a single cell at index width/2.
	SeedCenter SeedMode = "center"
	// SeedRandom lights each cell with probability 0.5.
	SeedRandom SeedMode = "random"
	// SeedSparse lights one guaranteed cell plus a random handful.
	SeedSparse SeedMode = "sparse"
)

// RandomRule requests a rule drawn from the configured pool instead of
// a fixed rule number.
const RandomRule = -1

// CuratedRules lists rule numbers that produce visually interesting
// patterns. Cycle mode and RandomRule draw from this pool by default.
var CuratedRules = []int{
	1, 6, 7, 9, 18, 22, 26, 28, 30, 37, 41, 45, 50, 54, 57, 59, 60,
	61, 62, 65, 69, 70, 73, 74, 75, 77, 79, 81, 82, 84, 91, 92, 94,
	99, 101, 102, 105, 107, 109, 118, 121, 126, 129, 131, 132, 133,
	135, 137, 141, 143, 145, 146, 147, 149, 150, 151, 157, 158,
	161, 163, 166, 167, 169, 177, 182, 185, 188, 189, 195, 197,
	201, 203, 205, 206, 211, 212, 214, 215, 222, 225, 229, 230,
	241, 242, 246,
}

// Config holds parameters for the elementary cellular automaton board.
type Config struct {
	Width  int
	Height int

	// Rule is a Wolfram rule number, or RandomRule to draw from Pool.
	Rule int
	// Pool holds the candidate rules used by RandomRule and cycling.
	// When empty, CuratedRules is used.
	Pool []int

	SeedMode SeedMode
	Boundary wolfram.Boundary
	Seed     int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Width:    256,
		Height:   256,
		Rule:     110,
		SeedMode: SeedCenter,
		Boundary: wolfram.BoundaryZero,
		Seed:     42,
	}
}

// FromMap populates a Config from a string map. Invalid values are
// discarded in favour of the defaults.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && (parsed == RandomRule || (parsed >= 0 && parsed <= 255)) {
			c.Rule = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["mode"]; ok {
		switch SeedMode(v) {
		case SeedCenter, SeedRandom, SeedSparse:
			c.SeedMode = SeedMode(v)
		}
	}
	if v, ok := cfg["boundary"]; ok {
		switch v {
		case "zero":
			c.Boundary = wolfram.BoundaryZero
		case "wrap":
			c.Boundary = wolfram.BoundaryWrap
		}
	}
	return c
}
