package elementary

import (
	"errors"
	"slices"
	"testing"

	"cells/internal/core"
	"cells/pkg/wolfram"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 5
	cfg.Height = 3
	cfg.Rule = 90
	cfg.SeedMode = SeedCenter
	cfg.Boundary = wolfram.BoundaryZero
	cfg.Seed = 1
	return cfg
}

func TestBoardRecordsGenerations(t *testing.T) {
	board, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}

	if got := board.Row(); got != 1 {
		t.Fatalf("after reset: row cursor %d, want 1", got)
	}
	wantRows := [][]uint8{
		{0, 0, 1, 0, 0},
		{0, 1, 0, 1, 0},
		{1, 0, 0, 0, 1},
	}
	board.Step()
	board.Step()

	cells := board.Cells()
	for y, want := range wantRows {
		got := cells[y*5 : (y+1)*5]
		if !slices.Equal(got, want) {
			t.Fatalf("row %d: got %v, want %v", y, got, want)
		}
	}
	if !board.Full() {
		t.Fatal("board with all rows recorded must report Full")
	}

	// Stepping a full board changes nothing.
	before := append([]uint8(nil), board.Cells()...)
	board.Step()
	if !slices.Equal(before, board.Cells()) {
		t.Fatal("Step on a full board modified the frame")
	}
	if got := board.Row(); got != 3 {
		t.Fatalf("row cursor moved past the frame: %d", got)
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 16
	cfg.Rule = 30
	cfg.SeedMode = SeedRandom
	cfg.Seed = 99

	board, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	initial := append([]uint8(nil), board.Cells()...)

	// Mutate state to ensure Reset rebuilds from scratch.
	board.Step()
	board.Cells()[0] ^= 1

	board.Reset(99)
	if !slices.Equal(initial, board.Cells()) {
		t.Fatal("Reset with the same seed not deterministic")
	}

	board.Reset(7)
	other := append([]uint8(nil), board.Cells()...)
	if slices.Equal(initial, other) {
		t.Fatal("different seeds produced identical frames")
	}
	board.Reset(7)
	if !slices.Equal(other, board.Cells()) {
		t.Fatal("Reset with seed 7 not deterministic")
	}
}

func TestGenerationReturnsCopy(t *testing.T) {
	board, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	gen := board.Generation()
	gen[0] ^= 1
	if slices.Equal(gen, board.Generation()) {
		t.Fatal("Generation must return an independent copy")
	}
}

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*Config)
		want   error
	}{
		{"zero width", func(c *Config) { c.Width = 0 }, wolfram.ErrInvalidWidth},
		{"negative height", func(c *Config) { c.Height = -1 }, ErrInvalidHeight},
		{"rule too large", func(c *Config) { c.Rule = 300 }, wolfram.ErrInvalidRule},
		{"unknown seed mode", func(c *Config) { c.SeedMode = "banana" }, ErrInvalidSeedMode},
		{"bad pool entry", func(c *Config) { c.Rule = RandomRule; c.Pool = []int{90, 400} }, wolfram.ErrInvalidRule},
	}
	for _, tc := range cases {
		cfg := testConfig()
		tc.modify(&cfg)
		if _, err := New(cfg); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestRulePoolSelection(t *testing.T) {
	cfg := testConfig()
	cfg.Rule = RandomRule
	cfg.Pool = []int{30, 90, 110}

	board, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(cfg.Pool, board.Rule()) {
		t.Fatalf("selected rule %d not in pool %v", board.Rule(), cfg.Pool)
	}

	// Same config, same seed: same shuffled order.
	twin, err := New(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if twin.Rule() != board.Rule() {
		t.Fatalf("same seed picked different rules: %d vs %d", twin.Rule(), board.Rule())
	}

	seen := map[int]bool{board.Rule(): true}
	for i := 0; i < len(cfg.Pool)-1; i++ {
		seen[board.NextRule()] = true
	}
	if len(seen) != len(cfg.Pool) {
		t.Fatalf("cycling visited %d distinct rules, want %d", len(seen), len(cfg.Pool))
	}
	// One more advance wraps around to the start of the order.
	if got := board.NextRule(); got != twin.Rule() {
		t.Fatalf("pool did not wrap: got %d, want %d", got, twin.Rule())
	}
}

func TestFixedRuleIgnoresNextRule(t *testing.T) {
	board, err := New(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := board.NextRule(); got != 90 {
		t.Fatalf("fixed-rule board switched to rule %d", got)
	}
}

func TestCuratedRulesInRange(t *testing.T) {
	for _, rule := range CuratedRules {
		if rule < 0 || rule > 255 {
			t.Fatalf("curated rule %d out of range", rule)
		}
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{
		"w":        "10",
		"h":        "4",
		"rule":     "30",
		"seed":     "5",
		"mode":     "random",
		"boundary": "wrap",
	})
	if c.Width != 10 || c.Height != 4 || c.Rule != 30 || c.Seed != 5 {
		t.Fatalf("unexpected config: %+v", c)
	}
	if c.SeedMode != SeedRandom || c.Boundary != wolfram.BoundaryWrap {
		t.Fatalf("unexpected config: %+v", c)
	}

	// Invalid values fall back to the defaults.
	d := DefaultConfig()
	c = FromMap(map[string]string{"w": "-3", "rule": "999", "mode": "banana", "boundary": "mirror"})
	if c.Width != d.Width || c.Rule != d.Rule || c.SeedMode != d.SeedMode || c.Boundary != d.Boundary {
		t.Fatalf("invalid values not discarded: %+v", c)
	}
}

func TestRegistryFactory(t *testing.T) {
	factory, ok := core.Sims()["elementary"]
	if !ok {
		t.Fatal("elementary sim not registered")
	}
	sim := factory(map[string]string{"w": "8", "h": "6", "rule": "90"})
	if got := sim.Size(); got.W != 8 || got.H != 6 {
		t.Fatalf("unexpected size: %+v", got)
	}
	if sim.Name() != "elementary" {
		t.Fatalf("unexpected name %q", sim.Name())
	}
}
