// Package elementary projects a one-dimensional Wolfram automaton onto
// a 2D board, one generation per row from the top down.
package elementary

import (
	"errors"
	"fmt"

	"cells/internal/core"
	"cells/pkg/wolfram"
)

// ErrInvalidHeight reports a non-positive board height.
var ErrInvalidHeight = errors.New("height must be positive")

// ErrInvalidSeedMode reports an unknown seeding mode.
var ErrInvalidSeedMode = errors.New("unknown seed mode")

// Board owns the current generation, the rule table and a row cursor
// into the display frame. Generations are derived through the pure
// wolfram package; the board only records them.
type Board struct {
	cfg   Config
	rule  int
	rules wolfram.Ruleset
	frame *core.Frame
	gen   wolfram.Generation
	row   int
	seed  int64

	// order is the shuffled rule pool when the board was constructed
	// with RandomRule; empty for fixed-rule boards.
	order []int
	pos   int
}

// New validates the configuration and returns a seeded board. All
// validation happens here; Reset and Step cannot fail afterwards.
func New(cfg Config) (*Board, error) {
	if cfg.Width <= 0 {
		return nil, fmt.Errorf("board: %w", wolfram.ErrInvalidWidth)
	}
	if cfg.Height <= 0 {
		return nil, fmt.Errorf("board: %w", ErrInvalidHeight)
	}
	switch cfg.SeedMode {
	case SeedCenter, SeedRandom, SeedSparse:
	default:
		return nil, fmt.Errorf("board: %w: %q", ErrInvalidSeedMode, cfg.SeedMode)
	}

	b := &Board{cfg: cfg, frame: core.NewFrame(cfg.Width, cfg.Height)}

	if cfg.Rule == RandomRule {
		pool := cfg.Pool
		if len(pool) == 0 {
			pool = CuratedRules
		}
		for _, r := range pool {
			if _, err := wolfram.NewRuleset(r); err != nil {
				return nil, fmt.Errorf("board pool: %w", err)
			}
		}
		b.order = append([]int(nil), pool...)
		core.NewRNG(cfg.Seed).Shuffle(b.order)
		b.rule = b.order[0]
	} else {
		b.rule = cfg.Rule
	}

	rs, err := wolfram.NewRuleset(b.rule)
	if err != nil {
		return nil, fmt.Errorf("board: %w", err)
	}
	b.rules = rs

	b.Reset(cfg.Seed)
	return b, nil
}

// Name returns the simulation identifier.
func (b *Board) Name() string { return "elementary" }

// Size returns the board dimensions.
func (b *Board) Size() core.Size { return core.Size{W: b.cfg.Width, H: b.cfg.Height} }

// Cells exposes the display frame.
func (b *Board) Cells() []uint8 { return b.frame.Cells() }

// Rule returns the rule number currently in effect.
func (b *Board) Rule() int { return b.rule }

// Row returns the row cursor: the number of generations recorded.
func (b *Board) Row() int { return b.row }

// Full reports whether every row of the frame has been filled.
func (b *Board) Full() bool { return b.row >= b.cfg.Height }

// Generation returns a copy of the most recent generation.
func (b *Board) Generation() wolfram.Generation { return b.gen.Clone() }

// Reset reseeds generation zero deterministically from the seed, clears
// the frame and stamps the new generation into row zero. The rule in
// effect is kept.
func (b *Board) Reset(seed int64) {
	b.seed = seed
	rng := core.NewRNG(seed).Source()
	switch b.cfg.SeedMode {
	case SeedRandom:
		b.gen, _ = wolfram.NewRandomSeeded(b.cfg.Width, rng)
	case SeedSparse:
		b.gen, _ = wolfram.NewSparseSeeded(b.cfg.Width, rng)
	default:
		b.gen, _ = wolfram.NewCenterSeeded(b.cfg.Width)
	}
	b.frame.Clear()
	b.frame.SetRow(0, b.gen)
	b.row = 1
}

// Step derives the next generation and stamps it into the next free
// row. Once the frame is full Step is a no-op; the caller decides
// whether to stop, reseed or advance to another rule.
func (b *Board) Step() {
	if b.Full() {
		return
	}
	b.gen = b.gen.Next(b.rules, b.cfg.Boundary)
	b.frame.SetRow(b.row, b.gen)
	b.row++
}

// NextRule advances to the next rule in the shuffled pool and returns
// it. Boards constructed with a fixed rule keep that rule. The caller
// is expected to Reset afterwards.
func (b *Board) NextRule() int {
	if len(b.order) > 0 {
		b.pos = (b.pos + 1) % len(b.order)
		b.rule = b.order[b.pos]
		// Pool entries were validated in New.
		b.rules, _ = wolfram.NewRuleset(b.rule)
	}
	return b.rule
}

func init() {
	core.Register("elementary", func(cfg map[string]string) core.Sim {
		board, err := New(FromMap(cfg))
		if err != nil {
			// FromMap discards invalid values, so New cannot fail here.
			panic(err)
		}
		return board
	})
}
