package wolfram

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"
)

func testRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0))
}

func mustRuleset(t *testing.T, rule int) Ruleset {
	t.Helper()
	rs, err := NewRuleset(rule)
	if err != nil {
		t.Fatal(err)
	}
	return rs
}

func TestCenterSeedPlacement(t *testing.T) {
	cases := []struct {
		width int
		live  int
	}{
		{width: 5, live: 2},
		{width: 4, live: 2},
		{width: 1, live: 0},
	}
	for _, tc := range cases {
		g, err := NewCenterSeeded(tc.width)
		if err != nil {
			t.Fatalf("width %d: %v", tc.width, err)
		}
		if len(g) != tc.width {
			t.Fatalf("width %d: got length %d", tc.width, len(g))
		}
		if g.Population() != 1 {
			t.Fatalf("width %d: got %d live cells, want 1", tc.width, g.Population())
		}
		if g[tc.live] != 1 {
			t.Fatalf("width %d: live cell not at index %d: %v", tc.width, tc.live, g)
		}
	}
}

func TestSeedsRejectNonPositiveWidth(t *testing.T) {
	for _, width := range []int{0, -3} {
		if _, err := NewCenterSeeded(width); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("NewCenterSeeded(%d): got %v, want ErrInvalidWidth", width, err)
		}
		if _, err := NewRandomSeeded(width, testRNG(1)); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("NewRandomSeeded(%d): got %v, want ErrInvalidWidth", width, err)
		}
		if _, err := NewSparseSeeded(width, testRNG(1)); !errors.Is(err, ErrInvalidWidth) {
			t.Errorf("NewSparseSeeded(%d): got %v, want ErrInvalidWidth", width, err)
		}
	}
}

func TestRandomSeedIsDeterministic(t *testing.T) {
	a, err := NewRandomSeeded(256, testRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRandomSeeded(256, testRNG(7))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a, b) {
		t.Fatal("same seed must produce the same generation")
	}
	c, err := NewRandomSeeded(256, testRNG(8))
	if err != nil {
		t.Fatal(err)
	}
	if slices.Equal(a, c) {
		t.Fatal("different seeds produced identical generations")
	}
}

func TestSparseSeedHasLiveCell(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		g, err := NewSparseSeeded(16, testRNG(seed))
		if err != nil {
			t.Fatal(err)
		}
		if g.Population() < 1 {
			t.Fatalf("seed %d: sparse generation has no live cell", seed)
		}
	}
}

func TestNextKeepsLength(t *testing.T) {
	rs := mustRuleset(t, 110)
	for _, width := range []int{1, 2, 3, 5, 8, 31} {
		g, err := NewRandomSeeded(width, testRNG(3))
		if err != nil {
			t.Fatal(err)
		}
		if got := len(g.Next(rs, BoundaryZero)); got != width {
			t.Fatalf("width %d: next generation has length %d", width, got)
		}
	}
}

func TestNextDoesNotMutateInput(t *testing.T) {
	rs := mustRuleset(t, 90)
	g := Generation{0, 0, 1, 0, 0}
	before := g.Clone()
	g.Next(rs, BoundaryZero)
	if !slices.Equal(g, before) {
		t.Fatalf("input mutated: got %v, want %v", g, before)
	}
}

func TestNextIsDeterministic(t *testing.T) {
	rs := mustRuleset(t, 30)
	g := Generation{1, 0, 1, 1, 0, 0, 1}
	first := g.Next(rs, BoundaryZero)
	second := g.Next(rs, BoundaryZero)
	if !slices.Equal(first, second) {
		t.Fatalf("same inputs produced %v and %v", first, second)
	}
}

func TestRuleZeroAbsorbs(t *testing.T) {
	rs := mustRuleset(t, 0)
	g, err := NewRandomSeeded(64, testRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Next(rs, BoundaryZero).Population(); got != 0 {
		t.Fatalf("rule 0 left %d live cells", got)
	}
}

func TestRule255Saturates(t *testing.T) {
	rs := mustRuleset(t, 255)
	g, err := NewRandomSeeded(64, testRNG(5))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.Next(rs, BoundaryZero).Population(); got != 64 {
		t.Fatalf("rule 255 produced %d live cells, want 64", got)
	}
}

func TestRule90GrowsSierpinski(t *testing.T) {
	rs := mustRuleset(t, 90)
	g := Generation{0, 0, 1, 0, 0}

	g = g.Next(rs, BoundaryZero)
	if want := (Generation{0, 1, 0, 1, 0}); !slices.Equal(g, want) {
		t.Fatalf("first step: got %v, want %v", g, want)
	}
	g = g.Next(rs, BoundaryZero)
	if want := (Generation{1, 0, 0, 0, 1}); !slices.Equal(g, want) {
		t.Fatalf("second step: got %v, want %v", g, want)
	}
}

func TestRule22Triangle(t *testing.T) {
	rs := mustRuleset(t, 22)
	g := Generation{0, 0, 1, 0, 0}
	if want := (Generation{0, 1, 1, 1, 0}); !slices.Equal(g.Next(rs, BoundaryZero), want) {
		t.Fatalf("got %v, want %v", g.Next(rs, BoundaryZero), want)
	}
}

func TestBoundaryConventions(t *testing.T) {
	// Rule 1 fires only for the all-dead neighbourhood, so the virtual
	// neighbours decide the edge cells.
	rs := mustRuleset(t, 1)
	g := Generation{1, 0, 0}

	zero := g.Next(rs, BoundaryZero)
	if want := (Generation{0, 0, 1}); !slices.Equal(zero, want) {
		t.Fatalf("zero boundary: got %v, want %v", zero, want)
	}
	wrap := g.Next(rs, BoundaryWrap)
	if want := (Generation{0, 0, 0}); !slices.Equal(wrap, want) {
		t.Fatalf("wrap boundary: got %v, want %v", wrap, want)
	}
}

func TestWidthOneBoard(t *testing.T) {
	// With wrapping a lone cell is its own neighbour on both sides.
	rs := mustRuleset(t, 128)
	g := Generation{1}
	if got := g.Next(rs, BoundaryWrap); got[0] != 1 {
		t.Fatalf("wrap: got %v, want [1]", got)
	}
	if got := g.Next(rs, BoundaryZero); got[0] != 0 {
		t.Fatalf("zero: got %v, want [0]", got)
	}
}
