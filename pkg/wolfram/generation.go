package wolfram

import "math/rand/v2"

// Boundary selects the value of the virtual neighbour used beyond the
// two ends of a generation.
type Boundary int

const (
	// BoundaryZero treats the cell beyond either edge as a fixed dead
	// cell. This is the default convention.
	BoundaryZero Boundary = iota
	// BoundaryWrap joins the two edges into a ring.
	BoundaryWrap
)

// Generation is one row of cell states, each 0 or 1. Its length is
// fixed for the lifetime of a run.
type Generation []uint8

// NewCenterSeeded returns a zeroed generation with a single live cell
// at index width/2.
func NewCenterSeeded(width int) (Generation, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	g := make(Generation, width)
	g[width/2] = 1
	return g, nil
}

// NewRandomSeeded returns a generation whose cells are independently 0
// or 1 with equal probability. The caller supplies the random source so
// runs are reproducible.
func NewRandomSeeded(width int, rng *rand.Rand) (Generation, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	g := make(Generation, width)
	for i := range g {
		g[i] = uint8(rng.IntN(2))
	}
	return g, nil
}

// NewSparseSeeded returns a zeroed generation with one guaranteed live
// cell at a random index, then keeps lighting random cells while a coin
// flip lands heads.
func NewSparseSeeded(width int, rng *rand.Rand) (Generation, error) {
	if width <= 0 {
		return nil, ErrInvalidWidth
	}
	g := make(Generation, width)
	g[rng.IntN(width)] = 1
	for rng.IntN(2) == 1 {
		g[rng.IntN(width)] = 1
	}
	return g, nil
}

// Next computes the successor generation under the given ruleset and
// boundary convention. The receiver is not modified; a new generation
// of the same length is returned.
func (g Generation) Next(rs Ruleset, b Boundary) Generation {
	w := len(g)
	next := make(Generation, w)
	for i := 0; i < w; i++ {
		var left, right uint8
		if i > 0 {
			left = g[i-1]
		} else if b == BoundaryWrap {
			left = g[w-1]
		}
		if i < w-1 {
			right = g[i+1]
		} else if b == BoundaryWrap {
			right = g[0]
		}
		next[i] = rs.Apply(left, g[i], right)
	}
	return next
}

// Population counts the live cells in the generation.
func (g Generation) Population() int {
	n := 0
	for _, c := range g {
		if c != 0 {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the generation.
func (g Generation) Clone() Generation {
	out := make(Generation, len(g))
	copy(out, g)
	return out
}
