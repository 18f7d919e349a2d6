// Package wolfram implements the elementary cellular automaton: a
// one-dimensional, two-state automaton where each cell's next value is
// a function of itself and its two immediate neighbours, selected by a
// Wolfram rule number in [0,255].
package wolfram

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRule reports a rule number outside [0,255].
	ErrInvalidRule = errors.New("rule must be in [0,255]")
	// ErrInvalidWidth reports a non-positive generation width.
	ErrInvalidWidth = errors.New("width must be positive")
)

// Ruleset maps each of the eight possible 3-cell neighbourhoods to the
// next state of the centre cell. The table index for a neighbourhood
// (left, centre, right) is left*4 + centre*2 + right, and entry i holds
// bit i of the rule number.
type Ruleset [8]uint8

// NewRuleset builds the lookup table for the given rule number.
func NewRuleset(rule int) (Ruleset, error) {
	var rs Ruleset
	if rule < 0 || rule > 255 {
		return rs, fmt.Errorf("%w: got %d", ErrInvalidRule, rule)
	}
	for i := range rs {
		rs[i] = uint8(rule>>i) & 1
	}
	return rs, nil
}

// Apply returns the next state of the centre cell for the neighbourhood
// (left, centre, right). Inputs are taken modulo 2.
func (rs Ruleset) Apply(left, centre, right uint8) uint8 {
	idx := (left&1)<<2 | (centre&1)<<1 | right&1
	return rs[idx]
}

// Rule reassembles the rule number encoded by the table.
func (rs Ruleset) Rule() int {
	rule := 0
	for i, bit := range rs {
		rule |= int(bit&1) << i
	}
	return rule
}
