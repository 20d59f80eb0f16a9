package objmask

import (
	eng "github.com/reoring/objmask/internal/engine"
)

// The combinators below reduce left to right and consume their operands:
// each intermediate result is the mutated-in-place left tree, and pieces
// of right trees may be adopted into it. Pass Clone()s when the originals
// must survive. With fewer than two operands they return the sole operand
// (or nil).

// Add ORs masks: a field is granted when any operand grants it. A fully
// true operand short-circuits the whole reduction to true. After each
// merge, any concrete key whose mask deep-equals its node's wildcard is
// dropped as redundant.
func Add(ms ...*Mask) *Mask {
	trees, short := operandTrees(ms)
	if short != nil {
		return short
	}
	return adopt(eng.Add(trees...))
}

// And ANDs masks: a field is granted only when every operand grants it.
// A fully false operand short-circuits to false. A key missing from one
// operand inherits that operand's wildcard (or false without one), and a
// node left empty collapses to false.
func And(ms ...*Mask) *Mask {
	trees, short := operandTrees(ms)
	if short != nil {
		return short
	}
	return adopt(eng.And(trees...))
}

// Subtract revokes from the first mask everything the remaining masks
// grant, left to right. It fails with CodeInvalidOperation when a shared
// node holds a non-boolean scalar on either side; only boolean leaves are
// subtractable.
func Subtract(ms ...*Mask) (*Mask, error) {
	trees, short := operandTrees(ms)
	if short != nil {
		return short, nil
	}
	tree, si := eng.Subtract(trees[0], trees[1:]...)
	if si != nil {
		return nil, fromEngineIssue(si)
	}
	return adopt(tree), nil
}

// SubtractMask revokes everything other grants from the receiver, in
// place. The other mask's tree is consumed.
func (m *Mask) SubtractMask(other *Mask) error {
	tree, si := eng.Subtract(m.tree, other.tree)
	if si != nil {
		return fromEngineIssue(si)
	}
	m.tree = tree
	return nil
}

// Invert swaps granted and denied at every leaf of m, consuming it. Every
// node gains an explicit true wildcard so unlisted fields flip to
// granted, except where that wildcard would be false, which is expressed
// by absence instead.
func Invert(m *Mask) *Mask {
	return adopt(eng.Invert(m.tree))
}

// operandTrees unwraps the operand masks, short-circuiting the degenerate
// arities.
func operandTrees(ms []*Mask) ([]any, *Mask) {
	switch len(ms) {
	case 0:
		return nil, adopt(false)
	case 1:
		return nil, ms[0]
	}
	trees := make([]any, len(ms))
	for i, m := range ms {
		trees[i] = m.tree
	}
	return trees, nil
}
