// Package core: Arc accessors and mutators.
//
// Setter policy (shared with Node): invalid input is silently ignored and the
// prior value retained; the bool return reports whether the assignment was
// applied. No arc operation ever mutates the target node.

package core

import "math"

// finiteNonNegative reports whether c is a finite value ≥ 0.
// Arc costs and numeric node ids share this validity domain.
func finiteNonNegative(c float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c >= 0
}

// Target returns the arc's terminal node, or nil after Clear.
func (a *Arc) Target() *Node { return a.target }

// Cost returns the arc's weight.
func (a *Arc) Cost() float64 { return a.cost }

// Prev returns the preceding arc in the owning node's arc list, or nil at
// the list head.
func (a *Arc) Prev() *Arc { return a.prev }

// Next returns the following arc in the owning node's arc list, or nil at
// the list tail.
func (a *Arc) Next() *Arc { return a.next }

// SetCost assigns a new weight. Only finite values ≥ 0 are accepted; a
// negative, NaN, or infinite c is a no-op that retains the current cost.
// Reports whether the assignment was applied.
// Complexity: O(1)
func (a *Arc) SetCost(c float64) bool {
	if !finiteNonNegative(c) {
		return false
	}
	a.cost = c

	return true
}

// SetPrev links p as the preceding arc. A nil p is a no-op (false);
// detaching links is the owning node's removal surgery, not a setter call.
// Complexity: O(1)
func (a *Arc) SetPrev(p *Arc) bool {
	if p == nil {
		return false
	}
	a.prev = p

	return true
}

// SetNext links n as the following arc. A nil n is a no-op (false).
// Complexity: O(1)
func (a *Arc) SetNext(n *Arc) bool {
	if n == nil {
		return false
	}
	a.next = n

	return true
}

// Clear resets the arc to its zero state: no target, no links, zero cost.
// The former target node is not touched.
// Complexity: O(1)
func (a *Arc) Clear() {
	a.target = nil
	a.prev = nil
	a.next = nil
	a.cost = 0
}
