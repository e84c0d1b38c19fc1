// Package core: Node accessors, setters, and arc-list operations.
//
// The arc list is intrusive and ordered: AddArc appends at the tail through
// the arcTail cursor, so iteration order always equals insertion order.
// Removal operations splice in place and snapshot the next pointer before
// detaching, never reading links off an already-detached arc.

package core

// validID reports whether id is a string or a finite non-negative number.
func validID(id any) bool {
	switch v := id.(type) {
	case string:
		return true
	case int:
		return v >= 0
	case int8:
		return v >= 0
	case int16:
		return v >= 0
	case int32:
		return v >= 0
	case int64:
		return v >= 0
	case uint, uint8, uint16, uint32, uint64, uintptr:
		return true
	case float32:
		return finiteNonNegative(float64(v))
	case float64:
		return finiteNonNegative(v)
	default:
		return false
	}
}

// ID returns the node identifier. Defaults to 0 until SetID succeeds.
func (n *Node) ID() any { return n.id }

// SetID assigns a new identifier. Strings are accepted unconditionally;
// numeric values (any int, uint, or float width) only when finite and ≥ 0.
// Anything else, nil included, is a no-op retaining the current id.
// Reports whether the assignment was applied.
// Complexity: O(1)
func (n *Node) SetID(id any) bool {
	if !validID(id) {
		return false
	}
	n.id = id

	return true
}

// Value returns the node's payload, or nil when absent.
func (n *Node) Value() any { return n.value }

// SetValue assigns a new payload. Assigning nil is a no-op that retains the
// prior value. Reports whether the assignment was applied.
// Complexity: O(1)
func (n *Node) SetValue(v any) bool {
	if v == nil {
		return false
	}
	n.value = v

	return true
}

// Prev returns the preceding node in the owning graph's node list.
func (n *Node) Prev() *Node { return n.prev }

// Next returns the following node in the owning graph's node list.
func (n *Node) Next() *Node { return n.next }

// Marked reports the traversal-visited flag.
func (n *Node) Marked() bool { return n.marked }

// SetMarked sets the traversal-visited flag.
func (n *Node) SetMarked(m bool) { n.marked = m }

// Parent returns the caller-managed parent hint, or nil when unset.
func (n *Node) Parent() *Node { return n.parent }

// SetParent stores a caller-managed parent hint; nil clears it.
func (n *Node) SetParent(p *Node) { n.parent = p }

// Depth returns the caller-managed depth hint.
func (n *Node) Depth() int { return n.depth }

// SetDepth stores a caller-managed depth hint. A negative d is a no-op.
// Reports whether the assignment was applied.
// Complexity: O(1)
func (n *Node) SetDepth(d int) bool {
	if d < 0 {
		return false
	}
	n.depth = d

	return true
}

// ArcHead returns the first outgoing arc, or nil when the node has none.
func (n *Node) ArcHead() *Arc { return n.arcHead }

// ArcCount walks the arc list and returns the number of outgoing arcs.
// Complexity: O(out-degree)
func (n *Node) ArcCount() int {
	count := 0
	for a := n.arcHead; a != nil; a = a.next {
		count++
	}

	return count
}

// ArcTo returns the first outgoing arc whose target is exactly the given
// node (pointer identity), or nil when target is nil or no arc matches.
// Complexity: O(out-degree)
func (n *Node) ArcTo(target *Node) *Arc {
	if target == nil {
		return nil
	}
	var a *Arc
	for a = n.arcHead; a != nil; a = a.next {
		if a.target == target {
			return a
		}
	}

	return nil
}

// Connected reports whether an outgoing arc n→target exists. The answer is
// independent of whether target has an arc back to n.
// Complexity: O(out-degree)
func (n *Node) Connected(target *Node) bool {
	return n.ArcTo(target) != nil
}

// MutuallyConnected reports whether arcs exist in both directions, n→target
// and target→n: two independent one-way checks. AddArc never creates the
// reciprocal arc by itself.
// Complexity: O(out-degree of both nodes)
func (n *Node) MutuallyConnected(target *Node) bool {
	return target != nil && n.Connected(target) && target.Connected(n)
}

// AddArc appends a new arc n→target at the tail of the arc list, so the
// iteration order of arcs equals the order of AddArc calls. A nil target is
// rejected (false). The cost is clipped into the valid range: negative, NaN,
// and infinite values become 0. Parallel arcs to the same target are
// permitted. Reports whether an arc was created.
// Complexity: O(1) via the tail cursor.
func (n *Node) AddArc(target *Node, cost float64) bool {
	if target == nil {
		return false
	}
	if !finiteNonNegative(cost) {
		cost = 0
	}
	a := &Arc{target: target, cost: cost, prev: n.arcTail}
	if n.arcTail != nil {
		n.arcTail.next = a
	} else {
		n.arcHead = a
	}
	n.arcTail = a

	return true
}

// RemoveArc splices out the first arc n→target, updating the predecessor's
// next, the successor's prev, and the head/tail cursors as needed. Returns
// false when target is nil or no arc matches. One-way only: the target
// node's own arc list is never touched.
// Complexity: O(out-degree)
func (n *Node) RemoveArc(target *Node) bool {
	a := n.ArcTo(target)
	if a == nil {
		return false
	}
	n.detach(a)

	return true
}

// detach splices a out of the arc list and resets it. a must be owned by n.
func (n *Node) detach(a *Arc) {
	if a.prev != nil {
		a.prev.next = a.next
	} else {
		n.arcHead = a.next
	}
	if a.next != nil {
		a.next.prev = a.prev
	} else {
		n.arcTail = a.prev
	}
	a.Clear()
}

// RemoveOutgoingArcs removes every outgoing arc, snapshotting the next
// pointer before each detach. Parallel arcs and self-arcs are all cleared.
// Complexity: O(out-degree)
func (n *Node) RemoveOutgoingArcs() {
	var next *Arc
	for a := n.arcHead; a != nil; a = next {
		next = a.next
		n.detach(a)
	}
}

// RemoveAllArcs fully detaches the node's arc relationships: for each
// outgoing arc, the arc's target first removes any arc pointing back to n,
// then the outgoing arc itself is detached. A self-arc skips the reciprocal
// step, it is already the arc being detached. Used to free a node before it
// leaves a graph.
// Complexity: O(out-degree of n + out-degree of each target)
func (n *Node) RemoveAllArcs() {
	var next *Arc
	for a := n.arcHead; a != nil; a = next {
		next = a.next
		if a.target != nil && a.target != n {
			a.target.RemoveArc(n)
		}
		n.detach(a)
	}
}
