// Package core: Graph method implementations.
//
// The node list is intrusive and ordered: AddNode appends at the tail
// through the tail cursor, Nodes() walks head to tail. Membership checks are
// O(1) identity lookups against the members set, so arc creation never
// rescans the node list. Removing a node sweeps every incident arc in both
// directions: after RemoveNode or Remove, no arc anywhere in the graph
// references the detached node.

package core

import "reflect"

// valuesEqual compares two payloads by value, never panicking on
// uncomparable dynamic types.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a).Comparable() && reflect.TypeOf(b).Comparable() {
		return a == b
	}

	return reflect.DeepEqual(a, b)
}

// Size returns the number of nodes currently owned by the graph.
// Complexity: O(1)
func (g *Graph) Size() int { return g.size }

// IsEmpty reports whether the graph owns no nodes.
// Complexity: O(1)
func (g *Graph) IsEmpty() bool { return g.size == 0 }

// First returns the head of the node list, or nil for an empty graph.
// Traversals resolve an absent start node to this one.
// Complexity: O(1)
func (g *Graph) First() *Node { return g.head }

// HasNode reports identity membership: whether exactly this node instance
// is owned by the graph.
// Complexity: O(1)
func (g *Graph) HasNode(n *Node) bool {
	if n == nil {
		return false
	}
	_, ok := g.members[n]

	return ok
}

// AddNode appends n at the tail of the node list and takes ownership of the
// instance (no cloning). A nil node or a node already owned by this graph
// is a no-op (false): the same instance cannot be inserted twice.
// Reports whether the node was inserted.
// Complexity: O(1) via the tail cursor.
func (g *Graph) AddNode(n *Node) bool {
	if n == nil || g.HasNode(n) {
		return false
	}
	n.prev = g.tail
	n.next = nil
	if g.tail != nil {
		g.tail.next = n
	} else {
		g.head = n
	}
	g.tail = n
	g.members[n] = struct{}{}
	g.size++

	return true
}

// RemoveNode detaches n from the graph: every arc incident to n in either
// direction is removed, then n is spliced out of the node list and the size
// decremented. A nil or non-member n is a no-op (false). The node itself
// survives as an unlinked, arc-free instance.
// Complexity: O(V + E) for the incident-arc sweep.
func (g *Graph) RemoveNode(n *Node) bool {
	if !g.HasNode(n) {
		return false
	}
	g.unlink(n)
	g.splice(n)

	return true
}

// FindNode returns the first node in list order whose value equals value,
// or nil when no node matches. Values compare by value-equality.
// Complexity: O(n)
func (g *Graph) FindNode(value any) *Node {
	for n := g.head; n != nil; n = n.next {
		if valuesEqual(n.value, value) {
			return n
		}
	}

	return nil
}

// Contains reports whether some node's value equals value.
// Complexity: O(n)
func (g *Graph) Contains(value any) bool {
	return g.FindNode(value) != nil
}

// AddSingleArc creates one arc source→target with the given cost. Both
// endpoints must be members of this graph; otherwise nothing happens
// (false). The cost follows the AddArc clipping policy.
// Complexity: O(1)
func (g *Graph) AddSingleArc(source, target *Node, cost float64) bool {
	if !g.HasNode(source) || !g.HasNode(target) {
		return false
	}

	return source.AddArc(target, cost)
}

// AddMutualArc creates two arcs, source→target and target→source, with the
// same cost. Both endpoints must be members; otherwise nothing happens
// (false). The two arcs are independent: removing one never removes the
// other.
// Complexity: O(1)
func (g *Graph) AddMutualArc(source, target *Node, cost float64) bool {
	if !g.HasNode(source) || !g.HasNode(target) {
		return false
	}
	source.AddArc(target, cost)
	target.AddArc(source, cost)

	return true
}

// ClearMarks resets every node's traversal-visited flag to false.
// Complexity: O(n)
func (g *Graph) ClearMarks() {
	for n := g.head; n != nil; n = n.next {
		n.marked = false
	}
}

// ClearParents resets every node's caller-managed parent hint to nil.
// Complexity: O(n)
func (g *Graph) ClearParents() {
	for n := g.head; n != nil; n = n.next {
		n.parent = nil
	}
}

// Remove detaches every node whose value equals value, not just the first,
// unlinking each from the node list and from all incident arcs. Returns
// true iff at least one node was removed.
// Complexity: O(k·(V+E)) where k is the number of matches.
func (g *Graph) Remove(value any) bool {
	removed := false
	var next *Node
	for n := g.head; n != nil; n = next {
		next = n.next
		if valuesEqual(n.value, value) {
			g.unlink(n)
			g.splice(n)
			removed = true
		}
	}

	return removed
}

// Nodes returns all nodes in list order (head to tail) as a fresh slice.
// Repeated calls are independent; mutating the slice never affects the
// graph.
// Complexity: O(n)
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, g.size)
	for n := g.head; n != nil; n = n.next {
		out = append(out, n)
	}

	return out
}

// Clear resets the graph to empty. Every owned node has each of its arcs
// cleared (target, links, cost) and its own value, links, and arc cursors
// reset; the node list, insertion cursor, membership set, and size all
// become empty. External references to the detached nodes stay valid and
// inert.
// Complexity: O(V + E)
func (g *Graph) Clear() {
	var nextNode *Node
	var nextArc *Arc
	for n := g.head; n != nil; n = nextNode {
		nextNode = n.next
		for a := n.arcHead; a != nil; a = nextArc {
			nextArc = a.next
			a.Clear()
		}
		n.value = nil
		n.prev = nil
		n.next = nil
		n.arcHead = nil
		n.arcTail = nil
	}
	g.head = nil
	g.tail = nil
	g.size = 0
	g.members = make(map[*Node]struct{})
}

// splice removes n from the doubly-linked node list, resets its links, and
// releases ownership. n must be a member.
func (g *Graph) splice(n *Node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		g.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		g.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	delete(g.members, n)
	g.size--
}

// unlink removes every arc incident to n: each other member drops all of
// its arcs targeting n (parallel arcs included), then n's own outgoing-arc
// list is cleared. After unlink no arc anywhere in the graph references n.
func (g *Graph) unlink(n *Node) {
	for m := g.head; m != nil; m = m.next {
		if m == n {
			continue
		}
		for m.RemoveArc(n) {
		}
	}
	n.RemoveOutgoingArcs()
}
