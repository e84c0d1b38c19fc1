// Package core: Arc, Node, and Graph type declarations and constructors.
//
// All state is plain in-memory pointers with no locking. A Graph and its
// nodes assume exclusive single-writer access during any mutating call and
// are not safe for concurrent use without external synchronization.

package core

// Arc is a single weighted directed edge owned by its source node.
//
// Arcs form an intrusive doubly-linked list per source node, kept in the
// order they were added. The target pointer is non-owning: clearing or
// removing an arc never mutates the target node.
type Arc struct {
	// target is the terminal node of the edge; nil after Clear.
	target *Node

	// cost is the finite, non-negative edge weight.
	cost float64

	// prev and next are the intrusive list links among the arcs owned by
	// one source node; nil at the list boundaries.
	prev *Arc
	next *Arc
}

// NewArc creates an unlinked arc bound to target with the given cost.
// The cost passes through the SetCost validation: a negative, NaN, or
// infinite value leaves the arc at the zero default.
// Complexity: O(1)
func NewArc(target *Node, cost float64) *Arc {
	a := &Arc{target: target}
	a.SetCost(cost)

	return a
}

// Node holds an identifier, a generic value, membership links in its
// graph's node list, and the head of its own outgoing-arc list.
//
// The marked flag is traversal-visited state, reset graph-wide before each
// DFS/BFS run. parent and depth are caller-managed hints: no operation in
// this package or in the traversal packages mutates them.
type Node struct {
	// id is a string or non-negative numeric identifier; defaults to 0.
	id any

	// value is the generic payload; nil means absent.
	value any

	// prev and next are the intrusive list links among all nodes owned by
	// one graph; maintained by the Graph, nil while unlinked.
	prev *Node
	next *Node

	// marked is the visited flag for the current traversal.
	marked bool

	// parent and depth are caller-managed traversal hints.
	parent *Node
	depth  int

	// arcHead is the first outgoing arc; arcTail tracks the most recently
	// appended arc so AddArc appends in O(1).
	arcHead *Arc
	arcTail *Arc
}

// NewNode creates an unlinked node carrying the given value.
// Pass nil to construct without a value. The id defaults to 0.
// Complexity: O(1)
func NewNode(value any) *Node {
	return &Node{id: 0, value: value}
}

// Graph owns a doubly-linked list of nodes and provides insertion, removal,
// lookup, and arc-creation operations. Traversals live in the bfs and dfs
// packages and consume this API.
//
// Membership is identity-keyed: a *Node instance is either owned by the
// graph or not, regardless of its value, and cannot be inserted twice.
type Graph struct {
	// head and tail delimit the node list; tail is the O(1) insertion cursor.
	head *Node
	tail *Node

	// size is the count of nodes currently owned.
	size int

	// members records identity-keyed ownership for O(1) presence checks.
	members map[*Node]struct{}
}

// NewGraph creates an empty graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{members: make(map[*Node]struct{})}
}
