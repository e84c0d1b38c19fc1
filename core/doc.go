// Package core provides a minimal in-memory directed-graph container built
// on intrusive doubly-linked lists: the Graph owns an ordered list of Nodes,
// and each Node owns an ordered list of outgoing weighted Arcs.
//
// The model G = (V,A) keeps the invariants that matter for deterministic
// traversal and safe mutation:
//
//   - Arc-insertion order is preserved: each node's arc list iterates in the
//     exact order AddArc was called, giving DFS/BFS a deterministic visit
//     order with no sorting step.
//   - List consistency under mutation: every removal splices in place and
//     fixes head/tail cursors; iteration snapshots the next link before any
//     detach, so removing while walking is safe.
//   - Identity-keyed ownership: a *Node instance belongs to at most one
//     graph; membership checks, arc-endpoint checks, and double-insert
//     protection are O(1) map lookups, not list scans.
//   - Incident-arc guarantee: removing a node removes all arcs touching it
//     in both directions; no dangling arc reference survives anywhere.
//
// Why use core.Graph?
//
//   - Nodes carry a generic value (any) and a string-or-number id; lookup is
//     by value (FindNode, Contains, Remove) or by identity (HasNode, ArcTo).
//   - Parallel arcs and self-arcs are permitted; arcs are cheap intrusive
//     records, not independently managed objects.
//   - No error values: invalid setter input is a silent no-op retaining the
//     prior state, and every mutator reports applied/ignored as a bool.
//     Every input is total; nothing panics.
//
// Validation policy (silent no-ops):
//
//	– Arc.SetCost(c)     rejects negative, NaN, and infinite c.
//	– Node.AddArc(t, c)  rejects nil t; clips an invalid c to 0.
//	– Node.SetID(id)     accepts strings, and numbers only when finite ≥ 0.
//	– Node.SetValue(v)   rejects nil (a value cannot be unset).
//	– Node.SetDepth(d)   rejects negative d.
//	– Graph.AddNode(n)   rejects nil and already-owned instances.
//
// Core Methods:
//
//	// Node lifecycle
//	NewNode(value any) *Node
//	AddNode(n *Node) bool              // O(1)
//	RemoveNode(n *Node) bool           // O(V+E)
//	FindNode(value any) *Node          // O(V)
//	Remove(value any) bool             // O(k·(V+E))
//
//	// Arc lifecycle
//	Node.AddArc(target, cost) bool     // O(1)
//	Node.RemoveArc(target) bool        // O(out-degree)
//	AddSingleArc(src, dst, cost) bool  // O(1)
//	AddMutualArc(src, dst, cost) bool  // O(1)
//
//	// Traversal support
//	ClearMarks() / ClearParents()      // O(V)
//	First() / Nodes() / Size() / IsEmpty()
//
// Concurrency: none. All operations are direct pointer manipulation with no
// locks and no I/O; callers own synchronization if a graph is ever shared
// across goroutines. The bfs and dfs packages allocate fresh per-call state,
// so traversal results never alias graph scratch internals.
package core
