// Package bfs provides breadth-first traversal over a core.Graph,
// returning fewest-arc distances, parent links, and visit order.
//
// What
//
//   - Explore nodes in non-decreasing distance (arc count) from a start node.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from node → distance (arcs) from start
//   - Parent: map from node → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a node is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual arcs via WithFilterArc.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute fewest-arc paths in O(V + A) time.
//   - Discover reachable subgraphs and level layering.
//   - Reconstruct routes through BFSResult.PathTo.
//
// Determinism
//
//	Each node's arc list iterates in insertion order, and BFS enqueues
//	targets in that order, so the visit sequence is fully reproducible.
//
// Start resolution
//
//	The start argument may be nil (first node of the graph), a *core.Node
//	(used directly), or any payload value (resolved via Graph.FindNode).
//	An unmatched payload is not an error: the result is simply empty, and
//	a single-node graph always yields its only node.
//
// Traversal state lives on the nodes themselves: every mark in the graph
// is cleared when BFS begins, nodes are marked as they are enqueued, and
// the marks persist after BFS returns.
//
// Complexity (V = |Nodes|, A = |Arcs|)
//
//   - Time:   O(V + A)   (each node and arc seen at most once)
//   - Memory: O(V)       (for queue, Depth map, Parent map)
//
// Usage
//
//	// Basic BFS from the first node:
//	result, err := bfs.BFS(g, nil)
//	if err != nil {
//	    // handle ErrGraphNil, ErrOptionViolation, or hook errors
//	}
//
//	// With functional options:
//	result, err := bfs.BFS(
//	    g, "start",
//	    bfs.WithContext(ctx),
//	    bfs.WithMaxDepth(3),
//	    bfs.WithFilterArc(func(from *core.Node, a *core.Arc) bool { return a.Cost() < 10 }),
//	    bfs.WithOnVisit(func(n *core.Node, depth int) error { return nil }),
//	)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):       set a custom context for cancellation.
//   - WithMaxDepth(d):        stop exploring beyond depth d (>0).
//   - WithFilterArc(fn):      skip arcs for which fn(from, arc)==false.
//   - WithOnEnqueue(fn):      hook before a node is enqueued.
//   - WithOnDequeue(fn):      hook immediately before visiting a node.
//   - WithOnVisit(fn):        hook during visit; returning error aborts BFS.
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - ErrOptionViolation   if an invalid Option (e.g. negative MaxDepth) is given.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
