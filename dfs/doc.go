// Package dfs implements depth-first traversal on a core.Graph.
//
// What:
//
//   - DFS: explores as far as possible along each branch before moving to
//     the next sibling, following arcs in their insertion order. Supports:
//   - Pre-order visit hook with error abort
//   - Cancellation via context.Context
//   - Depth limiting
//   - Arc filtering
//
// Why:
//   - Walk reachability sets in dependency or routing structures
//   - Derive discovery depths and a spanning tree (parent links)
//   - Drive node-by-node processing through the OnVisit hook
//
// Key Types:
//
//   - Option: functional options for DFS behavior
//   - DFSOptions: holds Context, OnVisit, MaxDepth, FilterArc
//   - DFSResult: collects pre-order, Depth, Parent
//
// Traversal state lives on the nodes themselves: every mark in the graph
// is cleared when DFS begins, visited nodes are marked as they are
// discovered, and the marks persist after DFS returns so callers can
// inspect reachability directly.
//
// The walk is iterative. Deeply nested graphs, a million-node chain
// included, traverse without recursion limits.
//
// Complexity:
//
//   - Time: O(V+A), Memory: O(V), for V nodes and A arcs
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil
//   - ErrOptionViolation   invalid option, e.g. negative MaxDepth
//   - context.Canceled     traversal canceled via context
//   - hook errors          propagated from OnVisit
//
// An unmatched start value is not an error: the result is simply empty.
//
// Functions:
//
//   - DFS(g *core.Graph, start any, opts ...Option) (*DFSResult, error)
//     perform depth-first traversal from the resolved start node
//   - DefaultOptions(), WithContext(), WithOnVisit(),
//     WithMaxDepth(), WithFilterArc()
package dfs
