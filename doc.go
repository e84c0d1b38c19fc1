// Package arcgraph is an in-memory playground for linked-list graphs:
// pointer-chained nodes, per-node arc chains, and traversals that write
// their findings back onto the nodes they visit.
//
// 🚀 What is arcgraph?
//
//	A small, allocation-light library that brings together:
//		• Core primitives: a doubly linked node registry with per-node arc lists
//		• Traversals: BFS (level order) and DFS (pre-order), both hook-driven
//		• Declarative assembly: build whole graphs from YAML documents
//
// ✨ Why choose arcgraph?
//
//   - Beginner-friendly: minimal API, clear, intuitive naming
//   - Deterministic: insertion order decides iteration and visit order
//   - Inspectable: marks stay on the nodes after a walk; depths and
//     parent links come back in the traversal result
//   - Extensible: custom hooks (OnVisit, OnEnqueue...) for custom logic
//
// Under the hood, everything is organized under four subpackages:
//
//	core/    - Graph, Node, and Arc types plus the mutation primitives
//	bfs/     - breadth-first traversal with hooks, filters, depth limits
//	dfs/     - depth-first traversal sharing the same option surface
//	builder/ - declarative graph assembly from YAML or in-memory specs
//
// Quick ASCII example:
//
//	    R ──► A ──► D ──► G
//	    │
//	    ├──► B ──► E
//	    └──► C ──► F
//
//	DFS from R visits R A D G B E C F; BFS visits R A B C D E F G.
//
//	go get github.com/katalvlaran/arcgraph
package arcgraph
