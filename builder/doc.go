// Package builder materializes core.Graph instances from declarative
// descriptions, either constructed in Go or decoded from YAML.
//
// What
//
//   - Description: the declarative recipe, a node list plus an edge list.
//   - Build(d): validates every spec, then wires a graph in declaration
//     order. Validation is all-or-nothing: on any error the returned
//     graph is empty, never nil.
//   - FromYAML(data): decodes a Description and builds it in one call.
//
// Why
//
//   - Fixtures and topologies live as data instead of wiring code.
//   - Every id and endpoint is checked before a single node is created,
//     so a half-built graph can never leak out.
//   - Insertion order follows declaration order, which keeps DFS and BFS
//     visit sequences over built graphs fully reproducible.
//
// YAML shape
//
//	nodes:
//	  - id: R
//	  - id: A
//	    value: depot
//	edges:
//	  - from: R
//	    to: A
//	  - from: A
//	    to: [B, C]
//	    cost: 2.5
//	    mutual: true
//
// A node's id doubles as its payload unless value is set. The to field
// accepts a scalar or a sequence. Cost defaults to DefaultArcCost, and
// mutual wires both directions at the same cost.
//
// Generators
//
// Path, Cycle, Star, Complete, Grid, and RandomSparse return canned
// Description values for common topologies. They are plain data: adjust
// costs or flip Mutual on the edges, then Build.
//
// Errors
//
//   - ErrNilDescription    Build(nil)
//   - ErrInvalidNodeID     id is neither a string nor a non-negative number
//   - ErrDuplicateNodeID   two node specs share an id
//   - ErrMissingEndpoint   edge without a source or any target
//   - ErrUnknownEndpoint   edge references an undeclared id
//   - ErrDecode            YAML input cannot be decoded
//
// All are sentinels: branch with errors.Is.
package builder
