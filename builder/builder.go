package builder

import (
	"fmt"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/arcgraph/core"
)

// Build materializes a Description into a core.Graph in two phases: every
// spec is validated first, then nodes and arcs are wired in declaration
// order. On any validation error the returned graph is empty, never nil,
// and the error wraps the matching sentinel.
func Build(d *Description) (*core.Graph, error) {
	g := core.NewGraph()
	if d == nil {
		return g, ErrNilDescription
	}

	// Phase 1: stage nodes, delegating the id policy to core.Node
	byID := make(map[any]*core.Node, len(d.Nodes))
	staged := make([]*core.Node, 0, len(d.Nodes))
	var spec NodeSpec
	for _, spec = range d.Nodes {
		n := core.NewNode(nodeValue(spec))
		if !n.SetID(spec.ID) {
			return g, fmt.Errorf("%w: %v", ErrInvalidNodeID, spec.ID)
		}
		if _, dup := byID[spec.ID]; dup {
			return g, fmt.Errorf("%w: %v", ErrDuplicateNodeID, spec.ID)
		}
		byID[spec.ID] = n
		staged = append(staged, n)
	}

	// Phase 1, continued: check every edge endpoint against the staged set
	for i, e := range d.Edges {
		if e.From == nil || len(e.To) == 0 {
			return g, fmt.Errorf("%w: edge %d", ErrMissingEndpoint, i)
		}
		if !hashable(e.From) {
			return g, fmt.Errorf("%w: %v", ErrUnknownEndpoint, e.From)
		}
		if _, ok := byID[e.From]; !ok {
			return g, fmt.Errorf("%w: %v", ErrUnknownEndpoint, e.From)
		}
		for _, to := range e.To {
			if to == nil {
				return g, fmt.Errorf("%w: edge %d", ErrMissingEndpoint, i)
			}
			if !hashable(to) {
				return g, fmt.Errorf("%w: %v", ErrUnknownEndpoint, to)
			}
			if _, ok := byID[to]; !ok {
				return g, fmt.Errorf("%w: %v", ErrUnknownEndpoint, to)
			}
		}
	}

	// Phase 2: assemble, nodes in declaration order, then arcs
	for _, n := range staged {
		g.AddNode(n)
	}
	for _, e := range d.Edges {
		cost := DefaultArcCost
		if e.Cost != nil {
			cost = *e.Cost
		}
		from := byID[e.From]
		for _, to := range e.To {
			if e.Mutual {
				g.AddMutualArc(from, byID[to], cost)
			} else {
				g.AddSingleArc(from, byID[to], cost)
			}
		}
	}

	return g, nil
}

// FromYAML decodes a Description from data and builds it.
// Decode failures are reported as ErrDecode.
func FromYAML(data []byte) (*core.Graph, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return core.NewGraph(), fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return Build(&d)
}

// nodeValue picks the node payload: the explicit Value, else the id itself.
func nodeValue(spec NodeSpec) any {
	if spec.Value != nil {
		return spec.Value
	}
	return spec.ID
}

// hashable reports whether an endpoint id can key the staged-node map.
// An uncomparable value can never match a declared id.
func hashable(id any) bool {
	return id != nil && reflect.TypeOf(id).Comparable()
}
