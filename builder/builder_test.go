package builder_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/arcgraph/builder"
	"github.com/katalvlaran/arcgraph/core"
)

// costPtr returns a pointer to c for optional edge costs.
func costPtr(c float64) *float64 { return &c }

// TestBuild_ValidationErrors runs the table of rejected descriptions and
// checks that a failed build always hands back an empty graph.
func TestBuild_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		desc *builder.Description
		want error
	}{
		{"nil description", nil, builder.ErrNilDescription},
		{"invalid id bool",
			&builder.Description{Nodes: []builder.NodeSpec{{ID: true}}},
			builder.ErrInvalidNodeID},
		{"invalid id negative",
			&builder.Description{Nodes: []builder.NodeSpec{{ID: -3}}},
			builder.ErrInvalidNodeID},
		{"invalid id nil",
			&builder.Description{Nodes: []builder.NodeSpec{{ID: nil}}},
			builder.ErrInvalidNodeID},
		{"duplicate id",
			&builder.Description{Nodes: []builder.NodeSpec{{ID: "A"}, {ID: "A"}}},
			builder.ErrDuplicateNodeID},
		{"unknown source",
			&builder.Description{
				Nodes: []builder.NodeSpec{{ID: "A"}},
				Edges: []builder.EdgeSpec{{From: "X", To: builder.TargetList{"A"}}},
			},
			builder.ErrUnknownEndpoint},
		{"unknown target",
			&builder.Description{
				Nodes: []builder.NodeSpec{{ID: "A"}},
				Edges: []builder.EdgeSpec{{From: "A", To: builder.TargetList{"X"}}},
			},
			builder.ErrUnknownEndpoint},
		{"missing source",
			&builder.Description{
				Nodes: []builder.NodeSpec{{ID: "A"}},
				Edges: []builder.EdgeSpec{{To: builder.TargetList{"A"}}},
			},
			builder.ErrMissingEndpoint},
		{"empty targets",
			&builder.Description{
				Nodes: []builder.NodeSpec{{ID: "A"}},
				Edges: []builder.EdgeSpec{{From: "A"}},
			},
			builder.ErrMissingEndpoint},
		{"nil target entry",
			&builder.Description{
				Nodes: []builder.NodeSpec{{ID: "A"}},
				Edges: []builder.EdgeSpec{{From: "A", To: builder.TargetList{nil}}},
			},
			builder.ErrMissingEndpoint},
		{"uncomparable source",
			&builder.Description{
				Nodes: []builder.NodeSpec{{ID: "A"}},
				Edges: []builder.EdgeSpec{{From: []any{"A"}, To: builder.TargetList{"A"}}},
			},
			builder.ErrUnknownEndpoint},
		{"uncomparable target",
			&builder.Description{
				Nodes: []builder.NodeSpec{{ID: "A"}},
				Edges: []builder.EdgeSpec{{From: "A", To: builder.TargetList{[]any{"A"}}}},
			},
			builder.ErrUnknownEndpoint},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.Build(tc.desc)
			if !errors.Is(err, tc.want) {
				t.Fatalf("Build error = %v; want %v", err, tc.want)
			}
			if g == nil {
				t.Fatal("Build must always return a graph")
			}
			if g.Size() != 0 {
				t.Errorf("failed build left %d nodes; want an empty graph", g.Size())
			}
		})
	}
}

// TestBuild_WiresDeclarationOrder checks node order, payload defaulting,
// fan-out, and cost handling on a small description.
func TestBuild_WiresDeclarationOrder(t *testing.T) {
	d := &builder.Description{
		Nodes: []builder.NodeSpec{
			{ID: "R"},
			{ID: "A", Value: "depot"},
			{ID: "B"},
		},
		Edges: []builder.EdgeSpec{
			{From: "R", To: builder.TargetList{"A", "B"}},
			{From: "A", To: builder.TargetList{"B"}, Cost: costPtr(2.5)},
		},
	}

	g, err := builder.Build(d)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 3 {
		t.Fatalf("Size() = %d; want 3", g.Size())
	}

	nodes := g.Nodes()
	for i, wantID := range []string{"R", "A", "B"} {
		if nodes[i].ID() != wantID {
			t.Errorf("nodes[%d].ID() = %v; want %v", i, nodes[i].ID(), wantID)
		}
	}

	// payload defaults to the id, explicit value honored
	if nodes[0].Value() != "R" {
		t.Errorf("Value() = %v; want the id R", nodes[0].Value())
	}
	if nodes[1].Value() != "depot" {
		t.Errorf("Value() = %v; want depot", nodes[1].Value())
	}

	// fan-out in target order with the default cost
	r := nodes[0]
	if r.ArcCount() != 2 {
		t.Fatalf("R.ArcCount() = %d; want 2", r.ArcCount())
	}
	if r.ArcHead().Target() != nodes[1] {
		t.Error("first arc of R must lead to A")
	}
	if got := r.ArcHead().Cost(); got != builder.DefaultArcCost {
		t.Errorf("default cost = %v; want %v", got, builder.DefaultArcCost)
	}

	// explicit cost, one-way unless mutual
	if got := nodes[1].ArcTo(nodes[2]).Cost(); got != 2.5 {
		t.Errorf("A→B cost = %v; want 2.5", got)
	}
	if nodes[2].ArcCount() != 0 {
		t.Error("B must have no outgoing arcs")
	}
}

// TestBuild_Mutual wires both directions at the same cost.
func TestBuild_Mutual(t *testing.T) {
	d := &builder.Description{
		Nodes: []builder.NodeSpec{{ID: "A"}, {ID: "B"}},
		Edges: []builder.EdgeSpec{
			{From: "A", To: builder.TargetList{"B"}, Cost: costPtr(3), Mutual: true},
		},
	}

	g, err := builder.Build(d)
	if err != nil {
		t.Fatal(err)
	}
	a, b := g.FindNode("A"), g.FindNode("B")
	if !a.MutuallyConnected(b) {
		t.Fatal("mutual edge must connect both directions")
	}
	if a.ArcTo(b).Cost() != 3 || b.ArcTo(a).Cost() != 3 {
		t.Error("both directions must carry cost 3")
	}
}

// TestBuild_NumericIDs accepts non-negative numbers as identifiers.
func TestBuild_NumericIDs(t *testing.T) {
	d := &builder.Description{
		Nodes: []builder.NodeSpec{{ID: 0}, {ID: 7}},
		Edges: []builder.EdgeSpec{{From: 0, To: builder.TargetList{7}}},
	}

	g, err := builder.Build(d)
	if err != nil {
		t.Fatal(err)
	}
	zero := g.FindNode(0)
	if zero == nil {
		t.Fatal("node with id 0 not found by payload")
	}
	if !zero.Connected(g.FindNode(7)) {
		t.Error("arc 0→7 not wired")
	}
}

// TestBuild_SelfArc permits an edge from a node to itself.
func TestBuild_SelfArc(t *testing.T) {
	d := &builder.Description{
		Nodes: []builder.NodeSpec{{ID: "A"}},
		Edges: []builder.EdgeSpec{{From: "A", To: builder.TargetList{"A"}}},
	}

	g, err := builder.Build(d)
	if err != nil {
		t.Fatal(err)
	}
	a := g.First()
	if !a.Connected(a) {
		t.Error("self arc not wired")
	}
}

// TestFromYAML_ScalarAndSequenceTargets decodes both target shapes and a
// per-edge cost.
func TestFromYAML_ScalarAndSequenceTargets(t *testing.T) {
	data := []byte(`
nodes:
  - id: R
  - id: A
  - id: B
  - id: C
edges:
  - from: R
    to: A
  - from: A
    to: [B, C]
    cost: 2.5
`)
	g, err := builder.FromYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	if g.Size() != 4 {
		t.Fatalf("Size() = %d; want 4", g.Size())
	}

	r, a := g.FindNode("R"), g.FindNode("A")
	if r.ArcCount() != 1 || r.ArcHead().Target() != a {
		t.Error("scalar target R→A not wired")
	}
	if a.ArcCount() != 2 {
		t.Fatalf("A.ArcCount() = %d; want 2", a.ArcCount())
	}
	var arc *core.Arc
	for arc = a.ArcHead(); arc != nil; arc = arc.Next() {
		if arc.Cost() != 2.5 {
			t.Errorf("A arc cost = %v; want 2.5", arc.Cost())
		}
	}
}

// TestFromYAML_MutualAndValues decodes payload overrides and mutual edges.
func TestFromYAML_MutualAndValues(t *testing.T) {
	data := []byte(`
nodes:
  - id: hub
    value: central depot
  - id: dock
edges:
  - from: hub
    to: dock
    mutual: true
`)
	g, err := builder.FromYAML(data)
	if err != nil {
		t.Fatal(err)
	}
	hub := g.FindNode("central depot")
	if hub == nil {
		t.Fatal("payload override not applied")
	}
	dock := g.FindNode("dock")
	if !hub.MutuallyConnected(dock) {
		t.Error("mutual edge not wired both ways")
	}
}

// TestFromYAML_Errors covers malformed input and validation failures
// surfacing through the decode path.
func TestFromYAML_Errors(t *testing.T) {
	// malformed YAML
	if _, err := builder.FromYAML([]byte("nodes: [")); !errors.Is(err, builder.ErrDecode) {
		t.Errorf("malformed input: want ErrDecode, got %v", err)
	}
	// a mapping is not a valid target list
	bad := []byte("nodes:\n  - id: A\nedges:\n  - from: A\n    to: {x: 1}\n")
	if _, err := builder.FromYAML(bad); !errors.Is(err, builder.ErrDecode) {
		t.Errorf("mapping target: want ErrDecode, got %v", err)
	}
	// well-formed YAML, invalid description
	unknown := []byte("nodes:\n  - id: A\nedges:\n  - from: A\n    to: X\n")
	if _, err := builder.FromYAML(unknown); !errors.Is(err, builder.ErrUnknownEndpoint) {
		t.Errorf("unknown endpoint: want ErrUnknownEndpoint, got %v", err)
	}
	// a sequence is not a valid source
	seqFrom := []byte("nodes:\n  - id: A\nedges:\n  - from: [A]\n    to: A\n")
	if _, err := builder.FromYAML(seqFrom); !errors.Is(err, builder.ErrUnknownEndpoint) {
		t.Errorf("sequence source: want ErrUnknownEndpoint, got %v", err)
	}
}
