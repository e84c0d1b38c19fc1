package builder_test

import (
	"fmt"

	"github.com/katalvlaran/arcgraph/builder"
)

// ExampleBuild assembles a graph from an in-memory description.
func ExampleBuild() {
	d := &builder.Description{
		Nodes: []builder.NodeSpec{{ID: "A"}, {ID: "B"}, {ID: "C"}},
		Edges: []builder.EdgeSpec{
			{From: "A", To: builder.TargetList{"B", "C"}},
			{From: "B", To: builder.TargetList{"C"}, Mutual: true},
		},
	}

	g, err := builder.Build(d)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	for _, n := range g.Nodes() {
		fmt.Printf("%v: %d outgoing\n", n.Value(), n.ArcCount())
	}
	// Output:
	// A: 2 outgoing
	// B: 1 outgoing
	// C: 1 outgoing
}

// ExampleFromYAML decodes a document and reports the wired topology.
func ExampleFromYAML() {
	data := []byte(`
nodes:
  - id: depot
  - id: dock
  - id: yard
edges:
  - from: depot
    to: [dock, yard]
  - from: dock
    to: yard
    cost: 4
`)
	g, err := builder.FromYAML(data)
	if err != nil {
		fmt.Println("build:", err)
		return
	}
	fmt.Println("nodes:", g.Size())

	depot := g.FindNode("depot")
	dock := g.FindNode("dock")
	yard := g.FindNode("yard")
	fmt.Println("depot fan-out:", depot.ArcCount())
	fmt.Println("dock-yard cost:", dock.ArcTo(yard).Cost())
	// Output:
	// nodes: 3
	// depot fan-out: 2
	// dock-yard cost: 4
}
