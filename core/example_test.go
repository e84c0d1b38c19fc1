package core_test

import (
	"fmt"

	"github.com/katalvlaran/arcgraph/core"
)

// values flattens a node slice into its payloads for printing.
func values(nodes []*core.Node) []any {
	out := make([]any, len(nodes))
	for i, n := range nodes {
		out[i] = n.Value()
	}
	return out
}

// ExampleGraph demonstrates basic creation, mutation, and queries.
func ExampleGraph() {
	// 1) Create an empty graph and three nodes:
	g := core.NewGraph()
	a, b, c := core.NewNode("A"), core.NewNode("B"), core.NewNode("C")
	g.AddNode(a)
	g.AddNode(b)
	g.AddNode(c)

	// 2) Wire arcs: one mutual pair A↔B and a single arc B→C:
	g.AddMutualArc(a, b, 1)
	g.AddSingleArc(b, c, 2)

	// 3) Inspect the structure:
	fmt.Println("Nodes:", values(g.Nodes()))
	fmt.Println("A↔B mutual?", a.MutuallyConnected(b))
	fmt.Println("C→B exists?", c.Connected(b))

	// 4) Remove a node and every arc touching it:
	g.RemoveNode(b)
	fmt.Println("After removing B:", values(g.Nodes()))
	fmt.Println("A→B exists?", a.Connected(b))

	// Output:
	// Nodes: [A B C]
	// A↔B mutual? true
	// C→B exists? false
	// After removing B: [A C]
	// A→B exists? false
}

// ExampleGraph_FindNode shows payload lookup against identity membership.
func ExampleGraph_FindNode() {
	g := core.NewGraph()
	g.AddNode(core.NewNode("depot"))
	g.AddNode(core.NewNode("dock"))

	n := g.FindNode("dock")
	fmt.Println("found:", n.Value())

	// A fresh node with an equal payload is not the member itself.
	fmt.Println("member?", g.HasNode(core.NewNode("dock")))

	// Output:
	// found: dock
	// member? false
}

// ExampleNode_AddArc shows parallel arcs and insertion-ordered iteration.
func ExampleNode_AddArc() {
	hub := core.NewNode("hub")
	east := core.NewNode("east")

	hub.AddArc(east, 4)
	hub.AddArc(east, 7) // a second, parallel arc to the same target

	for a := hub.ArcHead(); a != nil; a = a.Next() {
		fmt.Printf("%v→%v cost=%v\n", hub.Value(), a.Target().Value(), a.Cost())
	}
	fmt.Println("arcs:", hub.ArcCount())

	// Output:
	// hub→east cost=4
	// hub→east cost=7
	// arcs: 2
}

// ExampleGraph_Remove deletes every node carrying a payload.
func ExampleGraph_Remove() {
	g := core.NewGraph()
	g.AddNode(core.NewNode("spare"))
	g.AddNode(core.NewNode("main"))
	g.AddNode(core.NewNode("spare"))

	fmt.Println("removed any:", g.Remove("spare"))
	fmt.Println("remaining:", values(g.Nodes()))

	// Output:
	// removed any: true
	// remaining: [main]
}
