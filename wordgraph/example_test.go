package wordgraph_test

import (
	"fmt"

	"github.com/katalvlaran/orbita/wordgraph"
)

// ExampleGraph_NumberOfSCC builds the word graph of a 3-cycle under one
// generator plus an identity loop under a second, then counts its strong
// components.
func ExampleGraph_NumberOfSCC() {
	g := wordgraph.New(3, 2)
	for i := 0; i < 3; i++ {
		_ = g.AddEdge(i, (i+1)%3, 0) // rotation
		_ = g.AddEdge(i, i, 1)       // identity
	}
	n, _ := g.NumberOfSCC()
	fmt.Println(g)
	fmt.Println("components:", n)
	// Output:
	// <word graph with 3 nodes, 6 edges, out-degree 2>
	// components: 1
}

// ExampleGraph_SpanningForest shows how to recover a path of generator
// labels from any node back to its component root.
func ExampleGraph_SpanningForest() {
	g := wordgraph.New(4, 1)
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(2, 3, 0)
	_ = g.AddEdge(3, 0, 0)

	f, _ := g.SpanningForest()
	root, _ := g.RootOfSCC(0)
	fmt.Println("root:", root)

	// collect labels walking from node 2 up to the root
	var labels []int
	for cur := 2; f.Parent(cur) != wordgraph.Undefined; cur = f.Parent(cur) {
		labels = append(labels, f.Label(cur))
	}
	fmt.Println("labels up:", labels)
	// Output:
	// root: 3
	// labels up: [0 0 0]
}
