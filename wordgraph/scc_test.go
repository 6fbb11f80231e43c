package wordgraph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/orbita/wordgraph"
)

// rhoGraph builds the out-degree-1 functional graph
//
//	0 → 1 → 2 → 3 → 1    4 ⇄ 5
//
// with strong components {1,2,3}, {0}, and {4,5}.
func rhoGraph(t *testing.T) *wordgraph.Graph {
	t.Helper()
	g := wordgraph.New(6, 1)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}, {4, 5}, {5, 4}} {
		if err := g.AddEdge(e[0], e[1], 0); err != nil {
			t.Fatalf("AddEdge(%v): %v", e, err)
		}
	}
	return g
}

// TestSCC_Incomplete verifies that component analysis refuses a graph with
// undefined slots.
func TestSCC_Incomplete(t *testing.T) {
	g := wordgraph.New(2, 1)
	_ = g.AddEdge(0, 1, 0)
	if _, err := g.NumberOfSCC(); !errors.Is(err, wordgraph.ErrGraphIncomplete) {
		t.Errorf("incomplete graph: want ErrGraphIncomplete, got %v", err)
	}
	if _, err := g.SpanningForest(); !errors.Is(err, wordgraph.ErrGraphIncomplete) {
		t.Errorf("SpanningForest on incomplete graph: want ErrGraphIncomplete, got %v", err)
	}
}

// TestSCC_Partition checks component count, membership, and id grouping on
// the rho graph.
func TestSCC_Partition(t *testing.T) {
	g := rhoGraph(t)

	n, err := g.NumberOfSCC()
	if err != nil {
		t.Fatalf("NumberOfSCC: %v", err)
	}
	if n != 3 {
		t.Fatalf("NumberOfSCC = %d; want 3", n)
	}

	id := func(node int) int {
		v, err := g.SCCID(node)
		if err != nil {
			t.Fatalf("SCCID(%d): %v", node, err)
		}
		return v
	}
	if id(1) != id(2) || id(2) != id(3) {
		t.Errorf("nodes 1,2,3 must share a component: %d %d %d", id(1), id(2), id(3))
	}
	if id(4) != id(5) {
		t.Errorf("nodes 4,5 must share a component: %d %d", id(4), id(5))
	}
	if id(0) == id(1) || id(0) == id(4) || id(1) == id(4) {
		t.Errorf("components of 0, 1, 4 must be pairwise distinct")
	}

	// ids assigned in DFS completion order from node 0
	if id(1) != 0 || id(0) != 1 || id(4) != 2 {
		t.Errorf("completion-order ids: got %d %d %d; want 0 1 2", id(1), id(0), id(4))
	}

	if _, err := g.SCCID(99); !errors.Is(err, wordgraph.ErrNodeOutOfRange) {
		t.Errorf("out-of-range node: want ErrNodeOutOfRange, got %v", err)
	}
}

// TestSCC_Components verifies the component listing, roots, and bounds.
func TestSCC_Components(t *testing.T) {
	g := rhoGraph(t)

	comps, err := g.Components()
	if err != nil {
		t.Fatalf("Components: %v", err)
	}
	total := 0
	for i, comp := range comps {
		total += len(comp)
		root, err := g.RootOfSCC(comp[0])
		if err != nil {
			t.Fatalf("RootOfSCC: %v", err)
		}
		if root != comp[0] {
			t.Errorf("component %d: root %d != first node %d", i, root, comp[0])
		}
		for _, node := range comp {
			r, _ := g.RootOfSCC(node)
			if r != root {
				t.Errorf("node %d: root %d; want %d", node, r, root)
			}
		}
	}
	if total != g.NumberOfNodes() {
		t.Errorf("components cover %d nodes; want %d", total, g.NumberOfNodes())
	}

	roots, err := g.SCCRoots()
	if err != nil {
		t.Fatalf("SCCRoots: %v", err)
	}
	if len(roots) != len(comps) {
		t.Fatalf("len(SCCRoots) = %d; want %d", len(roots), len(comps))
	}
	for i, r := range roots {
		if r != comps[i][0] {
			t.Errorf("SCCRoots[%d] = %d; want %d", i, r, comps[i][0])
		}
	}

	if _, err := g.Component(len(comps)); !errors.Is(err, wordgraph.ErrSCCIndexOutOfRange) {
		t.Errorf("component index out of range: want ErrSCCIndexOutOfRange, got %v", err)
	}
}

// TestSCC_SingleComponent covers a graph where two labels generate one big
// cycle, so everything is strongly connected.
func TestSCC_SingleComponent(t *testing.T) {
	const n = 8
	g := wordgraph.New(n, 2)
	for i := 0; i < n; i++ {
		_ = g.AddEdge(i, (i+1)%n, 0) // forward rotation
		_ = g.AddEdge(i, (i+n-1)%n, 1)
	}
	count, err := g.NumberOfSCC()
	if err != nil {
		t.Fatalf("NumberOfSCC: %v", err)
	}
	if count != 1 {
		t.Errorf("NumberOfSCC = %d; want 1", count)
	}
}

// TestSCC_ResetOnMutation checks that a mutation invalidates cached analysis.
func TestSCC_ResetOnMutation(t *testing.T) {
	g := wordgraph.New(2, 1)
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(1, 0, 0)
	if n, _ := g.NumberOfSCC(); n != 1 {
		t.Fatalf("NumberOfSCC = %d; want 1", n)
	}
	// break the cycle: 1 now fixes itself
	_ = g.AddEdge(1, 1, 0)
	if n, _ := g.NumberOfSCC(); n != 2 {
		t.Errorf("after mutation NumberOfSCC = %d; want 2", n)
	}
}

// TestSpanningForest verifies forward-oriented trees on the rho graph:
// parents point one step toward the component root.
func TestSpanningForest(t *testing.T) {
	g := rhoGraph(t)
	f, err := g.SpanningForest()
	if err != nil {
		t.Fatalf("SpanningForest: %v", err)
	}

	roots, _ := g.SCCRoots()
	for _, r := range roots {
		if f.Parent(r) != wordgraph.Undefined {
			t.Errorf("root %d must have Undefined parent, got %d", r, f.Parent(r))
		}
	}
	// every non-root node's forest edge must be a real graph edge within its
	// component, and walking up must reach the root
	for node := 0; node < g.NumberOfNodes(); node++ {
		p := f.Parent(node)
		if p == wordgraph.Undefined {
			continue
		}
		if g.Neighbor(p, f.Label(node)) != node {
			t.Errorf("forest edge %d→%d (label %d) is not a graph edge", p, node, f.Label(node))
		}
		root, _ := g.RootOfSCC(node)
		cur, steps := node, 0
		for f.Parent(cur) != wordgraph.Undefined {
			cur = f.Parent(cur)
			if steps++; steps > g.NumberOfNodes() {
				t.Fatalf("cycle in spanning forest at node %d", node)
			}
		}
		if cur != root {
			t.Errorf("node %d: walking up reached %d; want root %d", node, cur, root)
		}
	}
}

// TestReverseSpanningForest verifies backward-oriented trees: the forest
// edge of a node is a graph edge FROM the node toward its parent.
func TestReverseSpanningForest(t *testing.T) {
	g := rhoGraph(t)
	f, err := g.ReverseSpanningForest()
	if err != nil {
		t.Fatalf("ReverseSpanningForest: %v", err)
	}
	roots, _ := g.SCCRoots()
	for _, r := range roots {
		if f.Parent(r) != wordgraph.Undefined {
			t.Errorf("root %d must have Undefined parent, got %d", r, f.Parent(r))
		}
	}
	for node := 0; node < g.NumberOfNodes(); node++ {
		p := f.Parent(node)
		if p == wordgraph.Undefined {
			continue
		}
		if g.Neighbor(node, f.Label(node)) != p {
			t.Errorf("reverse forest edge %d→%d (label %d) is not a graph edge",
				node, p, f.Label(node))
		}
	}
}

// TestForests_CachedUntilMutation checks forests are memoized per graph
// revision.
func TestForests_CachedUntilMutation(t *testing.T) {
	g := rhoGraph(t)
	f1, _ := g.SpanningForest()
	f2, _ := g.SpanningForest()
	if f1 != f2 {
		t.Errorf("SpanningForest must be cached between mutations")
	}
	_ = g.AddEdge(0, 0, 0)
	f3, _ := g.SpanningForest()
	if f3 == f1 {
		t.Errorf("mutation must invalidate the cached forest")
	}
}
