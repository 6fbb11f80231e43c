package wordgraph

import "fmt"

// Graph is a digraph with a fixed number of labelled out-edges per node,
// stored as a flat row-major node×label table. A slot holds Undefined until
// the corresponding edge is added.
//
// Graph is not safe for concurrent mutation; it is exclusively owned by one
// enumeration engine instance.
type Graph struct {
	degree int   // out-degree (number of labels)
	nodes  int   // number of nodes
	table  []int // nodes×degree, row-major, Undefined when unset

	scc        sccData // cached component analysis
	forest     *Forest // cached spanning forest, nil when stale
	backForest *Forest // cached reverse spanning forest, nil when stale
}

// sccData caches the result of one Gabow run.
type sccData struct {
	defined bool
	ids     []int   // node → component id
	comps   [][]int // component id → nodes, first node is the root
}

// New returns a Graph with the given number of nodes and out-degree, all edge
// slots Undefined.
func New(nodes, degree int) *Graph {
	g := &Graph{degree: degree, nodes: nodes}
	g.table = make([]int, nodes*degree)
	for i := range g.table {
		g.table[i] = Undefined
	}
	return g
}

// NumberOfNodes returns the number of nodes.
func (g *Graph) NumberOfNodes() int { return g.nodes }

// OutDegree returns the number of edge labels per node.
func (g *Graph) OutDegree() int { return g.degree }

// NumberOfEdges returns the number of defined edges.
func (g *Graph) NumberOfEdges() int {
	n := 0
	for _, v := range g.table {
		if v != Undefined {
			n++
		}
	}
	return n
}

// AddNodes appends n nodes with every edge slot Undefined.
func (g *Graph) AddNodes(n int) {
	g.nodes += n
	for i := 0; i < n*g.degree; i++ {
		g.table = append(g.table, Undefined)
	}
	g.reset()
}

// AddToOutDegree widens the out-degree of every node by n, filling the new
// slots with Undefined. Existing edges keep their labels.
func (g *Graph) AddToOutDegree(n int) {
	if n <= 0 {
		return
	}
	newDegree := g.degree + n
	next := make([]int, g.nodes*newDegree)
	for node := 0; node < g.nodes; node++ {
		copy(next[node*newDegree:], g.table[node*g.degree:(node+1)*g.degree])
		for j := g.degree; j < newDegree; j++ {
			next[node*newDegree+j] = Undefined
		}
	}
	g.table = next
	g.degree = newDegree
	g.reset()
}

// AddEdge sets the edge from src with the given label to point at dst.
// Returns ErrNodeOutOfRange or ErrLabelOutOfRange for invalid arguments.
func (g *Graph) AddEdge(src, dst, label int) error {
	if src < 0 || src >= g.nodes {
		return fmt.Errorf("%w: source %d, have %d nodes", ErrNodeOutOfRange, src, g.nodes)
	}
	if dst < 0 || dst >= g.nodes {
		return fmt.Errorf("%w: target %d, have %d nodes", ErrNodeOutOfRange, dst, g.nodes)
	}
	if label < 0 || label >= g.degree {
		return fmt.Errorf("%w: label %d, out-degree %d", ErrLabelOutOfRange, label, g.degree)
	}
	g.table[src*g.degree+label] = dst
	g.reset()
	return nil
}

// Neighbor returns the target of the edge from node with the given label, or
// Undefined when the slot is unset or the arguments are out of range.
func (g *Graph) Neighbor(node, label int) int {
	if node < 0 || node >= g.nodes || label < 0 || label >= g.degree {
		return Undefined
	}
	return g.table[node*g.degree+label]
}

// Complete reports whether every (node, label) slot is defined.
func (g *Graph) Complete() bool {
	for _, v := range g.table {
		if v == Undefined {
			return false
		}
	}
	return true
}

// Reserve pre-sizes the edge table for the given node count. It never changes
// the logical contents of the graph.
func (g *Graph) Reserve(nodes int) {
	if cap(g.table) >= nodes*g.degree {
		return
	}
	next := make([]int, len(g.table), nodes*g.degree)
	copy(next, g.table)
	g.table = next
}

// String returns a short diagnostic description.
func (g *Graph) String() string {
	return fmt.Sprintf("<word graph with %d nodes, %d edges, out-degree %d>",
		g.nodes, g.NumberOfEdges(), g.degree)
}

// reset drops cached component analysis after a mutation.
func (g *Graph) reset() {
	g.scc.defined = false
	g.scc.ids = nil
	g.scc.comps = nil
	g.forest = nil
	g.backForest = nil
}
