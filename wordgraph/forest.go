package wordgraph

import "fmt"

// Forest records one parent edge per non-root node of a spanning forest over
// a Graph: Parent(i) is the neighboring tree node and Label(i) the generator
// label of the connecting edge. Roots have Parent(i) == Undefined.
type Forest struct {
	parent []int
	label  []int
}

// NewForest returns a forest with n nodes, every parent and label Undefined.
func NewForest(n int) *Forest {
	f := &Forest{
		parent: make([]int, n),
		label:  make([]int, n),
	}
	for i := 0; i < n; i++ {
		f.parent[i] = Undefined
		f.label[i] = Undefined
	}
	return f
}

// NumberOfNodes returns the number of nodes in the forest.
func (f *Forest) NumberOfNodes() int { return len(f.parent) }

// AddNodes appends n nodes with Undefined parent and label.
func (f *Forest) AddNodes(n int) {
	for i := 0; i < n; i++ {
		f.parent = append(f.parent, Undefined)
		f.label = append(f.label, Undefined)
	}
}

// Set records parent and edge label for node.
// Returns ErrNodeOutOfRange if node or parent is invalid.
func (f *Forest) Set(node, parent, label int) error {
	if node < 0 || node >= len(f.parent) {
		return fmt.Errorf("%w: node %d, have %d nodes", ErrNodeOutOfRange, node, len(f.parent))
	}
	if parent < 0 || parent >= len(f.parent) {
		return fmt.Errorf("%w: parent %d, have %d nodes", ErrNodeOutOfRange, parent, len(f.parent))
	}
	f.parent[node] = parent
	f.label[node] = label
	return nil
}

// Parent returns the parent of node, or Undefined for roots and out-of-range
// indices.
func (f *Forest) Parent(node int) int {
	if node < 0 || node >= len(f.parent) {
		return Undefined
	}
	return f.parent[node]
}

// Label returns the label of the edge from Parent(node) to node, or Undefined
// for roots and out-of-range indices.
func (f *Forest) Label(node int) int {
	if node < 0 || node >= len(f.label) {
		return Undefined
	}
	return f.label[node]
}
