package wordgraph

import "fmt"

// This file hosts the component analysis layered on a complete Graph:
// Gabow's path-based strong component algorithm (iterative, so deep orbits
// cannot overflow the goroutine stack) and the two BFS spanning forests the
// multiplier engine walks.

// NumberOfSCC returns the number of strongly connected components.
// Returns ErrGraphIncomplete if some edge slot is Undefined.
func (g *Graph) NumberOfSCC() (int, error) {
	if err := g.ensureSCC(); err != nil {
		return 0, err
	}
	return len(g.scc.comps), nil
}

// SCCID returns the component id of node. Ids are assigned in completion
// order of the underlying depth-first search and are deterministic for a
// fixed graph.
func (g *Graph) SCCID(node int) (int, error) {
	if node < 0 || node >= g.nodes {
		return Undefined, fmt.Errorf("%w: node %d, have %d nodes", ErrNodeOutOfRange, node, g.nodes)
	}
	if err := g.ensureSCC(); err != nil {
		return Undefined, err
	}
	return g.scc.ids[node], nil
}

// RootOfSCC returns the canonical root node of the component containing node.
func (g *Graph) RootOfSCC(node int) (int, error) {
	id, err := g.SCCID(node)
	if err != nil {
		return Undefined, err
	}
	return g.scc.comps[id][0], nil
}

// Component returns the nodes of component i; the first node is the root.
// The returned slice is owned by the Graph and must not be mutated.
func (g *Graph) Component(i int) ([]int, error) {
	if err := g.ensureSCC(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(g.scc.comps) {
		return nil, fmt.Errorf("%w: component %d, have %d", ErrSCCIndexOutOfRange, i, len(g.scc.comps))
	}
	return g.scc.comps[i], nil
}

// Components returns every component in id order. The returned slices are
// owned by the Graph and must not be mutated.
func (g *Graph) Components() ([][]int, error) {
	if err := g.ensureSCC(); err != nil {
		return nil, err
	}
	return g.scc.comps, nil
}

// SCCRoots returns the root node of each component in id order.
func (g *Graph) SCCRoots() ([]int, error) {
	if err := g.ensureSCC(); err != nil {
		return nil, err
	}
	roots := make([]int, len(g.scc.comps))
	for i, comp := range g.scc.comps {
		roots[i] = comp[0]
	}
	return roots, nil
}

// SpanningForest returns a forest of per-component spanning trees rooted at
// each component root, edges oriented away from the root: Parent(i) is one
// step closer to the root and Label(i) the generator label carrying
// Parent(i) to i. The forest is cached until the graph mutates.
func (g *Graph) SpanningForest() (*Forest, error) {
	if g.forest != nil {
		return g.forest, nil
	}
	if err := g.ensureSCC(); err != nil {
		return nil, err
	}

	f := NewForest(g.nodes)
	seen := make([]bool, g.nodes)
	queue := make([]int, 0, g.nodes)

	for _, comp := range g.scc.comps {
		root := comp[0]
		seen[root] = true
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for j := 0; j < g.degree; j++ {
				y := g.table[x*g.degree+j]
				if !seen[y] && g.scc.ids[y] == g.scc.ids[x] {
					f.parent[y] = x
					f.label[y] = j
					seen[y] = true
					queue = append(queue, y)
				}
			}
		}
	}
	g.forest = f
	return f, nil
}

// ReverseSpanningForest returns a forest of per-component spanning trees
// rooted at each component root, edges oriented toward the root: Parent(i) is
// one step closer to the root and Label(i) the generator label carrying i to
// Parent(i). The forest is cached until the graph mutates.
func (g *Graph) ReverseSpanningForest() (*Forest, error) {
	if g.backForest != nil {
		return g.backForest, nil
	}
	if err := g.ensureSCC(); err != nil {
		return nil, err
	}

	// Reverse adjacency restricted to intra-component edges.
	revTargets := make([][]int, g.nodes)
	revLabels := make([][]int, g.nodes)
	for i := 0; i < g.nodes; i++ {
		for j := 0; j < g.degree; j++ {
			k := g.table[i*g.degree+j]
			if g.scc.ids[k] == g.scc.ids[i] {
				revTargets[k] = append(revTargets[k], i)
				revLabels[k] = append(revLabels[k], j)
			}
		}
	}

	f := NewForest(g.nodes)
	seen := make([]bool, g.nodes)
	queue := make([]int, 0, g.nodes)

	for _, comp := range g.scc.comps {
		root := comp[0]
		seen[root] = true
		queue = append(queue[:0], root)
		for len(queue) > 0 {
			x := queue[0]
			queue = queue[1:]
			for j, y := range revTargets[x] {
				if !seen[y] {
					f.parent[y] = x
					f.label[y] = revLabels[x][j]
					seen[y] = true
					queue = append(queue, y)
				}
			}
		}
	}
	g.backForest = f
	return f, nil
}

// ensureSCC runs Gabow's algorithm once and caches the result.
func (g *Graph) ensureSCC() error {
	if g.scc.defined {
		return nil
	}
	if !g.Complete() {
		return fmt.Errorf("%w: %d of %d edge slots defined",
			ErrGraphIncomplete, g.NumberOfEdges(), g.nodes*g.degree)
	}
	g.gabow()
	return nil
}

// frame is one suspended node of the depth-first search: v is the node, i the
// next edge label to examine.
type frame struct {
	v, i int
}

// gabow computes strong components with Gabow's path-based algorithm.
//
// Two stacks: stack1 accumulates nodes of open components in visit order,
// stack2 holds the path of open component bases. A tree edge is re-examined
// after its subtree returns so the path contraction also applies to it.
func (g *Graph) gabow() {
	n := g.nodes
	ids := make([]int, n)
	preorder := make([]int, n)
	for i := 0; i < n; i++ {
		ids[i] = Undefined
		preorder[i] = Undefined
	}

	var (
		stack1 []int
		stack2 []int
		frames []frame
		comps  [][]int
		count  int // next preorder number
		next   int // next component id
	)

	for w := 0; w < n; w++ {
		if ids[w] != Undefined {
			continue
		}
		preorder[w] = count
		count++
		stack1 = append(stack1, w)
		stack2 = append(stack2, w)
		frames = append(frames, frame{v: w})

		for len(frames) > 0 {
			fr := &frames[len(frames)-1]
			v := fr.v
			descended := false
			for fr.i < g.degree {
				u := g.table[v*g.degree+fr.i]
				if preorder[u] == Undefined {
					// Tree edge: descend without advancing i, so the edge is
					// re-examined (and the path contracted) once u returns.
					preorder[u] = count
					count++
					stack1 = append(stack1, u)
					stack2 = append(stack2, u)
					frames = append(frames, frame{v: u})
					descended = true
					break
				}
				if ids[u] == Undefined {
					for preorder[stack2[len(stack2)-1]] > preorder[u] {
						stack2 = stack2[:len(stack2)-1]
					}
				}
				fr.i++
			}
			if descended {
				continue
			}
			// v is fully explored; close its component if v is the base.
			if v == stack2[len(stack2)-1] {
				comp := make([]int, 0, 1)
				for {
					x := stack1[len(stack1)-1]
					stack1 = stack1[:len(stack1)-1]
					ids[x] = next
					comp = append(comp, x)
					if x == v {
						break
					}
				}
				comps = append(comps, comp)
				next++
				stack2 = stack2[:len(stack2)-1]
			}
			frames = frames[:len(frames)-1]
		}
	}

	g.scc = sccData{defined: true, ids: ids, comps: comps}
}
