package action

import (
	"fmt"

	"github.com/katalvlaran/orbita/wordgraph"
)

// WordGraph runs the enumeration to completion and returns the word graph:
// node i is orbit point i and the edge from i with label j points at the
// image of point i under generator j. The graph is owned by the action and
// must not be mutated.
func (a *Action[E, P]) WordGraph() *wordgraph.Graph {
	a.Run()
	return a.graph
}

// NumberOfSCC runs the enumeration to completion and returns the number of
// strongly connected components of the word graph.
func (a *Action[E, P]) NumberOfSCC() (int, error) {
	if err := a.validateGens(); err != nil {
		return 0, err
	}
	a.Run()
	return a.graph.NumberOfSCC()
}

// RootOfSCC runs the enumeration to completion and returns the point at the
// canonical root of the strongly connected component containing index pos.
func (a *Action[E, P]) RootOfSCC(pos int) (P, error) {
	var zero P
	if err := a.validateGens(); err != nil {
		return zero, err
	}
	a.Run()
	if pos < 0 || pos >= len(a.orb) {
		return zero, fmt.Errorf("%w: expected value in [0, %d), found %d",
			ErrIndexOutOfRange, len(a.orb), pos)
	}
	root, err := a.graph.RootOfSCC(pos)
	if err != nil {
		return zero, err
	}
	return a.orb[root], nil
}

// RootOfSCCPoint is RootOfSCC addressed by point rather than index. Returns
// ErrPointNotFound if pt does not belong to the fully enumerated action.
func (a *Action[E, P]) RootOfSCCPoint(pt P) (P, error) {
	var zero P
	if err := a.validateGens(); err != nil {
		return zero, err
	}
	a.Run()
	pos := a.lookup(pt)
	if pos == Undefined {
		return zero, ErrPointNotFound
	}
	return a.RootOfSCC(pos)
}

// validateGens guards the queries that are meaningless without generators.
func (a *Action[E, P]) validateGens() error {
	if len(a.gens) == 0 {
		return ErrNoGenerators
	}
	return nil
}
