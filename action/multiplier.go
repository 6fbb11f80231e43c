package action

import (
	"fmt"

	"github.com/katalvlaran/orbita/wordgraph"
)

// The multiplier engine reconstructs, from a spanning forest path, an element
// whose action transports an orbit point to or from the canonical root of its
// strongly connected component. Walks stop early at a cached ancestor and
// every interior position is cached as it is produced, so repeated queries
// amortize to a single product each.

// CacheSCCMultipliers toggles persistence of multiplier results. Caching
// never changes the value a multiplier query returns, only whether it is
// recomputed. Caches are cleared whenever seeds or generators change.
func (a *Action[E, P]) CacheSCCMultipliers(on bool) {
	a.cacheMult = on
}

// MultiplierFromSCCRoot runs the enumeration to completion and returns an
// element x such that applying x to the root of the component containing
// index pos yields the point at pos.
//
// Returns ErrNoGenerators, ErrIndexOutOfRange, or ErrInvalidTraits when
// Product or One is missing.
func (a *Action[E, P]) MultiplierFromSCCRoot(pos int) (E, error) {
	var zero E
	forest, err := a.multiplierForest(pos, (*wordgraph.Graph).SpanningForest)
	if err != nil {
		return zero, err
	}
	if a.multFrom == nil {
		a.multFrom = make(map[int]E)
	}
	return a.walkMultiplier(pos, forest, a.multFrom, true), nil
}

// MultiplierToSCCRoot runs the enumeration to completion and returns an
// element x such that applying x to the point at index pos yields the root
// of its component.
//
// Returns ErrNoGenerators, ErrIndexOutOfRange, or ErrInvalidTraits when
// Product or One is missing.
func (a *Action[E, P]) MultiplierToSCCRoot(pos int) (E, error) {
	var zero E
	forest, err := a.multiplierForest(pos, (*wordgraph.Graph).ReverseSpanningForest)
	if err != nil {
		return zero, err
	}
	if a.multTo == nil {
		a.multTo = make(map[int]E)
	}
	return a.walkMultiplier(pos, forest, a.multTo, false), nil
}

// multiplierForest validates a multiplier query and returns the forest it
// walks, enumerating to completion first.
func (a *Action[E, P]) multiplierForest(
	pos int,
	forestOf func(*wordgraph.Graph) (*wordgraph.Forest, error),
) (*wordgraph.Forest, error) {
	if err := a.validateGens(); err != nil {
		return nil, err
	}
	if a.tr.Product == nil || a.tr.One == nil {
		return nil, fmt.Errorf("%w: Product and One are required for multiplier queries",
			ErrInvalidTraits)
	}
	a.Run()
	if pos < 0 || pos >= len(a.orb) {
		return nil, fmt.Errorf("%w: expected value in [0, %d), found %d",
			ErrIndexOutOfRange, len(a.orb), pos)
	}
	return forestOf(a.graph)
}

// pathStep is one forest edge on the walk from a queried position toward its
// component root.
type pathStep struct {
	node  int // the child endpoint, whose multiplier the step completes
	label int // generator label on the edge from/to the parent
}

// walkMultiplier computes the multiplier for pos by walking forest toward the
// root, reusing a cached ancestor as accumulator when one exists. fromRoot
// selects the recurrence:
//
//	from root: m(node) = m(parent) ∘ gens[label]
//	to root:   m(node) = gens[label] ∘ m(parent)
//
// where x ∘ y is x·y for right actions and y·x for left actions. Every
// position completed along the walk is cached as produced.
func (a *Action[E, P]) walkMultiplier(pos int, forest *wordgraph.Forest, cache map[int]E, fromRoot bool) E {
	var path []pathStep
	var acc E
	cached := false

	for cur := pos; ; {
		if a.cacheMult {
			if m, ok := cache[cur]; ok {
				acc = m
				cached = true
				break
			}
		}
		parent := forest.Parent(cur)
		if parent == wordgraph.Undefined {
			break // reached the component root
		}
		path = append(path, pathStep{node: cur, label: forest.Label(cur)})
		cur = parent
	}
	if !cached {
		acc = a.tr.One(a.gens[0])
	}

	// Fold from the known end toward pos. Each product writes into a fresh
	// destination so cached values are never aliased by later steps.
	for i := len(path) - 1; i >= 0; i-- {
		step := path[i]
		dst := a.tr.One(a.gens[0])
		if fromRoot {
			acc = a.internalProduct(dst, acc, a.gens[step.label])
		} else {
			acc = a.internalProduct(dst, a.gens[step.label], acc)
		}
		if a.cacheMult {
			cache[step.node] = acc
		}
	}

	if a.cacheMult {
		return a.copyElement(acc) // hand out a copy, never the cached value
	}
	return acc
}

// internalProduct composes per the action's side: right actions multiply in
// argument order, left actions in reverse.
func (a *Action[E, P]) internalProduct(dst, x, y E) E {
	if a.side == Right {
		return a.tr.Product(dst, x, y)
	}
	return a.tr.Product(dst, y, x)
}

// copyElement duplicates m by multiplying with the identity into a fresh
// destination, so callers can mutate the result without corrupting a cache.
func (a *Action[E, P]) copyElement(m E) E {
	dst := a.tr.One(a.gens[0])
	one := a.tr.One(a.gens[0])
	return a.tr.Product(dst, m, one)
}
