package action

import (
	"fmt"
	"iter"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/orbita/points"
	"github.com/katalvlaran/orbita/wordgraph"
)

// Action enumerates the orbit of a set of seed points under the action of a
// set of generator elements. E is the element type, P the point type; all
// element and point operations go through the Traits adapters supplied at
// construction.
//
// An Action exclusively owns its orbit storage, word graph, and caches; it is
// not safe for concurrent use without external synchronization.
type Action[E, P any] struct {
	side  Side
	tr    Traits[E, P]
	store points.Store[P]

	logger      *log.Logger
	reportEvery int
	reported    int // orbit size at the last progress report

	gens    []E
	orb     []P           // engine-owned copies, discovery order
	buckets map[uint64][]int
	graph   *wordgraph.Graph
	pos     int // frontier: next not-fully-processed index

	st      state
	started bool

	tmp     P // scratch point for Act
	tmpInit bool

	cacheMult bool
	multFrom  map[int]E
	multTo    map[int]E
}

// New returns an empty Action for the given side and trait adapters.
// Returns ErrInvalidTraits if Act, Hash, or Equal is nil, or
// ErrOptionViolation for an invalid option.
func New[E, P any](side Side, tr Traits[E, P], opts ...Option[P]) (*Action[E, P], error) {
	if err := tr.validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTraits, err)
	}
	o := DefaultOptions[P]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Action[E, P]{
		side:        side,
		tr:          tr,
		store:       o.Store,
		logger:      o.Logger,
		reportEvery: o.ReportInterval,
		buckets:     make(map[uint64][]int),
		graph:       wordgraph.New(0, 0),
	}, nil
}

// Side returns whether this is a left or right action.
func (a *Action[E, P]) Side() Side { return a.side }

// AddSeed adds a starting point. The seed and every point reachable from it
// belong to the action. The engine stores its own copy; the caller keeps
// ownership of the argument.
func (a *Action[E, P]) AddSeed(seed P) {
	internal := a.store.Clone(seed)
	if !a.tmpInit {
		a.tmp = a.store.Clone(seed)
		a.tmpInit = true
	}
	a.insert(internal)
	a.graph.AddNodes(1)
	a.invalidate()
}

// AddGenerator registers a generator, rejecting one whose degree differs from
// the generators already present (when Traits.Degree is set). On rejection
// the action is unmodified.
func (a *Action[E, P]) AddGenerator(gen E) error {
	if a.tr.Degree != nil && len(a.gens) > 0 {
		want, got := a.tr.Degree(a.gens[0]), a.tr.Degree(gen)
		if want != got {
			return fmt.Errorf("%w: expected degree %d, found %d", ErrDegreeMismatch, want, got)
		}
	}
	a.addGenerator(gen)
	return nil
}

// AddGeneratorUnchecked registers a generator without the degree check.
func (a *Action[E, P]) AddGeneratorUnchecked(gen E) {
	a.addGenerator(gen)
}

func (a *Action[E, P]) addGenerator(gen E) {
	a.gens = append(a.gens, gen)
	a.invalidate()
}

// Reserve pre-sizes orbit and graph storage for n points. It never changes
// the logical contents of the action.
func (a *Action[E, P]) Reserve(n int) {
	if cap(a.orb) < n {
		next := make([]P, len(a.orb), n)
		copy(next, a.orb)
		a.orb = next
	}
	a.graph.Reserve(n)
}

// Position returns the index of pt among the points discovered so far, or
// Undefined if pt is absent. It never triggers enumeration.
func (a *Action[E, P]) Position(pt P) int {
	return a.lookup(pt)
}

// Empty reports whether the action contains no points, seeds included.
func (a *Action[E, P]) Empty() bool { return len(a.orb) == 0 }

// CurrentSize returns the number of points discovered so far without
// triggering enumeration.
func (a *Action[E, P]) CurrentSize() int { return len(a.orb) }

// Size runs the enumeration to completion and returns the orbit cardinality.
func (a *Action[E, P]) Size() int {
	a.Run()
	return len(a.orb)
}

// At returns the point at index pos among the currently discovered points.
// The returned value remains valid only while the action is not mutated.
func (a *Action[E, P]) At(pos int) (P, error) {
	if pos < 0 || pos >= len(a.orb) {
		var zero P
		return zero, fmt.Errorf("%w: expected value in [0, %d), found %d",
			ErrIndexOutOfRange, len(a.orb), pos)
	}
	return a.orb[pos], nil
}

// Get returns the point at index pos without bounds checking; pos must be in
// [0, CurrentSize()).
func (a *Action[E, P]) Get(pos int) P { return a.orb[pos] }

// All returns a lazy view over the points discovered so far in discovery
// order. Iteration never triggers enumeration; the yielded points remain
// valid only while the action is not mutated.
func (a *Action[E, P]) All() iter.Seq2[int, P] {
	return func(yield func(int, P) bool) {
		for i, p := range a.orb {
			if !yield(i, p) {
				return
			}
		}
	}
}

// Generators returns a copy of the registered generators in registration
// order.
func (a *Action[E, P]) Generators() []E { return slices.Clone(a.gens) }

// NumberOfGenerators returns the number of registered generators.
func (a *Action[E, P]) NumberOfGenerators() int { return len(a.gens) }

// String returns a short diagnostic description.
func (a *Action[E, P]) String() string {
	phase := "partially enumerated"
	if a.Finished() {
		phase = "complete"
	}
	return fmt.Sprintf("<%s %s action with %d generators and %d points>",
		phase, a.side, len(a.gens), len(a.orb))
}

// lookup finds pt among the stored points via the Hash/Equal adapters.
func (a *Action[E, P]) lookup(pt P) int {
	for _, idx := range a.buckets[a.tr.Hash(pt)] {
		if a.tr.Equal(a.orb[idx], pt) {
			return idx
		}
	}
	return Undefined
}

// insert appends an engine-owned point and indexes it for deduplication.
func (a *Action[E, P]) insert(internal P) {
	h := a.tr.Hash(internal)
	a.buckets[h] = append(a.buckets[h], len(a.orb))
	a.orb = append(a.orb, internal)
}

// invalidate re-opens a finished enumeration and clears derived caches after
// seeds or generators change. Assigned indices are never invalidated.
func (a *Action[E, P]) invalidate() {
	if a.st == stateFinished {
		a.st = stateStopped
	}
	a.multFrom = nil
	a.multTo = nil
}
