// Package orbita is an orbit/action enumeration engine for computational
// semigroup and monoid theory: feed it generator elements and the action they
// induce on a set of points, and it computes the reachable point set, the
// word graph of generator moves, strongly connected components, spanning
// forests, and the multiplier elements carrying points to and from their
// component roots.
//
// 🚀 What is orbita?
//
//	A deterministic, resumable enumeration core built from three packages:
//		• points/    — point ownership strategies (inline, boxed, external
//		  handle) plus hashing helpers
//		• wordgraph/ — the fixed out-degree orbit digraph, Gabow strong
//		  components, spanning forests, DOT export
//		• action/    — the breadth-first enumeration state machine,
//		  component queries, and the multiplier engine
//
// ✨ Why choose orbita?
//
//   - Exact, reproducible discovery order — every index is permanent and
//     identical across runs and stop/resume boundaries
//   - Cooperative cancellation — run for a duration, until a predicate, or
//     under a context, and resume exactly where you stopped
//   - Generic over element and point types — permutations, transformations,
//     boolean matrices, or anything with equality, a hash, and a product
//   - No hidden state — one engine instance owns its orbit, graph, and
//     caches outright
//
// Quick sketch (right action of transformations on image tables):
//
//	a, _ := action.New(action.Right, traits)
//	a.AddSeed(seed)
//	a.AddGenerator(g1)
//	a.AddGenerator(g2)
//	n := a.Size()              // full orbit cardinality
//	k, _ := a.NumberOfSCC()    // strong components of the word graph
//	m, _ := a.MultiplierFromSCCRoot(7)
//
// A diagnostic CLI lives under cmd/orbita: it enumerates actions described in
// TOML and exports the word graph as DOT or a rendered image.
package orbita
