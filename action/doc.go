// Package action implements resumable orbit enumeration: given generator
// elements of a semigroup or monoid and the action they induce on a set of
// points, it computes the reachable point set, the word graph recording how
// generators move points, and the multiplier elements transporting any point
// to or from the canonical root of its strongly connected component.
//
// What
//
//   - Action[E, P]: breadth-first enumeration of every point reachable from
//     the registered seeds under the registered generators, deduplicated via
//     caller-supplied Hash/Equal adapters. Discovery order is permanent:
//     the index a point receives never changes.
//   - A cooperative stop/resume state machine: Run, RunFor, RunUntil, and
//     RunContext all drive the same loop; a stopped enumeration resumes at
//     the exact frontier position with no work repeated or lost.
//   - Component queries delegating to wordgraph: WordGraph, NumberOfSCC,
//     RootOfSCC, RootOfSCCPoint.
//   - Multiplier queries reconstructing generator products from spanning
//     forest paths: MultiplierFromSCCRoot, MultiplierToSCCRoot, with a
//     position-indexed cache toggled by CacheSCCMultipliers.
//
// Why
//
//	Orbits, their word graphs, and multipliers are the primitives behind
//	stabilizer-chain construction and canonicalization in computational
//	semigroup theory.
//
// Determinism
//
//	For a fixed seed and generator registration order, the engine discovers
//	points strictly in breadth-first order (point first, then generator
//	index), so every index, component id, and multiplier is reproducible
//	across runs and across stop/resume boundaries.
//
// Bounding
//
//	The engine does not detect unbounded orbits. Enumerating an infinite
//	action without RunFor, RunUntil, or a cancellable context runs until
//	externally interrupted; bounding is the caller's responsibility.
//
// Concurrency
//
//	An Action is exclusively owned by one goroutine. Run is a plain,
//	possibly long-running call; cancellation is cooperative and checked only
//	between full generator sweeps of successive points, so the word graph
//	never holds a half-updated node.
package action
