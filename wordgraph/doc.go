// Package wordgraph implements the labelled digraph underlying an orbit
// enumeration (the "word graph"): nodes are orbit indices in discovery order,
// and the edge from node i with label j points at the image of orbit point i
// under generator j.
//
// What
//
//   - Graph: a fixed out-degree digraph stored as a flat node×label table.
//     Nodes and out-degree both grow incrementally, so the enumeration core
//     can add points as it discovers them and widen the degree when
//     generators are registered mid-enumeration.
//   - Strongly connected components via an iterative Gabow algorithm:
//     NumberOfSCC, SCCID, RootOfSCC, Components, SCCRoots.
//   - Two spanning forests per component, BFS-built from the component root:
//     SpanningForest (edges oriented away from the root) and
//     ReverseSpanningForest (edges oriented toward it). The forests are what
//     the multiplier engine walks to reconstruct generator products.
//   - DOT export for diagnostics and visualization.
//
// Why
//
//	Higher-level algorithms (stabilizer chains, canonicalization) consume the
//	orbit not as a set but as this graph: which generator moves which point
//	where, which points are mutually reachable, and along which tree path a
//	point is reached from its component's canonical root.
//
// Completeness
//
//	SCC and forest queries require a complete graph: every (node, label) slot
//	defined. Querying an incomplete graph returns ErrGraphIncomplete. Any
//	mutation invalidates cached components and forests.
//
// Determinism
//
//	For a fixed insertion sequence the component ids, component node order,
//	roots, and both forests are fully reproducible.
package wordgraph
