// Package wordgraph defines sentinel errors and shared constants for the
// orbit digraph and its component analysis.
package wordgraph

import "errors"

// Undefined marks an absent value: an unset edge slot, the parent of a forest
// root, or a not-yet-assigned component id.
const Undefined = -1

// Sentinel errors for word graph operations.
var (
	// ErrNodeOutOfRange is returned when a node index is not in [0, NumberOfNodes()).
	ErrNodeOutOfRange = errors.New("wordgraph: node index out of range")

	// ErrLabelOutOfRange is returned when an edge label is not in [0, OutDegree()).
	ErrLabelOutOfRange = errors.New("wordgraph: edge label out of range")

	// ErrGraphIncomplete is returned by component and forest queries when some
	// (node, label) slot is still Undefined.
	ErrGraphIncomplete = errors.New("wordgraph: graph is not complete")

	// ErrSCCIndexOutOfRange is returned when a component index is not in
	// [0, NumberOfSCC()).
	ErrSCCIndexOutOfRange = errors.New("wordgraph: strong component index out of range")
)
