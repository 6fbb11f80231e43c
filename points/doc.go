// Package points defines the ownership strategies the orbit engine uses to
// store the points it discovers, plus hashing helpers for common point shapes.
//
// What
//
//   - Store[P]: the contract the engine uses to copy points into its own
//     storage (Clone) and to hand them back to their allocator (Release).
//   - Three strategies, picked per point type when the action is defined:
//   - Value:  small trivially-copyable points, stored by value
//   - Boxed:  large or reference-holding points, deep-copied on insertion
//   - Ref:    points that are themselves handles into caller-managed
//     storage, duplicated and released via caller hooks
//   - FNV-1a hashing helpers (HashUint32s, HashBytes, HashUint64) so most
//     callers never write a hash function by hand.
//
// Why
//
//	Orbit points range from a single machine word (a packed boolean matrix)
//	to large transformation tables or handles owned by an external structure.
//	One copy/release contract lets the enumeration core stay oblivious to
//	which of the three cases it is storing.
//
// Ownership invariant
//
//	Whatever the strategy, each orbit point has exactly one logical owner:
//	the engine. Views returned by engine accessors remain valid only while
//	the orbit sequence is not mutated.
package points
