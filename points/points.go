package points

// Store decides how the orbit engine owns the points it stores.
//
// Clone produces a copy owned by the engine; Release returns a previously
// cloned point to its allocator. The engine pairs every Clone with at most
// one Release.
type Store[P any] interface {
	// Clone returns a copy of p that the caller exclusively owns.
	Clone(p P) P

	// Release relinquishes ownership of a point previously returned by Clone.
	// Implementations for garbage-collected points may treat it as a no-op.
	Release(p P)
}

// valueStore stores points inline by value: copy is assignment, release a no-op.
type valueStore[P any] struct{}

func (valueStore[P]) Clone(p P) P { return p }
func (valueStore[P]) Release(P)   {}

// Value returns the inline storage strategy, suited to small points whose Go
// value carries no shared references (integers, arrays, packed bit matrices).
func Value[P any]() Store[P] { return valueStore[P]{} }

// boxedStore owns a heap copy of every inserted point. The clone function
// must produce a copy sharing no mutable state with its argument.
type boxedStore[P any] struct {
	clone   func(P) P
	release func(P)
}

func (s boxedStore[P]) Clone(p P) P {
	if s.clone == nil {
		return p
	}
	return s.clone(p)
}

func (s boxedStore[P]) Release(p P) {
	if s.release != nil {
		s.release(p)
	}
}

// Boxed returns the owned-heap storage strategy. Each insertion performs
// exactly one clone; the engine never hands the owned copy to callers by
// reference beyond the lifetime of the orbit. A nil clone degrades to value
// semantics and is only correct for points without shared references.
func Boxed[P any](clone func(P) P) Store[P] {
	return boxedStore[P]{clone: clone}
}

// BoxedWithRelease is Boxed with an explicit release hook, for points whose
// copies are recycled through a pool or freelist.
func BoxedWithRelease[P any](clone func(P) P, release func(P)) Store[P] {
	return boxedStore[P]{clone: clone, release: release}
}

// refStore stores points that are themselves handles into caller-managed
// storage. Duplication and disposal go through the caller's hooks; the
// engine never owns the underlying memory.
type refStore[P any] struct {
	heapCopy func(P) P
	heapFree func(P)
}

func (s refStore[P]) Clone(p P) P {
	if s.heapCopy == nil {
		return p
	}
	return s.heapCopy(p)
}

func (s refStore[P]) Release(p P) {
	if s.heapFree != nil {
		s.heapFree(p)
	}
}

// Ref returns the external-pointer storage strategy. heapCopy duplicates a
// handle inside the caller's storage; heapFree disposes of one. Either hook
// may be nil when the caller's storage needs no bookkeeping for that step.
func Ref[P any](heapCopy func(P) P, heapFree func(P)) Store[P] {
	return refStore[P]{heapCopy: heapCopy, heapFree: heapFree}
}
