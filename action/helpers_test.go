package action_test

import (
	"slices"

	"github.com/katalvlaran/orbita/action"
	"github.com/katalvlaran/orbita/points"
)

// perm is a permutation (or total transformation) of {0, …, n-1} as an image
// table. Tests use it both as the element and as the point type.
type perm []uint32

// compose returns f·g into dst, where (f·g)(i) = g(f(i)).
func compose(dst, f, g perm) perm {
	if len(dst) != len(f) {
		dst = make(perm, len(f))
	}
	for i := range f {
		dst[i] = g[f[i]]
	}
	return dst
}

// identity returns the identity table of the sample's length.
func identity(sample perm) perm {
	id := make(perm, len(sample))
	for i := range id {
		id[i] = uint32(i)
	}
	return id
}

// permTraits are the adapters for permutations acting on permutations by
// multiplication on the given side.
func permTraits(side action.Side) action.Traits[perm, perm] {
	act := func(dst, pt perm, gen perm) perm {
		if side == action.Left {
			if len(dst) != len(pt) {
				dst = make(perm, len(pt))
			}
			for i := range pt {
				dst[i] = pt[gen[i]]
			}
			return dst
		}
		return compose(dst, pt, gen)
	}
	return action.Traits[perm, perm]{
		Act:     act,
		Hash:    func(p perm) uint64 { return points.HashUint32s(p) },
		Equal:   func(p, q perm) bool { return slices.Equal(p, q) },
		Product: func(dst, x, y perm) perm { return compose(dst, x, y) },
		One:     func(sample perm) perm { return identity(sample) },
		Degree:  func(g perm) int { return len(g) },
	}
}

// permStore deep-copies points, since perm is a mutable slice.
func permStore() points.Store[perm] {
	return points.Boxed(func(p perm) perm { return slices.Clone(p) })
}

// symmetricGroupAction returns a fresh action of ⟨(0 1), (1 2)⟩ ≤ S4 on the
// identity seed: the orbit is the embedded copy of S3, six points.
func symmetricGroupAction(side action.Side) *action.Action[perm, perm] {
	a, err := action.New(side, permTraits(side), action.WithStore[perm](permStore()))
	if err != nil {
		panic(err)
	}
	a.AddSeed(perm{0, 1, 2, 3})
	if err := a.AddGenerator(perm{1, 0, 2, 3}); err != nil {
		panic(err)
	}
	if err := a.AddGenerator(perm{0, 2, 1, 3}); err != nil {
		panic(err)
	}
	return a
}
