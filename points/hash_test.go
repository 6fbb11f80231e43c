package points_test

import (
	"hash/fnv"
	"testing"

	"github.com/katalvlaran/orbita/points"
)

// TestHashBytes_MatchesFNV pins HashBytes to the standard 64-bit FNV-1a.
func TestHashBytes_MatchesFNV(t *testing.T) {
	inputs := [][]byte{nil, {}, {0}, {1, 2, 3}, []byte("orbit"), {0xff, 0x00, 0xff}}
	for _, in := range inputs {
		h := fnv.New64a()
		_, _ = h.Write(in)
		if got, want := points.HashBytes(in), h.Sum64(); got != want {
			t.Errorf("HashBytes(%v) = %d; want %d", in, got, want)
		}
	}
}

// TestHashUint32s_Distinguishes checks the minimal dedup contract: equal
// tables hash equal, and order matters.
func TestHashUint32s_Distinguishes(t *testing.T) {
	a := points.HashUint32s([]uint32{1, 0, 2})
	b := points.HashUint32s([]uint32{1, 0, 2})
	c := points.HashUint32s([]uint32{0, 1, 2})
	if a != b {
		t.Errorf("equal inputs must hash equal")
	}
	if a == c {
		t.Errorf("permuted inputs should not collide here")
	}
}

// TestHashInts_AgreesWithUint32s checks the two table hashers agree on
// common ground, so either can key the same dedup map.
func TestHashInts_AgreesWithUint32s(t *testing.T) {
	u := []uint32{3, 1, 4, 1, 5}
	i := []int{3, 1, 4, 1, 5}
	if points.HashInts(i) != points.HashUint32s(u) {
		t.Errorf("HashInts and HashUint32s disagree on identical tables")
	}
}

// TestHashUint64_SpreadsBytes checks that single-word hashing is sensitive
// to every byte position.
func TestHashUint64_SpreadsBytes(t *testing.T) {
	seen := map[uint64]uint64{}
	for shift := 0; shift < 64; shift += 8 {
		v := uint64(1) << shift
		h := points.HashUint64(v)
		if prev, dup := seen[h]; dup {
			t.Errorf("HashUint64 collision between %#x and %#x", prev, v)
		}
		seen[h] = v
	}
}

func BenchmarkHashUint32s(b *testing.B) {
	p := make([]uint32, 64)
	for i := range p {
		p[i] = uint32(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = points.HashUint32s(p)
	}
}
