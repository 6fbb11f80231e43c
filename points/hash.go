package points

// FNV-1a, 64-bit. Hand-rolled rather than hash/fnv to avoid the per-call
// hasher allocation and byte-slice round trip on hot dedup paths.
const (
	fnvOffset64 = 14695981039346656037
	fnvPrime64  = 1099511628211
)

// HashUint32s hashes a transformation-style image table.
func HashUint32s(p []uint32) uint64 {
	h := uint64(fnvOffset64)
	for _, v := range p {
		h ^= uint64(v)
		h *= fnvPrime64
	}
	return h
}

// HashBytes hashes an arbitrary byte representation of a point.
func HashBytes(p []byte) uint64 {
	h := uint64(fnvOffset64)
	for _, b := range p {
		h ^= uint64(b)
		h *= fnvPrime64
	}
	return h
}

// HashUint64 hashes a single-word point, e.g. a packed 8×8 boolean matrix.
func HashUint64(p uint64) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= p & 0xff
		h *= fnvPrime64
		p >>= 8
	}
	return h
}

// HashInts hashes an int-valued image table.
func HashInts(p []int) uint64 {
	h := uint64(fnvOffset64)
	for _, v := range p {
		h ^= uint64(uint(v))
		h *= fnvPrime64
	}
	return h
}
