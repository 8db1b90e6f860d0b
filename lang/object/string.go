package object

// String is an owned, immutable byte sequence with a precomputed hash. A
// String is always owned by exactly one StringSet; StringObj values hold a
// weak (non-owning) reference to one.
type String struct {
	Bytes []byte
	Hash  uint32
}

// Len returns the number of bytes in s.
func (s *String) Len() int { return len(s.Bytes) }

func (s *String) String() string { return string(s.Bytes) }

// newString copies b into a freshly owned buffer and computes its hash once.
func newString(b []byte) *String {
	owned := make([]byte, len(b))
	copy(owned, b)
	return &String{Bytes: owned, Hash: fnv1a(owned)}
}

// fnv1a computes the 32-bit FNV-1a hash of b, matching
// original_source/minvm/src/string.c byte for byte.
func fnv1a(b []byte) uint32 {
	const (
		offsetBasis = 2166136261
		prime       = 16777619
	)
	h := uint32(offsetBasis)
	for _, c := range b {
		h ^= uint32(c)
		h *= prime
	}
	return h
}

// equalBytes reports whether a and b hold the same content, without
// allocating.
func equalBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
