package object

const (
	internInitialCap = 10
	internLoadFactor = 0.75
	internGrowFactor = 2
)

// StringSet is an open-addressed, linearly-probed intern set: equal byte
// sequences collapse to a single canonical *String entry, so that equal
// strings compare equal by pointer identity. Grounded on
// original_source/minvm/src/set.c (hash-mod-capacity start slot, linear
// probe, grow-then-rehash on load factor).
type StringSet struct {
	entries  []*String
	length   int
	capacity int
}

// NewStringSet returns an empty intern set at the initial capacity.
func NewStringSet() *StringSet {
	return &StringSet{
		entries:  make([]*String, internInitialCap),
		capacity: internInitialCap,
	}
}

// Intern returns the canonical *String for b: if an entry with equal bytes
// already exists, it is returned unchanged (the caller's bytes are not
// retained); otherwise a new owned String is created, inserted, and
// returned.
func (s *StringSet) Intern(b []byte) *String {
	if float64(s.length+1) > float64(s.capacity)*internLoadFactor {
		s.grow(s.capacity * internGrowFactor)
	}

	h := fnv1a(b)
	index := int(h) % s.capacity
	for {
		entry := s.entries[index]
		if entry == nil {
			str := newString(b)
			s.entries[index] = str
			s.length++
			return str
		}
		if equalBytes(entry.Bytes, b) {
			return entry
		}
		index = (index + 1) % s.capacity
	}
}

// Get returns the canonical *String for b if it is already interned, or nil
// if not. It never inserts.
func (s *StringSet) Get(b []byte) *String {
	h := fnv1a(b)
	index := int(h) % s.capacity
	for {
		entry := s.entries[index]
		if entry == nil {
			return nil
		}
		if equalBytes(entry.Bytes, b) {
			return entry
		}
		index = (index + 1) % s.capacity
	}
}

// Len returns the number of distinct interned strings.
func (s *StringSet) Len() int { return s.length }

func (s *StringSet) grow(newCap int) {
	old := s.entries
	s.entries = make([]*String, newCap)
	s.capacity = newCap
	for _, entry := range old {
		if entry == nil {
			continue
		}
		index := int(entry.Hash) % s.capacity
		for s.entries[index] != nil {
			index = (index + 1) % s.capacity
		}
		s.entries[index] = entry
	}
}
