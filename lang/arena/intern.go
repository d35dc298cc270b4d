package arena

// String is the id of an interned byte-sequence. Two String ids are equal
// iff their underlying bytes are identical (set semantics); Interner never
// allocates two ids for the same content.
type String ID

// Valid reports whether s refers to an actual interned string.
func (s String) Valid() bool { return s != 0 }

// numBuckets is a small prime used for the open hash table described in the
// string interning contract: few enough buckets to keep the table itself
// tiny, with collisions resolved by a linked chain of String ids.
const numBuckets = 61

// stringRecord is the per-string offset record: pos is the starting byte
// offset of the string's content in the shared buffer, and next links to the
// following entry in the same hash bucket's chain (0 if none).
type stringRecord struct {
	pos  int
	next String
}

// Interner implements the append-only string table of §4.A: a flat byte
// buffer holding every distinct interned byte-sequence back to back, a
// parallel array of offset records (with a trailing sentinel one past the
// last valid string, so that length(s) can be computed from consecutive
// positions), and a bucket table of hash chains for fast dedup lookups.
type Interner struct {
	buf     []byte
	records []stringRecord // records[0] unused, ids are 1-based
	buckets [numBuckets]String
}

// NewInterner returns a ready-to-use, empty Interner.
func NewInterner() *Interner {
	in := &Interner{records: make([]stringRecord, 1, 64)}
	// seed the trailing sentinel so that an empty interner still satisfies
	// length(s) = pos(s+1) - pos(s) - 1 once the first string is appended.
	in.records = append(in.records, stringRecord{pos: 0})
	return in
}

// hash computes a small, fast byte-string hash (FNV-1a) used only to pick a
// bucket; collisions are expected and resolved by byte comparison.
func hash(b []byte) uint32 {
	var h uint32 = 2166136261
	for _, c := range b {
		h ^= uint32(c)
		h *= 16777619
	}
	return h
}

// Intern returns the String id for b, allocating a new entry only if no
// equal byte-sequence has been interned yet.
func (in *Interner) Intern(b []byte) String {
	bucket := hash(b) % numBuckets
	for id := in.buckets[bucket]; id.Valid(); id = in.records[id].next {
		if in.equal(id, b) {
			return id
		}
	}
	return in.append(bucket, b)
}

// InternString is a convenience wrapper around Intern for Go strings.
func (in *Interner) InternString(s string) String {
	return in.Intern([]byte(s))
}

func (in *Interner) equal(id String, b []byte) bool {
	stored := in.Bytes(id)
	return len(stored) == len(b) && string(stored) == string(b)
}

func (in *Interner) append(bucket uint32, b []byte) String {
	// the sentinel (last record) becomes the new string's record; a fresh
	// sentinel is appended pointing one past the new content.
	id := String(len(in.records) - 1)
	pos := len(in.buf)
	in.buf = append(in.buf, b...)
	in.buf = append(in.buf, 0) // NUL terminator reserved by the length formula
	in.records[id] = stringRecord{pos: pos, next: in.buckets[bucket]}
	in.records = append(in.records, stringRecord{pos: len(in.buf)}) // new sentinel
	in.buckets[bucket] = id
	return id
}

// Bytes returns the interned content of s, without its reserved trailing NUL.
func (in *Interner) Bytes(s String) []byte {
	start := in.records[s].pos
	end := in.records[s+1].pos - 1
	return in.buf[start:end]
}

// String returns the interned content of s as a Go string.
func (in *Interner) String(s String) string {
	return string(in.Bytes(s))
}

// Len returns the length in bytes of s's content (excluding the reserved NUL).
func (in *Interner) Len(s String) int {
	return in.records[s+1].pos - in.records[s].pos - 1
}

// Count returns the number of distinct strings interned so far.
func (in *Interner) Count() int {
	return len(in.records) - 2 // minus the unused slot 0 and the trailing sentinel
}
