package colormph

import (
	"github.com/bits-and-blooms/bloom/v3"

	"github.com/tamirms/colormph/internal/weakhash"
)

// Entry is one palette entry: a color name and its RGBA components.
// Only the name participates in hashing; the components are carried as
// payload and stored alongside the name in slot order.
type Entry struct {
	Name string
	RGBA [4]uint8
}

// Table is an immutable minimal perfect hash table over a palette.
//
// Thread Safety:
//   - Lookup, Color, and all accessors are safe for concurrent use
//   - A Table is never mutated after Build/Unmarshal returns
type Table struct {
	// salts maps unsalted bucket index to that bucket's salt. Zero means
	// the bucket received no keys during construction.
	salts []uint32

	// names and colors hold the palette permuted into final slot order,
	// so names[Lookup(k)] == k for every original key.
	names  []string
	colors [][4]uint8

	// filter, when non-nil, short-circuits lookups of non-member names
	// before any hashing. Optional; see WithPrefilter.
	filter *bloom.BloomFilter
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.names)
}

// Name returns the color name stored at slot i.
func (t *Table) Name(i int) string {
	return t.names[i]
}

// RGBA returns the color components stored at slot i.
func (t *Table) RGBA(i int) [4]uint8 {
	return t.colors[i]
}

// MaxSalt returns the largest salt assigned to any bucket.
// Useful for choosing the narrowest storage width when emitting the table
// as static data.
func (t *Table) MaxSalt() uint32 {
	var max uint32
	for _, s := range t.salts {
		if s > max {
			max = s
		}
	}
	return max
}

// Salts returns a copy of the per-bucket salt array.
func (t *Table) Salts() []uint32 {
	out := make([]uint32, len(t.salts))
	copy(out, t.salts)
	return out
}

// Lookup resolves a color name to its slot index in [0, Len()).
//
// The hash values alone never prove membership - they only narrow the query
// to a single candidate slot, which is then confirmed by comparing against
// the name actually stored there. Any string is a legal query; a miss is
// reported as ok == false, not as an error.
func (t *Table) Lookup(name string) (int, bool) {
	if t.filter != nil && !t.filter.TestString(name) {
		return 0, false
	}
	n := uint32(len(t.names))
	h := weakhash.String(name)
	salt := t.salts[weakhash.Reduce(h, 0, n)]
	i := weakhash.Reduce(h, salt, n)
	if t.names[i] != name {
		return 0, false
	}
	return int(i), true
}

// LookupBytes is Lookup for a raw byte slice, avoiding a string conversion
// on the query path. The name comparison converts in place; the compiler
// elides the copy for a comparison operand.
func (t *Table) LookupBytes(name []byte) (int, bool) {
	if t.filter != nil && !t.filter.Test(name) {
		return 0, false
	}
	n := uint32(len(t.names))
	h := weakhash.Bytes(name)
	salt := t.salts[weakhash.Reduce(h, 0, n)]
	i := weakhash.Reduce(h, salt, n)
	if t.names[i] != string(name) {
		return 0, false
	}
	return int(i), true
}

// Color resolves a color name directly to its RGBA components.
func (t *Table) Color(name string) ([4]uint8, bool) {
	i, ok := t.Lookup(name)
	if !ok {
		return [4]uint8{}, false
	}
	return t.colors[i], true
}

// Entries returns the palette in slot order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.names))
	for i := range t.names {
		out[i] = Entry{Name: t.names[i], RGBA: t.colors[i]}
	}
	return out
}
