// Package weakhash provides the two hash primitives shared by table
// construction and lookup.
//
// Both sides must agree bit-for-bit on these functions or the table is
// unusable, so they live here rather than being duplicated. This is
// basically the weakest hash pair that still distinguishes all the values:
// the per-bucket salt, not the string hash, is the only source of
// perturbation in the scheme.
package weakhash

// knuthC is Knuth's multiplicative hashing constant, floor(2^32 / phi).
// Multiplication by it avalanches well on 32-bit values, which is what the
// salt search relies on to separate colliding keys.
const knuthC = 2654435769

// String computes the unsalted 32-bit hash of s.
// h = 9*h + b per byte, with uint32 wraparound. No seeding.
func String(s string) uint32 {
	var h uint32
	for i := 0; i < len(s); i++ {
		h = h*9 + uint32(s[i])
	}
	return h
}

// Bytes is String for a raw byte slice.
func Bytes(b []byte) uint32 {
	var h uint32
	for _, c := range b {
		h = h*9 + uint32(c)
	}
	return h
}

// Reduce maps a 32-bit key hash to a value in [0, n), adding salt.
//
// y = (key+salt)*knuthC is XOR-folded with key, then scaled into range with
// the fastrange technique (multiply and take high bits) instead of modulo.
// For a fixed key, varying the salt moves the output substantially, which
// is the property the constructor's salt search exploits.
func Reduce(key, salt, n uint32) uint32 {
	y := (key + salt) * knuthC
	y ^= key
	return uint32((uint64(y) * uint64(n)) >> 32)
}
