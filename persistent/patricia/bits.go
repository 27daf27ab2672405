package patricia

import "math/bits"

// signBit is the most significant bit of a key.
const signBit uint32 = 1 << 31

// Integer is the constraint for client key types. Every Integer fits into 32 bits
// and is re-interpreted as an unsigned key by ToKey.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~uint8 | ~uint16 | ~uint32
}

func isSigned[K Integer]() bool {
	var zero K
	return zero-1 < 0
}

// ToKey maps a client key to a trie key. Signed keys are sign-extended to 32 bits
// and their sign bit is flipped, which maps the smallest negative number to 0.
// Ascending order of trie keys therefore equals ascending order of client keys.
func ToKey[K Integer](k K) uint32 {
	u := uint32(k)
	if isSigned[K]() {
		u ^= signBit
	}
	return u
}

// FromKey is the inverse of ToKey.
func FromKey[K Integer](u uint32) K {
	if isSigned[K]() {
		return K(int32(u ^ signBit))
	}
	return K(u)
}

// --- Bit operations --------------------------------------------------------

// zeroBit returns true if key has bit m cleared. m has exactly one bit set.
func zeroBit(key, m uint32) bool {
	return key&m == 0
}

// maskPrefix clears bit m and all lower bits of key, leaving the prefix above m.
func maskPrefix(key, m uint32) uint32 {
	return key &^ (m | (m - 1))
}

// matchPrefix returns true if key shares prefix p above branching bit m.
func matchPrefix(key, p, m uint32) bool {
	return maskPrefix(key, m) == p
}

// branchingBit returns the highest bit at which p0 and p1 differ.
// p0 and p1 must not be equal.
func branchingBit(p0, p1 uint32) uint32 {
	assertThat(p0 != p1, "branching bit requested for equal prefixes %#08x", p0)
	return highestBit(p0 ^ p1)
}

func highestBit(x uint32) uint32 {
	return 1 << (31 - bits.LeadingZeros32(x))
}
