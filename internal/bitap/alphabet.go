package bitap

// Alphabet maps each distinct pattern rune to a bitmask marking every
// position in the pattern where that rune occurs. For a pattern of
// length L, the rune at index i contributes bit L-1-i, OR-combined
// across repeated occurrences.
type Alphabet map[rune]uint64

// NewAlphabet compiles the alphabet for the given pattern runes.
func NewAlphabet(pattern []rune) Alphabet {
	a := make(Alphabet, len(pattern))
	last := len(pattern) - 1
	for i, r := range pattern {
		a[r] |= 1 << uint(last-i)
	}
	return a
}

// Mask returns the position bitmask for r, or 0 if the pattern does
// not contain r. The zero default keeps lookups total without growing
// the map beyond the pattern's own alphabet.
func (a Alphabet) Mask(r rune) uint64 {
	return a[r]
}
