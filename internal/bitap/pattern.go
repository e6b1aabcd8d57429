package bitap

// Pattern is the immutable compiled form of a search pattern: the
// normalized text, its rune length, the full-match bitmask, and the
// per-rune alphabet. Compile once, search many times.
type Pattern struct {
	text     string
	runes    []rune
	length   int
	mask     uint64
	alphabet Alphabet
}

// NewPattern compiles text into a Pattern. The caller is responsible
// for case normalization and for rejecting empty or over-long input;
// text must be non-empty and at most 64 runes so the match state fits
// a single 64-bit word.
func NewPattern(text string) *Pattern {
	runes := []rune(text)
	return &Pattern{
		text:     text,
		runes:    runes,
		length:   len(runes),
		mask:     1 << uint(len(runes)-1),
		alphabet: NewAlphabet(runes),
	}
}

// Text returns the normalized pattern text.
func (p *Pattern) Text() string { return p.text }

// Len returns the pattern length in runes.
func (p *Pattern) Len() int { return p.length }
