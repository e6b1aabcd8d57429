package bitap

import "testing"

func TestNewAlphabet_SetsPositionBits(t *testing.T) {
	// Given: a pattern with a repeated rune
	a := NewAlphabet([]rune("abca"))

	// Then: each rune's mask has bit len-1-i set per occurrence,
	// OR-combined across repeats
	if got := a.Mask('a'); got != 0b1001 {
		t.Errorf("mask for 'a' = %b, want 1001", got)
	}
	if got := a.Mask('b'); got != 0b0100 {
		t.Errorf("mask for 'b' = %b, want 0100", got)
	}
	if got := a.Mask('c'); got != 0b0010 {
		t.Errorf("mask for 'c' = %b, want 0010", got)
	}
}

func TestAlphabet_Mask_AbsentRuneIsZero(t *testing.T) {
	a := NewAlphabet([]rune("abc"))

	if got := a.Mask('z'); got != 0 {
		t.Errorf("mask for absent rune = %b, want 0", got)
	}
}

func TestNewAlphabet_OnlyPatternRunes(t *testing.T) {
	// The map stays proportional to the pattern's own alphabet.
	a := NewAlphabet([]rune("aabba"))

	if len(a) != 2 {
		t.Errorf("alphabet size = %d, want 2", len(a))
	}
}

func TestNewAlphabet_SingleRune(t *testing.T) {
	a := NewAlphabet([]rune("x"))

	if got := a.Mask('x'); got != 1 {
		t.Errorf("mask = %b, want 1", got)
	}
}
