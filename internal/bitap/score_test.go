package bitap

import (
	"math"
	"testing"
)

func TestScore_PerfectMatchAtLocation(t *testing.T) {
	if got := Score(6, 0, 5, 5, 100); got != 0 {
		t.Errorf("score = %v, want 0", got)
	}
}

func TestScore_AccuracyTerm(t *testing.T) {
	// One error in a 4-rune pattern at the expected location.
	if got := Score(4, 1, 0, 0, 100); got != 0.25 {
		t.Errorf("score = %v, want 0.25", got)
	}
}

func TestScore_ProximityTerm(t *testing.T) {
	// Exact match drifted 10 positions with distance 100.
	got := Score(4, 0, 10, 0, 100)
	if math.Abs(got-0.1) > 1e-12 {
		t.Errorf("score = %v, want 0.1", got)
	}

	// Drift is symmetric.
	if back := Score(4, 0, 0, 10, 100); back != got {
		t.Errorf("score not symmetric in drift: %v vs %v", got, back)
	}
}

func TestScore_ZeroDistance(t *testing.T) {
	// Given: no drift tolerance at all

	// Then: zero drift scores pure accuracy
	if got := Score(4, 1, 7, 7, 0); got != 0.25 {
		t.Errorf("score at location = %v, want 0.25", got)
	}

	// And: any drift is a total mismatch regardless of errors
	if got := Score(4, 0, 8, 7, 0); got != 1.0 {
		t.Errorf("score off location = %v, want 1.0", got)
	}
}

func TestScore_MonotonicInErrors(t *testing.T) {
	prev := -1.0
	for e := 0; e <= 8; e++ {
		s := Score(8, e, 3, 0, 100)
		if s < prev {
			t.Fatalf("score decreased at %d errors: %v < %v", e, s, prev)
		}
		prev = s
	}
}

func TestScore_MonotonicInDrift(t *testing.T) {
	prev := -1.0
	for drift := 0; drift <= 200; drift += 10 {
		s := Score(8, 1, drift, 0, 100)
		if s < prev {
			t.Fatalf("score decreased at drift %d: %v < %v", drift, s, prev)
		}
		prev = s
	}
}
