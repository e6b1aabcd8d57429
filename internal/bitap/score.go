package bitap

// Score computes the match quality for a candidate match with the
// given error count at currentLoc, relative to expectedLoc.
//
// The accuracy term is errors/patternLen; the proximity term is the
// absolute drift from the expected location divided by distance. A
// distance of 0 forbids drift entirely: any non-zero proximity scores
// a full 1.0 regardless of errors.
//
// Results above 1.0 are valid for comparison during the search but are
// never surfaced as final scores; callers treat >= 1.0 as "no match".
func Score(patternLen, errors, currentLoc, expectedLoc, distance int) float64 {
	accuracy := float64(errors) / float64(patternLen)
	proximity := currentLoc - expectedLoc
	if proximity < 0 {
		proximity = -proximity
	}
	if distance == 0 {
		if proximity == 0 {
			return accuracy
		}
		return 1.0
	}
	return accuracy + float64(proximity)/float64(distance)
}
