package bitap

// Result is the outcome of one matcher invocation.
type Result struct {
	// Score is the match quality: 0 is a perfect match at the
	// expected location, 1 means nothing qualified.
	Score float64

	// Ranges are the maximal runs of text positions whose runes
	// participated in matching, including partial matches.
	Ranges []Range
}

// Matcher runs the Bitap search for one fixed tuning of expected
// location, drift tolerance, and score threshold.
//
// Stateless between calls: every Search allocates its own bit vectors
// and match mask, so a single Matcher is safe for concurrent use.
type Matcher struct {
	location  int
	distance  int
	threshold float64
}

// NewMatcher creates a matcher. location is the expected match
// position, distance the drift tolerance (0 forces exact-location
// matching), threshold the maximum acceptable score.
func NewMatcher(location, distance int, threshold float64) *Matcher {
	return &Matcher{
		location:  location,
		distance:  distance,
		threshold: threshold,
	}
}

// Search matches p against text and reports the best score found
// together with the matched ranges. Text must be normalized the same
// way the pattern was. A score of 1.0 means no usable match; callers
// apply their own acceptance policy.
func (m *Matcher) Search(p *Pattern, text string) Result {
	runes := []rune(text)
	textLen := len(runes)
	patLen := p.length
	loc := m.location

	// Identical strings need no scan at all.
	if p.text == text {
		return Result{Score: 0, Ranges: []Range{{Start: 0, End: textLen - 1}}}
	}

	mask := make([]byte, textLen)
	score := 1.0
	current := m.threshold

	// Exact pre-scan: perfect substring occurrences bound the error
	// tolerance of the fuzzy pass and are never missed by it.
	for at := indexOfRunes(runes, p.runes, loc); at != -1; at = indexOfRunes(runes, p.runes, at+patLen) {
		s := Score(patLen, 0, at, loc, m.distance)
		if s <= current {
			current = s
			score = s
		}
		for j := at; j < at+patLen; j++ {
			mask[j] = 1
		}
	}

	// Wu-Manber recurrence, one pass per tolerated error count. The
	// drift window binMax is carried across levels: tolerated drift
	// only shrinks as error levels consume score budget.
	binMax := patLen + textLen
	var last []uint64
	for i := 0; i < patLen; i++ {
		// Largest drift still within the running threshold at this
		// error level; Score is monotonic in drift, so the feasible
		// drifts form a prefix and binary search applies.
		binMin, binMid := 0, binMax
		for binMin < binMid {
			if Score(patLen, i, loc+binMid, loc, m.distance) <= current {
				binMin = binMid
			} else {
				binMax = binMid
			}
			binMid = (binMax-binMin)/2 + binMin
		}
		binMax = binMid

		start := loc - binMid + 1
		if start < 1 {
			start = 1
		}
		finish := loc + binMid
		if finish > textLen {
			finish = textLen
		}
		finish += patLen

		bits := make([]uint64, finish+2)
		bits[finish+1] = (1 << uint(i)) - 1

		for j := finish; j >= start; j-- {
			cur := j - 1
			var charMatch uint64
			if cur < textLen {
				charMatch = p.alphabet.Mask(runes[cur])
				if charMatch != 0 {
					mask[cur] = 1
				}
			}

			bits[j] = ((bits[j+1] << 1) | 1) & charMatch
			if i > 0 {
				bits[j] |= ((last[j+1]|last[j])<<1) | 1 | last[j+1]
			}

			if bits[j]&p.mask == 0 {
				continue
			}
			s := Score(patLen, i, cur, loc, m.distance)
			if s > current {
				continue
			}
			current = s
			score = s
			if cur <= loc {
				// Matches further left only drift away from the
				// expected location; they cannot improve.
				break
			}
			start = 2*loc - cur
			if start < 1 {
				start = 1
			}
		}

		// One more error at zero drift already busts the threshold:
		// no higher level can produce a better score.
		if Score(patLen, i+1, loc, loc, m.distance) > current {
			break
		}
		last = bits
	}

	var ranges []Range
	if textLen > 0 {
		ranges = RangesFromMask(mask)
	}
	return Result{Score: score, Ranges: ranges}
}

// indexOfRunes returns the first index >= from at which pat occurs in
// text, or -1.
func indexOfRunes(text, pat []rune, from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i+len(pat) <= len(text); i++ {
		match := true
		for j, r := range pat {
			if text[i+j] != r {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}
