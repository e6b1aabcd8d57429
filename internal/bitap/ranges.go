package bitap

// Range is a closed inclusive interval [Start, End] over text rune
// indices, with Start <= End.
type Range struct {
	Start int
	End   int
}

// RangesFromMask converts a per-position 0/1 match mask into the
// ordered list of maximal runs of matched positions, scanning left to
// right. The mask must be non-empty; the matcher never produces one
// for zero-length text.
func RangesFromMask(mask []byte) []Range {
	var ranges []Range
	start := -1
	for i, flag := range mask {
		if flag != 0 {
			if start == -1 {
				start = i
			}
			continue
		}
		if start != -1 {
			ranges = append(ranges, Range{Start: start, End: i - 1})
			start = -1
		}
	}
	if start != -1 {
		ranges = append(ranges, Range{Start: start, End: len(mask) - 1})
	}
	return ranges
}
