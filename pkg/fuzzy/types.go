package fuzzy

import "errors"

// ErrInvalidThreshold is returned when the configured threshold is outside [0, 1].
var ErrInvalidThreshold = errors.New("threshold must be between 0 and 1")

// ErrInvalidLocation is returned when the configured expected location is negative.
var ErrInvalidLocation = errors.New("location must not be negative")

// ErrInvalidDistance is returned when the configured drift tolerance is negative.
var ErrInvalidDistance = errors.New("distance must not be negative")

// ErrInvalidMaxPatternLength is returned when the configured maximum pattern
// length does not fit the 64-bit match state.
var ErrInvalidMaxPatternLength = errors.New("max pattern length must be between 1 and 64")

// ErrInvalidCacheSize is returned when the configured pattern cache size is not positive.
var ErrInvalidCacheSize = errors.New("pattern cache size must be positive")

// Range is a closed inclusive interval [Start, End] over rune indices
// of the searched text.
type Range struct {
	Start int
	End   int
}

// SearchResult is the outcome of a single-text search.
type SearchResult struct {
	// Score is the normalized match quality: 0 is a perfect match at
	// the expected location. Results that would score 1.0 are
	// reported as absence instead.
	Score float64

	// Ranges are the runs of text positions that participated in the
	// match, in ascending order.
	Ranges []Range
}

// ListResult is a SearchResult tagged with the position of its source
// string in the searched list.
type ListResult struct {
	Index  int
	Score  float64
	Ranges []Range
}

// WeightedField is one searchable text field of a collection item.
// A zero Weight is treated as the default weight of 1.0.
type WeightedField struct {
	Text   string
	Weight float64
}

// FieldResult is the match outcome for one field of a collection
// item. Score is the field's raw search score, before weighting.
type FieldResult struct {
	Text   string
	Score  float64
	Ranges []Range
}

// CollectionResult is the aggregated outcome for one collection item:
// the weighted mean score across its matching fields, plus the
// per-field results that produced it.
type CollectionResult struct {
	Index  int
	Score  float64
	Fields []FieldResult
}
