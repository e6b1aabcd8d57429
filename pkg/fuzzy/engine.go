package fuzzy

import (
	"io"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Aman-CERP/fuzzbit/internal/bitap"
)

// Engine performs approximate substring search with a fixed tuning.
//
// Immutable after construction and safe for concurrent use: compiled
// patterns are read-only, the pattern cache is thread-safe, and every
// search allocates its own scratch state.
type Engine struct {
	cfg      Config
	matcher  *bitap.Matcher
	patterns *lru.Cache[string, *bitap.Pattern]
	logger   *slog.Logger
}

// NewEngine creates an engine with the default configuration, modified
// by the given options. Returns a validation error for out-of-range
// settings.
func NewEngine(opts ...Option) (*Engine, error) {
	e := &Engine{
		cfg:    DefaultConfig(),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	if err := e.cfg.Validate(); err != nil {
		return nil, err
	}

	cache, err := lru.New[string, *bitap.Pattern](e.cfg.PatternCacheSize)
	if err != nil {
		return nil, err
	}
	e.patterns = cache
	e.matcher = bitap.NewMatcher(e.cfg.Location, e.cfg.Distance, e.cfg.Threshold)
	return e, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// CreatePattern compiles text into a reusable pattern, normalizing
// case per the engine configuration. Returns nil for empty input or
// input longer than MaxPatternLength: the no-match signal, not an
// error. Compiled patterns are cached, so repeated searches for the
// same pattern text skip compilation.
func (e *Engine) CreatePattern(text string) *bitap.Pattern {
	if text == "" {
		return nil
	}
	norm := e.normalize(text)
	if utf8.RuneCountInString(norm) > e.cfg.MaxPatternLength {
		return nil
	}
	if p, ok := e.patterns.Get(norm); ok {
		return p
	}
	p := bitap.NewPattern(norm)
	e.patterns.Add(norm, p)
	e.logger.Debug("compiled pattern", "text", norm, "length", p.Len())
	return p
}

// Search compiles pattern and matches it against text. Returns nil
// when no usable match exists (empty or over-long pattern, or best
// score 1.0).
func (e *Engine) Search(pattern, text string) *SearchResult {
	return e.SearchPattern(e.CreatePattern(pattern), text)
}

// SearchPattern matches a previously compiled pattern against text.
// A nil pattern yields nil, so the result of CreatePattern can be
// passed through unchecked.
//
// With tokenization enabled, the pattern text is split on whitespace
// and the text is matched against the full phrase plus every word;
// the reported score is the average across all of them and the ranges
// are concatenated. Word patterns are compiled independently and
// shared engine-wide through the pattern cache.
func (e *Engine) SearchPattern(p *bitap.Pattern, text string) *SearchResult {
	if p == nil {
		return nil
	}
	norm := e.normalize(text)

	if !e.cfg.Tokenize {
		return acceptResult(e.matcher.Search(p, norm))
	}

	words := strings.Fields(p.Text())
	full := e.matcher.Search(p, norm)
	sum := full.Score
	ranges := convertRanges(full.Ranges)
	for _, word := range words {
		wp := e.CreatePattern(word)
		if wp == nil {
			// Unmatchable word, e.g. longer than MaxPatternLength.
			sum += 1
			continue
		}
		wr := e.matcher.Search(wp, norm)
		sum += wr.Score
		ranges = append(ranges, convertRanges(wr.Ranges)...)
	}

	score := sum / float64(len(words)+1)
	if score == 1 {
		return nil
	}
	return &SearchResult{Score: score, Ranges: ranges}
}

// SearchList compiles pattern once, matches it against every element
// of texts, and returns the hits tagged with their source index,
// sorted ascending by score. The result is never nil.
func (e *Engine) SearchList(pattern string, texts []string) []ListResult {
	results := []ListResult{}
	p := e.CreatePattern(pattern)
	if p == nil {
		return results
	}
	for i, text := range texts {
		r := e.SearchPattern(p, text)
		if r == nil {
			continue
		}
		results = append(results, ListResult{Index: i, Score: r.Score, Ranges: r.Ranges})
	}
	sortByScore(results, func(r ListResult) float64 { return r.Score })
	e.logger.Debug("list search done",
		"pattern", pattern,
		"candidates", len(texts),
		"matches", len(results))
	return results
}

// SearchFields matches pattern against weighted multi-field items and
// returns one aggregated result per item with at least one matching
// field, sorted ascending by score. The result is never nil.
//
// A field's contribution is its raw score times an effective weight of
// 1-weight (or 1 when the weight is exactly 1); a raw score of 0 with
// effective weight 1 contributes 0.001 instead, so a single perfect
// field cannot zero out an item's score and erase the weighting of the
// remaining fields. The item score is the mean contribution across its
// matching fields.
func (e *Engine) SearchFields(pattern string, items [][]WeightedField) []CollectionResult {
	results := []CollectionResult{}
	p := e.CreatePattern(pattern)
	if p == nil {
		return results
	}
	for i, fields := range items {
		item := e.searchItem(p, fields)
		if item == nil {
			continue
		}
		item.Index = i
		results = append(results, *item)
	}
	sortByScore(results, func(r CollectionResult) float64 { return r.Score })
	e.logger.Debug("collection search done",
		"pattern", pattern,
		"items", len(items),
		"matches", len(results))
	return results
}

// SearchItems adapts any caller type to SearchFields via a closure
// producing its ordered weighted fields. This is the only extension
// point external code implements.
func SearchItems[T any](e *Engine, pattern string, items []T, fields func(T) []WeightedField) []CollectionResult {
	sets := make([][]WeightedField, len(items))
	for i, item := range items {
		sets[i] = fields(item)
	}
	return e.SearchFields(pattern, sets)
}

// searchItem aggregates one item's fields; nil when nothing matched.
func (e *Engine) searchItem(p *bitap.Pattern, fields []WeightedField) *CollectionResult {
	var (
		sum     float64
		matched []FieldResult
	)
	for _, f := range fields {
		r := e.SearchPattern(p, f.Text)
		if r == nil {
			continue
		}
		matched = append(matched, FieldResult{Text: f.Text, Score: r.Score, Ranges: r.Ranges})

		weight := f.Weight
		if weight == 0 {
			weight = 1
		}
		effective := 1.0
		if weight != 1 {
			effective = 1 - weight
		}
		raw := r.Score
		if raw == 0 && effective == 1 {
			raw = 0.001
		}
		sum += raw * effective
	}
	if len(matched) == 0 {
		return nil
	}
	return &CollectionResult{Score: sum / float64(len(matched)), Fields: matched}
}

func (e *Engine) normalize(s string) string {
	if e.cfg.CaseSensitive {
		return s
	}
	return strings.ToLower(s)
}

// acceptResult maps the matcher's "nothing qualified" score of exactly
// 1.0 to absence.
func acceptResult(r bitap.Result) *SearchResult {
	if r.Score == 1 {
		return nil
	}
	return &SearchResult{Score: r.Score, Ranges: convertRanges(r.Ranges)}
}

func convertRanges(in []bitap.Range) []Range {
	if in == nil {
		return nil
	}
	out := make([]Range, len(in))
	for i, r := range in {
		out[i] = Range{Start: r.Start, End: r.End}
	}
	return out
}

// sortByScore sorts ascending, keeping input order for equal scores.
func sortByScore[T any](results []T, score func(T) float64) {
	sort.SliceStable(results, func(i, j int) bool {
		return score(results[i]) < score(results[j])
	})
}
