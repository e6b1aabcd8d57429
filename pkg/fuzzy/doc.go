// Package fuzzy provides approximate ("fuzzy") substring search over
// strings, string lists, and weighted multi-field collections.
//
// The engine compiles a pattern once into a bit-parallel form and then
// matches it against arbitrary texts, tolerating a bounded number of
// character errors and positional drift. Every match carries a
// normalized score (0 = perfect match, approaching 1 = barely
// acceptable) plus the character ranges that contributed to it.
//
// # Usage
//
// Single string search:
//
//	engine, _ := fuzzy.NewEngine()
//	result := engine.Search("od mn war", "Old Man's War")
//	if result != nil {
//	    fmt.Println(result.Score, result.Ranges)
//	}
//
// Ranked search over a list, compiling the pattern once:
//
//	results := engine.SearchList("mn war", []string{
//	    "Old Man's War",
//	    "The Lock Artist",
//	})
//
// Weighted multi-field items, adapted from any caller type with a
// closure:
//
//	results := fuzzy.SearchItems(engine, "Man", books,
//	    func(b Book) []fuzzy.WeightedField {
//	        return []fuzzy.WeightedField{
//	            {Text: b.Title, Weight: 0.3},
//	            {Text: b.Author, Weight: 0.7},
//	        }
//	    })
//
// All list results are sorted ascending by score, best match first.
//
// # No-Match Convention
//
// There are no errors in the matching paths. "No match" is signaled by
// absence: CreatePattern returns nil for empty or over-long input, and
// the search methods return nil (or omit the entry) when the best
// achievable score is exactly 1.0. Construction and config loading are
// the only operations that can fail.
//
// # Thread Safety
//
// An Engine is immutable after construction and safe for concurrent
// use; compiled patterns are shared read-only. For large batches the
// SearchListConcurrent and SearchFieldsConcurrent helpers partition
// the input across workers, each running the sequential engine.
package fuzzy
