// Package bitap implements bit-parallel approximate string matching
// using the Bitap (Wu-Manber) algorithm.
//
// The package provides the low-level matching primitives:
//
//   - [Pattern]: a precompiled search pattern with its per-rune
//     position bitmasks
//   - [Score]: the match quality function balancing error count
//     against positional drift
//   - [Matcher]: the search loop combining an exact pre-scan with
//     the iterative fuzzy pass
//
// Scores are normalized so that 0 is a perfect match at the expected
// location and 1 means no usable match. The matcher always returns a
// Result; callers decide what score is acceptable.
//
// # Thread Safety
//
// A compiled Pattern is immutable and safe to share across goroutines.
// Matcher.Search allocates all scratch state per call, so concurrent
// searches against the same Pattern never interfere.
package bitap
