package fuzzy

import "log/slog"

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithConfig replaces the entire configuration, e.g. one produced by
// LoadConfig. Later options still apply on top.
func WithConfig(cfg Config) Option {
	return func(e *Engine) {
		e.cfg = cfg
	}
}

// WithLocation sets the expected match position.
func WithLocation(location int) Option {
	return func(e *Engine) {
		e.cfg.Location = location
	}
}

// WithDistance sets the drift tolerance. 0 forces exact-location matching.
func WithDistance(distance int) Option {
	return func(e *Engine) {
		e.cfg.Distance = distance
	}
}

// WithThreshold sets the maximum acceptable score (0.0-1.0).
func WithThreshold(threshold float64) Option {
	return func(e *Engine) {
		e.cfg.Threshold = threshold
	}
}

// WithMaxPatternLength bounds the length of compiled patterns (1-64 runes).
func WithMaxPatternLength(n int) Option {
	return func(e *Engine) {
		e.cfg.MaxPatternLength = n
	}
}

// WithCaseSensitive disables the default lower-casing of patterns and texts.
func WithCaseSensitive(sensitive bool) Option {
	return func(e *Engine) {
		e.cfg.CaseSensitive = sensitive
	}
}

// WithTokenize enables per-word matching with score averaging for
// multi-word patterns.
func WithTokenize(tokenize bool) Option {
	return func(e *Engine) {
		e.cfg.Tokenize = tokenize
	}
}

// WithPatternCacheSize sets the capacity of the compiled-pattern LRU.
func WithPatternCacheSize(size int) Option {
	return func(e *Engine) {
		e.cfg.PatternCacheSize = size
	}
}

// WithLogger sets the logger for debug-level search diagnostics.
// The default engine is silent.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}
