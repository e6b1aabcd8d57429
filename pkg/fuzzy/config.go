package fuzzy

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultPatternCacheSize is the default number of compiled patterns
// kept in the engine's LRU cache. Patterns are small (one bitmask per
// distinct rune), so the cache stays in the tens of kilobytes.
const DefaultPatternCacheSize = 256

// Config holds the engine tuning. All fields are fixed at engine
// construction; see the With* options for programmatic setup and
// LoadConfig for file-based setup.
//
// Tuning can also be overridden via environment variables
// (FUZZBIT_THRESHOLD, FUZZBIT_DISTANCE, FUZZBIT_TOKENIZE), which take
// priority over the config file.
type Config struct {
	// Location is the text position where the pattern is expected to
	// appear. Matches further away are penalized by distance.
	Location int `yaml:"location"`

	// Distance is the drift tolerance: a match Distance runes away
	// from Location adds a full point to the score. 0 forces
	// exact-location matching.
	Distance int `yaml:"distance"`

	// Threshold is the maximum acceptable score (0.0-1.0). Candidates
	// scoring above it are discarded.
	Threshold float64 `yaml:"threshold"`

	// MaxPatternLength bounds compiled patterns; longer inputs yield
	// no pattern. At most 64 so the match state fits one word.
	MaxPatternLength int `yaml:"max_pattern_length"`

	// CaseSensitive disables the default lower-casing of patterns and
	// texts before matching.
	CaseSensitive bool `yaml:"case_sensitive"`

	// Tokenize additionally matches each whitespace-separated word of
	// the pattern and averages the scores, rewarding texts that match
	// both the phrase and its words.
	Tokenize bool `yaml:"tokenize"`

	// PatternCacheSize is the capacity of the compiled-pattern LRU.
	PatternCacheSize int `yaml:"pattern_cache_size"`
}

// DefaultConfig returns the standard tuning: expected location 0,
// distance 100, threshold 0.6, patterns up to 32 runes,
// case-insensitive, tokenization off.
func DefaultConfig() Config {
	return Config{
		Location:         0,
		Distance:         100,
		Threshold:        0.6,
		MaxPatternLength: 32,
		CaseSensitive:    false,
		Tokenize:         false,
		PatternCacheSize: DefaultPatternCacheSize,
	}
}

// Validate checks the configuration bounds.
func (c Config) Validate() error {
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidThreshold, c.Threshold)
	}
	if c.Location < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidLocation, c.Location)
	}
	if c.Distance < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidDistance, c.Distance)
	}
	if c.MaxPatternLength < 1 || c.MaxPatternLength > 64 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxPatternLength, c.MaxPatternLength)
	}
	if c.PatternCacheSize < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidCacheSize, c.PatternCacheSize)
	}
	return nil
}

// LoadConfig reads a YAML config file, applies environment overrides,
// and validates the result. Keys absent from the file keep their
// defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// applyEnvOverrides lets deployments tune matching without touching
// the config file. Unparsable values are ignored in favor of the file.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("FUZZBIT_THRESHOLD"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Threshold = f
		}
	}
	if v := os.Getenv("FUZZBIT_DISTANCE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Distance = n
		}
	}
	if v := os.Getenv("FUZZBIT_TOKENIZE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Tokenize = b
		}
	}
}
