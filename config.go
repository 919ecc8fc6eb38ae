package kfold

import "fmt"

// DefaultFolds is the fold count used when Config.Folds is unset.
const DefaultFolds = 5

// Config controls how groups are laid out into folds.
//
// The zero value is not valid (it has no folds); start from DefaultConfig or
// call ApplyDefaults after decoding a partial YAML document.
type Config struct {
	// Folds is the number of folds. Must be at least 2.
	Folds int `yaml:"folds"`

	// Shuffle randomizes the group order before folds are laid out.
	// nil means true.
	Shuffle *bool `yaml:"shuffle"`

	// Seed makes the shuffle reproducible. nil draws a fresh seed from the
	// runtime's entropy source on every construction.
	// Ignored when Shuffle is false.
	Seed *int64 `yaml:"seed"`
}

// DefaultConfig returns five shuffled folds with an unseeded shuffle.
func DefaultConfig() Config {
	return Config{
		Folds:   DefaultFolds,
		Shuffle: Bool(true),
	}
}

// ApplyDefaults fills unset fields of cfg with DefaultConfig values.
//
// Explicit values, including Shuffle: false, are preserved.
func ApplyDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Folds == 0 {
		cfg.Folds = defaults.Folds
	}
	if cfg.Shuffle == nil {
		cfg.Shuffle = defaults.Shuffle
	}
}

// Validate checks configuration constraints.
//
// Returns:
//   - error: wraps ErrInvalidArgument when Folds < 2
func (cfg *Config) Validate() error {
	if cfg.Folds < 2 {
		return fmt.Errorf("%w: need at least 2 folds, got %d", ErrInvalidArgument, cfg.Folds)
	}

	return nil
}

// ShuffleEnabled reports whether groups are shuffled before partitioning.
func (cfg *Config) ShuffleEnabled() bool {
	return cfg.Shuffle == nil || *cfg.Shuffle
}

// Bool returns a pointer to v, for Config.Shuffle.
func Bool(v bool) *bool {
	return &v
}

// Seed returns a pointer to v, for Config.Seed.
func Seed(v int64) *int64 {
	return &v
}
