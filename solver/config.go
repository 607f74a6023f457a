package solver

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrBadConfig indicates a Config field outside its allowed range.
var ErrBadConfig = errors.New("solver: invalid config")

// Config controls how puzzles are prepared and searched.
//
// Thread Safety: safe to read concurrently; do not modify while solving.
type Config struct {
	// Unfold deepens every room before parsing.
	Unfold bool `yaml:"unfold"`

	// UnfoldRows replaces burrow.FoldedRows when non-empty.
	UnfoldRows []string `yaml:"unfold_rows"`

	// MaxCost caps the explored cumulative cost. Zero disables the cap.
	MaxCost int64 `yaml:"max_cost"`

	// LogEvery emits a debug progress record every N expansions. Zero disables.
	LogEvery int `yaml:"log_every"`

	// Workers bounds how many puzzles SolveAll runs at once.
	Workers int `yaml:"workers"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks every field and reports the first violation, wrapped in ErrBadConfig.
func (c Config) Validate() error {
	switch {
	case c.MaxCost < 0:
		return fmt.Errorf("%w: max_cost must be non-negative, got %d", ErrBadConfig, c.MaxCost)
	case c.LogEvery < 0:
		return fmt.Errorf("%w: log_every must be non-negative, got %d", ErrBadConfig, c.LogEvery)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrBadConfig, c.Workers)
	}
	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Fields absent from data keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrBadConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the YAML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("solver: reading config: %w", err)
	}
	return ParseConfig(data)
}
