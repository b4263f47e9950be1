package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if POKEDEX_CONFIG is set
//  3. env (prefix POKEDEX_)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("POKEDEX_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
		}
	}

	// Environment variables: POKEDEX_ADDR, POKEDEX_BATCH_SIZE, ...
	// Map env keys like POKEDEX_BATCH_SIZE -> batch_size (flat keys).
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("POKEDEX_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "pokedex_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.UserAgent == "" {
		return fmt.Errorf("%w: user_agent must not be empty", ErrInvalidConfig)
	}
	if c.Total <= 0 {
		return fmt.Errorf("%w: total must be positive (got %d)", ErrInvalidConfig, c.Total)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch_size must be positive (got %d)", ErrInvalidConfig, c.BatchSize)
	}
	if c.ChunkDelayMS < 0 {
		return fmt.Errorf("%w: chunk_delay_ms must not be negative", ErrInvalidConfig)
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("%w: debounce_ms must not be negative", ErrInvalidConfig)
	}
	if c.RequestTimeoutS <= 0 {
		return fmt.Errorf("%w: request_timeout_s must be positive", ErrInvalidConfig)
	}
	return nil
}
