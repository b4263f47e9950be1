// Package config defines process configuration for the Pokédex server and
// loading from defaults, an optional YAML file, and environment variables.
package config

import (
	"github.com/Sternrassler/pokedex-client/pkg/fetch"
)

// Config contains process configuration.
type Config struct {
	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Pretty enables human-readable console logs instead of JSON.
	Pretty bool `koanf:"pretty"`

	// BaseURL is the upstream API root.
	BaseURL string `koanf:"base_url"`

	// UserAgent is sent with every upstream request.
	UserAgent string `koanf:"user_agent"`

	// Total is the acquired identifier range [1..total].
	Total int `koanf:"total"`

	// BatchSize is the acquisition chunk size. 1 selects the sequential
	// variant.
	BatchSize int `koanf:"batch_size"`

	// ChunkDelayMS is the fixed pause between chunks in milliseconds.
	ChunkDelayMS int `koanf:"chunk_delay_ms"`

	// DebounceMS is the query-input debounce window in milliseconds.
	DebounceMS int `koanf:"debounce_ms"`

	// RequestTimeoutS is the per-request timeout in seconds.
	RequestTimeoutS int `koanf:"request_timeout_s"`
}

// New returns the default configuration.
func New() *Config {
	return &Config{
		Addr:            ":8080",
		LogLevel:        "info",
		Pretty:          false,
		BaseURL:         "https://pokeapi.co/api/v2",
		UserAgent:       "pokedex-client/0.1.0 (github.com/Sternrassler/pokedex-client)",
		Total:           fetch.DefaultTotal,
		BatchSize:       fetch.DefaultBatchSize,
		ChunkDelayMS:    100,
		DebounceMS:      300,
		RequestTimeoutS: 30,
	}
}
