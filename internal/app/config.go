package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/prefabgo/internal/encode"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	LogFormat string
	LogLevel  string

	// Format is the output encoding. Empty defers to the manifest, then yaml.
	Format string
	// Strict is nil when unset, deferring to the manifest.
	Strict *bool
	// Namespaces restricts resource paths. Empty defers to the manifest.
	Namespaces  []string
	WorkerCount int
}

// NewConfig validates cfg and returns a normalized copy.
func NewConfig(cfg Config) (*Config, error) {
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if cfg.Format != "" {
		f, err := encode.ParseFormat(cfg.Format)
		if err != nil {
			return nil, err
		}
		cfg.Format = string(f)
	}

	if cfg.WorkerCount < 0 {
		return nil, fmt.Errorf("invalid workers: %d must not be negative", cfg.WorkerCount)
	}

	return &cfg, nil
}
