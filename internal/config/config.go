// Package config loads afmctl settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Prefix is prepended to every environment variable read by Load.
const Prefix = "AFMCTL_"

// Defaults.
const (
	DefaultFormat              = "text"
	DefaultLogLevel            = "warn"
	DefaultLogFormat           = "console"
	DefaultCorrelationCapacity = 256
)

// Config holds the settings that seed command-line flag defaults.
type Config struct {
	Format              string // AFMCTL_FORMAT: text or json
	LogLevel            string // AFMCTL_LOG_LEVEL
	LogFormat           string // AFMCTL_LOG_FORMAT: console or json
	CorrelationCapacity int    // AFMCTL_CORRELATION_CAPACITY
}

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Format:              DefaultFormat,
		LogLevel:            DefaultLogLevel,
		LogFormat:           DefaultLogFormat,
		CorrelationCapacity: DefaultCorrelationCapacity,
	}
}

// Load reads the optional dotenv files (".env" when none are given) and
// then the environment. Variables already set in the environment win over
// dotenv entries.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("config: load %s: %w", f, err)
		}
	}
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from lookup, which resolves unprefixed names
// such as "AFMCTL_FORMAT".
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(name, def string) string {
		if v, ok := lookup(Prefix + name); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := Default()
	cfg.Format = strings.ToLower(get("FORMAT", cfg.Format))
	cfg.LogLevel = strings.ToLower(get("LOG_LEVEL", cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(get("LOG_FORMAT", cfg.LogFormat))

	if cfg.Format != "text" && cfg.Format != "json" {
		return nil, fmt.Errorf("config: %sFORMAT must be text or json, got %q", Prefix, cfg.Format)
	}
	if cfg.LogFormat != "console" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("config: %sLOG_FORMAT must be console or json, got %q", Prefix, cfg.LogFormat)
	}

	if raw := get("CORRELATION_CAPACITY", ""); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("config: %sCORRELATION_CAPACITY must be a positive integer, got %q", Prefix, raw)
		}
		cfg.CorrelationCapacity = n
	}

	return cfg, nil
}
