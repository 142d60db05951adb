package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Server captures process level configuration.
type Server struct {
	Addr      string
	LogLevel  string
	LogFormat string

	// SeedFile is an optional YAML file of entries loaded at startup.
	SeedFile string

	// RateLimit is requests per second across all clients; 0 disables limiting.
	RateLimit float64
	RateBurst int

	MaxExpansion    int
	SummaryCacheTTL time.Duration
	ShutdownTimeout time.Duration
}

// Defaults used when the matching variable is unset.
const (
	DefaultAddr            = ":8080"
	DefaultRateLimit       = 100
	DefaultRateBurst       = 200
	DefaultMaxExpansion    = 100_000
	DefaultSummaryCacheTTL = 5 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() (Server, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Server, error) {
	get := func(key, fallback string) string {
		if v, ok := lookup(key); ok && v != "" {
			return v
		}
		return fallback
	}

	cfg := Server{
		Addr:      get("COOKBOOK_ADDR", DefaultAddr),
		LogLevel:  get("COOKBOOK_LOG_LEVEL", "info"),
		LogFormat: get("COOKBOOK_LOG_FORMAT", "json"),
		SeedFile:  get("COOKBOOK_SEED_FILE", ""),
	}

	var err error
	if cfg.RateLimit, err = strconv.ParseFloat(get("COOKBOOK_RATE_LIMIT", strconv.Itoa(DefaultRateLimit)), 64); err != nil || cfg.RateLimit < 0 {
		return Server{}, fmt.Errorf("invalid COOKBOOK_RATE_LIMIT: %q", get("COOKBOOK_RATE_LIMIT", ""))
	}
	if cfg.RateBurst, err = strconv.Atoi(get("COOKBOOK_RATE_BURST", strconv.Itoa(DefaultRateBurst))); err != nil || cfg.RateBurst < 0 {
		return Server{}, fmt.Errorf("invalid COOKBOOK_RATE_BURST: %q", get("COOKBOOK_RATE_BURST", ""))
	}
	if cfg.MaxExpansion, err = strconv.Atoi(get("COOKBOOK_MAX_EXPANSION", strconv.Itoa(DefaultMaxExpansion))); err != nil {
		return Server{}, fmt.Errorf("invalid COOKBOOK_MAX_EXPANSION: %w", err)
	}
	if cfg.SummaryCacheTTL, err = time.ParseDuration(get("COOKBOOK_SUMMARY_CACHE_TTL", DefaultSummaryCacheTTL.String())); err != nil {
		return Server{}, fmt.Errorf("invalid COOKBOOK_SUMMARY_CACHE_TTL: %w", err)
	}
	if cfg.ShutdownTimeout, err = time.ParseDuration(get("COOKBOOK_SHUTDOWN_TIMEOUT", DefaultShutdownTimeout.String())); err != nil {
		return Server{}, fmt.Errorf("invalid COOKBOOK_SHUTDOWN_TIMEOUT: %w", err)
	}
	return cfg, nil
}
