package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.SeedFile)
	assert.Equal(t, float64(DefaultRateLimit), cfg.RateLimit)
	assert.Equal(t, DefaultRateBurst, cfg.RateBurst)
	assert.Equal(t, DefaultMaxExpansion, cfg.MaxExpansion)
	assert.Equal(t, 5*time.Minute, cfg.SummaryCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
}

func TestOverrides(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		"COOKBOOK_ADDR":              "127.0.0.1:9000",
		"COOKBOOK_LOG_LEVEL":         "debug",
		"COOKBOOK_LOG_FORMAT":        "text",
		"COOKBOOK_SEED_FILE":         "seed.yaml",
		"COOKBOOK_RATE_LIMIT":        "0",
		"COOKBOOK_RATE_BURST":        "5",
		"COOKBOOK_MAX_EXPANSION":     "0",
		"COOKBOOK_SUMMARY_CACHE_TTL": "30s",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "seed.yaml", cfg.SeedFile)
	assert.Zero(t, cfg.RateLimit)
	assert.Equal(t, 5, cfg.RateBurst)
	assert.Zero(t, cfg.MaxExpansion)
	assert.Equal(t, 30*time.Second, cfg.SummaryCacheTTL)
}

func TestInvalidValues(t *testing.T) {
	for key, value := range map[string]string{
		"COOKBOOK_RATE_LIMIT":        "fast",
		"COOKBOOK_RATE_BURST":        "-1",
		"COOKBOOK_MAX_EXPANSION":     "lots",
		"COOKBOOK_SUMMARY_CACHE_TTL": "forever",
		"COOKBOOK_SHUTDOWN_TIMEOUT":  "10",
	} {
		t.Run(key, func(t *testing.T) {
			_, err := fromLookup(lookupFrom(map[string]string{key: value}))
			assert.ErrorContains(t, err, key)
		})
	}
}
