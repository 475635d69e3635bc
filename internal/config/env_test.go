package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_PopulatesNestedFields(t *testing.T) {
	t.Setenv("API_BASE_URL", "https://example.test")
	t.Setenv("API_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_SESSION_FILE", "/tmp/session.json")
	t.Setenv("WORKERS_STATS_REFRESH_INTERVAL", "1m")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "https://example.test", cfg.API.BaseURL)
	assert.Equal(t, Duration(20*time.Second), cfg.API.RequestTimeout)
	assert.Equal(t, "/tmp/session.json", cfg.Storage.SessionFilePath)
	assert.Equal(t, Duration(time.Minute), cfg.Workers.StatsRefreshInterval)
}

func TestParseEnv_EmptyEnvironmentLeavesZeroValues(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Empty(t, cfg.API.BaseURL)
	assert.Zero(t, cfg.API.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("API_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
