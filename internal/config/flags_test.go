package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "https://flags.test",
		"-s", "flags-session.json",
		"-request-timeout", "25s",
		"-stats-refresh", "2m",
		"-c", "cfg.json",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://flags.test", cfg.API.BaseURL)
	assert.Equal(t, "flags-session.json", cfg.Storage.SessionFilePath)
	assert.Equal(t, Duration(25*time.Second), cfg.API.RequestTimeout)
	assert.Equal(t, Duration(2*time.Minute), cfg.Workers.StatsRefreshInterval)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

func TestParseFlags_NoArgs(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_UnknownFlag(t *testing.T) {
	_, err := parseFlags([]string{"-definitely-unknown"})
	assert.Error(t, err)
}

func TestParseJSON_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	payload := `{
		"api": {"base_url": "https://json.test", "request_timeout": "10s"},
		"storage": {"session_file": "json-session.json"},
		"workers": {"stats_refresh_interval": "3m"}
	}`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://json.test", cfg.API.BaseURL)
	assert.Equal(t, Duration(10*time.Second), cfg.API.RequestTimeout)
	assert.Equal(t, "json-session.json", cfg.Storage.SessionFilePath)
	assert.Equal(t, Duration(3*time.Minute), cfg.Workers.StatsRefreshInterval)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSONNumber(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalJSON([]byte("1000000000")))
	assert.Equal(t, Duration(time.Second), d)
}
