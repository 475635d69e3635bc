package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_MergesSourcesInPriorityOrder(t *testing.T) {
	b := newConfigBuilder()
	// env идёт первым и имеет приоритет над более поздними источниками
	b.configs = append(b.configs,
		&StructuredConfig{API: API{BaseURL: "https://from-env"}},
		&StructuredConfig{
			API:     API{BaseURL: "https://from-flags", RequestTimeout: Duration(30 * time.Second)},
			Storage: Storage{SessionFilePath: "flags-session.json"},
		},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	assert.Equal(t, "https://from-env", cfg.API.BaseURL)
	assert.Equal(t, Duration(30*time.Second), cfg.API.RequestTimeout)
	assert.Equal(t, "flags-session.json", cfg.Storage.SessionFilePath)
}

func TestBuild_EmptySourcesYieldZeroConfig(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestClientConfig_Defaults(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.applyDefaults()

	require.NoError(t, cfg.validate())
	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "session.json", cfg.Storage.SessionFilePath)
	assert.Equal(t, 5*time.Minute, cfg.Workers.StatsRefreshInterval)
}

func TestClientConfig_Validate(t *testing.T) {
	cfg := &ClientConfig{
		Adapter: ClientAdapter{BaseURL: "https://api", RequestTimeout: time.Second},
		Storage: ClientStorage{SessionFilePath: "s.json"},
		Workers: ClientWorkers{StatsRefreshInterval: time.Minute},
	}
	require.NoError(t, cfg.validate())

	broken := *cfg
	broken.Adapter.BaseURL = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidAdapterConfigs)

	broken = *cfg
	broken.Storage.SessionFilePath = ""
	assert.ErrorIs(t, broken.validate(), ErrInvalidStorageConfigs)

	broken = *cfg
	broken.Workers.StatsRefreshInterval = 0
	assert.ErrorIs(t, broken.validate(), ErrInvalidWorkerConfigs)
}
