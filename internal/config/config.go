// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"time"
)

// DefaultBaseURL is the production learnwords API endpoint used when no
// other source configures one.
const DefaultBaseURL = "https://rs-learnwords.herokuapp.com"

// StructuredConfig is the top-level configuration container for the
// learnwords client. It is populated by merging values from environment
// variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
//   - json      — field name inside the optional JSON config file.
type StructuredConfig struct {
	// API holds remote learnwords API settings (base URL, timeouts).
	API API `envPrefix:"API_" json:"api,omitempty"`

	// Storage holds local persistence settings for the session store.
	Storage Storage `envPrefix:"STORAGE_" json:"storage,omitempty"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"WORKERS_" json:"workers,omitempty"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG" json:"-"`
}

// API holds remote endpoint settings for the outbound transport layer.
type API struct {
	// BaseURL is the learnwords server base URL
	// (e.g. "https://rs-learnwords.herokuapp.com").
	// Env: API_BASE_URL
	BaseURL string `env:"BASE_URL" json:"base_url"`

	// RequestTimeout is the maximum duration allowed for a single outbound
	// request before the client cancels it (e.g. "15s").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout Duration `env:"REQUEST_TIMEOUT" json:"request_timeout"`
}

// Storage holds file-system settings for the persisted session store.
type Storage struct {
	// SessionFilePath is the path of the JSON file holding the persisted
	// session keys. ":memory:" keeps the session in process memory only.
	// Env: STORAGE_SESSION_FILE
	SessionFilePath string `env:"SESSION_FILE" json:"session_file"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// StatsRefreshInterval defines how often the learned-today counter is
	// refreshed from the aggregation endpoint.
	// Env: WORKERS_STATS_REFRESH_INTERVAL
	StatsRefreshInterval Duration `env:"STATS_REFRESH_INTERVAL" json:"stats_refresh_interval"`
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the learnwords API endpoint used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SessionFilePath is the session store file location.
	SessionFilePath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// StatsRefreshInterval defines how often the stats refresh job runs.
	StatsRefreshInterval time.Duration
}

// ClientConfig is the client configuration view assembled from
// [StructuredConfig], with defaults applied.
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetStructuredConfig loads and merges the application configuration from
// all available sources in the following priority order (last source wins
// for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration. Missing values fall back to defaults:
// the production base URL, a 15s request timeout, a "session.json" store
// file, and a 5m stats refresh interval.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.API.BaseURL,
			RequestTimeout: time.Duration(cfg.API.RequestTimeout),
		},
		Storage: ClientStorage{
			SessionFilePath: cfg.Storage.SessionFilePath,
		},
		Workers: ClientWorkers{
			StatsRefreshInterval: time.Duration(cfg.Workers.StatsRefreshInterval),
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = DefaultBaseURL
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.SessionFilePath == "" {
		cfg.Storage.SessionFilePath = "session.json"
	}
	if cfg.Workers.StatsRefreshInterval <= 0 {
		cfg.Workers.StatsRefreshInterval = 5 * time.Minute
	}
}

// validate checks that the final merged [ClientConfig] satisfies all client
// invariants before it is used at startup.
func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.SessionFilePath == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.StatsRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
