package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-a server base URL
//	-s session store file path
//	-request-timeout request timeout (e.g., "15s", "1m")
//	-stats-refresh stats refresh interval (e.g., "5m")
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(os.Args[1:])
}

// parseFlags parses the given argument list on a private FlagSet so that the
// parser stays re-entrant for tests.
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("learnwords", flag.ContinueOnError)

	var baseURL string
	var sessionFilePath string
	var requestTimeout time.Duration
	var statsRefreshInterval time.Duration
	var jsonConfigPath string

	fs.StringVar(&baseURL, "a", "", "API base URL")
	fs.StringVar(&sessionFilePath, "s", "", "Session store file path")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s, 1m)")
	fs.DurationVar(&statsRefreshInterval, "stats-refresh", 0, "Stats refresh interval (e.g., 5m)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			RequestTimeout: Duration(requestTimeout),
		},
		Storage: Storage{
			SessionFilePath: sessionFilePath,
		},
		Workers: Workers{
			StatsRefreshInterval: Duration(statsRefreshInterval),
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
