package config

import (
	"os"
	"path/filepath"
	"strconv"
)

// Config holds process-level configuration for the worklog CLI.
type Config struct {
	// DBPath is the SQLite database location.
	DBPath string

	// WorkNormSeconds is the fallback daily work target used until a
	// persisted settings row overrides it.
	WorkNormSeconds int

	// NormOverridden reports whether WorkNormSeconds came from the
	// environment. An env-provided norm takes precedence over the
	// persisted settings row for new sessions.
	NormOverridden bool

	// LogUseCases enables slog telemetry for service use cases on stderr.
	LogUseCases bool
}

// Default returns a Config with sensible defaults. The database lives
// under ~/.worklog.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DBPath:          filepath.Join(home, ".worklog", "worklog.db"),
		WorkNormSeconds: 27000,
		LogUseCases:     false,
	}, nil
}

// Load reads configuration from environment variables, falling back to
// defaults for any unset values.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv("WORKLOG_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("WORKLOG_NORM_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.WorkNormSeconds = n
			cfg.NormOverridden = true
		}
	}
	if v := os.Getenv("WORKLOG_LOG"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg, nil
}
