package config

import (
	"os"
	"strings"
)

// EnvPrefix prefixes every environment variable the config reads.
const EnvPrefix = "TODOWIDGET_"

// loadFromEnv overrides config from environment variables. If sources is
// non-nil, it tracks the source of each value.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	set := func(field string) {
		if sources != nil {
			sources[field] = SourceEnv
		}
	}
	str := func(name, field string, dst *string) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = v
			set(field)
		}
	}
	boolean := func(name, field string, dst *bool) {
		if v := os.Getenv(EnvPrefix + name); v != "" {
			*dst = boolFromString(v)
			set(field)
		}
	}

	str("TITLE", "title", &cfg.Title)
	str("KEY", "storage_key", &cfg.StorageKey)
	str("LOCALE", "locale", &cfg.Locale)
	str("ON_CORRUPT", "on_corrupt", &cfg.OnCorrupt)
	str("STORE", "store", &cfg.Store)
	str("STORE_PATH", "store_path", &cfg.StorePath)
	str("BASE_DIR", "base_dir", &cfg.BaseDir)

	// Logging configuration
	str("LOG_LEVEL", "log_level", &cfg.LogLevel)
	str("LOG_FORMAT", "log_format", &cfg.LogFormat)
	boolean("LOG_TIMESTAMPS", "log_timestamps", &cfg.LogTimestamps)
	boolean("LOG_CALLER", "log_caller", &cfg.LogCaller)
	str("LOG_FILE", "log_file", &cfg.LogFile)
}

func boolFromString(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "y", "on":
		return true
	default:
		return false
	}
}
