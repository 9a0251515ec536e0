package config

import (
	"flag"
)

// flagToField maps flag names to config field names for source tracking.
var flagToField = map[string]string{
	"title":          "title",
	"key":            "storage_key",
	"locale":         "locale",
	"on-corrupt":     "on_corrupt",
	"store":          "store",
	"store-path":     "store_path",
	"base-dir":       "base_dir",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"log-file":       "log_file",
}

// parseFlags defines config flags on fs and parses args. Only flags that
// were explicitly set override the config. If sources is non-nil, it tracks
// the source of each value.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	var (
		title, key, locale, onCorrupt string
		store, storePath, baseDir     string
		logLevel, logFormat, logFile  string
		logTimestamps, logCaller      bool
	)
	fs.StringVar(&title, "title", cfg.Title, "Widget heading (default from locale)")
	fs.StringVar(&key, "key", cfg.StorageKey, "Storage key the list is saved under")
	fs.StringVar(&locale, "locale", cfg.Locale, "Label language (en|ru)")
	fs.StringVar(&onCorrupt, "on-corrupt", cfg.OnCorrupt, "Malformed stored list policy (reset|fail)")
	fs.StringVar(&store, "store", cfg.Store, "Storage backend (sqlite|file|memory)")
	fs.StringVar(&storePath, "store-path", cfg.StorePath, "Storage file path (default under base dir)")
	fs.StringVar(&baseDir, "base-dir", cfg.BaseDir, "Directory for default store files")
	fs.StringVar(&logLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&logFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&logTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in log output")
	fs.BoolVar(&logCaller, "log-caller", cfg.LogCaller, "Include caller location in log output")
	fs.StringVar(&logFile, "log-file", cfg.LogFile, "Write logs to this file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		field, ok := flagToField[f.Name]
		if !ok {
			return
		}
		if sources != nil {
			sources[field] = SourceFlag
		}
		switch f.Name {
		case "title":
			cfg.Title = title
		case "key":
			cfg.StorageKey = key
		case "locale":
			cfg.Locale = locale
		case "on-corrupt":
			cfg.OnCorrupt = onCorrupt
		case "store":
			cfg.Store = store
		case "store-path":
			cfg.StorePath = storePath
		case "base-dir":
			cfg.BaseDir = baseDir
		case "log-level":
			cfg.LogLevel = logLevel
		case "log-format":
			cfg.LogFormat = logFormat
		case "log-timestamps":
			cfg.LogTimestamps = logTimestamps
		case "log-caller":
			cfg.LogCaller = logCaller
		case "log-file":
			cfg.LogFile = logFile
		}
	})

	return nil
}
