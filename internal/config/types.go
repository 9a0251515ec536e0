package config

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// ConfigWithSources holds configuration along with source information for each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource

	// Files lists the config files that were read, lowest priority first.
	Files []string
}

// Default values.
const (
	DefaultStorageKey = "todo"
	DefaultStore      = "sqlite"
	DefaultBaseDir    = "~/.todowidget"
	DefaultOnCorrupt  = "reset"
	DefaultLocale     = "en"
	DefaultLogLevel   = "info"
	DefaultLogFormat  = "text"

	sqliteFileName = "todowidget.db"
	tomlFileName   = "store.toml"
)

// Config holds the full configuration for todowidget.
type Config struct {
	// Widget
	Title      string `toml:"title"`
	StorageKey string `toml:"storage_key"`
	Locale     string `toml:"locale"`
	OnCorrupt  string `toml:"on_corrupt"`

	// Storage
	Store     string `toml:"store"`
	StorePath string `toml:"store_path"`
	BaseDir   string `toml:"base_dir"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
	LogFile       string `toml:"log_file"`

	// Project root (computed)
	ProjectRoot string `toml:"-"`
}

// configFields returns the list of configurable field names for source tracking.
func configFields() []string {
	return []string{
		"title",
		"storage_key",
		"locale",
		"on_corrupt",
		"store",
		"store_path",
		"base_dir",
		"log_level",
		"log_format",
		"log_timestamps",
		"log_caller",
		"log_file",
	}
}

// Fields returns the configurable field names in display order.
func Fields() []string {
	return configFields()
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.StorageKey = DefaultStorageKey
	cfg.Locale = DefaultLocale
	cfg.OnCorrupt = DefaultOnCorrupt
	cfg.Store = DefaultStore
	cfg.BaseDir = DefaultBaseDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
}
