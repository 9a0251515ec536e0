package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/todowidget/internal/logging"
	"github.com/nibzard/todowidget/internal/storage"
	"github.com/nibzard/todowidget/internal/widget"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file (~/.todowidget/todowidget.toml or OS-specific config dir)
// 3. Project config file (todowidget.toml or .todowidget.toml in current directory)
// 4. Environment variables
// 5. CLI flags
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := LoadWithSources(fs, args)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
// Returns ConfigWithSources containing the config and a map of field names to their sources.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	sources := make(map[string]ConfigSource)
	cfg := &Config{}
	var files []string

	// 1. Set defaults (all fields start with default source)
	setDefaults(cfg)
	for _, field := range configFields() {
		sources[field] = SourceDefault
	}

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile, sources, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
		files = append(files, userConfigFile)
	}

	// 3. Try to load from project config file (overrides user config)
	if projectConfigFile := findProjectConfigFile(); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile, sources, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
		files = append(files, projectConfigFile)
	}

	// 4. Override from environment
	loadFromEnv(cfg, sources)

	// 5. Parse CLI flags (they override everything)
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Compute derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return &ConfigWithSources{
		Config:  cfg,
		Sources: sources,
		Files:   files,
	}, nil
}

// loadConfigFile decodes TOML over cfg. Keys absent from the file keep their
// current value; keys present are attributed to source.
func loadConfigFile(cfg *Config, path string, sources map[string]ConfigSource, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	for _, field := range configFields() {
		if md.IsDefined(field) {
			sources[field] = source
		}
	}
	return nil
}

// finalizeConfig computes derived values and resolves paths.
func finalizeConfig(cfg *Config) error {
	// Determine project root
	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	cfg.BaseDir = expandPath(cfg.BaseDir)
	cfg.StorePath = cfg.resolvePath(cfg.StorePath)
	cfg.LogFile = cfg.resolvePath(cfg.LogFile)

	if cfg.StorePath == "" {
		switch kind, _ := storage.ParseKind(cfg.Store); kind {
		case storage.KindSQLite:
			cfg.StorePath = filepath.Join(cfg.BaseDir, sqliteFileName)
		case storage.KindFile:
			cfg.StorePath = filepath.Join(cfg.BaseDir, tomlFileName)
		}
	}
	return nil
}

// resolvePath expands a path and anchors it at the project root when
// relative.
func (c *Config) resolvePath(p string) string {
	if p == "" {
		return ""
	}
	p = expandPath(p)
	if !filepath.IsAbs(p) {
		p = filepath.Join(c.ProjectRoot, p)
	}
	return p
}

// expandPath substitutes $VAR references and a leading ~ or ~/.
func expandPath(p string) string {
	p = os.ExpandEnv(p)
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, p[1:])
}

// Validate checks enumerated values. It returns every problem found.
func (c *Config) Validate() error {
	var errs []error
	if c.StorageKey == "" {
		errs = append(errs, fmt.Errorf("storage_key: must not be empty"))
	}
	if _, err := storage.ParseKind(c.Store); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if _, err := widget.ParseCorruptPolicy(c.OnCorrupt); err != nil {
		errs = append(errs, fmt.Errorf("on_corrupt: %w", err))
	}
	if _, err := widget.LabelsFor(c.Locale); err != nil {
		errs = append(errs, fmt.Errorf("locale: %w", err))
	}
	if !logging.ValidLevel(c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level: unknown level %q", c.LogLevel))
	}
	if !logging.ValidFormat(c.LogFormat) {
		errs = append(errs, fmt.Errorf("log_format: unknown format %q", c.LogFormat))
	}
	return errors.Join(errs...)
}

// GetConfigFile returns the highest-priority config file that was read.
func (cws *ConfigWithSources) GetConfigFile() string {
	if len(cws.Files) == 0 {
		return ""
	}
	return cws.Files[len(cws.Files)-1]
}
