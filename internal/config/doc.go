// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.todowidget/todowidget.toml or OS-specific config directory)
// 3. Project config file (todowidget.toml or .todowidget.toml in the working directory)
// 4. Environment variables (TODOWIDGET_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.todowidget/todowidget.toml (preferred)
// - Windows: %APPDATA%\todowidget\todowidget.toml
// - macOS: ~/Library/Application Support/todowidget/todowidget.toml
// - Linux/BSD: $XDG_CONFIG_HOME/todowidget/todowidget.toml or ~/.config/todowidget/todowidget.toml
//
// Project-level config locations (overrides user config):
// - ./todowidget.toml (preferred)
// - ./.todowidget.toml
package config
