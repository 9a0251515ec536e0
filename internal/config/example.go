package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todowidget configuration file
# Values can be overridden by TODOWIDGET_* environment variables or CLI flags

# Heading shown above the list (defaults to the locale's title)
# title = "Groceries"

# Storage key the list is saved under; widgets with different keys
# keep separate lists in the same store
storage_key = "todo"

# Label language: en or ru
locale = "en"

# What to do when the stored list is malformed:
#   reset - start with an empty list and log a warning
#   fail  - refuse to start
on_corrupt = "reset"

# Storage backend: sqlite, file (TOML), or memory
store = "sqlite"

# Storage file (defaults to todowidget.db or store.toml under base_dir)
# store_path = "~/.todowidget/todowidget.db"

# Directory for default store files (supports ~ expansion and %VAR% on Windows)
base_dir = "~/.todowidget"

# Logging
log_level = "info"      # debug, info, warn, error
log_format = "text"     # text, json, logfmt
log_timestamps = false
log_caller = false
# log_file = "~/.todowidget/todowidget.log"
`
}
