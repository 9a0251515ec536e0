package config

import (
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
)

// isolate points the user config lookup at an empty home, clears
// TODOWIDGET_* variables, and moves into a fresh project directory.
func isolate(t *testing.T) (home, project string) {
	t.Helper()
	home = t.TempDir()
	project = t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("APPDATA", filepath.Join(home, "AppData"))
	for _, name := range []string{"TITLE", "KEY", "LOCALE", "ON_CORRUPT", "STORE", "STORE_PATH",
		"BASE_DIR", "LOG_LEVEL", "LOG_FORMAT", "LOG_TIMESTAMPS", "LOG_CALLER", "LOG_FILE"} {
		t.Setenv(EnvPrefix+name, "")
	}
	t.Chdir(project)
	return home, project
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)

	if cfg.StorageKey != DefaultStorageKey {
		t.Errorf("StorageKey: got %q, want %q", cfg.StorageKey, DefaultStorageKey)
	}
	if cfg.Store != "sqlite" || cfg.OnCorrupt != "reset" || cfg.Locale != "en" {
		t.Errorf("got store=%q on_corrupt=%q locale=%q", cfg.Store, cfg.OnCorrupt, cfg.Locale)
	}
	if cfg.Title != "" {
		t.Errorf("Title should default to the locale title, got %q", cfg.Title)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("TODOWIDGET_KEY", "work")
	t.Setenv("TODOWIDGET_STORE", "memory")
	t.Setenv("TODOWIDGET_LOG_CALLER", "yes")

	cfg := &Config{}
	setDefaults(cfg)
	sources := map[string]ConfigSource{}
	loadFromEnv(cfg, sources)

	if cfg.StorageKey != "work" || cfg.Store != "memory" || !cfg.LogCaller {
		t.Errorf("got key=%q store=%q caller=%v", cfg.StorageKey, cfg.Store, cfg.LogCaller)
	}
	if sources["storage_key"] != SourceEnv || sources["log_caller"] != SourceEnv {
		t.Errorf("sources = %v", sources)
	}
	if _, ok := sources["locale"]; ok {
		t.Error("unset variables should not be attributed to the environment")
	}
}

func TestLoadConfigFile(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "todowidget.toml")
	writeFile(t, configFile, `storage_key = "groceries"
locale = "ru"
log_timestamps = true
`)

	cfg := &Config{}
	setDefaults(cfg)
	sources := map[string]ConfigSource{}
	if err := loadConfigFile(cfg, configFile, sources, SourceProjFile); err != nil {
		t.Fatalf("loadConfigFile: %v", err)
	}

	if cfg.StorageKey != "groceries" || cfg.Locale != "ru" || !cfg.LogTimestamps {
		t.Errorf("got key=%q locale=%q timestamps=%v", cfg.StorageKey, cfg.Locale, cfg.LogTimestamps)
	}
	if cfg.Store != DefaultStore {
		t.Errorf("absent keys should keep defaults, store = %q", cfg.Store)
	}
	if sources["locale"] != SourceProjFile {
		t.Errorf("locale source = %q", sources["locale"])
	}
	if _, ok := sources["store"]; ok {
		t.Error("store was not in the file")
	}
}

func TestLoadConfigFileRejectsUnknownKeys(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "todowidget.toml")
	writeFile(t, configFile, `storage_kye = "typo"`)

	cfg := &Config{}
	err := loadConfigFile(cfg, configFile, map[string]ConfigSource{}, SourceUserFile)
	if err == nil || !strings.Contains(err.Error(), "storage_kye") {
		t.Errorf("err = %v, want unknown key error", err)
	}
}

func TestLoadWithSourcesPriority(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, filepath.Join(home, ".todowidget", "todowidget.toml"), `store = "file"
locale = "ru"
title = "From user"
`)
	writeFile(t, "todowidget.toml", `locale = "en"
storage_key = "project"
`)
	t.Setenv("TODOWIDGET_KEY", "from-env")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cws, err := LoadWithSources(fs, []string{"-store", "memory", "ls"})
	if err != nil {
		t.Fatalf("LoadWithSources: %v", err)
	}
	cfg := cws.Config

	checks := []struct {
		field  string
		got    string
		want   string
		source ConfigSource
	}{
		{"title", cfg.Title, "From user", SourceUserFile},
		{"locale", cfg.Locale, "en", SourceProjFile},
		{"storage_key", cfg.StorageKey, "from-env", SourceEnv},
		{"store", cfg.Store, "memory", SourceFlag},
		{"on_corrupt", cfg.OnCorrupt, "reset", SourceDefault},
	}
	for _, c := range checks {
		if c.got != c.want {
			t.Errorf("%s: got %q, want %q", c.field, c.got, c.want)
		}
		if cws.Sources[c.field] != c.source {
			t.Errorf("%s source: got %q, want %q", c.field, cws.Sources[c.field], c.source)
		}
	}

	if len(cws.Files) != 2 || cws.GetConfigFile() != "todowidget.toml" {
		t.Errorf("Files = %v", cws.Files)
	}
	if args := fs.Args(); len(args) != 1 || args[0] != "ls" {
		t.Errorf("remaining args = %v", args)
	}
}

func TestFinalizeStorePath(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, "base")

	tests := []struct {
		name      string
		store     string
		storePath string
		want      string
	}{
		{"sqlite default", "sqlite", "", filepath.Join(base, "todowidget.db")},
		{"file default", "file", "", filepath.Join(base, "store.toml")},
		{"memory has no path", "memory", "", ""},
		{"relative path", "file", "lists/mine.toml", filepath.Join(root, "lists", "mine.toml")},
		{"absolute path", "sqlite", filepath.Join(root, "x.db"), filepath.Join(root, "x.db")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Store: tt.store, StorePath: tt.storePath, BaseDir: base, ProjectRoot: root}
			if err := finalizeConfig(cfg); err != nil {
				t.Fatal(err)
			}
			if cfg.StorePath != tt.want {
				t.Errorf("StorePath = %q, want %q", cfg.StorePath, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Store = "redis"
	cfg.Locale = "fr"
	cfg.OnCorrupt = "ignore"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate should fail")
	}
	for _, field := range []string{"store", "locale", "on_corrupt", "log_level"} {
		if !strings.Contains(err.Error(), field+":") {
			t.Errorf("error does not mention %s: %v", field, err)
		}
	}
}

func TestParseFlags(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Locale = "ru"

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	args := []string{"--key", "flag-key", "--log-timestamps", "--on-corrupt", "fail"}
	sources := map[string]ConfigSource{}
	if err := parseFlags(cfg, fs, args, sources); err != nil {
		t.Fatalf("parseFlags: %v", err)
	}

	if cfg.StorageKey != "flag-key" || !cfg.LogTimestamps || cfg.OnCorrupt != "fail" {
		t.Errorf("got key=%q timestamps=%v on_corrupt=%q", cfg.StorageKey, cfg.LogTimestamps, cfg.OnCorrupt)
	}
	if cfg.Locale != "ru" {
		t.Errorf("unset flag overrode Locale: %q", cfg.Locale)
	}
	if sources["storage_key"] != SourceFlag || len(sources) != 3 {
		t.Errorf("sources = %v", sources)
	}
}

func TestExampleConfigParses(t *testing.T) {
	cfg := &Config{}
	md, err := toml.Decode(ExampleConfig(), cfg)
	if err != nil {
		t.Fatalf("example config does not parse: %v", err)
	}
	if len(md.Undecoded()) > 0 {
		t.Errorf("example config has unknown keys: %v", md.Undecoded())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("example config does not validate: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := isolate(t)
	t.Setenv("TODOWIDGET_TEST_DIR", "/srv/lists")

	tests := []struct {
		input string
		want  string
	}{
		{"~/test", filepath.Join(home, "test")},
		{"~", home},
		{"$TODOWIDGET_TEST_DIR/todo.db", "/srv/lists/todo.db"},
		{"${HOME}/x", filepath.Join(home, "x")},
		{"/absolute/path", "/absolute/path"},
		{"relative", "relative"},
		{"~user/x", "~user/x"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := expandPath(tt.input); got != tt.want {
				t.Errorf("expandPath(%q): got %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestResolvePath(t *testing.T) {
	home, _ := isolate(t)
	cfg := &Config{ProjectRoot: "/work/project"}

	tests := map[string]string{
		"":                   "",
		"lists/todo.db":      "/work/project/lists/todo.db",
		"/var/lib/todo.db":   "/var/lib/todo.db",
		"~/.todowidget/x.db": filepath.Join(home, ".todowidget", "x.db"),
	}
	for in, want := range tests {
		if got := cfg.resolvePath(in); got != want {
			t.Errorf("resolvePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFindUserConfigFile(t *testing.T) {
	home, _ := isolate(t)

	if got := findUserConfigFile(); got != "" {
		t.Fatalf("found %q in an empty home", got)
	}

	xdg := filepath.Join(home, ".config", appName, configFileName)
	writeFile(t, xdg, "title = \"xdg\"\n")
	if got := findUserConfigFile(); got != xdg {
		t.Errorf("got %q, want %q", got, xdg)
	}

	dot := filepath.Join(home, "."+appName, configFileName)
	writeFile(t, dot, "title = \"dot\"\n")
	if got := findUserConfigFile(); got != dot {
		t.Errorf("dotdir should win: got %q, want %q", got, dot)
	}
}

func TestFindProjectConfigFileSkipsDirectories(t *testing.T) {
	_, project := isolate(t)

	if err := os.Mkdir(filepath.Join(project, configFileName), 0755); err != nil {
		t.Fatal(err)
	}
	if got := findProjectConfigFile(); got != "" {
		t.Errorf("directory taken as config file: %q", got)
	}

	writeFile(t, filepath.Join(project, "."+configFileName), "")
	if got := findProjectConfigFile(); got != "."+configFileName {
		t.Errorf("got %q, want .%s", got, configFileName)
	}
}

func TestBoolFromString(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"off", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := boolFromString(tt.input); got != tt.want {
				t.Errorf("boolFromString(%q): got %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
