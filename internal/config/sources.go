package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "todowidget"
	configFileName = "todowidget.toml"
)

// projectConfigCandidates are checked in the working directory, in order.
var projectConfigCandidates = []string{configFileName, "." + configFileName}

// userConfigCandidates lists user-level config files in lookup order: the
// dotdir under home first, then the platform config directory.
func userConfigCandidates() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName, configFileName))
	}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, appName, configFileName))
	}
	return paths
}

func findProjectConfigFile() string {
	return firstExisting(projectConfigCandidates)
}

func findUserConfigFile() string {
	return firstExisting(userConfigCandidates())
}

// firstExisting returns the first path that names a regular file.
func firstExisting(paths []string) string {
	for _, p := range paths {
		if info, err := os.Stat(p); err == nil && info.Mode().IsRegular() {
			return p
		}
	}
	return ""
}
