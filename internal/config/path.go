// Package config loads lifeone settings from viper and the environment.
package config

import (
	"os"
	"path/filepath"
	"strings"
)

// AppName names the config and data directories.
const AppName = "lifeone"

// ExpandPath expands ~ and $VAR references in a file path.
func ExpandPath(path string) string {
	switch {
	case path == "":
		return path
	case path == "~":
		if home, err := os.UserHomeDir(); err == nil {
			path = home
		}
	case strings.HasPrefix(path, "~/"):
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[2:])
		}
	}

	return os.ExpandEnv(path)
}

// DefaultConfigDir is where config.yaml is looked up.
func DefaultConfigDir() string {
	return ExpandPath(filepath.Join("~", ".config", AppName))
}

// DefaultDatabasePath is the history database used when database.path is unset.
func DefaultDatabasePath() string {
	return ExpandPath(filepath.Join("~", ".local", "share", AppName, AppName+".db"))
}
