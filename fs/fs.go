// Package fs implements folio storage concerns on top of the file system.
package fs

import (
	"os"
	"path/filepath"
)

const appName = "folio"

// DefaultDataDir returns the directory for user data such as translations.
// Uses XDG_DATA_HOME if set, otherwise falls back to ~/.local/share/folio,
// or the system temp directory if home is unavailable.
func DefaultDataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), appName)
	}
	return filepath.Join(home, ".local", "share", appName)
}

// DefaultConfigPath returns the path of the configuration file.
// Uses XDG_CONFIG_HOME if set, otherwise ~/.config/folio/config.yaml.
func DefaultConfigPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, ".config", appName, "config.yaml")
}
