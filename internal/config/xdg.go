// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "ttypr"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// XDGDataHome returns the XDG data home or a default fallback.
func XDGDataHome() string {
	if v := os.Getenv("XDG_DATA_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".local", "share")
}

// DefaultDir returns the directory holding the state file and corpora.
func DefaultDir() string {
	return filepath.Join(XDGConfigHome(), appName)
}

// StatePath returns the TOML state file inside dir.
func StatePath(dir string) string {
	return filepath.Join(dir, "config.toml")
}

// WordsPath returns the user word list inside dir.
func WordsPath(dir string) string {
	return filepath.Join(dir, "words.txt")
}

// TextPath returns the user text corpus inside dir.
func TextPath(dir string) string {
	return filepath.Join(dir, "text.txt")
}

// DefaultDBPath returns the default path for the SQLite database.
func DefaultDBPath() string {
	return filepath.Join(XDGDataHome(), appName, appName+".db")
}
