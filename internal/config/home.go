package config

import (
	"os"
	"path/filepath"
)

const (
	// HomeEnv overrides the sanctuary home directory.
	HomeEnv = "SANCTUARY_HOME"
	// AppDir is the directory name under the user config dir.
	AppDir = "sanctuary"
	// SettingsFileName is the name of the user settings file.
	SettingsFileName = "settings.yaml"
	// LogsSubdir holds the rotated log file.
	LogsSubdir = "logs"
)

// Home returns the sanctuary home directory: $SANCTUARY_HOME, else
// <user config dir>/sanctuary (~/.config/sanctuary on Linux).
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, AppDir), nil
}

// SettingsPath returns the default settings file location.
func SettingsPath() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, SettingsFileName), nil
}

// LogsDir returns the directory the log file rotates in.
func LogsDir() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}
