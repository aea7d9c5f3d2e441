package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const appDirName = "panewm"

// GetConfigDir returns the directory holding the configuration file.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// GetConfigFile returns the default configuration file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureDirectories creates the configuration directory if missing.
func EnsureDirectories() error {
	dir, err := GetConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, dirPerm)
}
