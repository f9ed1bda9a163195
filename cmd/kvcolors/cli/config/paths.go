// Package config provides configuration management for the kvcolors CLI.
package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/meigma/kvcolors"
)

// ConfigHome returns XDG_CONFIG_HOME, defaulting to ~/.config.
func ConfigHome() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

// StateHome returns XDG_STATE_HOME, defaulting to ~/.local/state.
func StateHome() (string, error) {
	return xdgDir("XDG_STATE_HOME", filepath.Join(".local", "state"))
}

// Dir returns the kvcolors config directory.
// Uses XDG_CONFIG_HOME/kvcolors, defaulting to ~/.config/kvcolors.
func Dir() (string, error) {
	base, err := ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "kvcolors"), nil
}

// File returns the kvcolors config file path.
func File() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// StylesheetPath returns the generated Material palette written by quickshell.
func StylesheetPath() (string, error) {
	base, err := StateHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "quickshell", "user", "generated", "material_colors.scss"), nil
}

// KvantumDir returns the directory holding Kvantum themes.
func KvantumDir() (string, error) {
	base, err := ConfigHome()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "Kvantum"), nil
}

// KvantumConfigPath returns <KvantumDir>/<theme>/<theme>.kvconfig.
// The theme name may not escape the Kvantum directory.
func KvantumConfigPath(theme string) (string, error) {
	if theme == "" {
		return "", errors.New("theme name is empty")
	}
	dir, err := KvantumDir()
	if err != nil {
		return "", err
	}
	return kvcolors.SafeJoin(dir, theme, theme+".kvconfig")
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return base, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback), nil
}
