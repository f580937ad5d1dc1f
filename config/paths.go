package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// FileName is the settings file looked up in Dir.
const FileName = "config.toml"

// Dir returns the kanapad config directory under the user config base.
// On Linux, this typically resolves to $XDG_CONFIG_HOME/kanapad.
// Falls back to HOME when UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "kanapad"), nil
}

// DefaultPath returns Dir joined with FileName.
func DefaultPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}
