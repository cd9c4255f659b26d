package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the devcheck config directory under the user config base.
// On Linux this typically resolves to $XDG_CONFIG_HOME/devcheck; on macOS
// to ~/Library/Application Support/devcheck. Falls back to HOME when
// UserConfigDir is unavailable.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil || strings.TrimSpace(base) == "" {
		if home, herr := os.UserHomeDir(); herr == nil {
			base = home
		} else {
			return "", errors.New("cannot determine config directory")
		}
	}
	return filepath.Join(base, "devcheck"), nil
}

// DefaultPath returns the catalog path used when no override is given: the
// user config dir copy when it exists, else tools.json in the working
// directory.
func DefaultPath() string {
	if d, err := Dir(); err == nil {
		p := filepath.Join(d, catalogFile)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return catalogFile
}
