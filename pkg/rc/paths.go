package rc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/keyplexex/itmoscript/pkg/env"
)

// Path returns the default path of the configuration file.
func Path() (string, error) {
	dir, err := xdgDir(env.XDG_CONFIG_HOME, defaultConfigHome)
	if err != nil {
		return "", fmt.Errorf("find config directory: %w", err)
	}
	return filepath.Join(dir, "itmoscript", "rc.yaml"), nil
}

// DBPath returns the default path of the history database. The directory
// containing it is created if it does not exist.
func DBPath() (string, error) {
	dir, err := xdgDir(env.XDG_STATE_HOME, defaultStateHome)
	if err != nil {
		return "", fmt.Errorf("find state directory: %w", err)
	}
	dir = filepath.Join(dir, "itmoscript")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.db"), nil
}

func xdgDir(name string, fallback func() (string, error)) (string, error) {
	if dir := os.Getenv(name); dir != "" {
		return dir, nil
	}
	return fallback()
}
