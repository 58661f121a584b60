//go:build !windows

package rc

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/keyplexex/itmoscript/pkg/env"
)

var (
	defaultConfigHome = homePath(".config")
	defaultStateHome  = homePath(".local/state")
)

func homePath(suffix string) func() (string, error) {
	return func() (string, error) {
		home := os.Getenv(env.HOME)
		if home == "" {
			var err error
			home, err = os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("resolve ~/%s: %w", suffix, err)
			}
		}
		return filepath.Join(home, suffix), nil
	}
}
