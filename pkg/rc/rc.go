// Package rc loads the configuration file of the itmoscript command.
//
// The file is YAML, decoded strictly so that misspelled keys are reported
// instead of ignored:
//
//	recursion-limit: 1000
//	prompt: "> "
//	continuation-prompt: ".. "
//	history:
//	  enabled: true
//	  db: ""
//	  max: 1000
package rc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/keyplexex/itmoscript/pkg/eval"
	"github.com/keyplexex/itmoscript/pkg/logutil"
	"gopkg.in/yaml.v3"
)

var logger = logutil.GetLogger("[rc] ")

// Config is the content of the configuration file. Fields missing from the
// file keep their default values.
type Config struct {
	RecursionLimit     int     `yaml:"recursion-limit"`
	Prompt             string  `yaml:"prompt"`
	ContinuationPrompt string  `yaml:"continuation-prompt"`
	History            History `yaml:"history"`
}

// History configures the command history of the interactive mode.
type History struct {
	Enabled bool `yaml:"enabled"`
	// Path of the database. Empty means the default path returned by DBPath.
	DB string `yaml:"db"`
	// Maximum number of commands loaded into the line editor.
	Max int `yaml:"max"`
}

// Default returns the configuration used when there is no file.
func Default() *Config {
	return &Config{
		RecursionLimit:     eval.DefaultRecursionLimit,
		Prompt:             "> ",
		ContinuationPrompt: ".. ",
		History:            History{Enabled: true, Max: 1000},
	}
}

// MaxRecursionLimit is the largest recursion-limit accepted. Deeper recursion
// would overflow the Go stack before the limit is reached.
const MaxRecursionLimit = 100000

// ValidationError is returned when a configuration file is well-formed but has
// unacceptable values.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Issues, "; ")
}

// Load reads the configuration file at path. A missing file is not an error;
// the default configuration is returned.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Printf("%s does not exist, using defaults", path)
			return Default(), nil
		}
		return nil, err
	}
	defer f.Close()
	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Printf("loaded %s", path)
	return cfg, nil
}

// Decode decodes a configuration from r. An empty input gives the default
// configuration.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	var e ValidationError
	if cfg.RecursionLimit <= 0 {
		e.Issues = append(e.Issues,
			fmt.Sprintf("recursion-limit must be positive, got %d", cfg.RecursionLimit))
	} else if cfg.RecursionLimit > MaxRecursionLimit {
		e.Issues = append(e.Issues,
			fmt.Sprintf("recursion-limit must be at most %d, got %d",
				MaxRecursionLimit, cfg.RecursionLimit))
	}
	if cfg.History.Max < 0 {
		e.Issues = append(e.Issues,
			fmt.Sprintf("history.max must not be negative, got %d", cfg.History.Max))
	}
	if len(e.Issues) > 0 {
		return &e
	}
	return nil
}

// EvalCfg returns an eval.EvalCfg with the settings of the configuration
// applied.
func (cfg *Config) EvalCfg() eval.EvalCfg {
	return eval.EvalCfg{RecursionLimit: cfg.RecursionLimit}
}
