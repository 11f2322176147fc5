// Package config handles configuration loading and validation for autotype.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	BACKEND_CURSES = "curses"
	BACKEND_RAW    = "raw"

	cDefaultPollTimeoutMs = 500
	cConfigDirName        = ".autotype"
)

// Config holds the complete editor configuration.
type Config struct {
	Dictionary DictionaryConfig `toml:"dictionary" yaml:"dictionary"`
	Terminal   TerminalConfig   `toml:"terminal" yaml:"terminal"`
	Logging    LoggingConfig    `toml:"logging" yaml:"logging"`

	// Verbose shows a status line under the text.
	Verbose bool `toml:"verbose" yaml:"verbose"`
}

type DictionaryConfig struct {
	// Path to a whitespace-separated word list. Empty uses the built-in list.
	Path string `toml:"path" yaml:"path"`
}

type TerminalConfig struct {
	Backend string `toml:"backend" yaml:"backend" validate:"oneof=curses raw"`

	// PollTimeoutMs bounds how long the loop waits for a key before checking
	// for cancellation.
	PollTimeoutMs int `toml:"poll_timeout_ms" yaml:"poll_timeout_ms" validate:"min=10,max=10000"`
}

type LoggingConfig struct {
	Level string `toml:"level" yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`

	// File receives JSON log records. Empty disables logging.
	File string `toml:"file" yaml:"file"`
}

// PollTimeout returns the poll timeout as a duration.
func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.Terminal.PollTimeoutMs) * time.Millisecond
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Terminal: TerminalConfig{
			Backend:       BACKEND_CURSES,
			PollTimeoutMs: cDefaultPollTimeoutMs,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Dir returns the per-user configuration directory, ~/.autotype.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return cConfigDirName
	}
	return filepath.Join(home, cConfigDirName)
}

// Path returns the default configuration file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the configuration at path, decoding it as YAML for .yaml/.yml
// files and TOML otherwise. An empty path means Path(), and only that default
// file may be missing, in which case DefaultConfig is returned.
func Load(path string) (*Config, error) {
	implicit := path == ""
	if implicit {
		path = Path()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if implicit && errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := DefaultConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode YAML: %w", err)
		}
	default:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, fmt.Errorf("decode TOML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validate = validator.New()

// ValidationError reports one invalid field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks field constraints. The returned error is ValidationErrors.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, ValidationError{
			Field:   fe.Namespace(),
			Message: fmt.Sprintf("failed %q (value %v)", fe.ActualTag(), fe.Value()),
		})
	}
	return errs
}
