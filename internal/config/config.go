// Package config handles environment-driven settings for changejane.
// None of these settings affect which names are renamed or how.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType string

const (
	InvalidValue ConfigErrorType = "INVALID_VALUE"
)

// Environment variables read by FromEnv.
const (
	EnvVerbose = "CHANGEJANE_VERBOSE"
	EnvColor   = "CHANGEJANE_COLOR"
)

// ConfigError represents an invalid environment setting.
type ConfigError struct {
	Type     ConfigErrorType
	Variable string
	Value    string
	Message  string
}

func (e *ConfigError) Error() string {
	switch e.Type {
	case InvalidValue:
		return fmt.Sprintf("invalid value %q for %s: %s", e.Value, e.Variable, e.Message)
	default:
		return fmt.Sprintf("configuration error: %s", e.Message)
	}
}

// ColorMode controls colored error output. In auto mode the terminal
// decides, and NO_COLOR is honored by the renderer.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Config holds ambient settings for a run.
type Config struct {
	Verbose   bool      // Print one line per rename
	ColorMode ColorMode // auto, always or never
}

// Default returns the settings used when no variables are set.
func Default() *Config {
	return &Config{
		Verbose:   false,
		ColorMode: ColorAuto,
	}
}

// FromEnv builds a Config from environment lookups.
// getenv is usually os.Getenv.
func FromEnv(getenv func(string) string) (*Config, error) {
	cfg := Default()

	if v := strings.TrimSpace(getenv(EnvVerbose)); v != "" {
		verbose, err := strconv.ParseBool(v)
		if err != nil {
			return nil, &ConfigError{
				Type:     InvalidValue,
				Variable: EnvVerbose,
				Value:    v,
				Message:  "expected a boolean",
			}
		}
		cfg.Verbose = verbose
	}

	if v := strings.TrimSpace(getenv(EnvColor)); v != "" {
		mode := ColorMode(strings.ToLower(v))
		switch mode {
		case ColorAuto, ColorAlways, ColorNever:
			cfg.ColorMode = mode
		default:
			return nil, &ConfigError{
				Type:     InvalidValue,
				Variable: EnvColor,
				Value:    v,
				Message:  "expected auto, always or never",
			}
		}
	}

	return cfg, nil
}
