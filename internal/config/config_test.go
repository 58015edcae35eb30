package config

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func envFrom(vars map[string]string) func(string) string {
	return func(key string) string {
		return vars[key]
	}
}

func TestFromEnvDefaults(t *testing.T) {
	cfg, err := FromEnv(envFrom(nil))
	if err != nil {
		t.Fatalf("FromEnv() error = %v", err)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
	if cfg.ColorMode != ColorAuto {
		t.Errorf("ColorMode = %s, want %s", cfg.ColorMode, ColorAuto)
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		vars        map[string]string
		wantVerbose bool
		wantMode    ColorMode
	}{
		{"verbose true", map[string]string{EnvVerbose: "true"}, true, ColorAuto},
		{"verbose 1", map[string]string{EnvVerbose: "1"}, true, ColorAuto},
		{"verbose false", map[string]string{EnvVerbose: "0"}, false, ColorAuto},
		{"color always", map[string]string{EnvColor: "always"}, false, ColorAlways},
		{"color mixed case", map[string]string{EnvColor: " Never "}, false, ColorNever},
		{"no color is left to the renderer", map[string]string{"NO_COLOR": "1"}, false, ColorAuto},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := FromEnv(envFrom(tt.vars))
			if err != nil {
				t.Fatalf("FromEnv() error = %v", err)
			}
			if cfg.Verbose != tt.wantVerbose {
				t.Errorf("Verbose = %v, want %v", cfg.Verbose, tt.wantVerbose)
			}
			if cfg.ColorMode != tt.wantMode {
				t.Errorf("ColorMode = %s, want %s", cfg.ColorMode, tt.wantMode)
			}
		})
	}
}

func TestFromEnvInvalid(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		variable string
	}{
		{"bad verbose", map[string]string{EnvVerbose: "loud"}, EnvVerbose},
		{"bad color", map[string]string{EnvColor: "rainbow"}, EnvColor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromEnv(envFrom(tt.vars))
			if err == nil {
				t.Fatal("FromEnv() expected error")
			}
			var cfgErr *ConfigError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("expected *ConfigError, got %T", err)
			}
			if cfgErr.Type != InvalidValue {
				t.Errorf("Type = %s, want %s", cfgErr.Type, InvalidValue)
			}
			if cfgErr.Variable != tt.variable {
				t.Errorf("Variable = %s, want %s", cfgErr.Variable, tt.variable)
			}
		})
	}
}

// Property: color modes parse case-insensitively and anything else is rejected.
func TestFromEnvColorModes(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("valid modes accept any letter case", prop.ForAll(
		func(mode string, upper bool) bool {
			value := mode
			if upper {
				value = strings.ToUpper(mode)
			}
			cfg, err := FromEnv(envFrom(map[string]string{EnvColor: value}))
			return err == nil && cfg.ColorMode == ColorMode(mode)
		},
		gen.OneConstOf("auto", "always", "never"),
		gen.Bool(),
	))

	properties.Property("unknown modes are rejected", prop.ForAll(
		func(value string) bool {
			_, err := FromEnv(envFrom(map[string]string{EnvColor: value}))
			var cfgErr *ConfigError
			return errors.As(err, &cfgErr) && cfgErr.Variable == EnvColor
		},
		gen.AlphaString().SuchThat(func(s string) bool {
			switch ColorMode(strings.ToLower(s)) {
			case "", ColorAuto, ColorAlways, ColorNever:
				return false
			}
			return true
		}),
	))

	properties.TestingRun(t)
}
