// Package config loads ColorTools defaults from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/go-hclog"

	"github.com/Paul-Toth/ColorTools/internal/colormap"
)

// Environment variables read by Load.
const (
	EnvLogLevel = "COLORTOOLS_LOG_LEVEL"
	EnvTrimMin  = "COLORTOOLS_TRIM_MIN"
	EnvTrimMax  = "COLORTOOLS_TRIM_MAX"
	EnvSteps    = "COLORTOOLS_STEPS"
	EnvNoColor  = "NO_COLOR"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	LogLevel hclog.Level
	TrimMin  float64
	TrimMax  float64
	Steps    int
	NoColor  bool
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		LogLevel: hclog.Warn,
		TrimMin:  colormap.DefaultTrimMin,
		TrimMax:  colormap.DefaultTrimMax,
		Steps:    5,
	}
}

// Load returns the default configuration overlaid with any values set in the
// environment.
func Load() (Config, error) {
	return load(os.LookupEnv)
}

func load(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level := hclog.LevelFromString(v)
		if level == hclog.NoLevel {
			return Config{}, fmt.Errorf("%s: unknown log level %q", EnvLogLevel, v)
		}
		cfg.LogLevel = level
	}

	var err error
	if cfg.TrimMin, err = floatVar(lookup, EnvTrimMin, cfg.TrimMin); err != nil {
		return Config{}, err
	}
	if cfg.TrimMax, err = floatVar(lookup, EnvTrimMax, cfg.TrimMax); err != nil {
		return Config{}, err
	}

	if v, ok := lookup(EnvSteps); ok && v != "" {
		steps, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvSteps, err)
		}
		cfg.Steps = steps
	}

	// Any value, even empty, disables colour per https://no-color.org.
	if _, ok := lookup(EnvNoColor); ok {
		cfg.NoColor = true
	}

	return cfg, nil
}

func floatVar(lookup func(string) (string, bool), key string, def float64) (float64, error) {
	v, ok := lookup(key)
	if !ok || v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}
