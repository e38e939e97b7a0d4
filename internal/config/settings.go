package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Color modes accepted by the color setting.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// DefaultDebounce is the rescan delay used by watch mode when none is configured.
const DefaultDebounce = 200 * time.Millisecond

// Settings holds persistent CLI defaults loaded from a config file.
// Settings never select or tune the checks themselves.
type Settings struct {
	Color  string       `yaml:"color"`  // auto, always, never
	Strict bool         `yaml:"strict"` // exit non-zero when diagnostics were emitted
	Watch  *WatchConfig `yaml:"watch,omitempty"`
}

// WatchConfig holds settings for the watch command.
type WatchConfig struct {
	Debounce time.Duration `yaml:"debounce,omitempty"`
}

// LoadSettings reads a YAML config file into Settings.
// If the file does not exist, it returns zero-value Settings and nil error.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return &s, nil
}

func (s *Settings) validate() error {
	switch s.Color {
	case "", ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q (use auto, always, or never)", s.Color)
	}
	if s.Watch != nil && s.Watch.Debounce < 0 {
		return fmt.Errorf("watch debounce must not be negative, got %v", s.Watch.Debounce)
	}
	return nil
}

// ColorMode returns the configured color mode, defaulting to auto.
func (s *Settings) ColorMode() string {
	if s.Color == "" {
		return ColorAuto
	}
	return s.Color
}

// Debounce returns the watch debounce, defaulting to DefaultDebounce.
func (s *Settings) Debounce() time.Duration {
	if s.Watch == nil || s.Watch.Debounce == 0 {
		return DefaultDebounce
	}
	return s.Watch.Debounce
}
