package config

import (
	"fmt"
	"log/slog"
	"strings"
)

// LevelOff disables logging when used as Settings.LogLevel.
const LevelOff = "off"

// Settings configures smartenum registries.
type Settings struct {
	// SealOnLookup seals a registry on its first lookup. Default: true.
	SealOnLookup bool `yaml:"seal_on_lookup" json:"seal_on_lookup"`

	// LogLevel is a slog level name ("debug", "info", "warn", "error") or
	// "off". Empty keeps the default logger's own level.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// Metrics enables OTel metrics.
	Metrics bool `yaml:"metrics" json:"metrics"`

	// Tracing enables OTel spans for Define.
	Tracing bool `yaml:"tracing" json:"tracing"`
}

// Default returns the default settings.
func Default() Settings {
	return Settings{
		SealOnLookup: true,
	}
}

// Validate checks that the settings are usable.
func (s Settings) Validate() error {
	if _, _, err := s.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel. enabled is false when logging is switched off;
// an empty LogLevel yields slog.LevelInfo.
func (s Settings) Level() (level slog.Level, enabled bool, err error) {
	name := strings.TrimSpace(s.LogLevel)
	switch strings.ToLower(name) {
	case "":
		return slog.LevelInfo, true, nil
	case LevelOff:
		return 0, false, nil
	}
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, false, fmt.Errorf("invalid log_level %q: %w", s.LogLevel, err)
	}
	return level, true, nil
}
