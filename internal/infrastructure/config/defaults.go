package config

import (
	"path/filepath"

	"github.com/bnema/ssnfield/internal/domain/ssn"
)

// Default configuration constants
const (
	// Appearance defaults
	defaultTextColor   = "#518616"
	defaultMutedColor  = "#d3d3d3"
	defaultAccentColor = "#4ade80"
	defaultBorderColor = "#599616"

	// Logging defaults
	defaultLogLevel  = "info"
	defaultLogFormat = "console"
	defaultLogSizeMB = 5
)

// getDefaultLogFile returns the default log file, falls back to empty string on error
func getDefaultLogFile() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return filepath.Join(logDir, appName+".log")
}

// DefaultPalette returns the field colors used when no config is present.
func DefaultPalette() ColorPalette {
	return ColorPalette{
		Text:   defaultTextColor,
		Muted:  defaultMutedColor,
		Accent: defaultAccentColor,
		Border: defaultBorderColor,
	}
}

// DefaultConfig returns the default configuration values for ssnfield.
func DefaultConfig() *Config {
	return &Config{
		Appearance: AppearanceConfig{
			Palette: DefaultPalette(),
			Border:  BorderRounded,
			Bold:    true,
		},
		Field: FieldConfig{
			StartMasked:  false,
			CaretMapping: ssn.MappingTruncating,
		},
		Logging: LoggingConfig{
			Level:     defaultLogLevel,
			Format:    defaultLogFormat,
			File:      getDefaultLogFile(),
			MaxSizeMB: defaultLogSizeMB,
		},
	}
}
