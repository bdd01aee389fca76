package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/bnema/ssnfield/internal/logging"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
	log       zerolog.Logger
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config") // Name without extension
	v.SetConfigType("toml")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	v.AddConfigPath(configDir)

	// SSNFIELD_FIELD_START_MASKED, SSNFIELD_APPEARANCE_BORDER, ...
	v.SetEnvPrefix("SSNFIELD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "SSNFIELD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SSNFIELD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SSNFIELD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SSNFIELD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
		log:       logging.NewFromEnv(),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created from the defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			configFile := m.viper.ConfigFileUsed()
			if configFile == "" {
				configFile, _ = GetConfigFile()
			}
			return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", configFile, err)
		}

		if createErr := m.createDefaultConfig(); createErr != nil {
			configDir, _ := GetConfigDir()
			return fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				configDir,
				createErr,
			)
		}
		if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
			return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
		}
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", m.viper.ConfigFileUsed(), err)
	}
	return config, nil
}

// normalizeConfig lowercases enum-like values so "Exact" and "exact" agree.
func normalizeConfig(config *Config) {
	config.Field.CaretMapping = strings.ToLower(strings.TrimSpace(config.Field.CaretMapping))
	config.Appearance.Border = BorderStyle(strings.ToLower(strings.TrimSpace(string(config.Appearance.Border))))
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.File != "" {
		config.Logging.File = expandHome(config.Logging.File)
	}
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Get returns a copy of the current configuration.
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// SetLogger replaces the logger used by the watcher. A terminal UI owns
// stderr, so it passes its file logger here before calling Watch.
func (m *Manager) SetLogger(log zerolog.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.log = log
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// createDefaultConfig writes the defaults and the JSON schema next to them.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	m.viper.SetConfigType("toml")
	if err := m.viper.SafeWriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	schemaFile, err := GetSchemaFile()
	if err != nil {
		return err
	}
	if err := WriteSchemaFile(schemaFile); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Created default configuration file: %s\n", configFile)
	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("appearance.palette.text", defaults.Appearance.Palette.Text)
	m.viper.SetDefault("appearance.palette.muted", defaults.Appearance.Palette.Muted)
	m.viper.SetDefault("appearance.palette.accent", defaults.Appearance.Palette.Accent)
	m.viper.SetDefault("appearance.palette.border", defaults.Appearance.Palette.Border)
	m.viper.SetDefault("appearance.border", string(defaults.Appearance.Border))
	m.viper.SetDefault("appearance.bold", defaults.Appearance.Bold)

	m.viper.SetDefault("field.start_masked", defaults.Field.StartMasked)
	m.viper.SetDefault("field.caret_mapping", defaults.Field.CaretMapping)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.file", defaults.Logging.File)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
}
