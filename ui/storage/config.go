package storage

import (
	"errors"
	"os"
)

// LoadConfig loads the configuration from config.json.
// If the file doesn't exist, it returns default configuration.
// If the file is corrupted, it returns an error.
func LoadConfig() (*Config, error) {
	path, err := GetConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	config := &Config{}
	if err := ReadJSON(path, config); err != nil {
		return nil, err
	}

	return migrateConfig(config), nil
}

// SaveConfig saves the configuration to config.json atomically
func SaveConfig(config *Config) error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}
	return AtomicWriteJSON(path, config)
}

// CreateConfigIfMissing creates a default config.json if it doesn't exist
func CreateConfigIfMissing() error {
	path, err := GetConfigPath()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return SaveConfig(DefaultConfig())
	}
	return nil
}

// migrateConfig handles any necessary migrations from older config versions
func migrateConfig(config *Config) *Config {
	if config.Version == 0 {
		config.Version = 1
	}

	// Ensure defaults for any missing fields
	if config.Controller.MapID == "" {
		config.Controller.MapID = "default"
	}
	if len(config.Controller.FrontGrid) != FrontGridRows*FrontGridCols {
		config.Controller.FrontGrid = make([]string, FrontGridRows*FrontGridCols)
	}
	if len(config.Controller.RearGrid) != RearGridRows*RearGridCols {
		config.Controller.RearGrid = make([]string, RearGridRows*RearGridCols)
	}
	if config.Hosts == nil {
		config.Hosts = []RegisteredHost{}
	}

	return config
}
