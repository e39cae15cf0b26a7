package config

import (
	"os"
	"strconv"

	"goeda/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server ServerConfig
	Upload UploadConfig
	Data   DataConfig
	UI     UIConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port string
}

// UploadConfig holds upload handling limits
type UploadConfig struct {
	MaxFileSize int64 // Maximum upload size in bytes
}

// DataConfig holds data source settings
type DataConfig struct {
	// File is an optional CSV/XLSX file to preload at startup, so the
	// dashboard is populated without an upload.
	File string
}

// UIConfig holds presentation settings
type UIConfig struct {
	Theme string // "light" or "dark"
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port: getEnvOrDefault("PORT", "8080"),
		},
		Upload: UploadConfig{
			MaxFileSize: int64(getEnvIntOrDefault("MAX_UPLOAD_MB", 50)) * 1024 * 1024,
		},
		Data: DataConfig{
			File: getEnvOrDefault("DATA_FILE", ""),
		},
		UI: UIConfig{
			Theme: getEnvOrDefault("UI_THEME", "light"),
		},
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Upload.MaxFileSize <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_MB must be positive")
	}
	if config.UI.Theme != "light" && config.UI.Theme != "dark" {
		return errors.ConfigInvalid("UI_THEME must be light or dark")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
