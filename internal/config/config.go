// Package config loads process settings from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by every command.
type Config struct {
	StateFile    string `yaml:"state_file"`
	LogLevel     string `yaml:"log_level"`
	LogFormat    string `yaml:"log_format"`
	HistoryLimit int    `yaml:"history_limit"`
}

// Load reads the configuration from GRIDCORE_* environment variables,
// falling back to defaults for unset or invalid values.
func Load() Config {
	return Config{
		StateFile:    getenv("GRIDCORE_STATE_FILE", "./data/app_state.json"),
		LogLevel:     getenv("GRIDCORE_LOG_LEVEL", "info"),
		LogFormat:    getenv("GRIDCORE_LOG_FORMAT", "text"),
		HistoryLimit: getenvInt("GRIDCORE_HISTORY_LIMIT", 0),
	}
}

// LoadFile overlays the YAML file at path onto the environment config.
// Keys missing from the file keep their environment values.
func LoadFile(path string) (Config, error) {
	cfg := Load()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.HistoryLimit < 0 {
		return cfg, fmt.Errorf("config %s: history_limit must not be negative", path)
	}
	return cfg, nil
}

func getenv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getenvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
