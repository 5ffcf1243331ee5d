package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the flat annex7 configuration
type Config struct {
	Version      string `json:"version"`
	DatabasePath string `json:"database_path,omitempty"` // overrides the default data file
	AccountID    string `json:"account_id,omitempty"`    // default account for CLI commands
	PageSize     int    `json:"page_size,omitempty"`     // default listing page size
}

// DefaultPageSize is used when no page size is configured or requested.
const DefaultPageSize = 15

// LoadConfig reads .annex7/config.json from the specified directory.
// Resolution order: dir, then home. Returns a zero config when neither
// exists so the CLI can run with defaults alone.
func LoadConfig(dir string) (*Config, error) {
	paths := []string{filepath.Join(dir, ".annex7", "config.json")}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".annex7", "config.json"))
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}

		var cfg Config
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
		return &cfg, nil
	}

	return &Config{}, nil
}

// SaveConfig writes config.json to directory
func SaveConfig(dir string, cfg *Config) error {
	cfgDir := filepath.Join(dir, ".annex7")
	if err := os.MkdirAll(cfgDir, 0755); err != nil {
		return fmt.Errorf("failed to create .annex7 dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(cfgDir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// DatabasePath resolves the data file location: config override first,
// then ~/.annex7/annex7.db.
func DatabasePath() string {
	cwd, err := os.Getwd()
	if err == nil {
		if cfg, err := LoadConfig(cwd); err == nil && cfg.DatabasePath != "" {
			return cfg.DatabasePath
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "annex7.db"
	}
	return filepath.Join(home, ".annex7", "annex7.db")
}
