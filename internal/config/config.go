// ABOUTME: Golf tool configuration management.
// ABOUTME: Handles data directory, metadata file location, and store factory.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/harperreed/golf/internal/clubs"
)

// Config stores golf tool configuration.
type Config struct {
	// DataDir is the directory holding session_YYYY_MM_DD.csv exports
	// and, by default, the club metadata sidecar. Supports ~ expansion.
	// Defaults to ~/.local/share/golf.
	DataDir string `json:"data_dir,omitempty"`

	// MetadataFile overrides the club metadata sidecar location.
	// Defaults to <data_dir>/club_metadata.json.
	MetadataFile string `json:"metadata_file,omitempty"`
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "golf")
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// GetMetadataFile returns the club metadata sidecar path.
func (c *Config) GetMetadataFile() string {
	if c.MetadataFile == "" {
		return filepath.Join(c.GetDataDir(), "club_metadata.json")
	}
	return ExpandPath(c.MetadataFile)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// OpenStore creates the club metadata store at the configured
// location.
func (c *Config) OpenStore() (*clubs.Store, error) {
	store, err := clubs.Open(c.GetMetadataFile())
	if err != nil {
		return nil, fmt.Errorf("open club metadata store: %w", err)
	}
	return store, nil
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "golf", "config.json")
}

// Load reads config from disk.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
