// Package config loads the adflow configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/thenoetrevino/adflow/internal/config/colors"
	"github.com/thenoetrevino/adflow/internal/kanban"
	"github.com/thenoetrevino/adflow/internal/models"
)

// Storage backends
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config represents the application configuration
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
	Boards      Boards             `yaml:"boards"`
	Storage     Storage            `yaml:"storage"`
}

// Boards holds the column list of each board
type Boards struct {
	CampaignColumns []string `yaml:"campaign_columns"`
	TaskColumns     []string `yaml:"task_columns"`
}

// Storage selects where documents live
type Storage struct {
	Backend string `yaml:"backend"`  // sqlite (default), file or memory
	DataDir string `yaml:"data_dir"` // defaults to ~/.adflow
}

// Default returns the built-in configuration
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// loadThemeFile merges the theme from ADFLOW_THEME_FILE, if set
func loadThemeFile(config *Config) {
	themeFile := os.Getenv("ADFLOW_THEME_FILE")
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory.
// Returns the default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath, err := Path()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads config from an explicit path. A missing file gives defaults.
func LoadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", configPath, err)
	}

	loadThemeFile(&config)
	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Save saves the config to the user's config directory
func (c *Config) Save() error {
	configPath, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0o644)
}

// Path returns the path to the config file
func Path() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "adflow", "config.yaml"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "adflow", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
	if len(c.Boards.CampaignColumns) == 0 {
		c.Boards.CampaignColumns = append([]string(nil), models.DefaultCampaignColumns...)
	}
	if len(c.Boards.TaskColumns) == 0 {
		c.Boards.TaskColumns = append([]string(nil), models.DefaultTaskColumns...)
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendSQLite
	}
}

// Validate checks the board columns and storage backend
func (c *Config) Validate() error {
	if _, err := c.CampaignColumns(); err != nil {
		return fmt.Errorf("boards.campaign_columns: %w", err)
	}
	if _, err := c.TaskColumns(); err != nil {
		return fmt.Errorf("boards.task_columns: %w", err)
	}
	switch c.Storage.Backend {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return fmt.Errorf("storage.backend: unknown backend %q", c.Storage.Backend)
	}
	return nil
}

// CampaignColumns returns the campaign board's column list
func (c *Config) CampaignColumns() (kanban.Columns, error) {
	return kanban.NewColumns(c.Boards.CampaignColumns...)
}

// TaskColumns returns the task board's column list
func (c *Config) TaskColumns() (kanban.Columns, error) {
	return kanban.NewColumns(c.Boards.TaskColumns...)
}

// DataDir resolves the data directory, expanding a leading "~".
// ADFLOW_DATA_DIR overrides the file.
func (c *Config) DataDir() (string, error) {
	dir := c.Storage.DataDir
	if env := os.Getenv("ADFLOW_DATA_DIR"); env != "" {
		dir = env
	}
	if dir == "" {
		dir = "~/.adflow"
	}
	if dir == "~" || strings.HasPrefix(dir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, strings.TrimPrefix(dir, "~"))
	}
	return dir, nil
}

// SocketPath returns the event daemon socket inside the data directory
func (c *Config) SocketPath() (string, error) {
	dir, err := c.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "adflow.sock"), nil
}
