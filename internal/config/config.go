// Package config handles configuration loading and management for relm.
// It supports XDG config paths, project-level overrides, and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the relm demos.
type Config struct {
	Executor  ExecutorConfig  `mapstructure:"executor"`
	TUI       TUIConfig       `mapstructure:"tui"`
	Notes     NotesConfig     `mapstructure:"notes"`
	Watch     WatchConfig     `mapstructure:"watch"`
	Anthropic AnthropicConfig `mapstructure:"anthropic"`
}

// ExecutorConfig holds executor settings.
type ExecutorConfig struct {
	// LogPath is the debug log file. Empty disables logging.
	LogPath         string        `mapstructure:"log_path"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// TUIConfig holds TUI display settings.
type TUIConfig struct {
	RefreshRate time.Duration `mapstructure:"refresh_rate"`
	AltScreen   bool          `mapstructure:"alt_screen"`
}

// NotesConfig holds settings for the notes demo.
type NotesConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// WatchConfig holds settings for the watch demo.
type WatchConfig struct {
	Path string `mapstructure:"path"`
}

// AnthropicConfig holds Anthropic API settings.
type AnthropicConfig struct {
	APIKey     string `mapstructure:"api_key"`
	Model      string `mapstructure:"model"`
	UseBedrock bool   `mapstructure:"use_bedrock"`
	AWSRegion  string `mapstructure:"aws_region"`
	AWSProfile string `mapstructure:"aws_profile"`
}

// Keys lists every settable configuration key.
var Keys = []string{
	"executor.log_path",
	"executor.shutdown_timeout",
	"tui.refresh_rate",
	"tui.alt_screen",
	"notes.db_path",
	"watch.path",
	"anthropic.api_key",
	"anthropic.model",
	"anthropic.use_bedrock",
	"anthropic.aws_region",
	"anthropic.aws_profile",
}

// Load loads configuration from XDG paths, project overrides, and environment variables.
// Precedence (highest to lowest):
// 1. Environment variables (RELM_*, ANTHROPIC_API_KEY)
// 2. Project config (.relm.yaml in current directory or parent)
// 3. User config (~/.config/relm/config.yaml)
// 4. Built-in defaults
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(getUserConfigDir())

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading user config: %w", err)
		}
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		projectViper := viper.New()
		projectViper.SetConfigFile(projectConfig)
		if err := projectViper.ReadInConfig(); err == nil {
			if err := v.MergeConfigMap(projectViper.AllSettings()); err != nil {
				return nil, fmt.Errorf("merging project config: %w", err)
			}
		}
	}

	bindEnv(v)

	return unmarshal(v)
}

// LoadFromPath loads configuration from a specific path (for testing).
func LoadFromPath(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}

	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	cfg.Anthropic.APIKey = expandEnv(cfg.Anthropic.APIKey)
	cfg.Executor.LogPath = expandEnv(cfg.Executor.LogPath)
	cfg.Notes.DBPath = expandEnv(cfg.Notes.DBPath)
	cfg.Watch.Path = expandEnv(cfg.Watch.Path)

	return cfg, nil
}

// bindEnv maps RELM_SECTION_KEY variables onto section.key.
func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("relm")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("anthropic.api_key", "RELM_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY")
}

// Save writes the configuration to the user config file.
func Save(cfg *Config) error {
	return SaveToPath(cfg, GetUserConfigPath())
}

// SaveToPath writes the configuration to path, creating its directory.
func SaveToPath(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	for _, key := range Keys {
		value, _ := cfg.Get(key)
		v.Set(key, value)
	}

	return v.WriteConfig()
}

// Get returns the string form of a configuration key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "executor.log_path":
		return c.Executor.LogPath, nil
	case "executor.shutdown_timeout":
		return c.Executor.ShutdownTimeout.String(), nil
	case "tui.refresh_rate":
		return c.TUI.RefreshRate.String(), nil
	case "tui.alt_screen":
		return fmt.Sprintf("%t", c.TUI.AltScreen), nil
	case "notes.db_path":
		return c.Notes.DBPath, nil
	case "watch.path":
		return c.Watch.Path, nil
	case "anthropic.api_key":
		return c.Anthropic.APIKey, nil
	case "anthropic.model":
		return c.Anthropic.Model, nil
	case "anthropic.use_bedrock":
		return fmt.Sprintf("%t", c.Anthropic.UseBedrock), nil
	case "anthropic.aws_region":
		return c.Anthropic.AWSRegion, nil
	case "anthropic.aws_profile":
		return c.Anthropic.AWSProfile, nil
	default:
		return "", fmt.Errorf("unknown config key: %s", key)
	}
}

// Set parses value and assigns it to key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "executor.log_path":
		c.Executor.LogPath = value
	case "executor.shutdown_timeout":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		c.Executor.ShutdownTimeout = d
	case "tui.refresh_rate":
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration for %s: %w", key, err)
		}
		c.TUI.RefreshRate = d
	case "tui.alt_screen":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		c.TUI.AltScreen = b
	case "notes.db_path":
		c.Notes.DBPath = value
	case "watch.path":
		c.Watch.Path = value
	case "anthropic.api_key":
		c.Anthropic.APIKey = value
	case "anthropic.model":
		c.Anthropic.Model = value
	case "anthropic.use_bedrock":
		b, err := parseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %w", key, err)
		}
		c.Anthropic.UseBedrock = b
	case "anthropic.aws_region":
		c.Anthropic.AWSRegion = value
	case "anthropic.aws_profile":
		c.Anthropic.AWSProfile = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "true", "yes", "1", "on":
		return true, nil
	case "false", "no", "0", "off":
		return false, nil
	}
	return false, fmt.Errorf("%q is not a boolean", s)
}

// GetUserConfigPath returns the path to the user config file.
func GetUserConfigPath() string {
	return filepath.Join(getUserConfigDir(), "config.yaml")
}

// GetProjectConfigPath returns the path to the project config file if it exists.
func GetProjectConfigPath() string {
	return findProjectConfig()
}

// setDefaults configures default values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("executor.log_path", "")
	v.SetDefault("executor.shutdown_timeout", "2s")

	v.SetDefault("tui.refresh_rate", "100ms")
	v.SetDefault("tui.alt_screen", false)

	v.SetDefault("notes.db_path", DefaultNotesPath())

	v.SetDefault("watch.path", ".")

	v.SetDefault("anthropic.api_key", "")
	v.SetDefault("anthropic.model", "")
	v.SetDefault("anthropic.use_bedrock", false)
	v.SetDefault("anthropic.aws_region", "")
	v.SetDefault("anthropic.aws_profile", "")
}

// getUserConfigDir returns the XDG config directory for relm.
func getUserConfigDir() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return filepath.Join(xdgConfig, "relm")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".config", "relm")
	}
	return filepath.Join(home, ".config", "relm")
}

// DefaultNotesPath returns the XDG data path of the notes database.
func DefaultNotesPath() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		home, _ := os.UserHomeDir()
		dataDir = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataDir, "relm", "notes.db")
}

// findProjectConfig searches for .relm.yaml in the current directory and parents.
func findProjectConfig() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(cwd, ".relm.yaml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(cwd)
		if parent == cwd {
			break
		}
		cwd = parent
	}

	return ""
}

// expandEnv expands ${VAR} references in a string.
func expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Executor: ExecutorConfig{
			ShutdownTimeout: 2 * time.Second,
		},
		TUI: TUIConfig{
			RefreshRate: 100 * time.Millisecond,
		},
		Notes: NotesConfig{
			DBPath: DefaultNotesPath(),
		},
		Watch: WatchConfig{
			Path: ".",
		},
	}
}
