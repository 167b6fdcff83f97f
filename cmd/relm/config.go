package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/relm/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config [key] [value]",
	Short: "Manage configuration",
	Long: `View or modify relm configuration.

Without arguments, displays current configuration.
With one argument (key), displays the value for that key.
With two arguments (key value), sets the configuration value.

Configuration is stored at ~/.config/relm/config.yaml
Project-specific overrides can be placed in .relm.yaml`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 {
			return setConfigKey(cmd.OutOrStdout(), args[0], args[1])
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(args) == 1 {
			return displayConfigKey(out, cfg, args[0])
		}
		return displayAllConfig(out, cfg)
	},
}

// displayAllConfig prints all configuration values.
func displayAllConfig(w io.Writer, cfg *config.Config) error {
	for _, key := range config.Keys {
		if err := displayConfigKey(w, cfg, key); err != nil {
			return err
		}
	}
	fmt.Fprintf(w, "# api key source: %s\n", config.GetAPIKeySource(cfg))
	return nil
}

// displayConfigKey prints a single configuration value.
func displayConfigKey(w io.Writer, cfg *config.Config, key string) error {
	value, err := cfg.Get(key)
	if err != nil {
		return err
	}
	if config.IsSecret(key) {
		value = config.MaskAPIKey(value)
	}
	fmt.Fprintf(w, "%s: %s\n", key, value)
	return nil
}

// setConfigKey sets a configuration value in a single config file. Only that
// file is read, so values from the environment or a project file are not
// copied into it.
func setConfigKey(w io.Writer, key, value string) error {
	path := configPath
	if path == "" {
		path = config.GetUserConfigPath()
	}

	cfg := config.Default()
	if _, err := os.Stat(path); err == nil {
		if cfg, err = config.LoadFromPath(path); err != nil {
			return err
		}
	}

	if err := cfg.Set(key, value); err != nil {
		return err
	}
	if err := config.SaveToPath(cfg, path); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	shown := value
	if config.IsSecret(key) {
		shown = config.MaskAPIKey(value)
	}
	fmt.Fprintf(w, "%s Set %s = %s (%s)\n", color.GreenString("✓"), key, shown, path)
	return nil
}
