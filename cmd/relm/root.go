package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/relm/internal/config"
	"github.com/ShayCichocki/relm/pkg/executor"
	"github.com/ShayCichocki/relm/pkg/relm"
	"github.com/ShayCichocki/relm/pkg/toolkit"
)

var (
	configPath string
	logPath    string
	altScreen  bool
)

var rootCmd = &cobra.Command{
	Use:   "relm",
	Short: "Asynchronous Elm-style widgets for the terminal",
	Long: `relm runs demo applications built on the relm widget framework.

Each widget owns a message bus and an update loop. Toolkit signals and
asynchronous work (timers, database queries, file events, API calls) are
turned into messages and handled one at a time by the widget's Update.

Configuration is read from ~/.config/relm/config.yaml, an optional
.relm.yaml in the working directory or a parent, and RELM_* variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: XDG config plus .relm.yaml)")
	rootCmd.PersistentFlags().StringVar(&logPath, "log", "", "Write a debug log to this file")
	rootCmd.PersistentFlags().BoolVar(&altScreen, "alt-screen", false, "Use the terminal's alternate screen")

	rootCmd.AddCommand(counterCmd)
	rootCmd.AddCommand(clockCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig loads the configuration and applies command line overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFromPath(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("log") {
		cfg.Executor.LogPath = logPath
	}
	if cmd.Flags().Changed("alt-screen") {
		cfg.TUI.AltScreen = altScreen
	}
	return cfg, nil
}

// appOptions maps the configuration onto relm.Run options.
func appOptions(cfg *config.Config, title string) []relm.Option {
	tkOpts := []toolkit.Option{
		toolkit.WithAltScreen(cfg.TUI.AltScreen),
	}
	if cfg.TUI.RefreshRate > 0 {
		tkOpts = append(tkOpts, toolkit.WithRefreshRate(cfg.TUI.RefreshRate))
	}

	execOpts := []executor.Option{
		executor.WithLogPath(cfg.Executor.LogPath),
	}
	if cfg.Executor.ShutdownTimeout > 0 {
		execOpts = append(execOpts, executor.WithShutdownTimeout(cfg.Executor.ShutdownTimeout))
	}

	return []relm.Option{
		relm.WithTitle(title),
		relm.WithToolkitOptions(tkOpts...),
		relm.WithExecutorOptions(execOpts...),
	}
}

// reportError prints err, with a hint for startup failures.
func reportError(err error) {
	var relmErr *relm.Error
	if errors.As(err, &relmErr) {
		switch relmErr.Kind {
		case relm.ToolkitInitFailure:
			printStatus("✗", fmt.Sprintf("%v (run relm from an interactive terminal)", err), color.FgRed)
			return
		case relm.ExecutorIoFailure:
			printStatus("✗", fmt.Sprintf("%v (check --log or executor.log_path)", err), color.FgRed)
			return
		}
	}
	printStatus("✗", err.Error(), color.FgRed)
}

// printStatus prints a status message with a colored symbol.
func printStatus(symbol, message string, colorAttr color.Attribute) {
	c := color.New(colorAttr)
	fmt.Fprintf(color.Error, "%s %s\n", c.Sprint(symbol), message)
}
