package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/relm/internal/examples"
	"github.com/ShayCichocki/relm/pkg/relm"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Run the file watcher demo",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		path := cfg.Watch.Path
		if len(args) == 1 {
			path = args[0]
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return relm.Run(examples.NewWatch(path), appOptions(cfg, "Watch")...)
	},
}
