package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/relm/internal/examples"
	"github.com/ShayCichocki/relm/pkg/relm"
)

var clockInterval time.Duration

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Run the clock demo",
	RunE: func(cmd *cobra.Command, args []string) error {
		if clockInterval <= 0 {
			return fmt.Errorf("--interval must be positive, got %s", clockInterval)
		}
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return relm.Run(examples.NewClock(clockInterval), appOptions(cfg, "Clock")...)
	},
}

func init() {
	clockCmd.Flags().DurationVar(&clockInterval, "interval", time.Second, "Tick interval")
}
