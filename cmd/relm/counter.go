package main

import (
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/relm/internal/examples"
	"github.com/ShayCichocki/relm/pkg/relm"
)

var counterPair bool

var counterCmd = &cobra.Command{
	Use:   "counter",
	Short: "Run the counter demo",
	Long: `Run a counter with increment, decrement and reset buttons.

With --pair, two independent counters are hosted as child widgets of a
parent, each with its own message bus and update loop.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if counterPair {
			return relm.Run(examples.NewPair, appOptions(cfg, "Counters")...)
		}
		return relm.Run(examples.NewCounter, appOptions(cfg, "Counter")...)
	},
}

func init() {
	counterCmd.Flags().BoolVar(&counterPair, "pair", false, "Show two independent counters")
}
