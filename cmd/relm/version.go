package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/relm/internal/version"
)

var versionVerbose bool

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		if versionVerbose {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "relm version %s\n", version.Get())
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&versionVerbose, "verbose", "v", false, "Include Go runtime details")
}
