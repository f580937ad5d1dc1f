package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/kanapad"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print kanapad version",
	Run: func(cmd *cobra.Command, args []string) {
		// keep output simple for scripting
		fmt.Fprintln(cmd.OutOrStdout(), kanapad.CurrentBuild())
	},
}
