package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowdoc/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Current()
		w := cmd.OutOrStdout()

		fmt.Fprintf(w, "flowdoc-cli %s\n", info.Version)
		if info.Commit != "" {
			fmt.Fprintf(w, "commit: %s\n", info.Commit)
		}
		if info.CommitTime != "" {
			fmt.Fprintf(w, "commit_time: %s\n", info.CommitTime)
		}
		fmt.Fprintf(w, "go: %s\n", info.GoVersion)
		fmt.Fprintf(w, "platform: %s\n", info.Platform)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
