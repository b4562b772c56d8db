package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"flowdoc/internal/application/commands"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Refresh the local search index",
	Long: `Fetch every item and store its ID, name and slug in the local index
used by search. Field data is never stored.

Example:
  flowdoc-cli sync`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := openIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		sync := commands.NewSyncIndexCommand(GetService(), index, cfg.CollectionID, cfg.PageSize)
		sync.Progress = func(fetched, total int) {
			logger.Debug("retrieved items", "fetched", fetched, "total", total)
		}

		stats, err := sync.Execute(cmd.Context())
		if err != nil {
			return err
		}

		printer(cmd).Success(fmt.Sprintf("Synced %d items in %s (%d added, %d updated, %d removed)",
			stats.ItemsFetched, stats.Duration.Round(time.Millisecond), stats.ItemsAdded, stats.ItemsUpdated, stats.ItemsDeleted))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
