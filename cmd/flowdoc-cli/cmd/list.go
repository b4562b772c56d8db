package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"flowdoc/internal/adapters/console"
	"flowdoc/internal/adapters/filesystem"
	"flowdoc/internal/application/commands"
	"flowdoc/internal/config"
	"flowdoc/internal/domain"
)

var (
	listSave      bool
	listOutputDir string
	listFilename  string
	listFormat    string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all items in the collection",
	Long: `List every item in the collection, fetching page by page.

Examples:
  flowdoc-cli list
  flowdoc-cli list --format json
  flowdoc-cli list --save --output-dir docs --filename items.json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := console.CheckFormat(listFormat, console.FormatTable, console.FormatJSON, console.FormatYAML); err != nil {
			return err
		}

		listItems := commands.NewListItemsCommand(GetService(), cfg.CollectionID, cfg.PageSize)
		listItems.Progress = func(fetched, total int) {
			logger.Debug("retrieved items", "fetched", fetched, "total", total)
		}
		items, err := listItems.Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := printer(cmd)
		if listFormat == console.FormatTable {
			out.ItemsTable(items)
		} else {
			summaries := make([]domain.ItemSummary, len(items))
			for i, it := range items {
				summaries[i] = it.Summary()
			}
			if err := out.Value(summaries, listFormat); err != nil {
				return err
			}
		}

		if listSave {
			store := filesystem.NewStore(outputDir(listOutputDir))
			path, err := store.SaveItemsList(items, listFilename)
			if err != nil {
				return err
			}
			console.NewPrinter(cmd.ErrOrStderr()).Success(fmt.Sprintf("Items list saved to: %s", path))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().BoolVar(&listSave, "save", false, "save the list to a file")
	listCmd.Flags().StringVar(&listOutputDir, "output-dir", "", "directory for saved files (default from config)")
	listCmd.Flags().StringVar(&listFilename, "filename", config.DefaultListFile, "file name for the saved list")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", console.FormatTable, "output format: table, json or yaml")
	rootCmd.AddCommand(listCmd)
}
