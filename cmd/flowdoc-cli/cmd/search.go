package cmd

import (
	"github.com/spf13/cobra"

	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search items in the local index",
	Long: `Search items by ID, name or slug in the local index.

Results are ranked by relevance using fuzzy matching. Run sync first to
populate the index.

Examples:
  flowdoc-cli search install
  flowdoc-cli search getting-started`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := openIndex()
		if err != nil {
			return err
		}
		defer index.Close()

		out := printer(cmd)
		if last, err := index.LastSync(cfg.CollectionID); err == nil && last.IsZero() {
			out.Warn("Index is empty, run sync first")
			return nil
		}

		results, err := commands.NewSearchCommand(index, cfg.CollectionID, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		if len(results) == 0 {
			out.Println("No results found")
			return nil
		}

		summaries := make([]domain.ItemSummary, len(results))
		for i, r := range results {
			summaries[i] = r.ItemSummary
		}
		out.SummaryTable(summaries)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
}
