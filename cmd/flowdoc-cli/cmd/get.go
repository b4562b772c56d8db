package cmd

import (
	"github.com/spf13/cobra"

	"flowdoc/internal/adapters/console"
	"flowdoc/internal/application/commands"
)

var getFormat string

var getCmd = &cobra.Command{
	Use:   "get <item-id>",
	Short: "Show a single item",
	Long: `Show an item's metadata and field data.

Examples:
  flowdoc-cli get 64f1c2a9e8
  flowdoc-cli get 64f1c2a9e8 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := console.CheckFormat(getFormat, console.FormatPanel, console.FormatJSON, console.FormatYAML); err != nil {
			return err
		}

		item, err := commands.NewGetItemCommand(GetService(), cfg.CollectionID, args[0]).Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := printer(cmd)
		if getFormat != console.FormatPanel {
			return out.Value(item, getFormat)
		}

		out.ItemPanel(item)
		return out.Value(item.FieldData, console.FormatJSON)
	},
}

func init() {
	getCmd.Flags().StringVarP(&getFormat, "format", "f", console.FormatPanel, "output format: panel, json or yaml")
	rootCmd.AddCommand(getCmd)
}
