package cmd

import (
	"github.com/spf13/cobra"

	"flowdoc/internal/adapters/console"
	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
)

var (
	updatePath    string
	updateContent string
	updateDryRun  bool
)

var updateCmd = &cobra.Command{
	Use:   "update <item-id>",
	Short: "Write a value at a path inside an item",
	Long: `Write a value at a dot path inside an item's field data and send the
whole field data back. Missing intermediate keys are created.

The content is parsed as JSON; anything that is not valid JSON is stored
as a plain string.

Examples:
  flowdoc-cli update 64f1c2a9e8 --path content.title --content "New title"
  flowdoc-cli update 64f1c2a9e8 --path meta.tags --content '["cli","guide"]'
  flowdoc-cli update 64f1c2a9e8 --path meta.order --content 3 --dry-run`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		update := commands.NewUpdatePathCommand(GetService(), cfg.CollectionID, args[0], updatePath, domain.ParseContent(updateContent))
		update.DryRun = updateDryRun

		result, err := update.Execute(cmd.Context())
		if err != nil {
			return err
		}

		out := printer(cmd)
		if result.DryRun {
			out.Warn(result.Message)
			return out.Value(result.FieldData, console.FormatJSON)
		}

		out.Success(result.Message)
		if !result.HadValue {
			logger.Debug("path created", "path", updatePath)
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updatePath, "path", "p", "", "dot path into field data")
	updateCmd.Flags().StringVar(&updateContent, "content", "", "new value (JSON or plain text)")
	updateCmd.Flags().BoolVar(&updateDryRun, "dry-run", false, "print the field data that would be sent")
	updateCmd.MarkFlagRequired("path")
	updateCmd.MarkFlagRequired("content")
	rootCmd.AddCommand(updateCmd)
}
