package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"flowdoc/internal/adapters/console"
	"flowdoc/internal/adapters/filesystem"
	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
)

var (
	extractPath      string
	extractSave      bool
	extractOutputDir string
	extractCopy      bool
	extractFormat    string
)

var extractCmd = &cobra.Command{
	Use:   "extract <item-id>",
	Short: "Print the value at a path inside an item",
	Long: `Print the value at a dot path inside an item's field data.
Without --path the whole field data is printed.

Examples:
  flowdoc-cli extract 64f1c2a9e8 --path content.sections.0.text
  flowdoc-cli extract 64f1c2a9e8 --path content --save
  flowdoc-cli extract 64f1c2a9e8 --path summary --format raw --copy`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := console.CheckFormat(extractFormat, console.FormatJSON, console.FormatYAML, console.FormatRaw); err != nil {
			return err
		}

		result, err := commands.NewExtractCommand(GetService(), cfg.CollectionID, args[0], extractPath).Execute(cmd.Context())
		if err != nil {
			return err
		}
		if !result.Found {
			_, err := domain.Lookup(result.Item.FieldData, result.Path)
			return err
		}

		text, err := console.FormatValue(result.Value, extractFormat)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)

		status := console.NewPrinter(cmd.ErrOrStderr())
		if extractCopy {
			if err := clipboard.WriteAll(text); err != nil {
				return fmt.Errorf("failed to copy to clipboard: %w", err)
			}
			status.Success("Copied to clipboard")
		}
		if extractSave {
			store := filesystem.NewStore(outputDir(extractOutputDir))
			path, err := store.SaveContent(result.Item, result.Value)
			if err != nil {
				return err
			}
			status.Success(fmt.Sprintf("Content saved to: %s", path))
		}
		return nil
	},
}

func init() {
	extractCmd.Flags().StringVarP(&extractPath, "path", "p", "", "dot path into field data (empty for all)")
	extractCmd.Flags().BoolVar(&extractSave, "save", false, "save the value to a file")
	extractCmd.Flags().StringVar(&extractOutputDir, "output-dir", "", "directory for saved files (default from config)")
	extractCmd.Flags().BoolVar(&extractCopy, "copy", false, "copy the value to the clipboard")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", console.FormatJSON, "output format: json, yaml or raw")
	rootCmd.AddCommand(extractCmd)
}
