package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"flowdoc/internal/adapters/console"
	"flowdoc/internal/adapters/editor"
	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

var editPath string

// opener is replaced in tests
var opener ports.EditorOpener = editor.NewOpener()

var editCmd = &cobra.Command{
	Use:   "edit <item-id>",
	Short: "Edit the value at a path in $EDITOR",
	Long: `Open the value at a dot path in $EDITOR as JSON and write the saved
result back to the item. Nothing is sent when the value is unchanged.

Examples:
  flowdoc-cli edit 64f1c2a9e8 --path content.sections`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		itemID := args[0]

		extract, err := commands.NewExtractCommand(GetService(), cfg.CollectionID, itemID, editPath).Execute(cmd.Context())
		if err != nil {
			return err
		}

		// A missing path starts out as null and is created on save
		original, err := console.FormatValue(extract.Value, console.FormatJSON)
		if err != nil {
			return err
		}

		edited, err := opener.EditBytes([]byte(original+"\n"), ".json")
		if err != nil {
			return err
		}

		edited = bytes.TrimSpace(edited)
		var value any
		if err := json.Unmarshal(edited, &value); err != nil {
			return fmt.Errorf("edited content is not valid JSON: %w", err)
		}

		out := printer(cmd)
		if extract.Found && domain.Equal(value, extract.Value) {
			out.Warn("No changes")
			return nil
		}

		if len(extract.Path) == 0 {
			fieldData, ok := value.(map[string]any)
			if !ok {
				return fmt.Errorf("field data must be a JSON object")
			}
			result, err := commands.NewPatchItemCommand(GetService(), cfg.CollectionID, itemID, domain.UpdatePayload{FieldData: fieldData}).Execute(cmd.Context())
			if err != nil {
				return err
			}
			out.Success(result.Message)
			return nil
		}

		result, err := commands.NewUpdatePathCommand(GetService(), cfg.CollectionID, itemID, editPath, value).Execute(cmd.Context())
		if err != nil {
			return err
		}
		out.Success(result.Message)
		return nil
	},
}

func init() {
	editCmd.Flags().StringVarP(&editPath, "path", "p", "", "dot path into field data (empty for all)")
	rootCmd.AddCommand(editCmd)
}
