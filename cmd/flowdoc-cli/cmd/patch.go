package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
)

var (
	patchFieldData   string
	patchArchived    bool
	patchDraft       bool
	patchCMSLocaleID string
)

var patchCmd = &cobra.Command{
	Use:   "patch <item-id>",
	Short: "Send a raw update for an item",
	Long: `Send a raw update for an item. --field-data replaces the item's field
data as a whole; use update to change a single path.

Examples:
  flowdoc-cli patch 64f1c2a9e8 --draft=false
  flowdoc-cli patch 64f1c2a9e8 --field-data '{"name":"Intro","slug":"intro"}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var payload domain.UpdatePayload

		if patchFieldData != "" {
			if err := json.Unmarshal([]byte(patchFieldData), &payload.FieldData); err != nil {
				return fmt.Errorf("invalid JSON in --field-data: %w", err)
			}
		}
		if cmd.Flags().Changed("archived") {
			payload.IsArchived = &patchArchived
		}
		if cmd.Flags().Changed("draft") {
			payload.IsDraft = &patchDraft
		}
		payload.CMSLocaleID = patchCMSLocaleID

		result, err := commands.NewPatchItemCommand(GetService(), cfg.CollectionID, args[0], payload).Execute(cmd.Context())
		if err != nil {
			return err
		}

		printer(cmd).Success(result.Message)
		return nil
	},
}

func init() {
	patchCmd.Flags().StringVar(&patchFieldData, "field-data", "", "JSON object replacing field data")
	patchCmd.Flags().BoolVar(&patchArchived, "archived", false, "set archived status")
	patchCmd.Flags().BoolVar(&patchDraft, "draft", false, "set draft status")
	patchCmd.Flags().StringVar(&patchCMSLocaleID, "cms-locale-id", "", "CMS locale ID")
	rootCmd.AddCommand(patchCmd)
}
