package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
)

// RegisterWriteTools adds the item update tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, c Collection) {
	s.AddTool(updatePathTool(), updatePathHandler(c))
	s.AddTool(patchItemTool(), patchItemHandler(c))
}

// --- update_path ---

func updatePathTool() mcp.Tool {
	return mcp.NewTool("update_path",
		mcp.WithDescription("Write a value at a dot-notation path inside an item's field data and send the whole field data back. Missing intermediate keys are created."),
		mcp.WithString("item_id",
			mcp.Description("ID of the item"),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Dot-notation path into fieldData (e.g. content.title)"),
			mcp.Required(),
		),
		mcp.WithString("content",
			mcp.Description("New value. Parsed as JSON; anything that is not valid JSON is stored as a string."),
			mcp.Required(),
		),
		mcp.WithBoolean("dry_run",
			mcp.Description("Return the field data that would be sent without updating the item"),
		),
	)
}

func updatePathHandler(c Collection) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID := req.GetString("item_id", "")
		path := req.GetString("path", "")
		content := req.GetString("content", "")

		cmd := commands.NewUpdatePathCommand(c.Service, c.CollectionID, itemID, path, domain.ParseContent(content))
		cmd.DryRun = req.GetBool("dry_run", false)

		result, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if result.DryRun {
			body, err := json.MarshalIndent(result.FieldData, "", "  ")
			if err != nil {
				return toolError(err)
			}
			return mcp.NewToolResultText(result.Message + "\n" + string(body)), nil
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- patch_item ---

func patchItemTool() mcp.Tool {
	return mcp.NewTool("patch_item",
		mcp.WithDescription("Send a raw update for an item. field_data, when given, replaces the item's field data as a whole."),
		mcp.WithString("item_id",
			mcp.Description("ID of the item"),
			mcp.Required(),
		),
		mcp.WithString("field_data",
			mcp.Description("JSON object replacing fieldData"),
		),
		mcp.WithBoolean("is_archived",
			mcp.Description("Archive or unarchive the item"),
		),
		mcp.WithBoolean("is_draft",
			mcp.Description("Mark the item as draft or not"),
		),
		mcp.WithString("cms_locale_id",
			mcp.Description("Locale of the item"),
		),
	)
}

func patchItemHandler(c Collection) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID := req.GetString("item_id", "")

		payload, err := patchPayload(req)
		if err != nil {
			return toolError(err)
		}

		result, err := commands.NewPatchItemCommand(c.Service, c.CollectionID, itemID, payload).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(result.Message), nil
	}
}

// patchPayload builds a payload from the arguments that were actually given
func patchPayload(req mcp.CallToolRequest) (domain.UpdatePayload, error) {
	var payload domain.UpdatePayload
	args := req.GetArguments()

	if raw := req.GetString("field_data", ""); raw != "" {
		if err := json.Unmarshal([]byte(raw), &payload.FieldData); err != nil {
			return payload, fmt.Errorf("field_data must be a JSON object: %w", err)
		}
	}
	if _, ok := args["is_archived"]; ok {
		v := req.GetBool("is_archived", false)
		payload.IsArchived = &v
	}
	if _, ok := args["is_draft"]; ok {
		v := req.GetBool("is_draft", false)
		payload.IsDraft = &v
	}
	payload.CMSLocaleID = req.GetString("cms_locale_id", "")

	return payload, nil
}
