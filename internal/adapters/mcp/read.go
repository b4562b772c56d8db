package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"flowdoc/internal/adapters/console"
	"flowdoc/internal/application/commands"
	"flowdoc/internal/domain"
	"flowdoc/internal/ports"
)

// Collection binds the tools to one CMS collection
type Collection struct {
	Service      ports.CollectionService
	Index        ports.ItemIndex // optional; enables search_items
	CollectionID string
	PageSize     int
}

// RegisterReadTools adds all read-only collection tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, c Collection) {
	s.AddTool(listItemsTool(), listItemsHandler(c))
	s.AddTool(getItemTool(), getItemHandler(c))
	s.AddTool(extractTool(), extractHandler(c))
	if c.Index != nil {
		s.AddTool(searchItemsTool(), searchItemsHandler(c))
	}
}

// --- list_items ---

func listItemsTool() mcp.Tool {
	return mcp.NewTool("list_items",
		mcp.WithDescription("List every item in the collection as one line per item: ID, name and slug."),
	)
}

func listItemsHandler(c Collection) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		items, err := commands.NewListItemsCommand(c.Service, c.CollectionID, c.PageSize).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		summaries := make([]domain.ItemSummary, len(items))
		for i, it := range items {
			summaries[i] = it.Summary()
		}
		return formatSummaries(summaries)
	}
}

// --- get_item ---

func getItemTool() mcp.Tool {
	return mcp.NewTool("get_item",
		mcp.WithDescription("Fetch a single item, including its metadata and full field data, as JSON."),
		mcp.WithString("item_id",
			mcp.Description("ID of the item"),
			mcp.Required(),
		),
	)
}

func getItemHandler(c Collection) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID := req.GetString("item_id", "")

		item, err := commands.NewGetItemCommand(c.Service, c.CollectionID, itemID).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		return jsonResult(item)
	}
}

// --- extract ---

func extractTool() mcp.Tool {
	return mcp.NewTool("extract",
		mcp.WithDescription("Read the value at a dot-notation path inside an item's field data (e.g. content.sections.0.text). An empty path returns all field data."),
		mcp.WithString("item_id",
			mcp.Description("ID of the item"),
			mcp.Required(),
		),
		mcp.WithString("path",
			mcp.Description("Dot-notation path into fieldData. Numeric segments index lists."),
		),
	)
}

func extractHandler(c Collection) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		itemID := req.GetString("item_id", "")
		path := req.GetString("path", "")

		result, err := commands.NewExtractCommand(c.Service, c.CollectionID, itemID, path).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if !result.Found {
			_, err := domain.Lookup(result.Item.FieldData, result.Path)
			return toolError(err)
		}
		return jsonResult(result.Value)
	}
}

// --- search_items ---

func searchItemsTool() mcp.Tool {
	return mcp.NewTool("search_items",
		mcp.WithDescription("Search the local item index by ID, name or slug. Run the CLI sync command first to populate it."),
		mcp.WithString("query",
			mcp.Description("Search query (at least 2 characters)"),
			mcp.Required(),
		),
	)
}

func searchItemsHandler(c Collection) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		query := req.GetString("query", "")
		if query == "" {
			return toolError(fmt.Errorf("query is required"))
		}

		results, err := commands.NewSearchCommand(c.Index, c.CollectionID, query).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		summaries := make([]domain.ItemSummary, len(results))
		for i, r := range results {
			summaries[i] = r.ItemSummary
		}
		return formatSummaries(summaries)
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	text, err := console.FormatValue(v, console.FormatJSON)
	if err != nil {
		return toolError(err)
	}
	return mcp.NewToolResultText(text), nil
}

func formatSummaries(items []domain.ItemSummary) (*mcp.CallToolResult, error) {
	if len(items) == 0 {
		return mcp.NewToolResultText("No results."), nil
	}
	var sb strings.Builder
	for _, it := range items {
		fmt.Fprintf(&sb, "%s  %s  %s\n", it.ID, it.Name, it.Slug)
	}
	return mcp.NewToolResultText(sb.String()), nil
}
