package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	mcpadapter "flowdoc/internal/adapters/mcp"
	"flowdoc/internal/adapters/sqlite"
	"flowdoc/internal/adapters/webflow"
	"flowdoc/internal/config"
	"flowdoc/internal/version"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	collectionFlag := flag.String("collection", "", "collection ID (overrides config)")
	flag.Parse()

	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("flowdoc-mcp: %v", err)
	}
	if *collectionFlag != "" {
		cfg.CollectionID = *collectionFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("flowdoc-mcp: %v", err)
	}

	client := webflow.NewClient(cfg.APIToken,
		webflow.WithBaseURL(cfg.BaseURL),
		webflow.WithTimeout(cfg.Timeout.Duration),
	)

	collection := mcpadapter.Collection{
		Service:      client,
		CollectionID: cfg.CollectionID,
		PageSize:     cfg.PageSize,
	}

	index := sqlite.NewIndex()
	if err := index.Open(cfg.IndexPath); err != nil {
		log.Printf("flowdoc-mcp: search disabled: %v", err)
	} else {
		defer index.Close()
		collection.Index = index
	}

	mcpServer := server.NewMCPServer(
		"flowdoc-mcp",
		version.String(),
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, collection)
	mcpadapter.RegisterWriteTools(mcpServer, collection)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("flowdoc-mcp: %v", err)
	}
}
