package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"flowdoc/internal/adapters/tui"
	"flowdoc/internal/adapters/webflow"
	"flowdoc/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	collectionFlag := flag.String("collection", "", "collection ID (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *collectionFlag != "" {
		cfg.CollectionID = *collectionFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Initialize adapters
	client := webflow.NewClient(cfg.APIToken,
		webflow.WithBaseURL(cfg.BaseURL),
		webflow.WithTimeout(cfg.Timeout.Duration),
	)

	// Create and run TUI app
	app := tui.NewApp(client, cfg.CollectionID, cfg.PageSize)

	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
